package postgres

// roster is plain json rather than jsonb: jsonb reorders object keys and
// slot order is significant.
const schema = `
CREATE TABLE IF NOT EXISTS players (
	player_id  BIGINT PRIMARY KEY,
	name       TEXT NOT NULL,
	position   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS draft_picks (
	league_id  BIGINT NOT NULL,
	season     INT NOT NULL,
	team_id    INT NOT NULL,
	player_id  BIGINT NOT NULL REFERENCES players (player_id),
	round      INT NOT NULL DEFAULT 0,
	pick       INT NOT NULL DEFAULT 0,
	PRIMARY KEY (league_id, season, player_id)
);

CREATE INDEX IF NOT EXISTS draft_picks_team_idx ON draft_picks (league_id, season, team_id);

CREATE TABLE IF NOT EXISTS stat_records (
	player_id   BIGINT NOT NULL,
	season      INT NOT NULL,
	week        INT NOT NULL,
	source      TEXT NOT NULL,
	fields      JSONB NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (player_id, season, week, source)
);

CREATE TABLE IF NOT EXISTS league_settings (
	league_id  BIGINT NOT NULL,
	season     INT NOT NULL,
	name       TEXT NOT NULL DEFAULT '',
	scoring    JSONB NOT NULL,
	roster     JSON NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (league_id, season)
);
`
