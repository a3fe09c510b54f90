package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/service"
	"github.com/omarshaarawi/ffwrapped/internal/stats"
)

const (
	leagueFlag    = "league"
	statsFlag     = "stats"
	weekFlag      = "week"
	modeFlag      = "mode"
	skillOnlyFlag = "skill-only"

	sourceFile = "file"
)

// leagueFile is a league's settings plus the roster to score.
type leagueFile struct {
	models.LeagueSettings `yaml:",inline"`
	Players               []filePlayer `yaml:"players"`
}

type filePlayer struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Started  bool   `yaml:"started"`
}

func lineupCommand() *cli.Command {
	return &cli.Command{
		Name:  "lineup",
		Usage: "Build lineups offline from league and stat files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     leagueFlag,
				Aliases:  []string{"l"},
				Usage:    "YAML file with scoring, roster and players",
				Required: true,
			},
			&cli.StringFlag{
				Name:     statsFlag,
				Aliases:  []string{"s"},
				Usage:    "YAML file with weekly stat records",
				Required: true,
			},
			&cli.IntFlag{
				Name:  weekFlag,
				Usage: "Build a single week instead of the whole season",
			},
			&cli.StringFlag{
				Name:  modeFlag,
				Usage: "optimal or actual",
				Value: string(lineup.ModeOptimal),
			},
			&cli.BoolFlag{
				Name:  skillOnlyFlag,
				Usage: "Leave D/ST and kickers out",
			},
		},
		Action: func(c *cli.Context) error {
			mode, err := lineup.ParseMode(c.String(modeFlag))
			if err != nil {
				return err
			}

			league, err := readLeague(c.String(leagueFlag))
			if err != nil {
				return err
			}
			records, err := readRecords(c.String(statsFlag))
			if err != nil {
				return err
			}

			out, err := buildLineups(c, league, records, mode)
			if err != nil {
				return err
			}
			return writeYAML(c.App.Writer, out)
		},
	}
}

func buildLineups(c *cli.Context, league *leagueFile, records []stats.Record, mode lineup.Mode) (interface{}, error) {
	engine, err := service.NewEngine(nil, league.Scoring, league.Roster)
	if err != nil {
		return nil, err
	}
	engine.DisplayOrder = lineup.DefaultDisplayOrder
	engine.SkillOnly = c.Bool(skillOnlyFlag)

	byWeek := stats.NewRecordIndex(records)

	fetch := func(week int) []models.RosteredPlayer {
		players := make([]models.RosteredPlayer, len(league.Players))
		for i, p := range league.Players {
			players[i] = models.RosteredPlayer{
				PlayerID: p.ID,
				Name:     p.Name,
				Position: p.Position,
				Started:  p.Started,
				Record:   byWeek.Get(p.ID, week),
			}
		}
		return players
	}

	if week := c.Int(weekFlag); week != 0 {
		if week < 1 || week > lineup.SeasonLength {
			return nil, &lineup.ConfigurationError{Field: weekFlag, Reason: fmt.Sprintf("must be between 1 and %d", lineup.SeasonLength)}
		}
		return engine.Week(week, fetch(week), mode)
	}

	results, total, err := engine.Season(c.Context, service.Weeks(lineup.SeasonLength), mode,
		func(_ context.Context, week int) ([]models.RosteredPlayer, error) {
			return fetch(week), nil
		})
	if err != nil {
		return nil, err
	}
	return &models.SeasonLineup{
		LeagueID: league.LeagueID,
		Season:   league.Season,
		Source:   sourceFile,
		Mode:     mode,
		Total:    total,
		Weeks:    results,
	}, nil
}

func readLeague(path string) (*leagueFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var league leagueFile
	if err := yaml.NewDecoder(f).Decode(&league); err != nil {
		return nil, fmt.Errorf("decoding league file %s: %w", path, err)
	}
	return &league, nil
}

func readRecords(path string) ([]stats.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []stats.Record
	if err := yaml.NewDecoder(f).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding stats file %s: %w", path, err)
	}
	return records, nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}
