package stats

// Record is one player's raw statistic line for a single week as reported by
// one source. Only observed fields are present in Fields.
type Record struct {
	PlayerID int                `json:"playerId" yaml:"playerId"`
	Week     int                `json:"week" yaml:"week"`
	Season   int                `json:"season" yaml:"season"`
	Source   string             `json:"source" yaml:"source"`
	Fields   map[string]float64 `json:"fields" yaml:"fields"`
}

// Stats is a sparse set of canonical stat values. A missing key means the
// stat was not observed, which is different from an observed zero.
type Stats map[string]float64

// Has reports whether key was observed.
func (s Stats) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Canonical stat keys.
const (
	PassAtt              = "pass_att"
	PassCmp              = "pass_cmp"
	PassYds              = "pass_yds"
	PassTD               = "pass_td"
	PassTD40             = "pass_td_40"
	PassTD50             = "pass_td_50"
	Pass2Pt              = "pass_2pt"
	PassInt              = "pass_int"
	PassSacked           = "pass_sacked"
	PassYdsBonus300To399 = "pass_yds_bonus_300_399"
	PassYdsBonus400      = "pass_yds_bonus_400"

	RushAtt              = "rush_att"
	RushYds              = "rush_yds"
	RushTD               = "rush_td"
	RushTD40             = "rush_td_40"
	RushTD50             = "rush_td_50"
	Rush2Pt              = "rush_2pt"
	RushYdsBonus100To199 = "rush_yds_bonus_100_199"
	RushYdsBonus200      = "rush_yds_bonus_200"

	Rec                 = "rec"
	RecTgt              = "rec_tgt"
	RecYds              = "rec_yds"
	RecTD               = "rec_td"
	RecTD40             = "rec_td_40"
	RecTD50             = "rec_td_50"
	Rec2Pt              = "rec_2pt"
	RecYdsBonus100To199 = "rec_yds_bonus_100_199"
	RecYdsBonus200      = "rec_yds_bonus_200"

	Fum      = "fum"
	FumLost  = "fum_lost"
	FumRecTD = "fum_rec_td"

	FGMade0To39  = "fg_made_0_39"
	FGAtt0To39   = "fg_att_0_39"
	FGMade40To49 = "fg_made_40_49"
	FGAtt40To49  = "fg_att_40_49"
	FGMade50To59 = "fg_made_50_59"
	FGAtt50To59  = "fg_att_50_59"
	FGMade60Plus = "fg_made_60_plus"
	FGAtt60Plus  = "fg_att_60_plus"
	FGMade       = "fg_made"
	FGAtt        = "fg_att"
	FGMissed     = "fg_missed"
	PATMade      = "pat_made"
	PATAtt       = "pat_att"
	PATMissed    = "pat_missed"

	DefSack      = "def_sack"
	DefInt       = "def_int"
	DefFumRec    = "def_fum_rec"
	DefSafety    = "def_safety"
	DefBlkKick   = "def_blk_kick"
	DefBlkKickTD = "def_blk_kick_td"
	DefTD        = "def_td"
	DefFF        = "def_ff"
	Def2PtRet    = "def_2pt_ret"
	KRTD         = "kr_td"
	PRTD         = "pr_td"
	IntRetTD     = "int_ret_td"
	FumRetTD     = "fum_ret_td"

	DefPointsAllowed = "def_pa"
	DefPA0           = "def_pa_0"
	DefPA1To6        = "def_pa_1_6"
	DefPA7To13       = "def_pa_7_13"
	DefPA14To17      = "def_pa_14_17"
	DefPA18To21      = "def_pa_18_21"
	DefPA22To27      = "def_pa_22_27"
	DefPA28To34      = "def_pa_28_34"
	DefPA35To45      = "def_pa_35_45"
	DefPA46Plus      = "def_pa_46_plus"

	DefYardsAllowed = "def_ya"
	DefYA0To99      = "def_ya_0_99"
	DefYA100To199   = "def_ya_100_199"
	DefYA200To299   = "def_ya_200_299"
	DefYA300To349   = "def_ya_300_349"
	DefYA350To399   = "def_ya_350_399"
	DefYA400To449   = "def_ya_400_449"
	DefYA450To499   = "def_ya_450_499"
	DefYA500To549   = "def_ya_500_549"
	DefYA550Plus    = "def_ya_550_plus"
)
