package stats

// PFRef is the historical aggregator source: weekly player rows exported from
// Stathead / Pro-Football-Reference. Column headers are used verbatim.
var PFRef Source = &tableSource{tag: "pfref", fields: pfrefFields}

// "Fmb" is every fumble and "FL" only the lost ones; weekly rows carry both.
var pfrefFields = map[string]string{
	"Pass_Cmp": PassCmp,
	"Pass_Att": PassAtt,
	"Pass_Yds": PassYds,
	"Pass_TD":  PassTD,
	"Pass_Int": PassInt,
	"Sk":       PassSacked,
	"Rush_Att": RushAtt,
	"Rush_Yds": RushYds,
	"Rush_TD":  RushTD,
	"Tgt":      RecTgt,
	"Rec":      Rec,
	"Rec_Yds":  RecYds,
	"Rec_TD":   RecTD,
	"Fmb":      Fum,
	"FL":       FumLost,
	"XPM":      PATMade,
	"XPA":      PATAtt,
	"FGM":      FGMade,
	"FGA":      FGAtt,
}
