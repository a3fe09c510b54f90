package stats

// ESPN is the live fantasy-platform source. Field names are the stat names
// ESPN's player breakdowns use once numeric stat ids have been resolved.
var ESPN Source = &tableSource{tag: "espn", fields: espnFields}

var espnFields = map[string]string{
	"passingAttempts":         PassAtt,
	"passingCompletions":      PassCmp,
	"passingYards":            PassYds,
	"passingTouchdowns":       PassTD,
	"passing40PlusYardTD":     PassTD40,
	"passing50PlusYardTD":     PassTD50,
	"passing2PtConversions":   Pass2Pt,
	"passingInterceptions":    PassInt,
	"passingTimesSacked":      PassSacked,
	"rushingAttempts":         RushAtt,
	"rushingYards":            RushYds,
	"rushingTouchdowns":       RushTD,
	"rushing40PlusYardTD":     RushTD40,
	"rushing50PlusYardTD":     RushTD50,
	"rushing2PtConversions":   Rush2Pt,
	"receivingReceptions":     Rec,
	"receivingTargets":        RecTgt,
	"receivingYards":          RecYds,
	"receivingTouchdowns":     RecTD,
	"receiving40PlusYardTD":   RecTD40,
	"receiving50PlusYardTD":   RecTD50,
	"receiving2PtConversions": Rec2Pt,
	"fumbles":                 Fum,
	"lostFumbles":             FumLost,
	"fumbleRecoveredForTD":    FumRecTD,

	"madeFieldGoalsFromUnder40":      FGMade0To39,
	"attemptedFieldGoalsFromUnder40": FGAtt0To39,
	"madeFieldGoalsFrom40To49":       FGMade40To49,
	"attemptedFieldGoalsFrom40To49":  FGAtt40To49,
	"madeFieldGoalsFrom50To59":       FGMade50To59,
	"attemptedFieldGoalsFrom50To59":  FGAtt50To59,
	"madeFieldGoalsFrom60Plus":       FGMade60Plus,
	"attemptedFieldGoalsFrom60Plus":  FGAtt60Plus,
	"madeFieldGoals":                 FGMade,
	"attemptedFieldGoals":            FGAtt,
	"madeExtraPoints":                PATMade,
	"attemptedExtraPoints":           PATAtt,
	"missedExtraPoints":              PATMissed,

	"defensiveSacks":                    DefSack,
	"defensiveInterceptions":            DefInt,
	"defensiveFumbles":                  DefFumRec,
	"defensiveSafeties":                 DefSafety,
	"defensiveBlockedKicks":             DefBlkKick,
	"defensiveBlockedKickForTouchdowns": DefBlkKickTD,
	"defensiveTouchdowns":               DefTD,
	"defensiveForcedFumbles":            DefFF,
	"defensive2PtReturns":               Def2PtRet,
	"kickoffReturnTouchdowns":           KRTD,
	"puntReturnTouchdowns":              PRTD,
	"interceptionReturnTouchdowns":      IntRetTD,
	"fumbleReturnTouchdowns":            FumRetTD,
	"defensivePointsAllowed":            DefPointsAllowed,
	"defensiveYardsAllowed":             DefYardsAllowed,
}
