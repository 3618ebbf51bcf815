package scoring

import (
	"math"

	"github.com/fedscout/fedscout/internal/models"
	"github.com/fedscout/fedscout/internal/textmine"
)

const (
	naicsWeight   = 0.7
	keywordWeight = 0.3
)

var naicsTierScores = map[NAICSMatchTier]int{
	NAICSExactPrimary: 100,
	NAICSExact:        90,
	NAICSSameGroup:    70,
	NAICSSameSector:   40,
	NAICSNoMatch:      10,
}

// matchNAICS finds the best tier any of the company's codes reaches against
// the opportunity's code. Tiers are strictly ordered, so an exact match on a
// secondary code beats a group match on the primary.
func matchNAICS(oppCode string, held []models.CompanyNAICS) (NAICSMatchTier, string) {
	if oppCode == "" || len(held) == 0 {
		return NAICSNoMatch, ""
	}

	bestTier := NAICSNoMatch
	bestCode := ""
	better := func(t NAICSMatchTier, code string) {
		if naicsTierScores[t] > naicsTierScores[bestTier] {
			bestTier, bestCode = t, code
		}
	}

	for _, n := range held {
		switch {
		case n.Code == oppCode && n.IsPrimary:
			better(NAICSExactPrimary, n.Code)
		case n.Code == oppCode:
			better(NAICSExact, n.Code)
		case len(n.Code) >= 4 && len(oppCode) >= 4 && n.Code[:4] == oppCode[:4]:
			better(NAICSSameGroup, n.Code)
		case len(n.Code) >= 2 && len(oppCode) >= 2 && n.Code[:2] == oppCode[:2]:
			better(NAICSSameSector, n.Code)
		}
	}
	return bestTier, bestCode
}

// ScoreCapability blends NAICS proximity (70%) with keyword overlap between
// the opportunity text and the company's capability statement (30%).
// Overlapping technical terms earn a bonus on the keyword part.
func ScoreCapability(oppNAICS string, held []models.CompanyNAICS, oppKeywords, capKeywords []string) (int, CapabilityBreakdown) {
	tier, matched := matchNAICS(oppNAICS, held)
	naicsScore := naicsTierScores[tier]

	bd := CapabilityBreakdown{
		NAICSTier:        tier,
		NAICSScore:       naicsScore,
		OpportunityNAICS: oppNAICS,
		MatchedNAICS:     matched,
	}

	keywordScore := 50 // neutral when either side has nothing to compare
	if len(oppKeywords) > 0 && len(capKeywords) > 0 {
		capSet := make(map[string]struct{}, len(capKeywords))
		for _, k := range capKeywords {
			capSet[k] = struct{}{}
		}

		technical := 0
		for _, k := range oppKeywords {
			if _, ok := capSet[k]; !ok {
				continue
			}
			bd.KeywordMatches = append(bd.KeywordMatches, k)
			if textmine.IsTechnicalTerm(k) {
				technical++
				bd.TechnicalMatches = append(bd.TechnicalMatches, k)
			}
		}

		ratio := float64(len(bd.KeywordMatches)) / float64(len(oppKeywords))
		bonus := technical * 10
		if bonus > 30 {
			bonus = 30
		}
		keywordScore = clamp(int(math.Round(ratio*100)) + bonus)
	}
	bd.KeywordScore = keywordScore

	score := int(math.Round(naicsWeight*float64(naicsScore) + keywordWeight*float64(keywordScore)))
	return clamp(score), bd
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
