// Package textmine extracts clearance levels, dollar amounts, and keywords
// from solicitation free text. Everything here is heuristic and best-effort:
// extraction never fails, it degrades to "nothing found" and reports how it
// got there in a breakdown struct.
package textmine

import (
	"regexp"
	"strings"
)

// Clearance levels, highest first. The string values are what gets stored on
// profiles and shown to users.
const (
	ClearanceTSSCI        = "TS/SCI"
	ClearanceTopSecret    = "Top Secret"
	ClearanceSecret       = "Secret"
	ClearanceConfidential = "Confidential"
	ClearancePublicTrust  = "Public Trust"
)

// ClearanceBreakdown explains which tier matched and on which pattern.
type ClearanceBreakdown struct {
	Detected       string `json:"detected,omitempty"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
	TiersChecked   int    `json:"tiers_checked"`
}

type clearanceTier struct {
	level    string
	patterns []*regexp.Regexp
}

// Ordered highest to lowest. The first tier with any pattern present anywhere
// in the text wins, so "TS/SCI preferred, Secret acceptable" reports TS/SCI.
var clearanceTiers = []clearanceTier{
	{ClearanceTSSCI, compileAll(
		`ts/sci`, `ts-sci`, `top\s+secret\s*/\s*sci`, `top\s+secret\s+sci`, `sci\s+clearance`, `sci\s+access`,
	)},
	{ClearanceTopSecret, compileAll(
		`top\s+secret`, `\bts\s+clearance`,
	)},
	{ClearanceSecret, compileAll(
		`\bsecret\s+clearance`, `\bsecret\s+level`, `cleared\s+at\s+the\s+secret`, `\bsecret\s+(?:is\s+)?required`,
	)},
	{ClearanceConfidential, compileAll(
		`confidential\s+clearance`, `confidential\s+level`,
	)},
	{ClearancePublicTrust, compileAll(
		`public\s+trust`, `position\s+of\s+trust`, `suitability\s+determination`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// ExtractClearance returns the highest clearance tier named in text.
// ok is false when no tier matches; level is "" in that case.
func ExtractClearance(text string) (level string, ok bool, bd ClearanceBreakdown) {
	lower := strings.ToLower(text)
	for i, tier := range clearanceTiers {
		for _, p := range tier.patterns {
			if loc := p.FindString(lower); loc != "" {
				bd.Detected = tier.level
				bd.MatchedPattern = loc
				bd.TiersChecked = i + 1
				return tier.level, true, bd
			}
		}
	}
	bd.TiersChecked = len(clearanceTiers)
	return "", false, bd
}

// clearanceRanks orders levels for the clearance scorer; higher rank
// dominates. Unknown strings rank 0 (no clearance).
var clearanceRanks = map[string]int{
	ClearancePublicTrust:  1,
	ClearanceConfidential: 2,
	ClearanceSecret:       3,
	ClearanceTopSecret:    4,
	ClearanceTSSCI:        5,
}

// ClearanceRank maps a level string to its ordinal position. Empty or
// unrecognized levels rank 0.
func ClearanceRank(level string) int { return clearanceRanks[level] }

// RequiresSCI reports whether text demands SCI access specifically.
func RequiresSCI(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "sci") &&
		(strings.Contains(lower, "ts/sci") || strings.Contains(lower, "ts-sci") ||
			strings.Contains(lower, "sci clearance") || strings.Contains(lower, "sci access") ||
			strings.Contains(lower, "secret/sci") || strings.Contains(lower, "secret sci"))
}
