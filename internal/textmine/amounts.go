package textmine

import (
	"regexp"
	"strconv"
	"strings"
)

// Values outside this window are treated as noise: below it they are usually
// page numbers or per-unit prices, above it OCR garbage.
const (
	minPlausibleAmount = 1_000
	maxPlausibleAmount = 10_000_000_000
)

// AmountBreakdown explains which raw matches were found and what survived
// the plausibility filter.
type AmountBreakdown struct {
	RawMatches []string  `json:"raw_matches,omitempty"`
	Values     []float64 `json:"values,omitempty"`
	Discarded  int       `json:"discarded"`
}

var (
	// $1,234,567.89 and bare $250000
	reDollarPlain = regexp.MustCompile(`\$\s*([0-9]{1,3}(?:,[0-9]{3})+(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?)`)
	// $1.5M, $250K, $2B, $2.5 million
	reDollarSuffix = regexp.MustCompile(`\$\s*([0-9]+(?:\.[0-9]+)?)\s*(thousand|million|billion|[kmb])\b`)
	// 1.5 million dollars / 2 billion dollars
	reWordAmount = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(thousand|million|billion)\s+dollars`)
	// ceiling of $X / not to exceed $X — the amount itself is re-parsed by the
	// patterns above; this exists to keep the phrase in the breakdown.
	reCeiling = regexp.MustCompile(`(?:ceiling\s+of|not\s+to\s+exceed|maximum\s+value\s+of)\s+\$[0-9.,]+\s*[kmb]?`)
)

var suffixMultipliers = map[string]float64{
	"k": 1e3, "m": 1e6, "b": 1e9,
	"thousand": 1e3, "million": 1e6, "billion": 1e9,
}

// ExtractDollarAmounts finds every dollar-like figure in text, normalizes
// K/M/B suffixes, drops implausible values, and returns the min and max of
// what remains. Both are nil when nothing survives.
func ExtractDollarAmounts(text string) (min, max *float64, bd AmountBreakdown) {
	lower := strings.ToLower(text)

	var values []float64

	for _, m := range reDollarSuffix.FindAllStringSubmatch(lower, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		bd.RawMatches = append(bd.RawMatches, strings.TrimSpace(m[0]))
		values = append(values, v*suffixMultipliers[m[2]])
	}

	// Strip suffixed matches before applying the plain pattern so "$1.5M"
	// does not also parse as $1.5.
	stripped := reDollarSuffix.ReplaceAllString(lower, " ")
	for _, m := range reDollarPlain.FindAllStringSubmatch(stripped, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		bd.RawMatches = append(bd.RawMatches, strings.TrimSpace(m[0]))
		values = append(values, v)
	}

	// The word pattern also runs over the stripped text so "$1.5 million
	// dollars" is counted once, by the suffix pattern.
	for _, m := range reWordAmount.FindAllStringSubmatch(stripped, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		bd.RawMatches = append(bd.RawMatches, strings.TrimSpace(m[0]))
		values = append(values, v*suffixMultipliers[m[2]])
	}

	if phrase := reCeiling.FindString(lower); phrase != "" {
		bd.RawMatches = append(bd.RawMatches, strings.TrimSpace(phrase))
	}

	for _, v := range values {
		if v < minPlausibleAmount || v > maxPlausibleAmount {
			bd.Discarded++
			continue
		}
		bd.Values = append(bd.Values, v)
	}

	if len(bd.Values) == 0 {
		return nil, nil, bd
	}

	lo, hi := bd.Values[0], bd.Values[0]
	for _, v := range bd.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return &lo, &hi, bd
}
