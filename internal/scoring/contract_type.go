package scoring

import (
	"strings"

	"github.com/fedscout/fedscout/internal/models"
)

const (
	TypeFirmFixedPrice = "FFP"
	TypeTimeMaterials  = "T&M"
	TypeCostPlus       = "COST_PLUS"
	TypeIDIQ           = "IDIQ"
)

// normalizeContractType folds the feed's contract-type strings into the four
// vehicles the profile carries preferences for.
func normalizeContractType(raw string) (string, bool) {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "idiq") || strings.Contains(s, "indefinite"):
		return TypeIDIQ, true
	case strings.Contains(s, "ffp") || (strings.Contains(s, "firm") && strings.Contains(s, "fixed")) || strings.Contains(s, "fixed price") || strings.Contains(s, "fixed-price"):
		return TypeFirmFixedPrice, true
	case strings.Contains(s, "t&m") || strings.Contains(s, "time and material") || strings.Contains(s, "time-and-material") || strings.Contains(s, "time & material"):
		return TypeTimeMaterials, true
	case strings.Contains(s, "cost plus") || strings.Contains(s, "cost-plus") || strings.Contains(s, "cost reimburs") || strings.Contains(s, "cpff") || strings.Contains(s, "cpaf") || strings.Contains(s, "cpif"):
		return TypeCostPlus, true
	}
	return "", false
}

// ScoreContractType rescales the 1-5 preference for the detected vehicle to
// 0-100. An unrecognized vehicle scores a mildly positive 60 rather than
// penalizing the opportunity for a sparse feed record.
func ScoreContractType(contractType string, p *models.CompanyProfile) (int, ContractTypeBreakdown) {
	bd := ContractTypeBreakdown{DetectedType: contractType}

	normalized, ok := normalizeContractType(contractType)
	if !ok {
		return 60, bd
	}
	bd.NormalizedType = normalized
	bd.Recognized = true

	var pref int
	switch normalized {
	case TypeFirmFixedPrice:
		pref = p.PrefFirmFixedPrice
	case TypeTimeMaterials:
		pref = p.PrefTimeMaterials
	case TypeCostPlus:
		pref = p.PrefCostPlus
	case TypeIDIQ:
		pref = p.PrefIDIQ
	}
	if pref < 1 {
		pref = 1
	}
	if pref > 5 {
		pref = 5
	}
	bd.Preference = pref

	return (pref - 1) * 25, bd
}
