package scoring

import "github.com/fedscout/fedscout/internal/textmine"

// ScoreClearance compares the clearance the solicitation demands against the
// company's facility clearance. SCI is a separate gate: a required SCI
// capability the company lacks zeroes the dimension no matter how high the
// held level is.
func ScoreClearance(required string, requiresSCI bool, held string, hasSCI bool) (int, ClearanceBreakdown) {
	bd := ClearanceBreakdown{
		RequiredLevel: required,
		HeldLevel:     held,
		RequiresSCI:   requiresSCI,
	}

	if required == "" {
		bd.Fit = ClearanceNotRequired
		return 100, bd
	}

	if requiresSCI && !hasSCI {
		bd.Fit = ClearanceSCIBlocked
		return 0, bd
	}

	heldRank := textmine.ClearanceRank(held)
	reqRank := textmine.ClearanceRank(required)

	switch {
	case heldRank == 0:
		bd.Fit = ClearanceUnmet
		return 0, bd
	case heldRank >= reqRank:
		bd.Fit = ClearanceMet
		return 100, bd
	case reqRank-heldRank == 1:
		bd.Fit = ClearanceOneShort
		return 30, bd
	default:
		bd.Fit = ClearanceUnmet
		return 0, bd
	}
}
