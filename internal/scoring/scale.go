package scoring

import "math"

// ScoreScale compares the estimated contract value against the company's
// preferred [min, max] range. The two defaults differ on purpose: a missing
// user preference assumes fit (70), missing data stays neutral (50).
func ScoreScale(estimated, prefMin, prefMax *float64) (int, ScaleBreakdown) {
	bd := ScaleBreakdown{
		EstimatedValue: estimated,
		PreferredMin:   prefMin,
		PreferredMax:   prefMax,
	}

	if prefMin == nil && prefMax == nil {
		bd.Fit = ScaleNoPreference
		return 70, bd
	}
	if estimated == nil {
		bd.Fit = ScaleNoEstimate
		return 50, bd
	}

	v := *estimated

	if prefMax != nil && v > *prefMax {
		bd.Fit = ScaleAboveMax
		// Linear falloff from 100 at 1x the max down to the floor at 5x.
		ratio := v / *prefMax
		if ratio > 5 {
			ratio = 5
		}
		return int(math.Round(100 - 70*(ratio-1)/4)), bd
	}

	if prefMin != nil && v < *prefMin {
		bd.Fit = ScaleBelowMin
		// Falloff from 100 just under the min down to the floor at 10% of it.
		ratio := v / *prefMin
		if ratio < 0.1 {
			ratio = 0.1
		}
		return int(math.Round(100 - 80*(1-ratio)/0.9)), bd
	}

	bd.Fit = ScaleInRange
	return 100, bd
}
