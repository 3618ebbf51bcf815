package scoring

import (
	"math"
	"time"
)

// ScoreTimeline rates how much runway remains before the response deadline
// relative to the days the company needs to put a proposal together.
//
//	d >= 2m        -> 100
//	m <= d < 2m    -> 70..100 (exactly 70 at d == m)
//	d < m, rushable -> 30..70
//	d < m, no rush  -> 0..30
//	deadline passed -> 0
//	no deadline     -> 50
func ScoreTimeline(deadline *time.Time, now time.Time, minDays int, canRush bool) (int, TimelineBreakdown) {
	bd := TimelineBreakdown{MinDaysNeeded: minDays, CanRush: canRush}

	if deadline == nil {
		bd.Fit = TimelineNoDeadline
		return 50, bd
	}

	remaining := deadline.Sub(now)
	if remaining < 0 {
		bd.Fit = TimelinePassed
		bd.DaysRemaining = 0
		return 0, bd
	}

	d := int(remaining.Hours() / 24)
	bd.DaysRemaining = d

	m := minDays
	if m <= 0 {
		// No minimum configured: any future deadline is ample.
		bd.Fit = TimelineAmple
		return 100, bd
	}

	switch {
	case d >= 2*m:
		bd.Fit = TimelineAmple
		return 100, bd
	case d >= m:
		bd.Fit = TimelineAdequate
		return 70 + int(math.Round(30*float64(d-m)/float64(m))), bd
	case canRush:
		bd.Fit = TimelineRushable
		return 30 + int(math.Round(40*float64(d)/float64(m))), bd
	default:
		bd.Fit = TimelineInsufficient
		return int(math.Round(30 * float64(d) / float64(m))), bd
	}
}
