package task

import "math"

// Statistics locates one score within the calibration sample distribution.
type Statistics struct {
	// Percentile is the fraction of sampled scores at or below this score.
	Percentile float64
	// Ranking orders this score against the sample, 1 being the highest.
	Ranking int
	// PercentOfMax is the score relative to the best sampled score.
	PercentOfMax float64
	// NormalizedScore is the score divided by the sample mean.
	NormalizedScore float64
	// RankNormalizedScore is the inverse normal CDF of the rank percentile,
	// a z-score for how far above the random baseline this answer landed.
	RankNormalizedScore float64
}

// Statistics computes where a score falls within the stored calibration
// sample. With no calibration data it returns the neutral baseline the
// original reporting used (percentile 0, rank 1, full percent-of-max).
func (p *DinnerParty) Statistics(score float64) Statistics {
	if len(p.storedScores) == 0 {
		return Statistics{Ranking: 1, PercentOfMax: 1.0}
	}

	atOrBelow := 0
	above := 0
	sum := 0.0
	maxScore := p.storedScores[0]
	for _, s := range p.storedScores {
		if s <= score {
			atOrBelow++
		}
		if s > score {
			above++
		}
		sum += s
	}

	n := len(p.storedScores)
	stats := Statistics{
		Percentile: float64(atOrBelow) / float64(n),
		Ranking:    above + 1,
	}

	if maxScore > 0 {
		stats.PercentOfMax = score / maxScore
	} else {
		stats.PercentOfMax = 1.0
	}

	if mean := sum / float64(n); mean != 0 {
		stats.NormalizedScore = score / mean
	}

	// Midpoint rank percentile, clamped so the probit stays finite even for
	// scores outside the sampled range (rank 1 above everything, rank n+1
	// below everything).
	rankPercentile := 1.0 - (float64(stats.Ranking)-0.5)/float64(n)
	lo, hi := 0.5/float64(n), 1.0-0.5/float64(n)
	if rankPercentile < lo {
		rankPercentile = lo
	}
	if rankPercentile > hi {
		rankPercentile = hi
	}
	stats.RankNormalizedScore = probit(rankPercentile)

	return stats
}

// probit is the inverse CDF of the standard normal distribution.
func probit(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
