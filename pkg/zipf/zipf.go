// Package zipf fits the Zipf proportionality constant to a ranked frequency
// table. Two estimators are computed over the visible rank window: a simple
// mean of f_r*r, and the least-squares constant for f_r ≈ C/r. Truncating the
// window to the top N ranks deliberately changes both values; the estimators
// characterize the head of the distribution, not the full tail.
package zipf

import (
	"errors"

	"zipfstat/pkg/freqrank"
)

// ErrInsufficientData is returned when the rank window is empty, so no
// constant can be fitted without dividing by zero.
var ErrInsufficientData = errors.New("zipf: insufficient data to fit a constant")

// Fit holds the estimates for one rank window.
type Fit struct {
	CMean       float64   // mean of f_r * r over the window
	COpt        float64   // least-squares constant for f_r ≈ C/r
	MSE         float64   // mean squared error of f_r against COpt/r
	Freqs       []float64 // empirical relative frequency per rank
	Theoretical []float64 // COpt / r per rank
}

// Estimate fits both constants to the given table.
//
// The least-squares constant is the closed form
//
//	C_opt = (Σ f_r / r) / (Σ 1 / r²)
//
// which weights low ranks more heavily than the mean estimator and is more
// robust to the long flat tail of rare words. The theoretical frequency per
// rank is always COpt/r, derived here and never assigned independently.
func Estimate(table freqrank.Table) (*Fit, error) {
	if len(table.Entries) == 0 || table.Total == 0 {
		return nil, ErrInsufficientData
	}

	n := len(table.Entries)
	fit := &Fit{
		Freqs:       make([]float64, n),
		Theoretical: make([]float64, n),
	}

	var sumFR, sumFoverR, sumInvR2 float64
	for i, e := range table.Entries {
		r := float64(e.Rank)
		f := float64(e.Count) / float64(table.Total)
		fit.Freqs[i] = f

		sumFR += f * r
		sumFoverR += f / r
		sumInvR2 += 1 / (r * r)
	}

	fit.CMean = sumFR / float64(n)
	fit.COpt = sumFoverR / sumInvR2

	var sumSq float64
	for i, e := range table.Entries {
		th := fit.COpt / float64(e.Rank)
		fit.Theoretical[i] = th
		d := fit.Freqs[i] - th
		sumSq += d * d
	}
	fit.MSE = sumSq / float64(n)

	return fit, nil
}
