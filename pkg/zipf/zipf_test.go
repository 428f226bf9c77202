package zipf

import (
	"errors"
	"math"
	"strings"
	"testing"

	"zipfstat/pkg/freqrank"
)

const eps = 1e-9

func fitTokens(t *testing.T, text string, topN int) *Fit {
	t.Helper()
	fit, err := Estimate(freqrank.Rank(strings.Fields(text), topN))
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	return fit
}

func TestEstimate_MeanConstant(t *testing.T) {
	// counts {кот:3, пес:2, мышь:1}, total 6:
	// C_mean = mean(3/6*1, 2/6*2, 1/6*3) = mean(0.5, 0.666.., 0.5)
	fit := fitTokens(t, "кот кот пес кот мышь пес", 10)

	want := (0.5 + 2.0/3.0 + 0.5) / 3.0
	if math.Abs(fit.CMean-want) > eps {
		t.Errorf("CMean = %v, want %v", fit.CMean, want)
	}
}

func TestEstimate_OptimalConstantClosedForm(t *testing.T) {
	fit := fitTokens(t, "кот кот пес кот мышь пес", 10)

	// C_opt = (Σ f_r/r) / (Σ 1/r²) over ranks 1..3
	num := 0.5/1 + (2.0/6.0)/2 + (1.0/6.0)/3
	den := 1.0 + 1.0/4 + 1.0/9
	want := num / den
	if math.Abs(fit.COpt-want) > eps {
		t.Errorf("COpt = %v, want %v", fit.COpt, want)
	}
}

func TestEstimate_OptimalConstantMinimizesSquaredError(t *testing.T) {
	fit := fitTokens(t, "a a a a b b b c c d e e e f g h", 0)

	sqErr := func(c float64) float64 {
		var s float64
		for i, f := range fit.Freqs {
			d := f - c/float64(i+1)
			s += d * d
		}
		return s
	}

	best := sqErr(fit.COpt)
	for _, delta := range []float64{-0.1, -0.01, -0.001, 0.001, 0.01, 0.1} {
		if got := sqErr(fit.COpt + delta); got < best-eps {
			t.Errorf("sqErr(COpt%+v) = %v < sqErr(COpt) = %v; COpt is not the minimum",
				delta, got, best)
		}
	}
}

func TestEstimate_TheoreticalIsCOptOverRank(t *testing.T) {
	fit := fitTokens(t, "кот кот пес кот мышь пес", 10)

	for i, th := range fit.Theoretical {
		want := fit.COpt / float64(i+1)
		if math.Abs(th-want) > eps {
			t.Errorf("Theoretical[%d] = %v, want %v", i, th, want)
		}
	}
}

func TestEstimate_MSE(t *testing.T) {
	fit := fitTokens(t, "кот кот пес кот мышь пес", 10)

	var want float64
	for i, f := range fit.Freqs {
		d := f - fit.Theoretical[i]
		want += d * d
	}
	want /= float64(len(fit.Freqs))

	if math.Abs(fit.MSE-want) > eps {
		t.Errorf("MSE = %v, want %v", fit.MSE, want)
	}
}

func TestEstimate_TruncationChangesEstimates(t *testing.T) {
	tokens := "a a a a a b b b b c c c d d e f g h i j"
	full := fitTokens(t, tokens, 0)
	head := fitTokens(t, tokens, 3)

	if math.Abs(full.COpt-head.COpt) < eps {
		t.Errorf("COpt unchanged by truncation: %v", full.COpt)
	}
	if math.Abs(full.CMean-head.CMean) < eps {
		t.Errorf("CMean unchanged by truncation: %v", full.CMean)
	}

	// Recomputing after a cutoff change must rederive the theoretical curve
	// from the new COpt, never reuse a stale one.
	for i := range head.Theoretical {
		want := head.COpt / float64(i+1)
		if math.Abs(head.Theoretical[i]-want) > eps {
			t.Errorf("truncated Theoretical[%d] = %v, want %v", i, head.Theoretical[i], want)
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	a := fitTokens(t, "кот кот пес кот мышь пес", 10)
	b := fitTokens(t, "кот кот пес кот мышь пес", 10)

	if a.CMean != b.CMean || a.COpt != b.COpt || a.MSE != b.MSE {
		t.Errorf("repeated runs differ: %+v vs %+v", a, b)
	}
}

func TestEstimate_EmptyTableFails(t *testing.T) {
	_, err := Estimate(freqrank.Rank(nil, 10))
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Estimate(empty) error = %v, want ErrInsufficientData", err)
	}
}
