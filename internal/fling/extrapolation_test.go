// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"
)

func TestDecomposeQR(t *testing.T) {
	for _, tc := range []struct {
		label string
		m     *matrix
	}{
		{
			label: "square",
			m: &matrix{rows: 3, cols: 3, data: []float32{
				12, 6, -4,
				-51, 167, 24,
				4, -68, -41,
			}},
		},
		{
			label: "vandermonde",
			m: &matrix{rows: 3, cols: 4, data: []float32{
				1, 1, 1, 1,
				0, 1, 2, 3,
				0, 1, 4, 9,
			}},
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			q, rt, ok := decomposeQR(tc.m)
			if !ok {
				t.Fatal("decomposition failed")
			}
			if got := q.mul(rt.transpose()); !tc.m.approxEqual(got) {
				t.Errorf("Q*R = \n%v\nwant\n%v", got, tc.m)
			}
		})
	}
}

func TestPolyFit(t *testing.T) {
	for _, tc := range []struct {
		label string
		x, y  []float32
		want  coefficients
		ok    bool
	}{
		{"parabola", []float32{-1, 0, 1}, []float32{2, 0, 2}, coefficients{0, 0, 2}, true},
		{"line", []float32{0, 1, 2, 3}, []float32{1, 3, 5, 7}, coefficients{1, 2, 0}, true},
		{"too few", []float32{0, 1}, []float32{0, 1}, coefficients{}, false},
		{"degenerate", []float32{1, 1, 1}, []float32{0, 1, 2}, coefficients{}, false},
	} {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := polyFit(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && !got.approxEqual(tc.want) {
				t.Errorf("coefficients = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEstimateStale(t *testing.T) {
	var e Extrapolation
	e.Sample(0, 0)
	e.Sample(10*time.Millisecond, 10)
	e.Sample(20*time.Millisecond, 20)
	// A pause longer than the sample gap starts a new gesture.
	e.Sample(200*time.Millisecond, 20)
	if est := e.Estimate(); est.Velocity != 0 {
		t.Errorf("velocity after pause = %v, want 0", est.Velocity)
	}
}
