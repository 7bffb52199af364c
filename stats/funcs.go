// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/markotoplak/orange3-prototypes/data"
)

// vectorize runs a per-value aggregator over each of the given columns,
// skipping NaN values, and writes the final aggregate per column.
// Columns with no non-NaN values get NaN.
func vectorize(mx *data.Matrix, cols []int, out []float64, ini float64, fun func(val, agg float64) float64) {
	rows := mx.Rows()
	for k, j := range cols {
		cl := mx.Column(j)
		agg := ini
		n := 0
		for i := 0; i < rows; i++ {
			v := cl.Float(i)
			if math.IsNaN(v) {
				continue
			}
			agg = fun(v, agg)
			n++
		}
		if n == 0 {
			out[k] = math.NaN()
		} else {
			out[k] = agg
		}
	}
}

// NanMean computes the mean of the non-NaN values of each column.
func NanMean(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	for k, j := range cols {
		cl := mx.Column(j)
		sum, n := 0.0, 0
		for i := 0; i < rows; i++ {
			v := cl.Float(i)
			if math.IsNaN(v) {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			out[k] = math.NaN()
		} else {
			out[k] = sum / float64(n)
		}
	}
}

// NanVarPop computes the population variance (squared deviations from
// the mean, divided by n) of the non-NaN values of each column.
func NanVarPop(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	mean := make([]float64, len(cols))
	NanMean(mx, cols, mean)
	for k, j := range cols {
		cl := mx.Column(j)
		ssd, n := 0.0, 0
		for i := 0; i < rows; i++ {
			v := cl.Float(i)
			if math.IsNaN(v) {
				continue
			}
			dv := v - mean[k]
			ssd += dv * dv
			n++
		}
		if n == 0 {
			out[k] = math.NaN()
		} else {
			out[k] = ssd / float64(n)
		}
	}
}

// CoefVar computes the coefficient of variation of each column:
// sqrt(population variance) / mean, over non-NaN values.
// The division is plain IEEE arithmetic: a constant all-zero column
// yields 0/0 = NaN, a nonzero constant column yields 0, and a zero
// mean with nonzero variance yields ±Inf.
func CoefVar(mx *data.Matrix, cols []int, out []float64) {
	mean := make([]float64, len(cols))
	NanMean(mx, cols, mean)
	NanVarPop(mx, cols, out)
	for k := range out {
		out[k] = math.Sqrt(out[k]) / mean[k]
	}
}

// NanMin computes the minimum of the non-NaN values of each column.
func NanMin(mx *data.Matrix, cols []int, out []float64) {
	vectorize(mx, cols, out, math.Inf(1), math.Min)
}

// NanMax computes the maximum of the non-NaN values of each column.
func NanMax(mx *data.Matrix, cols []int, out []float64) {
	vectorize(mx, cols, out, math.Inf(-1), math.Max)
}

// CountNaN counts the NaN entries of each column.
func CountNaN(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	for k, j := range cols {
		cl := mx.Column(j)
		n := 0
		for i := 0; i < rows; i++ {
			if math.IsNaN(cl.Float(i)) {
				n++
			}
		}
		out[k] = float64(n)
	}
}

// CountEmpty counts the entries of each text column equal to the
// empty-string missing sentinel [data.StringUnknown].
func CountEmpty(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	for k, j := range cols {
		cl := mx.Column(j)
		n := 0
		for i := 0; i < rows; i++ {
			if cl.String(i) == data.StringUnknown {
				n++
			}
		}
		out[k] = float64(n)
	}
}

// bincount tallies the non-NaN encoded values of a categorical column.
// Negative encodings are skipped; fractional ones truncate to their bin.
func bincount(cl data.Column, rows int) []int {
	var counts []int
	for i := 0; i < rows; i++ {
		v := cl.Float(i)
		if math.IsNaN(v) || v < 0 {
			continue
		}
		b := int(v)
		for len(counts) <= b {
			counts = append(counts, 0)
		}
		counts[b]++
	}
	return counts
}

// Mode computes the most frequent encoded value of each categorical
// column, with ties broken by the lowest encoded value.
// An all-missing column yields NaN.
func Mode(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	for k, j := range cols {
		counts := bincount(mx.Column(j), rows)
		best, bestn := -1, 0
		for b, n := range counts {
			if n > bestn {
				best, bestn = b, n
			}
		}
		if best < 0 {
			out[k] = math.NaN()
		} else {
			out[k] = float64(best)
		}
	}
}

// Entropy computes the Shannon entropy, in nats (natural logarithm),
// of the empirical category distribution of each categorical column.
// Zero-probability categories are excluded from the sum; NaN values do
// not count toward the distribution. An all-missing column yields NaN.
func Entropy(mx *data.Matrix, cols []int, out []float64) {
	rows := mx.Rows()
	for k, j := range cols {
		counts := bincount(mx.Column(j), rows)
		total := 0
		for _, n := range counts {
			total += n
		}
		if total == 0 {
			out[k] = math.NaN()
			continue
		}
		ent := 0.0
		for _, n := range counts {
			if n == 0 {
				continue
			}
			p := float64(n) / float64(total)
			ent -= p * math.Log(p)
		}
		out[k] = ent
	}
}
