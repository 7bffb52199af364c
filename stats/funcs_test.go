// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markotoplak/orange3-prototypes/data"
)

func mustMatrix(t *testing.T, rows int, cols ...data.Column) *data.Matrix {
	t.Helper()
	mx, err := data.NewMatrix(rows, cols...)
	assert.NoError(t, err)
	return mx
}

func reduce(fn ColumnFunc, mx *data.Matrix, cols ...int) []float64 {
	out := make([]float64, len(cols))
	fn(mx, cols, out)
	return out
}

func TestNanMean(t *testing.T) {
	nan := math.NaN()
	mx := mustMatrix(t, 4,
		data.Float64Column{1, 2, 3, nan},
		data.Float64Column{nan, nan, nan, nan},
	)
	out := reduce(NanMean, mx, 0, 1)
	assert.Equal(t, 2.0, out[0])
	assert.True(t, math.IsNaN(out[1]))
}

func TestNanMinMax(t *testing.T) {
	nan := math.NaN()
	mx := mustMatrix(t, 4, data.Float64Column{3, nan, -1, 2})
	assert.Equal(t, -1.0, reduce(NanMin, mx, 0)[0])
	assert.Equal(t, 3.0, reduce(NanMax, mx, 0)[0])
}

func TestCountNaN(t *testing.T) {
	nan := math.NaN()
	mx := mustMatrix(t, 5,
		data.Float64Column{1, nan, 3, nan, 5},
		data.Float64Column{1, 2, 3, 4, 5},
	)
	out := reduce(CountNaN, mx, 0, 1)
	assert.Equal(t, []float64{2, 0}, out)
}

func TestCountEmpty(t *testing.T) {
	mx := mustMatrix(t, 4, data.StringColumn{"a", "", "b", ""})
	assert.Equal(t, 2.0, reduce(CountEmpty, mx, 0)[0])
}

func TestCoefVar(t *testing.T) {
	nan := math.NaN()
	mx := mustMatrix(t, 4,
		data.Float64Column{2, 4, 4, 6},     // mean 4, popvar 2
		data.Float64Column{5, 5, 5, nan},   // constant nonzero: 0/5 = 0
		data.Float64Column{0, 0, 0, 0},     // constant zero: 0/0 = NaN
		data.Float64Column{nan, nan, nan, nan},
		data.Float64Column{-1, 1, -1, 1},   // zero mean, nonzero var: +Inf
	)
	out := reduce(CoefVar, mx, 0, 1, 2, 3, 4)
	assert.InDelta(t, math.Sqrt(2)/4, out[0], 1e-12)
	assert.Equal(t, 0.0, out[1])
	assert.True(t, math.IsNaN(out[2]))
	assert.True(t, math.IsNaN(out[3]))
	assert.True(t, math.IsInf(out[4], 1))
}

func TestModeTiesLowest(t *testing.T) {
	nan := math.NaN()
	mx := mustMatrix(t, 5,
		data.Float64Column{2, 1, 2, 1, 0},  // tie between 1 and 2: lowest wins
		data.Float64Column{1, 1, 0, 2, nan}, // clear mode 1
		data.Float64Column{nan, nan, nan, nan, nan},
	)
	out := reduce(Mode, mx, 0, 1, 2)
	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 1.0, out[1])
	assert.True(t, math.IsNaN(out[2]))
}

func TestEntropy(t *testing.T) {
	nan := math.NaN()
	// Three categories with counts [1, 3, 1] over N=5:
	// -sum(p ln p) for p in {0.2, 0.6, 0.2}, in nats.
	mx := mustMatrix(t, 5,
		data.Float64Column{0, 1, 1, 1, 2},
		data.Float64Column{0, 0, 0, 0, 0}, // single category: entropy 0
		data.Float64Column{nan, nan, nan, nan, nan},
	)
	out := reduce(Entropy, mx, 0, 1, 2)
	want := -(0.2*math.Log(0.2) + 0.6*math.Log(0.6) + 0.2*math.Log(0.2))
	assert.InDelta(t, want, out[0], 1e-12)
	assert.InDelta(t, 0.95, out[0], 0.01)
	assert.Equal(t, 0.0, out[1])
	assert.True(t, math.IsNaN(out[2]))
}

func TestEntropySkipsZeroCountCategories(t *testing.T) {
	// Encoded value 2 present, 1 absent: the empty bin is excluded.
	mx := mustMatrix(t, 4, data.Float64Column{0, 0, 2, 2})
	out := reduce(Entropy, mx, 0)
	assert.InDelta(t, math.Log(2), out[0], 1e-12)
}

func TestReducersOnSparseColumns(t *testing.T) {
	nan := math.NaN()
	sp, err := data.NewSparseColumn(5, []int{1, 3}, []float64{4, nan})
	assert.NoError(t, err)
	dense := data.Float64Column{0, 4, 0, nan, 0}
	mx := mustMatrix(t, 5, sp, dense)

	for _, fn := range []ColumnFunc{NanMean, NanMin, NanMax, CountNaN, CoefVar} {
		out := reduce(fn, mx, 0, 1)
		if math.IsNaN(out[1]) {
			assert.True(t, math.IsNaN(out[0]))
		} else {
			assert.Equal(t, out[1], out[0])
		}
	}
}

func TestStatLabels(t *testing.T) {
	assert.Equal(t, "Center", Center.String())
	assert.Equal(t, "Dispersion", Dispersion.String())
	assert.Equal(t, "Min.", Min.String())
	assert.Equal(t, "Max.", Max.String())
	assert.Equal(t, "Missing", Missing.String())
}

func TestReducersTableTotal(t *testing.T) {
	for kind := data.VarKind(0); kind < data.KindN; kind++ {
		_, ok := Reducers[kind]
		assert.True(t, ok, "no reducer table for kind %v", kind)
	}
	// Missing is defined for every kind.
	for kind, tbl := range Reducers {
		assert.NotNil(t, tbl[Missing], "missing reducer for kind %v", kind)
	}
}
