// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes per-column summary statistics over
// [data.Matrix] columns, with NaN as the missing-value sentinel.
// All reducers skip missing values and yield NaN for all-missing
// columns instead of failing.
package stats

import (
	"github.com/markotoplak/orange3-prototypes/data"
)

// Stat is one of the five summary statistics computed per column.
type Stat int32

const (
	// Center is the central tendency: mode for categorical columns,
	// NaN-aware mean for numeric and time columns.
	Center Stat = iota

	// Dispersion is the spread: entropy of the category distribution
	// for categorical columns, coefficient of variation for numeric
	// and time columns.
	Dispersion

	// Min is the NaN-aware minimum.
	Min

	// Max is the NaN-aware maximum.
	Max

	// Missing is the missing-value count: NaN entries for numeric
	// kinds, empty-string entries for text columns.
	Missing

	// StatN is the number of statistics.
	StatN
)

func (st Stat) String() string {
	switch st {
	case Center:
		return "Center"
	case Dispersion:
		return "Dispersion"
	case Min:
		return "Min."
	case Max:
		return "Max."
	case Missing:
		return "Missing"
	}
	return "invalid"
}

// ColumnFunc computes one statistic for each of the given matrix
// columns, writing out[k] for cols[k]. Reducers are batched over an
// index list so that one call covers a whole (kind, group) partition;
// callers must not invoke a reducer with an empty column list.
type ColumnFunc func(mx *data.Matrix, cols []int, out []float64)

// Reducers maps each variable kind to its per-statistic reducer table.
// A nil entry means the statistic is undefined for that kind and the
// output stays NaN. The table is total over [data.VarKind], making the
// kind dispatch exhaustive.
var Reducers = map[data.VarKind][StatN]ColumnFunc{
	data.Categorical: {Center: Mode, Dispersion: Entropy, Min: NanMin, Max: NanMax, Missing: CountNaN},
	data.Numeric:     {Center: NanMean, Dispersion: CoefVar, Min: NanMin, Max: NanMax, Missing: CountNaN},
	data.Time:        {Center: NanMean, Dispersion: CoefVar, Min: NanMin, Max: NanMax, Missing: CountNaN},
	data.Text:        {Missing: CountEmpty},
}
