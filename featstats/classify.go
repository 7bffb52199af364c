// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package featstats implements the feature statistics model: per-column
// summary statistics over a dataset with heterogeneous column kinds,
// exposed through a sortable tabular projection with stable source-row
// identity, plus the selection projector that re-slices the dataset and
// emits a labeled statistics table.
package featstats

import (
	"slices"

	"github.com/markotoplak/orange3-prototypes/data"
)

// KindIndexes partitions an ordered variable sequence into per-kind
// column index lists. A column is Numeric only if its kind is Numeric;
// Time columns are numerically represented but listed separately,
// as they use their own reducer family.
type KindIndexes [data.KindN][]int

// PartitionKinds returns the per-kind column index lists for vars.
func PartitionKinds(vars []*data.Variable) KindIndexes {
	var ki KindIndexes
	for i, vr := range vars {
		ki[vr.Kind] = append(ki[vr.Kind], i)
	}
	return ki
}

// DefaultHiddenKinds are the variable kinds excluded from the visible
// canonical ordering by default. Hidden means not displayed: hidden
// columns remain part of the underlying dataset.
var DefaultHiddenKinds = []data.VarKind{data.Text, data.Time}

// FilterHidden returns the variables and matrix with hidden-kind
// columns removed, sharing the underlying column data.
func FilterHidden(vars []*data.Variable, mx *data.Matrix, hidden []data.VarKind) ([]*data.Variable, *data.Matrix) {
	keep := make([]int, 0, len(vars))
	kept := make([]*data.Variable, 0, len(vars))
	for i, vr := range vars {
		if slices.Contains(hidden, vr.Kind) {
			continue
		}
		keep = append(keep, i)
		kept = append(kept, vr)
	}
	return kept, mx.Select(keep)
}
