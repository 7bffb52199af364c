// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"math"

	"github.com/markotoplak/orange3-prototypes/data"
	"github.com/markotoplak/orange3-prototypes/stats"
)

// DefaultBins is the number of equal-width bins used for numeric and
// time column distributions.
const DefaultBins = 10

// Distribution is the per-column summary rendered in the Distribution
// column: category counts for categorical columns, equal-width bin
// counts for numeric and time columns. When a color variable is set,
// Split holds one count row per color category, aligned with Counts.
type Distribution struct {
	// Labels are the category labels, categorical columns only.
	Labels []string

	// Edges are the bin left edges plus the final right edge,
	// numeric and time columns only.
	Edges []float64

	// Counts are the per-bin (or per-category) non-missing counts.
	Counts []int

	// Split are the per-color-category bin counts, present only when
	// a categorical color variable is set.
	Split [][]int

	generation int
}

// SetColorVariable sets the color/overlay variable. It has no effect
// on the computed statistics; it only invalidates the distribution
// cache, which is keyed by the model generation.
func (md *Model) SetColorVariable(vr *data.Variable) {
	if md.colorVar == vr {
		return
	}
	md.colorVar = vr
	md.generation++
}

// ColorVariable returns the current color/overlay variable.
func (md *Model) ColorVariable() *data.Variable { return md.colorVar }

// Distribution returns the distribution summary for the variable at
// the given source row, computing it on first read and caching it by
// source row identity, which is display-order independent. Entries
// from an earlier generation (a prior dataset or color variable) are
// recomputed rather than served stale.
func (md *Model) Distribution(sourceRow int) (*Distribution, error) {
	if err := md.IsValidRow(sourceRow); err != nil {
		return nil, err
	}
	if ds, ok := md.dists[sourceRow]; ok && ds.generation == md.generation {
		return ds, nil
	}
	ds := md.computeDistribution(sourceRow)
	ds.generation = md.generation
	md.dists[sourceRow] = ds
	return ds, nil
}

func (md *Model) computeDistribution(sourceRow int) *Distribution {
	vr := md.vars[sourceRow]
	loc := md.locs[sourceRow]
	_, mx := md.table.Group(loc.role)
	cl := mx.Column(loc.col)

	var color data.Column
	nsplit := 0
	if md.colorVar != nil && md.colorVar.Kind == data.Categorical {
		if ccl, err := md.table.Column(md.colorVar); err == nil {
			color = ccl
			nsplit = len(md.colorVar.Values)
		}
	}

	ds := &Distribution{}
	bin := func(v float64) int { return -1 }
	switch vr.Kind {
	case data.Categorical:
		ds.Labels = vr.Values
		ds.Counts = make([]int, len(vr.Values))
		bin = func(v float64) int {
			b := int(v)
			if b < 0 || b >= len(ds.Counts) {
				return -1
			}
			return b
		}
	case data.Numeric, data.Time:
		lo := md.vectors[stats.Min][sourceRow]
		hi := md.vectors[stats.Max][sourceRow]
		if math.IsNaN(lo) || math.IsNaN(hi) {
			return ds
		}
		n := DefaultBins
		if hi == lo {
			n = 1
		}
		ds.Counts = make([]int, n)
		ds.Edges = make([]float64, n+1)
		width := (hi - lo) / float64(n)
		for b := 0; b <= n; b++ {
			ds.Edges[b] = lo + float64(b)*width
		}
		bin = func(v float64) int {
			if v < lo || v > hi {
				return -1
			}
			b := 0
			if width > 0 {
				b = int((v - lo) / width)
			}
			if b >= n { // max value belongs in the last bin
				b = n - 1
			}
			return b
		}
	default:
		return ds
	}

	if nsplit > 0 {
		ds.Split = make([][]int, nsplit)
		for k := range ds.Split {
			ds.Split[k] = make([]int, len(ds.Counts))
		}
	}
	for i := 0; i < md.rows; i++ {
		v := cl.Float(i)
		if math.IsNaN(v) {
			continue
		}
		b := bin(v)
		if b < 0 {
			continue
		}
		ds.Counts[b]++
		if color != nil {
			c := color.Float(i)
			if k := int(c); !math.IsNaN(c) && k >= 0 && k < nsplit {
				ds.Split[k][b]++
			}
		}
	}
	return ds
}
