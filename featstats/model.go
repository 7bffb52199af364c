// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"github.com/markotoplak/orange3-prototypes/data"
	"github.com/markotoplak/orange3-prototypes/stats"
)

// Column is one of the fixed logical columns of the projection model.
type Column int32

const (
	// ColumnKind shows the variable kind.
	ColumnKind Column = iota

	// ColumnName shows the variable name.
	ColumnName

	// ColumnDistribution shows the per-column distribution summary.
	ColumnDistribution

	// ColumnCenter shows the central tendency statistic.
	ColumnCenter

	// ColumnDispersion shows the dispersion statistic.
	ColumnDispersion

	// ColumnMin shows the minimum statistic.
	ColumnMin

	// ColumnMax shows the maximum statistic.
	ColumnMax

	// ColumnMissing shows the missing-value count.
	ColumnMissing

	// ColumnN is the number of logical columns.
	ColumnN
)

// Label returns the column header label.
func (cn Column) Label() string {
	switch cn {
	case ColumnName:
		return "Name"
	case ColumnDistribution:
		return "Distribution"
	case ColumnCenter:
		return stats.Center.String()
	case ColumnDispersion:
		return stats.Dispersion.String()
	case ColumnMin:
		return stats.Min.String()
	case ColumnMax:
		return stats.Max.String()
	case ColumnMissing:
		return stats.Missing.String()
	}
	return ""
}

// Stat returns the statistic shown in this column,
// and false for the non-statistic columns.
func (cn Column) Stat() (stats.Stat, bool) {
	switch cn {
	case ColumnCenter:
		return stats.Center, true
	case ColumnDispersion:
		return stats.Dispersion, true
	case ColumnMin:
		return stats.Min, true
	case ColumnMax:
		return stats.Max, true
	case ColumnMissing:
		return stats.Missing, true
	}
	return 0, false
}

// Sort direction arguments, for self-documentation.
const (
	Ascending  = true
	Descending = false
)

// varLoc locates a visible variable's column within its group matrix.
type varLoc struct {
	role data.VarRole
	col  int
}

// Model is the sortable projection over per-variable statistics.
// Rows are the visible variables of the current dataset in canonical
// (attributes, class vars, metas) order; that position is the stable
// source row identity, independent of the current sort. Columns are
// the fixed [Column] set. All derived state is rebuilt in full by
// [Model.SetData]; there is no incremental update.
type Model struct {
	table  *data.Table
	hidden []data.VarKind
	format *Formatter

	vars     []*data.Variable // canonical visible ordering
	locs     []varLoc
	roles    []data.VarRole
	nameKeys []string // lowercase names, sort keys
	kindKeys []string // kind labels, sort keys
	rows     int      // instance count

	vectors [stats.StatN][]float64

	// indexes maps display row to source row; nil = sequential.
	// rindexes is the inverse, maintained alongside.
	indexes  []int
	rindexes []int

	sortColumn    Column
	sortAscending bool
	sorted        bool

	generation int
	colorVar   *data.Variable
	dists      map[int]*Distribution
}

// NewModel returns an empty model with the default hidden-kind policy
// and a deterministic English formatter.
func NewModel() *Model {
	md := &Model{
		hidden: DefaultHiddenKinds,
		format: NewFormatter(language.English),
	}
	md.Clear()
	return md
}

// SetHiddenKinds replaces the hidden-kind policy and rebuilds the
// model from the current dataset.
func (md *Model) SetHiddenKinds(kinds ...data.VarKind) {
	md.hidden = kinds
	md.SetData(md.table)
}

// SetFormatter replaces the cell formatter.
func (md *Model) SetFormatter(fm *Formatter) { md.format = fm }

// Formatter returns the current cell formatter.
func (md *Model) Formatter() *Formatter { return md.format }

// Table returns the current dataset, nil if cleared.
func (md *Model) Table() *data.Table { return md.table }

// SetData rebuilds all derived state from the given dataset:
// classifier partitions, the five statistics vectors, the sort
// permutation and the distribution cache. A nil table clears the model.
func (md *Model) SetData(dt *data.Table) {
	if dt == nil {
		md.Clear()
		return
	}
	md.table = dt
	md.rows = dt.NumRows()
	md.vars = md.vars[:0]
	md.locs = md.locs[:0]
	md.roles = md.roles[:0]
	for rl := data.VarRole(0); rl < data.RoleN; rl++ {
		gvars, _ := dt.Group(rl)
		for i, vr := range gvars {
			if slices.Contains(md.hidden, vr.Kind) {
				continue
			}
			md.vars = append(md.vars, vr)
			md.locs = append(md.locs, varLoc{role: rl, col: i})
			md.roles = append(md.roles, rl)
		}
	}
	md.nameKeys = make([]string, len(md.vars))
	md.kindKeys = make([]string, len(md.vars))
	for i, vr := range md.vars {
		md.nameKeys[i] = strings.ToLower(vr.Name)
		md.kindKeys[i] = vr.Kind.String()
	}
	md.compute()
	md.ResetSort()
	md.generation++
	md.dists = make(map[int]*Distribution)
}

// Clear resets all derived state to empty.
func (md *Model) Clear() {
	md.table = nil
	md.rows = 0
	md.vars = nil
	md.locs = nil
	md.roles = nil
	md.nameKeys = nil
	md.kindKeys = nil
	for st := range md.vectors {
		md.vectors[st] = nil
	}
	md.ResetSort()
	md.generation++
	md.dists = make(map[int]*Distribution)
}

// compute fills the five statistics vectors in canonical order.
// Matrices can be of mixed sparsity, so each group is reduced
// separately; within a group there is one reducer call per (kind,
// statistic) over the kind's column index list. Zero-width kind
// partitions are skipped without invoking the reducer.
func (md *Model) compute() {
	n := len(md.vars)
	for st := range md.vectors {
		vec := make([]float64, n)
		for i := range vec {
			vec[i] = math.NaN()
		}
		md.vectors[st] = vec
	}
	off := 0
	for rl := data.VarRole(0); rl < data.RoleN; rl++ {
		gvars, mx := md.table.Group(rl)
		vis, vmx := FilterHidden(gvars, mx, md.hidden)
		if len(vis) == 0 {
			continue
		}
		ki := PartitionKinds(vis)
		for kind, idx := range ki {
			if len(idx) == 0 {
				continue
			}
			reducers := stats.Reducers[data.VarKind(kind)]
			out := make([]float64, len(idx))
			for st := stats.Stat(0); st < stats.StatN; st++ {
				fn := reducers[st]
				if fn == nil {
					continue
				}
				fn(vmx, idx, out)
				for k, j := range idx {
					md.vectors[st][off+j] = out[k]
				}
			}
		}
		off += len(vis)
	}
}

// Rows returns the number of rows (visible variables).
func (md *Model) Rows() int { return len(md.vars) }

// Columns returns the number of logical columns.
func (md *Model) Columns() int { return int(ColumnN) }

// NumInstances returns the instance count of the current dataset.
func (md *Model) NumInstances() int { return md.rows }

// IsValidRow returns an error if the given row index is out of range.
// Display row indexes are recomputed on every sort, so stale indexes
// from a prior dataset must not silently alias a different column.
func (md *Model) IsValidRow(row int) error {
	if row < 0 || row >= len(md.vars) {
		return fmt.Errorf("featstats.Model: row %d is out of valid range [0..%d]", row, len(md.vars)-1)
	}
	return nil
}

// Variables returns the visible variables in canonical order.
// The returned slice must not be modified.
func (md *Model) Variables() []*data.Variable { return md.vars }

// Variable returns the variable at the given source row.
func (md *Model) Variable(sourceRow int) (*data.Variable, error) {
	if err := md.IsValidRow(sourceRow); err != nil {
		return nil, err
	}
	return md.vars[sourceRow], nil
}

// Role returns the group the variable at the given source row belongs
// to, an O(1) lookup used for row background coloring.
func (md *Model) Role(sourceRow int) (data.VarRole, error) {
	if err := md.IsValidRow(sourceRow); err != nil {
		return 0, err
	}
	return md.roles[sourceRow], nil
}

// StatVector returns the statistic vector aligned with the canonical
// variable ordering. Always len = [Model.Rows] after a (re)compute.
// The returned slice must not be modified.
func (md *Model) StatVector(st stats.Stat) []float64 { return md.vectors[st] }

// Float returns the raw statistic value at the given source row.
func (md *Model) Float(sourceRow int, st stats.Stat) (float64, error) {
	if err := md.IsValidRow(sourceRow); err != nil {
		return math.NaN(), err
	}
	return md.vectors[st][sourceRow], nil
}

// SourceRow maps a display row to its source row under the current
// sort: the index into the canonical variable ordering.
func (md *Model) SourceRow(displayRow int) (int, error) {
	if err := md.IsValidRow(displayRow); err != nil {
		return 0, err
	}
	if md.indexes == nil {
		return displayRow, nil
	}
	return md.indexes[displayRow], nil
}

// DisplayRow maps a source row to its position under the current sort.
// It is the exact inverse of [Model.SourceRow] for every valid row.
func (md *Model) DisplayRow(sourceRow int) (int, error) {
	if err := md.IsValidRow(sourceRow); err != nil {
		return 0, err
	}
	if md.rindexes == nil {
		return sourceRow, nil
	}
	return md.rindexes[sourceRow], nil
}

// ResetSort restores the sequential (canonical) display order.
func (md *Model) ResetSort() {
	md.indexes = nil
	md.rindexes = nil
	md.sorted = false
	md.sortColumn = 0
	md.sortAscending = Ascending
}

// SortColumn returns the current sort column and direction;
// ok is false when the model is unsorted.
func (md *Model) SortColumn() (cn Column, ascending, ok bool) {
	return md.sortColumn, md.sortAscending, md.sorted
}

// indexesNeeded instantiates the display permutation if still
// sequential.
func (md *Model) indexesNeeded() {
	if md.indexes != nil {
		return
	}
	md.indexes = make([]int, len(md.vars))
	for i := range md.indexes {
		md.indexes[i] = i
	}
}

// compareFloats orders a before b under the given direction,
// with NaN always ordered last in both directions.
func compareFloats(a, b float64, ascending bool) int {
	anan, bnan := math.IsNaN(a), math.IsNaN(b)
	switch {
	case anan && bnan:
		return 0
	case anan:
		return 1
	case bnan:
		return -1
	case a == b:
		return 0
	case (a < b) == ascending:
		return -1
	}
	return 1
}

// compareStrings orders a before b under the given direction.
func compareStrings(a, b string, ascending bool) int {
	v := strings.Compare(a, b)
	if !ascending {
		v = -v
	}
	return v
}

// Sort reorders the display rows by the given column. The sort is
// stable: rows with equal keys keep their relative source order, in
// both directions. Rows whose key is NaN always sort last, ascending
// or descending. Statistic columns sort by the raw (unformatted)
// vectors; Name and Distribution by the lowercase variable name;
// Kind by the kind label.
func (md *Model) Sort(column Column, ascending bool) error {
	if column < 0 || column >= ColumnN {
		return fmt.Errorf("featstats.Model.Sort: column %d is out of valid range [0..%d]", column, ColumnN-1)
	}
	md.indexesNeeded()
	if st, ok := column.Stat(); ok {
		vec := md.vectors[st]
		slices.SortStableFunc(md.indexes, func(a, b int) int {
			return compareFloats(vec[a], vec[b], ascending)
		})
	} else {
		keys := md.nameKeys
		if column == ColumnKind {
			keys = md.kindKeys
		}
		slices.SortStableFunc(md.indexes, func(a, b int) int {
			return compareStrings(keys[a], keys[b], ascending)
		})
	}
	md.rindexes = invert(md.indexes, md.rindexes)
	md.sortColumn = column
	md.sortAscending = ascending
	md.sorted = true
	return nil
}

// invert writes the inverse permutation of perm into inv, reusing it
// when already allocated.
func invert(perm, inv []int) []int {
	if cap(inv) < len(perm) {
		inv = make([]int, len(perm))
	}
	inv = inv[:len(perm)]
	for d, s := range perm {
		inv[s] = d
	}
	return inv
}

// Value returns the formatted cell value at the given display row and
// column. The categorical center renders as its category label; the
// categorical min and max render as labels only when the variable is
// ordered, and as empty strings otherwise.
func (md *Model) Value(displayRow int, column Column) (string, error) {
	src, err := md.SourceRow(displayRow)
	if err != nil {
		return "", err
	}
	if column < 0 || column >= ColumnN {
		return "", fmt.Errorf("featstats.Model.Value: column %d is out of valid range [0..%d]", column, ColumnN-1)
	}
	vr := md.vars[src]
	switch column {
	case ColumnKind:
		return vr.Kind.String(), nil
	case ColumnName:
		return vr.Name, nil
	case ColumnDistribution:
		return "", nil
	case ColumnCenter:
		v := md.vectors[stats.Center][src]
		if vr.Kind == data.Categorical && !math.IsNaN(v) {
			return vr.StrVal(v), nil
		}
		return md.format.Float(v), nil
	case ColumnMin, ColumnMax:
		st, _ := column.Stat()
		v := md.vectors[st][src]
		if vr.Kind == data.Categorical {
			if !vr.Ordered {
				return "", nil
			}
			if !math.IsNaN(v) {
				return vr.StrVal(v), nil
			}
		}
		return md.format.Float(v), nil
	case ColumnMissing:
		return md.format.Missing(md.vectors[stats.Missing][src], md.rows), nil
	}
	return md.format.Float(md.vectors[stats.Dispersion][src]), nil
}
