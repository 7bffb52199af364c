// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markotoplak/orange3-prototypes/data"
)

// newOtherTable builds a small dataset whose domain differs from
// [newMixedTable] in every variable.
func newOtherTable(t *testing.T) *data.Table {
	t.Helper()
	domain, err := data.NewDomain(
		[]*data.Variable{data.NewNumeric("width"), data.NewNumeric("height")},
		nil, nil,
	)
	assert.NoError(t, err)
	x, err := data.NewMatrix(3,
		data.Float64Column{1, 2, 3},
		data.Float64Column{4, 5, 6},
	)
	assert.NoError(t, err)
	dt, err := data.NewTable("other", domain, x, nil, nil)
	assert.NoError(t, err)
	return dt
}

func TestWidgetSelectionSurvivesDomainSwap(t *testing.T) {
	a := newMixedTable(t)
	b := newOtherTable(t)

	wd := NewWidget()
	assert.NoError(t, wd.SetData(a))
	assert.NoError(t, wd.Select([]int{0, 2}))
	assert.Equal(t, []int{0, 2}, wd.Selected())

	// Replacing the data clears the selection.
	assert.NoError(t, wd.SetData(b))
	assert.Empty(t, wd.Selected())

	// Swapping back to a dataset with the remembered domain restores it.
	assert.NoError(t, wd.SetData(a))
	assert.Equal(t, []int{0, 2}, wd.Selected())
}

func TestWidgetSortingSurvivesDomainSwap(t *testing.T) {
	a := newMixedTable(t)
	b := newOtherTable(t)

	wd := NewWidget()
	assert.NoError(t, wd.SetData(a))
	assert.NoError(t, wd.Sort(ColumnMissing, Ascending))

	assert.NoError(t, wd.SetData(b))
	_, _, ok := wd.Model().SortColumn()
	assert.False(t, ok)

	assert.NoError(t, wd.SetData(a))
	cn, asc, ok := wd.Model().SortColumn()
	assert.True(t, ok)
	assert.Equal(t, ColumnMissing, cn)
	assert.True(t, asc)
	src, err := wd.Model().SourceRow(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, src)
}

func TestWidgetDropsStaleRememberedRows(t *testing.T) {
	a := newMixedTable(t)
	wd := NewWidget()
	// Remembered selections can outlive the rows they point at, for
	// example when hidden kinds change between visits.
	wd.contexts[a.Domain.Fingerprint()] = &context{selected: []int{1, 99}}
	assert.NoError(t, wd.SetData(a))
	assert.Equal(t, []int{1}, wd.Selected())
}

func TestWidgetAutoCommit(t *testing.T) {
	var reduced, summary *data.Table
	commits := 0

	wd := NewWidget()
	wd.OnOutputs(func(r, s *data.Table) {
		reduced, summary = r, s
		commits++
	})

	assert.NoError(t, wd.SetData(newMixedTable(t)))
	assert.Equal(t, 1, commits)
	assert.Nil(t, reduced)
	assert.Nil(t, summary)

	assert.NoError(t, wd.Select([]int{1, 3}))
	assert.Equal(t, 2, commits)
	assert.NotNil(t, reduced)
	assert.NotNil(t, summary)
	assert.Equal(t, 2, summary.NumRows())

	assert.NoError(t, wd.Select(nil))
	assert.Equal(t, 3, commits)
	assert.Nil(t, reduced)
	assert.Nil(t, summary)
}

func TestWidgetManualCommit(t *testing.T) {
	commits := 0
	wd := NewWidget()
	wd.AutoCommit = false
	wd.OnOutputs(func(r, s *data.Table) { commits++ })

	assert.NoError(t, wd.SetData(newMixedTable(t)))
	assert.NoError(t, wd.Select([]int{0}))
	assert.Equal(t, 0, commits)

	assert.NoError(t, wd.Commit())
	assert.Equal(t, 1, commits)
}

func TestWidgetSelectDisplayRows(t *testing.T) {
	wd := NewWidget()
	assert.NoError(t, wd.SetData(newMixedTable(t)))
	// Missing ascending orders source rows as [1, 2, 4, 0, 3].
	assert.NoError(t, wd.Sort(ColumnMissing, Ascending))
	assert.NoError(t, wd.SelectDisplayRows([]int{3, 4}))
	assert.Equal(t, []int{0, 3}, wd.Selected())

	assert.Error(t, wd.SelectDisplayRows([]int{99}))
	assert.Error(t, wd.Select([]int{-1}))
}

func TestWidgetColorVariableDefaultsToClass(t *testing.T) {
	wd := NewWidget()
	a := newMixedTable(t)
	assert.NoError(t, wd.SetData(a))
	cv := wd.Model().ColorVariable()
	assert.NotNil(t, cv)
	assert.Equal(t, "class", cv.Name)

	assert.NoError(t, wd.SetData(newOtherTable(t)))
	assert.Nil(t, wd.Model().ColorVariable())
}

func TestWidgetInfo(t *testing.T) {
	wd := NewWidget()
	assert.Equal(t, "No data on input.", wd.InfoSummary())
	assert.Equal(t, "", wd.InfoGroup(data.RoleAttribute))

	assert.NoError(t, wd.SetData(newMixedTable(t)))
	assert.Equal(t, "mixed contains 5 instances with 5 features", wd.InfoSummary())
	assert.Equal(t,
		"1 categorical, 2 numeric and 1 time (not shown) variables",
		wd.InfoGroup(data.RoleAttribute))
	assert.Equal(t, "1 categorical variable", wd.InfoGroup(data.RoleClassVar))
}
