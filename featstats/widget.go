// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/markotoplak/orange3-prototypes/data"
)

// OutputsFunc receives the two output tables whenever a commit happens.
// Both are nil when the selection is empty or the data was cleared.
type OutputsFunc func(reduced, summary *data.Table)

// context is the per-domain state remembered across dataset swaps.
type context struct {
	selected      []int
	sortColumn    Column
	sortAscending bool
	sorted        bool
}

// Widget is the non-visual orchestrator around [Model]: it owns the
// selection (in source-row space, so it survives resorts), the
// color/overlay variable, and the per-domain context that restores
// selection and sorting when a previously seen domain returns.
// The presentation adapter drives it and renders the model.
type Widget struct {
	// AutoCommit sends outputs on every selection change
	// instead of waiting for an explicit [Widget.Commit].
	AutoCommit bool

	model    *Model
	data     *data.Table
	selected []int
	onOutput OutputsFunc
	contexts map[string]*context
}

// NewWidget returns a widget with a fresh empty model and
// auto-commit enabled.
func NewWidget() *Widget {
	return &Widget{
		AutoCommit: true,
		model:      NewModel(),
		contexts:   make(map[string]*context),
	}
}

// Model returns the underlying projection model.
func (wd *Widget) Model() *Model { return wd.model }

// OnOutputs registers the output callback invoked on commits.
func (wd *Widget) OnOutputs(fn OutputsFunc) { wd.onOutput = fn }

// Selected returns the selected source rows. Selection is kept in
// source-row space: it is unaffected by resorts.
func (wd *Widget) Selected() []int { return wd.selected }

// SetData replaces the active dataset. The selection is cleared and
// sorting reset; if the new dataset's domain was seen before, its
// remembered selection and sorting are restored. Passing nil clears
// everything. Outputs are recommitted when AutoCommit is on.
func (wd *Widget) SetData(dt *data.Table) error {
	wd.closeContext()
	wd.selected = nil
	wd.model.ResetSort()

	wd.data = dt
	wd.model.SetData(dt)
	if dt == nil {
		wd.model.SetColorVariable(nil)
		return wd.maybeCommit()
	}
	if cvs := dt.Domain.ClassVars; len(cvs) > 0 {
		wd.model.SetColorVariable(cvs[0])
	} else {
		wd.model.SetColorVariable(nil)
	}
	wd.openContext()
	return wd.maybeCommit()
}

// closeContext remembers the current selection and sorting under the
// active domain's fingerprint.
func (wd *Widget) closeContext() {
	if wd.data == nil {
		return
	}
	cn, asc, ok := wd.model.SortColumn()
	wd.contexts[wd.data.Domain.Fingerprint()] = &context{
		selected:      slices.Clone(wd.selected),
		sortColumn:    cn,
		sortAscending: asc,
		sorted:        ok,
	}
}

// openContext restores selection and sorting remembered for the active
// domain. Remembered source rows that no longer exist are dropped, not
// silently kept.
func (wd *Widget) openContext() {
	ctx, ok := wd.contexts[wd.data.Domain.Fingerprint()]
	if !ok {
		return
	}
	for _, row := range ctx.selected {
		if wd.model.IsValidRow(row) != nil {
			slog.Warn("featstats: dropping out-of-range remembered selection", "row", row)
			continue
		}
		wd.selected = append(wd.selected, row)
	}
	if ctx.sorted {
		wd.model.Sort(ctx.sortColumn, ctx.sortAscending)
	}
}

// Select replaces the selection with the given source rows.
// Returns an error if a row is out of range for the current dataset.
func (wd *Widget) Select(sourceRows []int) error {
	for _, row := range sourceRows {
		if err := wd.model.IsValidRow(row); err != nil {
			return err
		}
	}
	wd.selected = slices.Clone(sourceRows)
	slices.Sort(wd.selected)
	return wd.maybeCommit()
}

// SelectDisplayRows replaces the selection with the given display
// rows, translated into source-row space under the current sort.
func (wd *Widget) SelectDisplayRows(displayRows []int) error {
	src := make([]int, len(displayRows))
	for k, row := range displayRows {
		s, err := wd.model.SourceRow(row)
		if err != nil {
			return err
		}
		src[k] = s
	}
	return wd.Select(src)
}

// SetColorVariable sets the histogram color/overlay variable.
// It only invalidates the distribution cache.
func (wd *Widget) SetColorVariable(vr *data.Variable) {
	wd.model.SetColorVariable(vr)
}

// Sort sorts the model, keeping the selection (which lives in
// source-row space) intact.
func (wd *Widget) Sort(column Column, ascending bool) error {
	return wd.model.Sort(column, ascending)
}

func (wd *Widget) maybeCommit() error {
	if !wd.AutoCommit {
		return nil
	}
	return wd.Commit()
}

// Commit produces the two outputs for the current selection and
// passes them to the registered callback. With no data or an empty
// selection both outputs are explicitly absent (nil).
func (wd *Widget) Commit() error {
	if wd.data == nil || len(wd.selected) == 0 {
		if wd.onOutput != nil {
			wd.onOutput(nil, nil)
		}
		return nil
	}
	reduced, summary, err := wd.model.Project(wd.selected)
	if err != nil {
		return err
	}
	if wd.onOutput != nil {
		wd.onOutput(reduced, summary)
	}
	return nil
}

// plural appends "s" to the unit when n != 1.
func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// InfoSummary returns a one-line dataset summary.
func (wd *Widget) InfoSummary() string {
	if wd.data == nil {
		return "No data on input."
	}
	return fmt.Sprintf("%s contains %s with %s",
		wd.data.Name,
		plural(wd.model.NumInstances(), "instance"),
		plural(wd.model.Rows(), "feature"))
}

// InfoGroup describes one variable group by kind counts, marking
// hidden kinds as not shown, e.g. "1 categorical, 4 numeric variables".
func (wd *Widget) InfoGroup(rl data.VarRole) string {
	if wd.data == nil {
		return ""
	}
	vars, _ := wd.data.Group(rl)
	ki := PartitionKinds(vars)
	var parts []string
	total := 0
	for kind, idx := range ki {
		if len(idx) == 0 {
			continue
		}
		part := fmt.Sprintf("%d %s", len(idx), data.VarKind(kind))
		if slices.Contains(wd.model.hidden, data.VarKind(kind)) {
			part += " (not shown)"
		}
		parts = append(parts, part)
		total += len(idx)
	}
	if len(parts) == 0 {
		return "No variables"
	}
	joined := parts[len(parts)-1]
	if len(parts) > 1 {
		joined = strings.Join(parts[:len(parts)-1], ", ") + " and " + joined
	}
	unit := "variables"
	if total == 1 {
		unit = "variable"
	}
	return joined + " " + unit
}
