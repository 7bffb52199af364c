// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"fmt"

	"github.com/markotoplak/orange3-prototypes/data"
	"github.com/markotoplak/orange3-prototypes/stats"
)

// FeatureMetaName is the name of the text meta column holding the
// original column name in the statistics output table.
const FeatureMetaName = "Feature"

// Project maps a set of selected source rows to the two output tables:
// reduced is the current dataset sliced to only the selected columns,
// each keeping its original group membership, and summary is a derived
// table whose instances correspond one-to-one with the selected columns
// and whose attributes are the five statistics, plus a text meta
// holding the column name.
//
// An empty selection returns explicit absent outputs (nil, nil) rather
// than zero-row tables, so callers can distinguish "nothing selected".
func (md *Model) Project(selected []int) (reduced, summary *data.Table, err error) {
	if md.table == nil {
		return nil, nil, fmt.Errorf("featstats.Model.Project: no data")
	}
	if len(selected) == 0 {
		return nil, nil, nil
	}
	vars := make([]*data.Variable, len(selected))
	for k, row := range selected {
		if err := md.IsValidRow(row); err != nil {
			return nil, nil, err
		}
		vars[k] = md.vars[row]
	}

	reduced, err = md.table.SelectColumns(vars)
	if err != nil {
		return nil, nil, err
	}

	attrs := make([]*data.Variable, stats.StatN)
	cols := make([]data.Column, stats.StatN)
	for st := stats.Stat(0); st < stats.StatN; st++ {
		attrs[st] = data.NewNumeric(st.String())
		cl := make(data.Float64Column, len(selected))
		for k, row := range selected {
			cl[k] = md.vectors[st][row]
		}
		cols[st] = cl
	}
	names := make(data.StringColumn, len(selected))
	for k, vr := range vars {
		names[k] = vr.Name
	}

	domain, err := data.NewDomain(attrs, nil, []*data.Variable{data.NewText(FeatureMetaName)})
	if err != nil {
		return nil, nil, err
	}
	x, err := data.NewMatrix(len(selected), cols...)
	if err != nil {
		return nil, nil, err
	}
	m, err := data.NewMatrix(len(selected), names)
	if err != nil {
		return nil, nil, err
	}
	summary, err = data.NewTable(fmt.Sprintf("%s (Feature Statistics)", md.table.Name), domain, x, nil, m)
	if err != nil {
		return nil, nil, err
	}
	return reduced, summary, nil
}
