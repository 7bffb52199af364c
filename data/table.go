// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
)

// Table is a dataset: a [Domain] plus one matrix per variable group,
// all sharing the instance (row) count. Matrices may independently use
// dense or sparse column storage.
type Table struct {
	// Name is the dataset name, used in derived table names.
	Name string

	// Domain partitions the columns into attributes, class vars and metas.
	Domain *Domain

	// X holds the attribute columns.
	X *Matrix

	// Y holds the class variable columns.
	Y *Matrix

	// M holds the meta columns.
	M *Matrix

	rows int
}

// NewTable returns a new table over the given domain and group
// matrices. A nil matrix stands for an empty group. Returns an error
// if matrix widths do not match the domain groups, or row counts
// differ across non-empty matrices.
func NewTable(name string, domain *Domain, x, y, m *Matrix) (*Table, error) {
	dt := &Table{Name: name, Domain: domain, X: x, Y: y, M: m, rows: -1}
	groups := [RoleN]*Matrix{x, y, m}
	for rl, mx := range groups {
		vars := domain.Group(VarRole(rl))
		w := 0
		if mx != nil {
			w = mx.Cols()
		}
		if w != len(vars) {
			return nil, fmt.Errorf("data.NewTable: %s matrix has %d columns for %d variables", VarRole(rl), w, len(vars))
		}
		if mx == nil || mx.Cols() == 0 {
			continue
		}
		if dt.rows >= 0 && mx.Rows() != dt.rows {
			return nil, fmt.Errorf("data.NewTable: %s matrix has %d rows, expected %d", VarRole(rl), mx.Rows(), dt.rows)
		}
		dt.rows = mx.Rows()
	}
	if dt.rows < 0 {
		dt.rows = 0
	}
	for rl, mx := range groups {
		if mx == nil {
			groups[rl] = &Matrix{rows: dt.rows}
		}
	}
	dt.X, dt.Y, dt.M = groups[0], groups[1], groups[2]
	return dt, nil
}

// NumRows returns the number of instances.
func (dt *Table) NumRows() int { return dt.rows }

// Group returns the variables and matrix of the given role.
func (dt *Table) Group(rl VarRole) ([]*Variable, *Matrix) {
	switch rl {
	case RoleAttribute:
		return dt.Domain.Attributes, dt.X
	case RoleClassVar:
		return dt.Domain.ClassVars, dt.Y
	case RoleMeta:
		return dt.Domain.Metas, dt.M
	}
	return nil, nil
}

// Column returns the column view for the given variable,
// or an error if the variable is not part of the table's domain.
func (dt *Table) Column(vr *Variable) (Column, error) {
	rl, ok := dt.Domain.Role(vr)
	if !ok {
		return nil, fmt.Errorf("data.Table: variable %q not in domain", vr.Name)
	}
	i, _ := dt.Domain.GroupIndex(vr)
	_, mx := dt.Group(rl)
	return mx.Column(i), nil
}

// SelectColumns returns a new table sliced to the given variables,
// sharing the underlying column data. Each variable keeps its original
// group membership: a class variable stays a class variable in the
// sliced output. Returns an error if a variable is not in the domain.
func (dt *Table) SelectColumns(vars []*Variable) (*Table, error) {
	var groups [RoleN][]*Variable
	var colIdx [RoleN][]int
	for _, vr := range vars {
		rl, ok := dt.Domain.Role(vr)
		if !ok {
			return nil, fmt.Errorf("data.Table.SelectColumns: variable %q not in domain", vr.Name)
		}
		i, _ := dt.Domain.GroupIndex(vr)
		groups[rl] = append(groups[rl], vr)
		colIdx[rl] = append(colIdx[rl], i)
	}
	domain, err := NewDomain(groups[RoleAttribute], groups[RoleClassVar], groups[RoleMeta])
	if err != nil {
		return nil, err
	}
	nt := &Table{Name: dt.Name, Domain: domain, rows: dt.rows}
	nt.X = dt.X.Select(colIdx[RoleAttribute])
	nt.Y = dt.Y.Select(colIdx[RoleClassVar])
	nt.M = dt.M.Select(colIdx[RoleMeta])
	return nt, nil
}
