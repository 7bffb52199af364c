// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"strings"
)

// VarRole is the logical group a variable belongs to within a [Domain].
type VarRole int32

const (
	// RoleAttribute marks plain attribute (feature) columns.
	RoleAttribute VarRole = iota

	// RoleClassVar marks class / target columns.
	RoleClassVar

	// RoleMeta marks auxiliary (meta) columns.
	RoleMeta

	// RoleN is the number of variable roles.
	RoleN
)

func (rl VarRole) String() string {
	switch rl {
	case RoleAttribute:
		return "attribute"
	case RoleClassVar:
		return "class"
	case RoleMeta:
		return "meta"
	}
	return "invalid"
}

// Domain partitions the columns of a table into three disjoint groups:
// attributes, class variables and metas. Role and position lookups are
// map-backed, so group membership tests are O(1) regardless of width.
type Domain struct {
	// Attributes has the plain feature columns.
	Attributes []*Variable

	// ClassVars has the class / target columns.
	ClassVars []*Variable

	// Metas has the auxiliary columns.
	Metas []*Variable

	roles map[*Variable]VarRole
	index map[*Variable]int // position within the variable's group
	names map[string]*Variable
}

// NewDomain returns a new Domain with the given variable groups.
// Returns an error if a name appears more than once across all groups.
func NewDomain(attributes, classVars, metas []*Variable) (*Domain, error) {
	dm := &Domain{
		Attributes: attributes,
		ClassVars:  classVars,
		Metas:      metas,
		roles:      make(map[*Variable]VarRole),
		index:      make(map[*Variable]int),
		names:      make(map[string]*Variable),
	}
	for rl, group := range [RoleN][]*Variable{attributes, classVars, metas} {
		for i, vr := range group {
			if _, ok := dm.names[vr.Name]; ok {
				return nil, fmt.Errorf("data.NewDomain: duplicate variable name %q", vr.Name)
			}
			dm.roles[vr] = VarRole(rl)
			dm.index[vr] = i
			dm.names[vr.Name] = vr
		}
	}
	return dm, nil
}

// Role returns the group the given variable belongs to,
// and false if the variable is not part of this domain.
func (dm *Domain) Role(vr *Variable) (VarRole, bool) {
	rl, ok := dm.roles[vr]
	return rl, ok
}

// GroupIndex returns the position of the variable within its group,
// and false if the variable is not part of this domain.
func (dm *Domain) GroupIndex(vr *Variable) (int, bool) {
	i, ok := dm.index[vr]
	return i, ok
}

// VarByName returns the variable with the given name, nil if not present.
func (dm *Domain) VarByName(name string) *Variable {
	return dm.names[name]
}

// Group returns the variables of the given role.
func (dm *Domain) Group(rl VarRole) []*Variable {
	switch rl {
	case RoleAttribute:
		return dm.Attributes
	case RoleClassVar:
		return dm.ClassVars
	case RoleMeta:
		return dm.Metas
	}
	return nil
}

// Variables returns all variables in canonical order:
// attributes, then class variables, then metas.
func (dm *Domain) Variables() []*Variable {
	vars := make([]*Variable, 0, len(dm.Attributes)+len(dm.ClassVars)+len(dm.Metas))
	vars = append(vars, dm.Attributes...)
	vars = append(vars, dm.ClassVars...)
	return append(vars, dm.Metas...)
}

// Fingerprint returns a stable identity string for the domain, derived
// from variable names, kinds and roles. Two structurally identical
// domains share a fingerprint, which is used to key remembered
// per-domain state such as selections.
func (dm *Domain) Fingerprint() string {
	var sb strings.Builder
	for rl, group := range [RoleN][]*Variable{dm.Attributes, dm.ClassVars, dm.Metas} {
		for _, vr := range group {
			fmt.Fprintf(&sb, "%d:%d:%s;", rl, vr.Kind, vr.Name)
		}
		sb.WriteByte('|')
	}
	return sb.String()
}
