// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides the dataset abstraction consumed by the feature
// statistics model: variables with semantic kinds, a three-group domain
// (attributes, class variables, metas), and dense or sparse column
// matrices sharing a common row dimension.
package data

import (
	"math"
	"strconv"
)

// VarKind is the semantic kind of a [Variable].
type VarKind int32

const (
	// Categorical variables hold a finite, ordered vocabulary of values,
	// encoded as float64 indexes into [Variable.Values].
	Categorical VarKind = iota

	// Numeric variables hold continuous float64 values.
	Numeric

	// Time variables hold time points as float64 seconds since the
	// Unix epoch. Time is numerically represented but is not Numeric:
	// it gets its own reducer family.
	Time

	// Text variables hold free-form strings with no numeric view.
	Text

	// KindN is the number of variable kinds.
	KindN
)

func (vk VarKind) String() string {
	switch vk {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	case Time:
		return "time"
	case Text:
		return "text"
	}
	return "invalid"
}

// StringUnknown is the missing-value sentinel for [Text] columns.
// Numeric, time and categorical columns use NaN.
const StringUnknown = ""

// Variable is a column descriptor. The same Variable pointer identifies
// the column across a [Domain] and any tables sharing that domain.
type Variable struct {
	// Name is the column name, unique within a domain.
	Name string

	// Kind is the semantic kind of the column.
	Kind VarKind

	// Values is the value vocabulary for Categorical variables;
	// the encoded float64 value of a cell indexes into this list.
	Values []string

	// Ordered indicates that the categorical vocabulary has a
	// meaningful order, making min and max values displayable.
	Ordered bool
}

// NewCategorical returns a new categorical variable with the given
// value vocabulary.
func NewCategorical(name string, values []string, ordered bool) *Variable {
	return &Variable{Name: name, Kind: Categorical, Values: values, Ordered: ordered}
}

// NewNumeric returns a new continuous numeric variable.
func NewNumeric(name string) *Variable {
	return &Variable{Name: name, Kind: Numeric}
}

// NewTime returns a new time variable, storing seconds since the Unix epoch.
func NewTime(name string) *Variable {
	return &Variable{Name: name, Kind: Time}
}

// NewText returns a new free-text variable.
func NewText(name string) *Variable {
	return &Variable{Name: name, Kind: Text}
}

// StrVal returns the display string for the given encoded value.
// For categorical variables this is the vocabulary entry; NaN renders
// as "?" and out-of-vocabulary encodings as the bare number.
func (vr *Variable) StrVal(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	if vr.Kind == Categorical {
		i := int(v)
		if i >= 0 && i < len(vr.Values) {
			return vr.Values[i]
		}
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ValueIndex returns the encoded value for the given categorical label,
// or NaN if the label is not in the vocabulary.
func (vr *Variable) ValueIndex(label string) float64 {
	for i, v := range vr.Values {
		if v == label {
			return float64(i)
		}
	}
	return math.NaN()
}
