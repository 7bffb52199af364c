// Copyright (c) 2026, The Orange3 Prototypes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package featstats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markotoplak/orange3-prototypes/data"
)

func TestPartitionKinds(t *testing.T) {
	vars := []*data.Variable{
		data.NewNumeric("a"),
		data.NewCategorical("b", []string{"x", "y"}, false),
		data.NewNumeric("c"),
		data.NewTime("d"),
		data.NewText("e"),
	}
	ki := PartitionKinds(vars)
	assert.Equal(t, []int{0, 2}, ki[data.Numeric])
	assert.Equal(t, []int{1}, ki[data.Categorical])
	assert.Equal(t, []int{3}, ki[data.Time])
	assert.Equal(t, []int{4}, ki[data.Text])
}

func TestFilterHidden(t *testing.T) {
	vars := []*data.Variable{
		data.NewNumeric("a"),
		data.NewTime("b"),
		data.NewText("c"),
	}
	mx, err := data.NewMatrix(2,
		data.Float64Column{1, 2},
		data.Float64Column{3, 4},
		data.StringColumn{"p", "q"},
	)
	assert.NoError(t, err)

	kept, sub := FilterHidden(vars, mx, DefaultHiddenKinds)
	assert.Len(t, kept, 1)
	assert.Equal(t, "a", kept[0].Name)
	assert.Equal(t, 1, sub.Cols())
	assert.Equal(t, 2.0, sub.Column(0).Float(1))

	kept, sub = FilterHidden(vars, mx, nil)
	assert.Len(t, kept, 3)
	assert.Equal(t, 3, sub.Cols())
}
