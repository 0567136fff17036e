/*
Copyright 2014 Workiva, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blastbao/go-arraylist/internal/config"
	"github.com/blastbao/go-arraylist/list"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a, err := NewGenerator(config.ProfileStronger, 7)
	require.NoError(t, err)
	b, err := NewGenerator(config.ProfileStronger, 7)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		size := i % 13
		require.Equal(t, a.Next(size), b.Next(size), "step %d", i)
	}
}

func TestGeneratorUnknownProfile(t *testing.T) {
	_, err := NewGenerator("WEAK", 1)
	assert.Error(t, err)
}

func TestDefaultProfileDrawsOnlyStrings(t *testing.T) {
	g, err := NewGenerator(config.ProfileDefault, 5)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		op := g.Next(i % 6)
		for _, v := range []any{op.Value, op.Existing} {
			if v == nil {
				continue // ops without that operand
			}
			_, ok := v.(string)
			assert.True(t, ok, "%v", op)
		}
		switch op.Kind {
		case OpAddFirst, OpAddLast, OpAddAt, OpSet, OpRemoveItem, OpIndexOf, OpContains:
			assert.NotNil(t, op.Value, "%v", op)
		case OpAddAfter:
			assert.NotNil(t, op.Value, "%v", op)
			assert.NotNil(t, op.Existing, "%v", op)
		}
	}
}

func TestDefaultProfileStaysInRange(t *testing.T) {
	g, err := NewGenerator(config.ProfileDefault, 3)
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		size := i % 5
		op := g.Next(size)
		switch op.Kind {
		case OpAddAt:
			assert.True(t, op.Index >= 0 && op.Index <= size, "%v on size %d", op, size)
		case OpGet, OpSet, OpRemoveAt:
			assert.True(t, op.Index >= 0 && op.Index < size, "%v on size %d", op, size)
		case OpRemoveFirst, OpRemoveLast, OpFirst, OpLast:
			assert.NotZero(t, size, "%v on empty list", op)
		}
	}
}

func TestStrongerProfileReachesErrorPaths(t *testing.T) {
	g, err := NewGenerator(config.ProfileStronger, 11)
	require.NoError(t, err)

	classes := map[string]bool{}
	for i := 0; i < 2000; i++ {
		size := i % 4
		m := &Model{}
		for j := 0; j < size; j++ {
			require.NoError(t, m.AddLast("x"))
		}
		classes[Apply(m, g.Next(size)).Class] = true
	}
	assert.True(t, classes[ClassOutOfBounds])
	assert.True(t, classes[ClassNoSuchElement])
	assert.True(t, classes[ClassNilItem])
	assert.True(t, classes[ClassNotComparable])
	assert.True(t, classes[ClassOK])
}

func TestApplyMatchesBetweenModelAndArrayList(t *testing.T) {
	ops := []Op{
		{Kind: OpAddLast, Value: "a"},
		{Kind: OpAddFirst, Value: "b"},
		{Kind: OpAddAt, Index: 1, Value: "c"},
		{Kind: OpAddAfter, Existing: "c", Value: "d"},
		{Kind: OpAddAfter, Existing: "z", Value: "d"},
		{Kind: OpGet, Index: 3},
		{Kind: OpSet, Index: 0, Value: "e"},
		{Kind: OpIndexOf, Value: "d"},
		{Kind: OpContains, Value: "b"},
		{Kind: OpRemoveItem, Value: "c"},
		{Kind: OpRemoveAt, Index: 9},
		{Kind: OpFirst},
		{Kind: OpLast},
		{Kind: OpRemoveFirst},
		{Kind: OpRemoveLast},
		{Kind: OpClear},
		{Kind: OpRemoveLast},
		{Kind: OpAddAt, Index: -1, Value: "a"},
		{Kind: OpAddLast, Value: nil},
		{Kind: OpAddLast, Value: []string{"x"}},
		{Kind: OpAddFirst, Value: "a"},
		{Kind: OpSet, Index: 5, Value: nil},
		{Kind: OpSet, Index: 0, Value: []string{"x"}},
		{Kind: OpAddAfter, Existing: nil, Value: "b"},
		{Kind: OpAddAfter, Existing: []string{"x"}, Value: nil},
		{Kind: OpAddAfter, Existing: "a", Value: []string{"x"}},
		{Kind: OpIndexOf, Value: nil},
		{Kind: OpContains, Value: []string{"x"}},
		{Kind: OpRemoveItem, Value: []string{"x"}},
		{Kind: OpRemoveItem, Value: nil},
	}
	model, subject := &Model{}, list.New[any]()
	for _, op := range ops {
		want := Apply(model, op)
		got := Apply(subject, op)
		require.Equal(t, want, got, op.String())
		require.Equal(t, model.Values(), subject.Values(), op.String())
	}
}

func TestApplyUnknownOp(t *testing.T) {
	out := Apply(&Model{}, Op{Kind: "shuffle"})
	assert.Equal(t, ClassOther, out.Class)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, `add_at(2, "x")`, Op{Kind: OpAddAt, Index: 2, Value: "x"}.String())
	assert.Equal(t, `add_after("a", "b")`, Op{Kind: OpAddAfter, Existing: "a", Value: "b"}.String())
	assert.Equal(t, `get(0)`, Op{Kind: OpGet}.String())
	assert.Equal(t, `clear()`, Op{Kind: OpClear}.String())
	assert.Equal(t, `add_last(<nil>)`, Op{Kind: OpAddLast}.String())
	assert.Equal(t, `contains([x])`, Op{Kind: OpContains, Value: []string{"x"}}.String())
}
