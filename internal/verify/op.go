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
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/blastbao/go-arraylist/adt"
	"github.com/blastbao/go-arraylist/internal/config"
	"github.com/blastbao/go-arraylist/list"
)

// OpKind names a list operation.
type OpKind string

const (
	OpAddFirst    OpKind = "add_first"
	OpAddLast     OpKind = "add_last"
	OpAddAt       OpKind = "add_at"
	OpAddAfter    OpKind = "add_after"
	OpRemoveFirst OpKind = "remove_first"
	OpRemoveLast  OpKind = "remove_last"
	OpRemoveAt    OpKind = "remove_at"
	OpRemoveItem  OpKind = "remove_item"
	OpGet         OpKind = "get"
	OpSet         OpKind = "set"
	OpIndexOf     OpKind = "index_of"
	OpContains    OpKind = "contains"
	OpFirst       OpKind = "first"
	OpLast        OpKind = "last"
	OpClear       OpKind = "clear"
)

// Error classes reported in an Outcome.
const (
	ClassOK            = "ok"
	ClassNilItem       = "nil_item"
	ClassNotComparable = "not_comparable"
	ClassOutOfBounds   = "index_out_of_bounds"
	ClassNoSuchElement = "no_such_element"
	ClassOther         = "other"
)

// Op is one step of a script.  Values are strings, except that the
// stronger profile also draws nil and uncomparable values.
type Op struct {
	Kind     OpKind
	Index    int
	Value    any
	Existing any
}

func show(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v)
}

func (o Op) String() string {
	switch o.Kind {
	case OpAddFirst, OpAddLast, OpRemoveItem, OpIndexOf, OpContains:
		return fmt.Sprintf("%s(%s)", o.Kind, show(o.Value))
	case OpAddAt, OpSet:
		return fmt.Sprintf("%s(%d, %s)", o.Kind, o.Index, show(o.Value))
	case OpAddAfter:
		return fmt.Sprintf("%s(%s, %s)", o.Kind, show(o.Existing), show(o.Value))
	case OpRemoveAt, OpGet:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Index)
	}
	return string(o.Kind) + "()"
}

// Outcome is everything observable about applying an Op.
type Outcome struct {
	Value any
	OK    bool
	Index int
	Class string
}

func classify(err error) string {
	switch {
	case err == nil:
		return ClassOK
	case errors.Is(err, list.ErrNilItem):
		return ClassNilItem
	case errors.Is(err, list.ErrNotComparable):
		return ClassNotComparable
	case errors.Is(err, list.ErrIndexOutOfBounds):
		return ClassOutOfBounds
	case errors.Is(err, list.ErrNoSuchElement):
		return ClassNoSuchElement
	}
	return ClassOther
}

// Apply runs op against l and captures the result.
func Apply(l adt.List[any], op Op) Outcome {
	var (
		out Outcome
		err error
	)
	switch op.Kind {
	case OpAddFirst:
		err = l.AddFirst(op.Value)
	case OpAddLast:
		err = l.AddLast(op.Value)
	case OpAddAt:
		err = l.Add(op.Index, op.Value)
	case OpAddAfter:
		out.OK, err = l.AddAfter(op.Existing, op.Value)
	case OpRemoveFirst:
		out.Value, err = l.RemoveFirst()
	case OpRemoveLast:
		out.Value, err = l.RemoveLast()
	case OpRemoveAt:
		out.Value, err = l.RemoveAt(op.Index)
	case OpRemoveItem:
		out.OK = l.Remove(op.Value)
	case OpGet:
		out.Value, err = l.Get(op.Index)
	case OpSet:
		out.Value, err = l.Set(op.Index, op.Value)
	case OpIndexOf:
		out.Index = l.IndexOf(op.Value)
	case OpContains:
		out.OK = l.Contains(op.Value)
	case OpFirst:
		out.Value, err = l.First()
	case OpLast:
		out.Value, err = l.Last()
	case OpClear:
		l.Clear()
	default:
		err = fmt.Errorf("unknown op %q", op.Kind)
	}
	out.Class = classify(err)
	return out
}

type weighted struct {
	kind   OpKind
	weight int
}

var profiles = map[string][]weighted{
	config.ProfileDefault: {
		{OpAddFirst, 4}, {OpAddLast, 8}, {OpAddAt, 5}, {OpAddAfter, 3},
		{OpRemoveFirst, 2}, {OpRemoveLast, 2}, {OpRemoveAt, 3}, {OpRemoveItem, 3},
		{OpGet, 4}, {OpSet, 3}, {OpIndexOf, 3}, {OpContains, 3},
		{OpFirst, 1}, {OpLast, 1}, {OpClear, 1},
	},
	config.ProfileStronger: {
		{OpAddFirst, 3}, {OpAddLast, 6}, {OpAddAt, 5}, {OpAddAfter, 3},
		{OpRemoveFirst, 3}, {OpRemoveLast, 3}, {OpRemoveAt, 4}, {OpRemoveItem, 3},
		{OpGet, 4}, {OpSet, 4}, {OpIndexOf, 2}, {OpContains, 2},
		{OpFirst, 2}, {OpLast, 2}, {OpClear, 3},
	},
}

// valuePool is kept small so duplicates and hits are common.
var valuePool = []any{"a", "b", "c", "d", "e", "f", "g", "h"}

// Generator draws ops for one script.
type Generator struct {
	rnd      *rand.Rand
	table    []weighted
	total    int
	stronger bool
}

// NewGenerator returns a deterministic generator for profile and seed.
func NewGenerator(profile string, seed int64) (*Generator, error) {
	table, ok := profiles[profile]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", profile)
	}
	g := &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		table:    table,
		stronger: profile == config.ProfileStronger,
	}
	for _, w := range table {
		g.total += w.weight
	}
	return g, nil
}

// value draws an item.  Under the stronger profile one draw in ten is nil
// and one in twenty is a slice, which the list must refuse to store.
func (g *Generator) value() any {
	if g.stronger {
		switch n := g.rnd.Intn(20); {
		case n < 2:
			return nil
		case n == 2:
			return []string{"x"}
		}
	}
	return valuePool[g.rnd.Intn(len(valuePool))]
}

// index draws a position for a list of the given size.  inclusive allows
// size itself, as Add does.
func (g *Generator) index(size int, inclusive bool) int {
	if g.stronger && g.rnd.Intn(5) == 0 {
		return []int{-1, size, size + 1}[g.rnd.Intn(3)]
	}
	limit := size
	if inclusive {
		limit++
	}
	if limit == 0 {
		return 0
	}
	return g.rnd.Intn(limit)
}

// Next returns an op suited to a list of the given size.  Outside the
// stronger profile, ops that would fail on an empty list become appends.
func (g *Generator) Next(size int) Op {
	n := g.rnd.Intn(g.total)
	kind := g.table[0].kind
	for _, w := range g.table {
		if n < w.weight {
			kind = w.kind
			break
		}
		n -= w.weight
	}

	if !g.stronger && size == 0 {
		switch kind {
		case OpRemoveFirst, OpRemoveLast, OpRemoveAt, OpGet, OpSet, OpFirst, OpLast:
			kind = OpAddLast
		}
	}

	op := Op{Kind: kind}
	switch kind {
	case OpAddFirst, OpAddLast, OpRemoveItem, OpIndexOf, OpContains:
		op.Value = g.value()
	case OpAddAt:
		op.Index = g.index(size, true)
		op.Value = g.value()
	case OpSet:
		op.Index = g.index(size, false)
		op.Value = g.value()
	case OpRemoveAt, OpGet:
		op.Index = g.index(size, false)
	case OpAddAfter:
		op.Existing = g.value()
		op.Value = g.value()
	}
	return op
}
