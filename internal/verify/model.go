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
	"reflect"
	"slices"

	"github.com/blastbao/go-arraylist/adt"
	"github.com/blastbao/go-arraylist/list"
)

// Model is the reference list: a plain slice with the same error
// contract as list.ArrayList.
type Model struct {
	items []any
}

var _ adt.List[any] = (*Model)(nil)

// validate applies the item rules.  The generator only produces strings,
// untyped nil and slices, so those are the only kinds handled.
func validate(item any) error {
	if item == nil {
		return list.ErrNilItem
	}
	if v := reflect.ValueOf(item); v.Kind() == reflect.Slice {
		if v.IsNil() {
			return list.ErrNilItem
		}
		return list.ErrNotComparable
	}
	return nil
}

// find is slices.Index for items that passed validate; anything else is
// never stored and so never found.
func (m *Model) find(item any) int {
	if validate(item) != nil {
		return -1
	}
	return slices.Index(m.items, item)
}

func (m *Model) outOfRange(index int, inclusive bool) error {
	limit := len(m.items)
	if inclusive {
		limit++
	}
	if index < 0 || index >= limit {
		return &list.IndexError{Index: index, Size: len(m.items)}
	}
	return nil
}

func (m *Model) Clear()                 { m.items = nil }
func (m *Model) Contains(item any) bool { return m.find(item) >= 0 }
func (m *Model) IsEmpty() bool          { return len(m.items) == 0 }
func (m *Model) Size() int              { return len(m.items) }
func (m *Model) IndexOf(item any) int   { return m.find(item) }

func (m *Model) Add(index int, item any) error {
	if err := validate(item); err != nil {
		return err
	}
	if err := m.outOfRange(index, true); err != nil {
		return err
	}
	m.items = slices.Insert(m.items, index, item)
	return nil
}

func (m *Model) AddFirst(item any) error { return m.Add(0, item) }
func (m *Model) AddLast(item any) error  { return m.Add(len(m.items), item) }

func (m *Model) AddAfter(existing, item any) (bool, error) {
	if existing == nil || item == nil {
		return false, list.ErrNilItem
	}
	// nil is reported before uncomparable for either argument
	if err := validate(existing); err != nil {
		return false, err
	}
	if err := validate(item); err != nil {
		return false, err
	}
	i := m.find(existing)
	if i < 0 {
		return false, nil
	}
	return true, m.Add(i+1, item)
}

func (m *Model) RemoveFirst() (any, error) {
	if len(m.items) == 0 {
		return nil, list.ErrNoSuchElement
	}
	return m.RemoveAt(0)
}

func (m *Model) RemoveLast() (any, error) {
	if len(m.items) == 0 {
		return nil, list.ErrNoSuchElement
	}
	return m.RemoveAt(len(m.items) - 1)
}

func (m *Model) RemoveAt(index int) (any, error) {
	if err := m.outOfRange(index, false); err != nil {
		return nil, err
	}
	v := m.items[index]
	m.items = slices.Delete(m.items, index, index+1)
	return v, nil
}

func (m *Model) Remove(item any) bool {
	i := m.find(item)
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	return true
}

func (m *Model) First() (any, error) {
	if len(m.items) == 0 {
		return nil, list.ErrNoSuchElement
	}
	return m.items[0], nil
}

func (m *Model) Last() (any, error) {
	if len(m.items) == 0 {
		return nil, list.ErrNoSuchElement
	}
	return m.items[len(m.items)-1], nil
}

func (m *Model) Get(index int) (any, error) {
	if err := m.outOfRange(index, false); err != nil {
		return nil, err
	}
	return m.items[index], nil
}

func (m *Model) Set(index int, item any) (any, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	if err := m.outOfRange(index, false); err != nil {
		return nil, err
	}
	old := m.items[index]
	m.items[index] = item
	return old, nil
}

// Values returns a copy of the items.
func (m *Model) Values() []any {
	return append([]any{}, m.items...)
}
