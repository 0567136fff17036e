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

/*
Package list provides an array-backed implementation of adt.List.

ArrayList stores items in a contiguous slice that doubles in length when
full.  Indexed reads and writes are O(1), inserts and removals are O(n) in
the number of items that have to be shifted.  ArrayList is not safe for
concurrent use; wrap it in a SafeList when multiple goroutines share it.
*/
package list

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/blastbao/go-arraylist/adt"
)

// DefaultCapacity is the number of slots allocated by New and Clear.
const DefaultCapacity = 10

// ArrayList is a dynamic array of non-nil items.
type ArrayList[T comparable] struct {
	items []T // len(items) is the capacity
	size  int
}

var _ adt.List[string] = (*ArrayList[string])(nil)

// New returns an empty list with DefaultCapacity slots.
func New[T comparable]() *ArrayList[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity returns an empty list with room for capacity items
// before the first growth.  A non-positive capacity means DefaultCapacity.
func NewWithCapacity[T comparable](capacity int) *ArrayList[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ArrayList[T]{items: make([]T, capacity)}
}

// isNil reports whether v is a nil pointer, channel, interface, map,
// slice or func.
func isNil[T comparable](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer,
		reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// isComparable reports whether the dynamic type of v supports ==.  Only
// interface type parameters can hold values that fail this.
func isComparable[T comparable](v T) bool {
	t := reflect.TypeOf(any(v))
	return t == nil || t.Comparable()
}

func checkItem[T comparable](v T) error {
	if isNil(v) {
		return ErrNilItem
	}
	if !isComparable(v) {
		return ErrNotComparable
	}
	return nil
}

func (al *ArrayList[T]) growIfNeeded() {
	if al.size < len(al.items) {
		return
	}
	grown := make([]T, len(al.items)*2)
	copy(grown, al.items[:al.size])
	al.items = grown
}

func (al *ArrayList[T]) checkIndex(index int) error {
	if index < 0 || index >= al.size {
		return &IndexError{Index: index, Size: al.size}
	}
	return nil
}

// Clear drops every item and releases the backing array.
func (al *ArrayList[T]) Clear() {
	al.items = make([]T, DefaultCapacity)
	al.size = 0
}

// Contains reports whether item is present.
func (al *ArrayList[T]) Contains(item T) bool {
	return al.IndexOf(item) != -1
}

// IsEmpty reports whether the list has no items.
func (al *ArrayList[T]) IsEmpty() bool {
	return al.size == 0
}

// Size returns the number of items.
func (al *ArrayList[T]) Size() int {
	return al.size
}

// Cap returns the number of items the list can hold before it grows.
func (al *ArrayList[T]) Cap() int {
	return len(al.items)
}

// Add inserts item at index.  Valid indices are 0 through Size inclusive.
func (al *ArrayList[T]) Add(index int, item T) error {
	if err := checkItem(item); err != nil {
		return err
	}
	if index < 0 || index > al.size {
		return &IndexError{Index: index, Size: al.size}
	}
	al.growIfNeeded()
	copy(al.items[index+1:al.size+1], al.items[index:al.size])
	al.items[index] = item
	al.size++
	return nil
}

// AddFirst inserts item at the front.
func (al *ArrayList[T]) AddFirst(item T) error {
	return al.Add(0, item)
}

// AddLast appends item.
func (al *ArrayList[T]) AddLast(item T) error {
	return al.Add(al.size, item)
}

// AddAfter inserts item after the first occurrence of existing.
func (al *ArrayList[T]) AddAfter(existing, item T) (bool, error) {
	if isNil(existing) || isNil(item) {
		return false, ErrNilItem
	}
	if !isComparable(existing) || !isComparable(item) {
		return false, ErrNotComparable
	}
	index := al.IndexOf(existing)
	if index == -1 {
		return false, nil
	}
	if err := al.Add(index+1, item); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFirst removes and returns the first item.
func (al *ArrayList[T]) RemoveFirst() (T, error) {
	if al.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement
	}
	return al.RemoveAt(0)
}

// RemoveLast removes and returns the last item.
func (al *ArrayList[T]) RemoveLast() (T, error) {
	if al.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement
	}
	return al.RemoveAt(al.size - 1)
}

// RemoveAt removes and returns the item at index.
func (al *ArrayList[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := al.checkIndex(index); err != nil {
		return zero, err
	}
	removed := al.items[index]
	copy(al.items[index:al.size-1], al.items[index+1:al.size])
	al.items[al.size-1] = zero // don't pin the removed item
	al.size--
	return removed, nil
}

// Remove deletes the first occurrence of item.
func (al *ArrayList[T]) Remove(item T) bool {
	index := al.IndexOf(item)
	if index == -1 {
		return false
	}
	_, _ = al.RemoveAt(index)
	return true
}

// First returns the first item without removing it.
func (al *ArrayList[T]) First() (T, error) {
	if al.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement
	}
	return al.items[0], nil
}

// Last returns the last item without removing it.
func (al *ArrayList[T]) Last() (T, error) {
	if al.IsEmpty() {
		var zero T
		return zero, ErrNoSuchElement
	}
	return al.items[al.size-1], nil
}

// Get returns the item at index.
func (al *ArrayList[T]) Get(index int) (T, error) {
	if err := al.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return al.items[index], nil
}

// Set replaces the item at index and returns the old one.  A nil or
// uncomparable item is rejected before the index is examined.
func (al *ArrayList[T]) Set(index int, item T) (T, error) {
	var zero T
	if err := checkItem(item); err != nil {
		return zero, err
	}
	if err := al.checkIndex(index); err != nil {
		return zero, err
	}
	old := al.items[index]
	al.items[index] = item
	return old, nil
}

// IndexOf returns the position of the first item equal to item, or -1.
func (al *ArrayList[T]) IndexOf(item T) int {
	if isNil(item) || !isComparable(item) {
		return -1
	}
	for i := 0; i < al.size; i++ {
		if al.items[i] == item {
			return i
		}
	}
	return -1
}

// Values returns a copy of the items in order.
func (al *ArrayList[T]) Values() []T {
	out := make([]T, al.size)
	copy(out, al.items[:al.size])
	return out
}

// All yields index/item pairs in order.  The list must not be modified
// during iteration.
func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < al.size; i++ {
			if !yield(i, al.items[i]) {
				return
			}
		}
	}
}

func (al *ArrayList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < al.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, al.items[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
