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
Package adt defines abstract data types implemented elsewhere in this
module.  Consumers that only need list behavior should depend on
adt.List rather than on a concrete implementation.
*/
package adt

// List is an ordered, index-addressable collection of non-nil items.
// Indices are zero-based.  Operations that fail leave the list unchanged.
type List[T comparable] interface {
	// Clear removes every item.
	Clear()
	// Contains reports whether item is present.
	Contains(item T) bool
	// IsEmpty reports whether the list holds no items.
	IsEmpty() bool
	// Size returns the number of items.
	Size() int

	// Add inserts item at index, shifting later items right.  index may
	// equal Size.
	Add(index int, item T) error
	AddFirst(item T) error
	AddLast(item T) error
	// AddAfter inserts item directly after the first occurrence of
	// existing.  It returns false if existing is not present.
	AddAfter(existing, item T) (bool, error)

	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	// RemoveAt removes and returns the item at index, shifting later
	// items left.
	RemoveAt(index int) (T, error)
	// Remove deletes the first occurrence of item and reports whether
	// anything was removed.
	Remove(item T) bool

	First() (T, error)
	Last() (T, error)
	Get(index int) (T, error)
	// Set replaces the item at index and returns the previous one.
	Set(index int, item T) (T, error)
	// IndexOf returns the index of the first occurrence of item, or -1.
	IndexOf(item T) int
}
