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

package list

import (
	"sync"

	"github.com/blastbao/go-arraylist/adt"
)

// SafeList guards an ArrayList with a read/write mutex so it can be shared
// between goroutines.  Queries take the read lock.
type SafeList[T comparable] struct {
	lock sync.RWMutex
	list *ArrayList[T]
}

var _ adt.List[int] = (*SafeList[int])(nil)

// NewSafe returns an empty, goroutine-safe list.
func NewSafe[T comparable]() *SafeList[T] {
	return &SafeList[T]{list: New[T]()}
}

// Do runs fn with exclusive access to the underlying list.  Use it for
// read-modify-write sequences that must not interleave with other callers.
// fn must not retain the list after returning.
func (sl *SafeList[T]) Do(fn func(l *ArrayList[T])) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	fn(sl.list)
}

func (sl *SafeList[T]) Clear() {
	sl.lock.Lock()
	sl.list.Clear()
	sl.lock.Unlock()
}

func (sl *SafeList[T]) Contains(item T) bool {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.Contains(item)
}

func (sl *SafeList[T]) IsEmpty() bool {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.IsEmpty()
}

func (sl *SafeList[T]) Size() int {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.Size()
}

func (sl *SafeList[T]) Add(index int, item T) error {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.Add(index, item)
}

func (sl *SafeList[T]) AddFirst(item T) error {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.AddFirst(item)
}

func (sl *SafeList[T]) AddLast(item T) error {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.AddLast(item)
}

func (sl *SafeList[T]) AddAfter(existing, item T) (bool, error) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.AddAfter(existing, item)
}

func (sl *SafeList[T]) RemoveFirst() (T, error) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.RemoveFirst()
}

func (sl *SafeList[T]) RemoveLast() (T, error) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.RemoveLast()
}

func (sl *SafeList[T]) RemoveAt(index int) (T, error) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.RemoveAt(index)
}

func (sl *SafeList[T]) Remove(item T) bool {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.Remove(item)
}

func (sl *SafeList[T]) First() (T, error) {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.First()
}

func (sl *SafeList[T]) Last() (T, error) {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.Last()
}

func (sl *SafeList[T]) Get(index int) (T, error) {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.Get(index)
}

func (sl *SafeList[T]) Set(index int, item T) (T, error) {
	sl.lock.Lock()
	defer sl.lock.Unlock()
	return sl.list.Set(index, item)
}

func (sl *SafeList[T]) IndexOf(item T) int {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.IndexOf(item)
}

// Values returns a snapshot of the items.
func (sl *SafeList[T]) Values() []T {
	sl.lock.RLock()
	defer sl.lock.RUnlock()
	return sl.list.Values()
}
