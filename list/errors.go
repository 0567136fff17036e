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
	"errors"
	"fmt"
)

var (
	// ErrNilItem is returned when a nil item is passed to an operation
	// that stores or locates items by value.
	ErrNilItem = errors.New(`list: item cannot be nil`)

	// ErrNotComparable is returned when an item's dynamic type does not
	// support ==, which can only happen for interface element types.
	ErrNotComparable = errors.New(`list: item is not comparable`)

	// ErrIndexOutOfBounds is wrapped by every *IndexError.
	ErrIndexOutOfBounds = errors.New(`list: index out of bounds`)

	// ErrNoSuchElement is returned when an end of an empty list is
	// requested.
	ErrNoSuchElement = errors.New(`list: no such element`)
)

// IndexError describes an index that fell outside the valid range for
// the list's size at the time of the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf(`index: %d, size: %d`, e.Index, e.Size)
}

// Unwrap allows errors.Is(err, ErrIndexOutOfBounds).
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
