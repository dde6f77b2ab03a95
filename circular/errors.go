// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package circular

import (
	"fmt"
)

// BoundsError reports an index outside the valid window of a Buffer.
// Indexing is the only buffer operation that can fail; pushes, pops and
// iteration are total.
type BoundsError struct {
	Index int // the offending position
	Count int // buffer length at the time of the access
}

func (e *BoundsError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("circular: index %d into empty buffer", e.Index)
	}
	return fmt.Sprintf("circular: index %d out of range [%d, %d]", e.Index, -e.Count, e.Count-1)
}
