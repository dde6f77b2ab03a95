// Copyright (c) 2025, Grigory Buteyko aka Hrissan
// Licensed under the MIT License. See LICENSE for details.

package splitend

// node is one cell of a singly linked chain. A node is never written
// to after construction, which is what makes sharing chains between
// handles safe. next is nil only for root nodes; chains are acyclic
// by construction since next always references an older node.
type node[T comparable] struct {
	data T
	next *node[T]
}
