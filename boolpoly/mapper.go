// SPDX-License-Identifier: MIT
// Package: quopt/boolpoly
//
// mapper.go — label ↔ dense-id bijection with ancilla allocation.

package boolpoly

import (
	"fmt"

	"github.com/google/uuid"
)

// Mapper assigns dense non-negative integer ids to caller-chosen labels in
// first-seen order. Labeled ids and unlabeled ancilla ids share one id
// sequence, so Len counts both. A Mapper is not safe for concurrent
// mutation; models own one each and mutate it single-goroutine.
//
// Contracts:
//   - No two labels ever share an id; repeated IDOf on a label is stable.
//   - Ids are 0..Len()-1 with no holes.
//   - Fingerprint is fixed at construction and identifies this mapping in
//     payloads and decoded assignments.
//   - After Freeze, IDOf of an unseen label and Ancilla fail with
//     ErrFrozenMapping; lookups stay available.
type Mapper[L comparable] struct {
	fingerprint uuid.UUID
	ids         map[L]int
	byID        map[int]L
	order       []L
	ancilla     map[int]struct{}
	next        int
	frozen      bool
}

// NewMapper returns an empty mapper with a fresh random fingerprint.
func NewMapper[L comparable]() *Mapper[L] {
	return &Mapper[L]{
		fingerprint: uuid.New(),
		ids:         make(map[L]int),
		byID:        make(map[int]L),
		ancilla:     make(map[int]struct{}),
	}
}

// IDOf returns the id of label, allocating the next unused id on first use.
func (m *Mapper[L]) IDOf(label L) (int, error) {
	if id, ok := m.ids[label]; ok {
		return id, nil
	}
	if m.frozen {
		return 0, fmt.Errorf("IDOf(%v): %w", label, ErrFrozenMapping)
	}
	id := m.next
	m.next++
	m.ids[label] = id
	m.byID[id] = label
	m.order = append(m.order, label)
	return id, nil
}

// LabelOf returns the label of a labeled id. Unallocated and ancilla ids
// fail with ErrUnknownID.
func (m *Mapper[L]) LabelOf(id int) (L, error) {
	if label, ok := m.byID[id]; ok {
		return label, nil
	}
	var zero L
	return zero, fmt.Errorf("LabelOf(%d): %w", id, ErrUnknownID)
}

// Ancilla allocates the next unused id as a synthetic, unlabeled variable.
func (m *Mapper[L]) Ancilla() (int, error) {
	if m.frozen {
		return 0, fmt.Errorf("Ancilla: %w", ErrFrozenMapping)
	}
	id := m.next
	m.next++
	m.ancilla[id] = struct{}{}
	return id, nil
}

// IsAncilla reports whether id was allocated by Ancilla.
func (m *Mapper[L]) IsAncilla(id int) bool {
	_, ok := m.ancilla[id]
	return ok
}

// Contains reports whether id was ever allocated (labeled or ancilla).
func (m *Mapper[L]) Contains(id int) bool { return id >= 0 && id < m.next }

// Len returns the total number of allocated ids, ancillas included.
func (m *Mapper[L]) Len() int { return m.next }

// LabelCount returns the number of labeled (caller-visible) ids.
func (m *Mapper[L]) LabelCount() int { return len(m.order) }

// Labels returns the labels in first-seen order. The slice is a copy.
func (m *Mapper[L]) Labels() []L {
	out := make([]L, len(m.order))
	copy(out, m.order)
	return out
}

// IDs returns every allocated id in ascending order.
func (m *Mapper[L]) IDs() []int {
	out := make([]int, m.next)
	for i := range out {
		out[i] = i
	}
	return out
}

// Fingerprint returns the mapping's identity tag.
func (m *Mapper[L]) Fingerprint() uuid.UUID { return m.fingerprint }

// Freeze stops further allocation. Idempotent.
func (m *Mapper[L]) Freeze() { m.frozen = true }

// Frozen reports whether Freeze was called.
func (m *Mapper[L]) Frozen() bool { return m.frozen }
