// SPDX-License-Identifier: MIT
// Package boolpoly_test locks in the mapper contracts: bijectivity,
// first-seen ordering, ancilla separation and freeze behavior.

package boolpoly_test

import (
	"testing"

	"github.com/katalvlaran/quopt/boolpoly"
	"github.com/stretchr/testify/require"
)

func TestMapper_BijectionFirstSeenOrder(t *testing.T) {
	m := boolpoly.NewMapper[string]()

	c, err := m.IDOf("c")
	require.NoError(t, err)
	a, err := m.IDOf("a")
	require.NoError(t, err)
	require.Equal(t, 0, c, "first label gets id 0 regardless of sort order")
	require.Equal(t, 1, a)

	// Repeated IDOf is stable.
	again, err := m.IDOf("c")
	require.NoError(t, err)
	require.Equal(t, c, again)

	// Inverse lookup round-trips every label.
	for _, label := range m.Labels() {
		id, err := m.IDOf(label)
		require.NoError(t, err)
		back, err := m.LabelOf(id)
		require.NoError(t, err)
		require.Equal(t, label, back)
	}
	require.Equal(t, []string{"c", "a"}, m.Labels())
	require.Equal(t, 2, m.LabelCount())
}

func TestMapper_IntLabels(t *testing.T) {
	m := boolpoly.NewMapper[int]()
	id9, err := m.IDOf(9)
	require.NoError(t, err)
	id4, err := m.IDOf(4)
	require.NoError(t, err)
	require.Equal(t, 0, id9)
	require.Equal(t, 1, id4)
}

func TestMapper_AncillaUnlabeled(t *testing.T) {
	m := boolpoly.NewMapper[string]()
	_, err := m.IDOf("u")
	require.NoError(t, err)
	_, err = m.IDOf("v")
	require.NoError(t, err)

	anc, err := m.Ancilla()
	require.NoError(t, err)
	require.Equal(t, 2, anc, "ancilla continues the shared id sequence")
	require.True(t, m.IsAncilla(anc))
	require.False(t, m.IsAncilla(0))

	_, err = m.LabelOf(anc)
	require.ErrorIs(t, err, boolpoly.ErrUnknownID)

	require.Equal(t, 3, m.Len())
	require.Equal(t, 2, m.LabelCount())
	require.Equal(t, []int{0, 1, 2}, m.IDs())
}

func TestMapper_UnknownID(t *testing.T) {
	m := boolpoly.NewMapper[string]()
	_, err := m.LabelOf(0)
	require.ErrorIs(t, err, boolpoly.ErrUnknownID)
	require.False(t, m.Contains(0))
}

func TestMapper_Freeze(t *testing.T) {
	m := boolpoly.NewMapper[string]()
	u, err := m.IDOf("u")
	require.NoError(t, err)

	m.Freeze()
	require.True(t, m.Frozen())

	// Existing lookups keep working.
	again, err := m.IDOf("u")
	require.NoError(t, err)
	require.Equal(t, u, again)

	// New allocation of any kind is rejected.
	_, err = m.IDOf("w")
	require.ErrorIs(t, err, boolpoly.ErrFrozenMapping)
	_, err = m.Ancilla()
	require.ErrorIs(t, err, boolpoly.ErrFrozenMapping)
}

func TestMapper_FingerprintsDistinct(t *testing.T) {
	a := boolpoly.NewMapper[string]()
	b := boolpoly.NewMapper[string]()
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint(),
		"independently built mappers must never share an identity")
}
