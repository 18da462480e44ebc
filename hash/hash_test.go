package hash_test

import (
	"testing"

	"github.com/db47h/openaddr/hash"
	"github.com/stretchr/testify/require"
)

func TestString_stable(t *testing.T) {
	h1, h2 := hash.String(), hash.String()
	for _, s := range []string{"", "mercury", "venus", "earth"} {
		require.Equal(t, h1(s), h2(s), "String(%q)", s)
	}
	require.NotEqual(t, h1("mars"), h1("jupiter"))
	require.Equal(t, hash.Bytes()([]byte("saturn")), h1("saturn"))
}

func TestNumber(t *testing.T) {
	h := hash.Number[int64]()
	seen := make(map[uint64]struct{})
	for i := range int64(1000) {
		v := h(i)
		require.Equal(t, v, h(i))
		seen[v] = struct{}{}
	}
	require.Len(t, seen, 1000)
}

func TestComparable(t *testing.T) {
	type point struct{ x, y int }
	h := hash.Comparable[point]()
	require.Equal(t, h(point{1, 2}), h(point{1, 2}))
	require.NotEqual(t, h(point{1, 2}), h(point{2, 1}))
}

func TestIdentity(t *testing.T) {
	h := hash.Identity[int]()
	require.Equal(t, uint64(7), h(7))
	require.Equal(t, ^uint64(0), h(-1))
}
