package openaddr

import (
	"math/rand/v2"
	"testing"

	"github.com/db47h/openaddr/prime"
	"github.com/stretchr/testify/require"
)

func Test_probe_fullCycle(t *testing.T) {
	for range 50 {
		m, err := prime.TwinPrime(rand.N(1<<12), 1<<13)
		require.NoError(t, err)
		visited := make([]bool, m)
		p := DoubleHash{}.Probe(rand.Uint64(), m)
		p0 := p
		for i := range m {
			require.Equal(t, p0.At(i), p.Offset())
			require.False(t, visited[p.Offset()], "m = %d, step = %d: slot %d visited twice", m, p.Step(), p.Offset())
			visited[p.Offset()] = true
			p = p.Next()
		}
		// back to initial pos after m iterations
		require.Equal(t, p0.Offset(), p.Offset())
	}
}

func Test_probe_doubleHashStep(t *testing.T) {
	for range 1000 {
		m, err := prime.TwinPrime(rand.N(1<<10), 1<<11)
		require.NoError(t, err)
		h := rand.Uint64()
		p := DoubleHash{}.Probe(h, m)
		require.GreaterOrEqual(t, p.Step(), 1)
		require.LessOrEqual(t, p.Step(), m-2)
		require.Equal(t, int(h%uint64(m)), p.Offset())
		require.Equal(t, 1+int(h%uint64(m-2)), p.Step())
	}
}

func Test_probe_linear(t *testing.T) {
	const m = 13
	p := Linear{}.Probe(11, m)
	p0 := p
	want := []int{11, 12, 0, 1, 2}
	for i, w := range want {
		require.Equal(t, w, p0.At(i))
		require.Equal(t, w, p.Offset())
		p = p.Next()
	}
}

func Test_probe_smallTables(t *testing.T) {
	for m := 1; m <= 2; m++ {
		for _, s := range []Strategy{Linear{}, DoubleHash{}} {
			p := s.Probe(rand.Uint64(), m)
			require.Equal(t, 1, p.Step(), "%s, m = %d", s, m)
			seen := make(map[int]bool)
			for i := range m {
				seen[p.At(i)] = true
			}
			require.Len(t, seen, m)
		}
	}
}
