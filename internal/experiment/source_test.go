package experiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_dateKeys(t *testing.T) {
	start := time.UnixMilli(1_700_000_000_000)
	newKeys := dateKeys(start)
	a, b := newKeys(), newKeys()
	for i := range 10 {
		ka, err := a.next(i)
		require.NoError(t, err)
		kb, err := b.next(i)
		require.NoError(t, err)
		require.Equal(t, start.UnixMilli()+int64(i+1)*1000, ka)
		require.Equal(t, ka, kb)
		// unseeded: same slots across runs with the same origin
		require.Equal(t, uint64(ka), a.hash(ka))
	}
}
