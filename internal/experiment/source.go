package experiment

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/db47h/openaddr/hash"
)

// keys is a key stream for a single table run.
type keys[K comparable] struct {
	next func(i int) (K, error) // returns the i-th key of the stream
	hash func(K) uint64
}

func randomKeys(seed uint64) func() keys[int] {
	h := hash.Number[int]()
	return func() keys[int] {
		rnd := rand.New(rand.NewPCG(seed, seed))
		return keys[int]{
			next: func(int) (int, error) { return int(int32(rnd.Uint32())), nil },
			hash: h,
		}
	}
}

func dateKeys(start time.Time) func() keys[int64] {
	h := hash.Identity[int64]()
	return func() keys[int64] {
		ms := start.UnixMilli()
		return keys[int64]{
			next: func(int) (int64, error) {
				ms += 1000
				return ms, nil
			},
			hash: h,
		}
	}
}

func wordKeys(words []string) func() keys[string] {
	h := hash.String()
	return func() keys[string] {
		return keys[string]{
			next: func(i int) (string, error) {
				if i >= len(words) {
					return "", fmt.Errorf("%w: not enough words in file to reach desired load factor", ErrConfig)
				}
				return words[i], nil
			},
			hash: h,
		}
	}
}

// LoadWords reads a newline delimited word list. Each line is trimmed of
// leading and trailing white space.
func LoadWords(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("load word list: %w", err)
	}
	defer f.Close()

	var words []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		words = append(words, strings.TrimSpace(s.Text()))
	}
	if err = s.Err(); err != nil {
		return nil, fmt.Errorf("load word list %s: %w", name, err)
	}
	return words, nil
}
