package openaddr

import "fmt"

// Entry is a key stored in a Table along with its insertion statistics.
type Entry[K comparable] struct {
	key    K
	freq   int
	probes int
}

// Key returns the entry's key.
func (e *Entry[K]) Key() K { return e.key }

// Frequency returns the number of times the key has been inserted.
func (e *Entry[K]) Frequency() int { return e.freq }

// Probes returns the number of probe attempts used to place the key on its
// first insertion. It does not change on subsequent duplicate insertions.
func (e *Entry[K]) Probes() int { return e.probes }

func (e *Entry[K]) String() string { return fmt.Sprint(e.key) }
