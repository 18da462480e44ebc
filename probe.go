package openaddr

// Strategy computes probe sequences for a table with m slots.
type Strategy interface {
	// Probe returns the probe sequence for the given key hash.
	Probe(hash uint64, m int) Probe
	String() string
}

// Probe is a probe sequence (h1 + i*step) mod m.
//
// The sequence visits every slot exactly once in m attempts if and only if
// step and m are coprime.
type Probe struct {
	offset int
	step   int
	m      int
}

// At returns the slot index for attempt i.
func (p Probe) At(i int) int {
	return int((uint64(p.offset) + uint64(i)*uint64(p.step)) % uint64(p.m))
}

// Next returns the sequence advanced by one attempt.
func (p Probe) Next() Probe {
	p.offset = addModulo(p.offset, p.step, p.m)
	return p
}

// Offset returns the current slot index.
func (p Probe) Offset() int { return p.offset }

// Step returns the distance between two consecutive slots.
func (p Probe) Step() int { return p.step }

// Linear probing: probe(k, i) = (h1(k) + i) mod m.
type Linear struct{}

func (Linear) Probe(hash uint64, m int) Probe {
	return Probe{offset: reduce(hash, m), step: 1, m: m}
}

func (Linear) String() string { return "Linear Probing" }

// DoubleHash probing: probe(k, i) = (h1(k) + i*h2(k)) mod m where
// h2(k) = 1 + hash(k) mod (m-2).
//
// m and m-2 must both be prime for the sequence to cover the whole table. When
// m <= 2 the step is 1.
type DoubleHash struct{}

func (DoubleHash) Probe(hash uint64, m int) Probe {
	step := 1
	if m > 2 {
		step += reduce(hash, m-2)
	}
	return Probe{offset: reduce(hash, m), step: step, m: m}
}

func (DoubleHash) String() string { return "Double Hashing" }

// reduce maps hash to the range [0, n).
func reduce(hash uint64, n int) int {
	return int(hash % uint64(n))
}

// addModulo adds x to pos and returns the new position in [0, sz). Both pos
// and x must be in [0, sz).
func addModulo(pos, x, sz int) int {
	pos += x
	if pos >= sz {
		pos -= sz
	}
	return pos
}
