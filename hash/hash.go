// Package hash provides key hashers for use with openaddr tables.
//
// Seeded hashers (Number, Comparable) produce different values on each run.
// Use String, Bytes or Identity when table layouts must be reproducible.
package hash

import (
	"math/bits"
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

var hashkey = [...]uint64{rand.Uint64(), rand.Uint64()}

// String returns an unseeded xxhash string hasher.
func String() func(string) uint64 {
	return xxhash.Sum64String
}

// Bytes returns an unseeded xxhash byte slice hasher.
func Bytes() func([]byte) uint64 {
	return xxhash.Sum64
}

// Comparable returns a seeded hasher for any comparable type.
func Comparable[K comparable]() func(K) uint64 {
	h := maphash.NewHasher[K]()
	return h.Hash
}

const m5 = 0x1d8e4e27c47d124f

type IntType interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func Number[T IntType]() func(v T) uint64 {
	seed := rand.Uint64()
	return func(v T) uint64 {
		a := uint64(v)
		return mix(m5^uint64(unsafe.Sizeof(v)), mix(a^hashkey[1], a^seed^hashkey[0]))
	}
}

// Identity returns a hasher that maps v to itself. Signed values are sign
// extended before conversion, so a negative v does not reduce to v mod m in
// a table of size m: with m = 5, -1 lands in slot 0, not 4.
func Identity[T IntType]() func(v T) uint64 {
	return func(v T) uint64 { return uint64(v) }
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return hi ^ lo
}
