package openaddr

import "fmt"

type Option interface {
	set(*option)
}

type optFunc func(*option)

func (f optFunc) set(o *option) {
	f(o)
}

type option struct {
	hasher   any
	onInsert any
}

func getOpts(opts []Option) *option {
	o := new(option)
	for _, op := range opts {
		op.set(o)
	}
	return o
}

// Hasher sets the hash function used to map keys to slots. hasher must be a
// func(K) uint64 where K is the table's key type. The default is a seeded
// hasher from github.com/dolthub/maphash.
func Hasher(hasher any) Option {
	return optFunc(func(o *option) {
		o.hasher = hasher
	})
}

// OnInsert sets a function called after each successful insertion. f must be
// a func(K, InsertResult).
func OnInsert(f any) Option {
	return optFunc(func(o *option) {
		o.onInsert = f
	})
}

func hasherOf[K comparable](h any) func(K) uint64 {
	f, ok := h.(func(K) uint64)
	if !ok {
		var zero K
		panic(fmt.Sprintf("Hasher: expected func(%T) uint64, got %T", zero, h))
	}
	return f
}

func onInsertOf[K comparable](h any) func(K, InsertResult) {
	f, ok := h.(func(K, InsertResult))
	if !ok {
		var zero K
		panic(fmt.Sprintf("OnInsert: expected func(%T, InsertResult), got %T", zero, h))
	}
	return f
}
