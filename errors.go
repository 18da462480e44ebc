package openaddr

import "errors"

// ErrOverflow is returned by Table.Insert when the probe sequence for a key
// is exhausted without finding either the key or a free slot.
var ErrOverflow = errors.New("hash table overflow")
