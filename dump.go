package openaddr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Dump writes one line per occupied slot to w, in slot order:
//
//	table[<slot>]: <key> <frequency> <probes>
func (t *Table[K]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, e := range t.All() {
		if _, err := fmt.Fprintf(bw, "table[%d]: %v %d %d\n", i, e.key, e.freq, e.probes); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DumpFile writes the table dump to the named file, creating or truncating it.
func (t *Table[K]) DumpFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	err = t.Dump(f)
	if cerr := f.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return fmt.Errorf("dump %s: %w", name, err)
	}
	return nil
}
