package experiment

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/axiomhq/hyperloglog"
	"github.com/db47h/openaddr"
	"github.com/db47h/openaddr/prime"
)

// Report holds the outcome of an experiment.
type Report struct {
	Capacity   int      `json:"capacity"`
	Source     string   `json:"source"`
	LoadFactor float64  `json:"loadFactor"`
	Results    []Result `json:"results"`
}

// Result holds the statistics of a single table run.
type Result struct {
	Strategy      string  `json:"strategy"`
	Unique        int     `json:"unique"`
	Inserted      int     `json:"inserted"`
	Duplicates    int     `json:"duplicates"`
	TotalProbes   int     `json:"totalProbes"`
	AverageProbes float64 `json:"averageProbes"`
	Distinct      uint64  `json:"distinctEstimate"` // HyperLogLog estimate of unique keys
	DumpFile      string  `json:"dumpFile,omitempty"`
}

var strategies = []openaddr.Strategy{openaddr.Linear{}, openaddr.DoubleHash{}}

var dumpFiles = map[string]string{
	openaddr.Linear{}.String():     "linear-dump.txt",
	openaddr.DoubleHash{}.String(): "double-dump.txt",
}

// Run runs the experiment described by cfg for each probe strategy and
// writes progress and summaries to w.
//
// Configuration errors are detected before any table is filled. Dump file
// errors are logged and do not abort the experiment.
func Run(cfg *Config, w io.Writer) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := prime.TwinPrime(cfg.Min, cfg.Max)
	if err != nil {
		return nil, fmt.Errorf("%w: table capacity: %v", ErrConfig, err)
	}
	n := int(float64(m) * cfg.LoadFactor)

	rep := &Report{Capacity: m, Source: cfg.Source.String(), LoadFactor: cfg.LoadFactor}
	if !cfg.JSON {
		fmt.Fprintf(w, "hashexp: Found a twin prime table capacity: %d\n", m)
		fmt.Fprintf(w, "hashexp: Input: %s    Loadfactor: %.2f\n\n", cfg.Source, cfg.LoadFactor)
	}

	switch cfg.Source {
	case Random:
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rep.Results, err = runAll(cfg, m, n, w, randomKeys(seed))
	case Date:
		rep.Results, err = runAll(cfg, m, n, w, dateKeys(time.Now()))
	case Words:
		var words []string
		if words, err = LoadWords(cfg.WordList); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		if len(words) < n {
			return nil, fmt.Errorf("%w: %d words in %s, need at least %d", ErrConfig, len(words), cfg.WordList, n)
		}
		rep.Results, err = runAll(cfg, m, n, w, wordKeys(words))
	}
	if err != nil {
		return nil, err
	}

	if cfg.JSON && cfg.Debug != Trace {
		if err = writeJSON(w, rep); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func runAll[K comparable](cfg *Config, m, n int, w io.Writer, newKeys func() keys[K]) ([]Result, error) {
	results := make([]Result, 0, len(strategies))
	for _, s := range strategies {
		r, err := run(cfg, m, n, s, newKeys(), w)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, nil
}

// run inserts keys into a new table until it holds n unique keys.
func run[K comparable](cfg *Config, m, n int, s openaddr.Strategy, ks keys[K], w io.Writer) (*Result, error) {
	opts := []openaddr.Option{openaddr.Hasher(ks.hash)}
	if cfg.Debug == Trace {
		opts = append(opts, openaddr.OnInsert(func(key K, r openaddr.InsertResult) {
			if r.Duplicate {
				fmt.Fprintf(w, "Element %v inserted at %d (duplicate)\n", key, r.Slot)
			} else {
				fmt.Fprintf(w, "Element %v inserted at %d\n", key, r.Slot)
			}
		}))
	}
	t := openaddr.New[K](m, s, opts...)
	hll := hyperloglog.New16()

	for i := 0; t.Len() < n; i++ {
		key, err := ks.next(i)
		if err != nil {
			return nil, err
		}
		if _, err = t.Insert(key); err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		hll.InsertHash(ks.hash(key))
	}

	inserted := t.Frequencies()
	avg := t.AverageProbes()
	if t.Len() == 0 {
		avg = 0
	}
	r := &Result{
		Strategy:      s.String(),
		Unique:        t.Len(),
		Inserted:      inserted,
		Duplicates:    inserted - t.Len(),
		TotalProbes:   t.TotalProbes(),
		AverageProbes: avg,
		Distinct:      hll.Estimate(),
	}

	if cfg.Debug == Trace {
		return r, nil
	}
	if !cfg.JSON {
		writeSummary(w, r)
	}
	if cfg.Debug == Dump {
		name := filepath.Join(cfg.OutDir, dumpFiles[s.String()])
		if err := t.DumpFile(name); err != nil {
			log.Printf("%s: %v", s, err)
		} else {
			r.DumpFile = name
			if !cfg.JSON {
				fmt.Fprint(w, "hashexp: Saved dump of hash table\n\n")
			}
		}
	}
	return r, nil
}
