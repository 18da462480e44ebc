// Package experiment compares the probe cost of linear probing and double
// hashing on the same key stream at a given load factor.
package experiment

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrConfig is wrapped by all errors caused by invalid arguments or input data.
var ErrConfig = errors.New("invalid configuration")

const Usage = `Usage: hashexp [flags] <dataSource> <loadFactor> [<debugLevel>]
       <dataSource>: 1 ==> random numbers
                     2 ==> date value as a long
                     3 ==> word list
       <loadFactor>: The ratio of objects to table size,
                       denoted by alpha = n/m
       <debugLevel>: 0 ==> print summary of experiment
                     1 ==> save the two hash tables to a file at the end
                     2 ==> print debugging output for each insert
`

// Source identifies where experiment keys come from.
type Source int

const (
	Random Source = 1 + iota // random integers
	Date                     // sequential timestamps in milliseconds
	Words                    // lines of a word list file
)

func (s Source) String() string {
	switch s {
	case Random:
		return "Random numbers"
	case Date:
		return "Date"
	case Words:
		return "Word list"
	default:
		return "Unknown"
	}
}

// Debug levels.
const (
	Summary = iota // print a summary of each run
	Dump           // summary and table dumps
	Trace          // one line per insertion, no summary
)

// Config holds the parameters of an experiment.
type Config struct {
	Source     Source
	LoadFactor float64
	Debug      int

	WordList string // word list path for the Words source
	Min, Max int    // twin prime search range for the table capacity
	JSON     bool   // print the summary as JSON
	OutDir   string // dump files directory

	// Seed seeds the random key stream, 0 means time based. Random keys are
	// hashed with a per process seed, so a fixed Seed reproduces the keys but
	// not their slots.
	Seed uint64
}

// DefaultConfig returns a Config with all optional fields set to their
// default values.
func DefaultConfig() *Config {
	return &Config{
		Source:   Random,
		WordList: "word-list.txt",
		Min:      95500,
		Max:      96000,
		OutDir:   ".",
	}
}

// ParseArgs parses command line arguments, program name excluded.
func ParseArgs(args []string) (*Config, error) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("hashexp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.WordList, "words", c.WordList, "word list `file`")
	fs.IntVar(&c.Min, "min", c.Min, "twin prime search lower bound")
	fs.IntVar(&c.Max, "max", c.Max, "twin prime search upper bound")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random source seed")
	fs.BoolVar(&c.JSON, "json", c.JSON, "print summary as JSON")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "dump files `directory`")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	pos := fs.Args()
	if len(pos) < 2 || len(pos) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 arguments, got %d", ErrConfig, len(pos))
	}
	src, err := strconv.Atoi(pos[0])
	if err != nil {
		return nil, fmt.Errorf("%w: data source: %v", ErrConfig, err)
	}
	c.Source = Source(src)
	if c.LoadFactor, err = strconv.ParseFloat(pos[1], 64); err != nil {
		return nil, fmt.Errorf("%w: load factor: %v", ErrConfig, err)
	}
	if len(pos) == 3 {
		if c.Debug, err = strconv.Atoi(pos[2]); err != nil {
			return nil, fmt.Errorf("%w: debug level: %v", ErrConfig, err)
		}
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that all fields of c are within range.
func (c *Config) Validate() error {
	switch {
	case c.Source < Random || c.Source > Words:
		return fmt.Errorf("%w: invalid data source: %d", ErrConfig, c.Source)
	case math.IsNaN(c.LoadFactor) || c.LoadFactor < 0 || c.LoadFactor > 1:
		return fmt.Errorf("%w: invalid load factor: %v", ErrConfig, c.LoadFactor)
	case c.Debug < Summary || c.Debug > Trace:
		return fmt.Errorf("%w: invalid debug level: %d", ErrConfig, c.Debug)
	case c.Min < 0 || c.Min > c.Max:
		return fmt.Errorf("%w: invalid capacity range [%d, %d]", ErrConfig, c.Min, c.Max)
	case c.Source == Words && c.WordList == "":
		return fmt.Errorf("%w: no word list", ErrConfig)
	}
	return nil
}
