// Command hashexp compares linear probing and double hashing probe costs.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/db47h/openaddr/internal/experiment"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hashexp: ")

	cfg, err := experiment.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, experiment.Usage)
		os.Exit(1)
	}
	if _, err = experiment.Run(cfg, os.Stdout); err != nil {
		if errors.Is(err, experiment.ErrConfig) {
			log.Print(err)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
