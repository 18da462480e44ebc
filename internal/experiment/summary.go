package experiment

import (
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

func writeSummary(w io.Writer, r *Result) {
	fmt.Fprintf(w, "\tUsing %s\n", r.Strategy)
	fmt.Fprintf(w, "hashexp: size of hash table is %d\n", r.Unique)
	fmt.Fprintf(w, "\tInserted %d elements, of which %d were duplicates\n", r.Inserted, r.Duplicates)
	fmt.Fprintf(w, "\tEstimated distinct keys = %d\n", r.Distinct)
	fmt.Fprintf(w, "\tAvg. no. of probes = %.2f\n\n", r.AverageProbes)
}

func writeJSON(w io.Writer, rep *Report) error {
	b, err := sonnet.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
