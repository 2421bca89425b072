package node

import (
	"fmt"
	"io"
)

// FormatOutcome renders the report lines for one transaction. units is the
// whole-unit magnitude the diagnostic added.
func FormatOutcome(o Outcome, units uint64) []string {
	if o.Err != nil {
		return []string{fmt.Sprintf("%s could not be analysed: %v", o.TxHash, o.Err)}
	}
	lines := []string{fmt.Sprintf("%s has valid Bulletproofs: %t", o.TxHash, o.Valid)}
	for _, p := range o.Perturbations {
		if !p.Valid {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s with an additional %d added to output %d has valid Bulletproofs: true", o.TxHash, units, p.OutputIndex))
	}
	return lines
}

func WriteReport(w io.Writer, outcomes []Outcome, units uint64) error {
	for _, o := range outcomes {
		for _, line := range FormatOutcome(o, units) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
