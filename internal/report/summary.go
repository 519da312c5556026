package report

import (
	"fmt"
	"io"

	"lead-sync/internal/domain"
)

// Summary is a read-only fold over a run's leads.
type Summary struct {
	ByStatus map[domain.Status]int
	Calls    int
	Forms    int
	Total    int
}

// Summarize counts leads per resolved status and per kind. Only statuses
// that occur appear in ByStatus.
func Summarize(leads []domain.Lead) Summary {
	s := Summary{ByStatus: map[domain.Status]int{}}
	for _, l := range leads {
		s.ByStatus[l.Status]++
		if l.Kind == domain.KindCall {
			s.Calls++
		} else {
			s.Forms++
		}
	}
	s.Total = len(leads)
	return s
}

// Print writes the status breakdown in pipeline order, then the partition.
func Print(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, "\n  Status breakdown:"); err != nil {
		return err
	}
	for _, st := range domain.Statuses {
		n, ok := s.ByStatus[st]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "    %s: %d\n", st, n); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n  Calls: %d  |  Forms: %d  |  Total: %d\n", s.Calls, s.Forms, s.Total)
	return err
}
