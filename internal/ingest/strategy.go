package ingest

import (
	"fmt"
	"log/slog"

	"github.com/nairaflow/nairaflow/internal/common"
	"github.com/nairaflow/nairaflow/internal/normalize"
)

// Extraction strategy names.
const (
	StrategyTable = "table"
	StrategyText  = "text"
	StrategyCSV   = "csv"
	StrategyOFX   = "ofx"
)

// Candidate is one extraction strategy's scored result. Score is the
// count of rows whose date field is structurally valid, not the raw
// row count: a result with many junk rows but few valid dates must
// lose to a smaller, cleaner one. Priority breaks score ties, higher
// winning.
type Candidate struct {
	Result   *normalize.Result
	Strategy string
	Priority int
}

// Score returns the candidate's valid-date count, zero for a candidate
// whose normalization failed outright.
func (c Candidate) Score() int {
	if c.Result == nil {
		return 0
	}
	return c.Result.ValidDates
}

func (c Candidate) rowCount() int {
	if c.Result == nil {
		return 0
	}
	return len(c.Result.Ledger)
}

// Select picks the winning candidate by (score, priority) ordering.
// When every score is zero, the first candidate that produced any rows
// at all wins as a degraded fallback, with a warning; when nothing
// produced rows the caller is told to supply a CSV export instead.
func Select(candidates []Candidate) (*Candidate, []string, error) {
	var best *Candidate
	for i := range candidates {
		c := &candidates[i]
		slog.Debug("strategy scored",
			"strategy", c.Strategy,
			"score", c.Score(),
			"rows", c.rowCount())
		if best == nil ||
			c.Score() > best.Score() ||
			(c.Score() == best.Score() && c.Priority > best.Priority) {
			best = c
		}
	}

	if best != nil && best.Score() > 0 {
		return best, nil, nil
	}

	// All scores are zero. Fall back to whichever candidate still has
	// rows, labeled as degraded.
	for i := range candidates {
		c := &candidates[i]
		if c.rowCount() > 0 {
			warn := fmt.Sprintf(
				"no extraction strategy produced structurally valid dates; falling back to %s extraction with %d row(s)",
				c.Strategy, c.rowCount())
			return c, []string{warn}, nil
		}
	}

	return nil, nil, common.NewUserError(
		"could not extract any valid transactions; please try a CSV export instead",
		common.ErrNoValidRows,
	)
}
