package ingest

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/normalize"
	"github.com/nairaflow/nairaflow/internal/summary"
)

// Pipeline turns one statement document into a canonical ledger plus
// summary. Processing is a linear sequence of pure transformations
// over immutable intermediate tables; a Pipeline holds only read-only
// configuration and is safe for concurrent use by independent workers.
type Pipeline struct {
	// MinMonths is the minimum recommended statement coverage before a
	// short-history warning is emitted.
	MinMonths int
}

// NewPipeline creates a pipeline with default settings.
func NewPipeline() *Pipeline {
	return &Pipeline{MinMonths: summary.DefaultMinMonths}
}

// Process ingests one document end to end. Fatal failures return a
// user-renderable error; row-local failures are absorbed into drop
// counts and surfaced as warnings on the statement. A document either
// completes or fails atomically; callers wanting cancellation or
// timeouts should wrap this call.
func (p *Pipeline) Process(ctx context.Context, path string) (*model.Statement, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var (
		ledger   model.Ledger
		strategy string
		warnings []string
	)

	switch format {
	case FormatCSV:
		table, loadErr := LoadCSV(path)
		if loadErr != nil {
			return nil, loadErr
		}
		res, normErr := normalize.Normalize(table)
		if normErr != nil {
			return nil, normErr
		}
		ledger = res.Ledger
		strategy = StrategyCSV
		warnings = append(warnings, res.Warnings...)

	case FormatPDF:
		pages, loadErr := LoadPDF(path)
		if loadErr != nil {
			return nil, loadErr
		}
		winner, selectWarns, selErr := p.selectPDFStrategy(pages)
		if selErr != nil {
			return nil, selErr
		}
		ledger = winner.Result.Ledger
		strategy = winner.Strategy
		warnings = append(warnings, selectWarns...)
		warnings = append(warnings, winner.Result.Warnings...)

	case FormatOFX:
		ofxLedger, loadErr := LoadOFX(ctx, path)
		if loadErr != nil {
			return nil, loadErr
		}
		ledger = ofxLedger
		strategy = StrategyOFX
	}

	ledger.Sort()
	sum, sumWarns := summary.Build(ledger, p.MinMonths)
	warnings = append(warnings, sumWarns...)

	slog.Info("statement ingested",
		"source", filepath.Base(path),
		"strategy", strategy,
		"transactions", len(ledger),
		"warnings", len(warnings))

	return &model.Statement{
		Source:   path,
		Strategy: strategy,
		Ledger:   ledger,
		Summary:  sum,
		Warnings: warnings,
	}, nil
}

// selectPDFStrategy runs both extraction strategies independently,
// normalizes each result, and selects by score. A strategy whose
// normalization fails (for instance no recognizable columns) simply
// scores zero; only the selection itself can fail the document.
func (p *Pipeline) selectPDFStrategy(pages []Page) (*Candidate, []string, error) {
	candidates := make([]Candidate, 0, 2)

	if table := ExtractTable(pages); table != nil {
		res, err := normalize.Normalize(table)
		if err != nil {
			slog.Debug("table strategy unusable", "error", err)
		}
		candidates = append(candidates, Candidate{Strategy: StrategyTable, Priority: 0, Result: res})
	}

	if table := ExtractText(pages); table != nil {
		res, err := normalize.Normalize(table)
		if err != nil {
			slog.Debug("text strategy unusable", "error", err)
		}
		// Text extraction degrades more gracefully on merged or garbled
		// table borders, so it wins score ties.
		candidates = append(candidates, Candidate{Strategy: StrategyText, Priority: 1, Result: res})
	}

	return Select(candidates)
}
