package gecko

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Options configures one MakeECModel call. Every collaborator is explicit;
// nothing falls back to package-level state.
type Options struct {
	// Mode selects the full or light structural variant
	Mode Mode

	// DB resolves gene-derived keys to enzyme identifier, molecular weight,
	// and sequence. Required.
	DB ProteinLookup

	// Adapter supplies the gene-to-key transform and base storage path
	Adapter Adapter

	// Logger receives non-fatal warnings and the completion summary; nil
	// means no logging
	Logger *zap.SugaredLogger

	// PoolUB caps the protein pool exchange; zero leaves it unconstrained
	PoolUB float64
}

// Report summarizes one transformation
type Report struct {
	Split        int // reversible reactions split into twins
	Expanded     int // reactions expanded into isoenzyme copies
	ECEntries    int // rows in the enzyme-constraint structure
	Enzymes      int // genes resolved against the protein database
	MissingGenes int // genes dropped for lack of a database record
	Ambiguous    int // reactions with nested AND-of-OR GPR logic
}

// MakeECModel rebuilds a stoichiometric model into an enzyme-constrained one
// in place and attaches the resulting enzyme-constraint structure to it. All
// fatal checks run before the first mutation, so on error the model is
// unchanged. The transformation is one-shot: running it on its own output
// fails the reserved-identifier precondition.
func MakeECModel(m *Model, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.DB == nil {
		return nil, fmt.Errorf("%w: a protein database lookup is required", ErrPrecondition)
	}

	ambiguous, err := validate(m, log)
	if err != nil {
		return nil, err
	}

	normalizeDirections(m)
	split := splitReversible(m)

	expanded := 0
	if opts.Mode == ModeFull {
		expanded = expandIsozymes(m)
		regroupSiblings(m)
	}

	ec := buildEC(m, opts.Mode)
	missing := resolveEnzymes(m, ec, opts)
	if missing > 0 {
		log.Warnw("genes missing from the protein database were dropped and will not be enzyme-constrained",
			"missing", missing,
			"resolved", len(ec.Enzymes),
		)
	}
	populateIncidence(m, ec)
	injectProteins(m, ec, opts.PoolUB)
	m.EC = ec

	report := &Report{
		Split:        split,
		Expanded:     expanded,
		ECEntries:    ec.Entries(),
		Enzymes:      len(ec.Enzymes),
		MissingGenes: missing,
		Ambiguous:    len(ambiguous),
	}
	log.Infow("enzyme-constrained model built",
		"mode", opts.Mode.String(),
		"reactions", len(m.Rxns),
		"metabolites", len(m.Mets),
		"ecEntries", report.ECEntries,
		"enzymes", report.Enzymes,
		"split", report.Split,
		"expanded", report.Expanded,
		"missingGenes", report.MissingGenes,
	)

	return report, nil
}

// resolveEnzymes looks every model gene up in the protein database and fills
// the per-enzyme arrays of ec with the resolved records, in model gene order.
// Genes without a record are skipped (recoverable); their count is returned.
func resolveEnzymes(m *Model, ec *EnzymeConstraints, opts Options) (missing int) {
	keys := make([]string, len(m.Genes))
	for i, g := range m.Genes {
		keys[i] = opts.Adapter.key(g)
	}

	matches := opts.DB.Lookup(keys)
	for i, match := range matches {
		if !match.Found {
			missing++
			continue
		}
		ec.Genes = append(ec.Genes, m.Genes[i])
		ec.Enzymes = append(ec.Enzymes, match.Enzyme)
		ec.MWs = append(ec.MWs, match.MW)
		ec.Sequences = append(ec.Sequences, match.Sequence)
		ec.EnzConcs = append(ec.EnzConcs, math.NaN())
	}

	return missing
}
