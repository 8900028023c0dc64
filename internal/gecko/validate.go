package gecko

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrPrecondition marks fatal input problems detected before any mutation:
// reserved identifier collisions, incompatible import formats, or malformed
// model arrays. Test with errors.Is.
var ErrPrecondition = errors.New("precondition violation")

// Check runs every fatal precondition check against a model and logs the
// non-fatal ambiguous-GPR warning. It never mutates the model, so a failed
// check leaves the caller's model untouched.
func Check(m *Model, log *zap.SugaredLogger) error {
	_, err := validate(m, log)
	return err
}

// validate is Check plus the list of reactions with ambiguous GPR logic, for
// the transform report
func validate(m *Model, log *zap.SugaredLogger) ([]string, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if err := m.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrecondition, err)
	}

	if m.EC != nil {
		return nil, fmt.Errorf("%w: model already carries an enzyme-constraint structure; rebuild from the unconstrained model instead", ErrPrecondition)
	}

	// models loaded through the numeric-rule import path carry "x(1) | x(2)"
	// rules instead of gene-name GPRs and cannot be rebuilt from
	if foreignRules(m) {
		return nil, fmt.Errorf("%w: model carries numeric-index gene rules but no GPR strings; it was loaded through an incompatible import path, reload the model with the native reader (gecko build --model)", ErrPrecondition)
	}

	if err := checkReserved(m); err != nil {
		return nil, err
	}

	var ambiguous []string
	for j, gpr := range m.GPRs {
		tree, err := parseGPR(gpr)
		if err != nil {
			return nil, fmt.Errorf("%w: reaction %s: %v", ErrPrecondition, m.Rxns[j], err)
		}
		if tree.ambiguous() {
			ambiguous = append(ambiguous, m.Rxns[j])
			log.Warnw("ambiguous GPR logic: OR nested under AND cannot be represented as flat enzyme complexes and will be flattened best-effort; correct the rule manually",
				"reaction", m.Rxns[j],
				"gpr", gpr,
			)
		}
	}

	return ambiguous, nil
}

// foreignRules reports whether the model has numeric-index rules without any
// GPR string to go with them
func foreignRules(m *Model) bool {
	hasRule := false
	for _, r := range m.Rules {
		if strings.TrimSpace(r) != "" {
			hasRule = true
			break
		}
	}
	if !hasRule {
		return false
	}
	for _, gpr := range m.GPRs {
		if strings.TrimSpace(gpr) != "" {
			return false
		}
	}
	return true
}

// checkReserved rejects models whose identifiers collide with the protein
// pseudometabolite, usage/pool reaction, or split/expansion grammar. Such
// identifiers mean the model was already rebuilt (the transformation is
// one-shot) or uses an incompatible naming scheme.
func checkReserved(m *Model) error {
	for _, id := range m.Mets {
		if strings.HasPrefix(id, ProtPrefix) {
			return fmt.Errorf("%w: metabolite %q uses the reserved protein pseudometabolite prefix %q; the model appears to be enzyme-constrained already", ErrPrecondition, id, ProtPrefix)
		}
	}
	for _, id := range m.Rxns {
		switch {
		case strings.HasPrefix(id, UsagePrefix):
			return fmt.Errorf("%w: reaction %q uses the reserved usage reaction prefix %q; the model appears to be enzyme-constrained already", ErrPrecondition, id, UsagePrefix)
		case strings.HasPrefix(id, PoolRxn):
			return fmt.Errorf("%w: reaction %q uses the reserved pool exchange identifier %q; the model appears to be enzyme-constrained already", ErrPrecondition, id, PoolRxn)
		case strings.HasSuffix(id, RevSuffix):
			return fmt.Errorf("%w: reaction %q uses the reserved reverse-split suffix %q; rename it before rebuilding", ErrPrecondition, id, RevSuffix)
		case strings.Contains(id, ExpSuffix):
			return fmt.Errorf("%w: reaction %q uses the reserved isoenzyme expansion suffix %q; rename it before rebuilding", ErrPrecondition, id, ExpSuffix)
		}
	}
	return nil
}
