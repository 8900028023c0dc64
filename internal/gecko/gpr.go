package gecko

import (
	"fmt"
	"strings"
)

// gprOp is the node kind in a parsed GPR expression tree
type gprOp int

const (
	opGene gprOp = iota
	opAnd
	opOr
)

// gprNode is one node of a parsed GPR boolean expression. Nested chains of
// the same operator are flattened during parsing, so an opAnd/opOr node never
// has a child of the same kind.
type gprNode struct {
	op   gprOp
	gene string
	kids []*gprNode
}

// parseGPR parses a gene-protein-reaction rule such as
// "G1 and G2 or (G3 and G4)" into an expression tree. The keywords "and" and
// "or" are case-insensitive and bind tighter ("and") and looser ("or") as
// usual. An empty rule parses to a nil tree.
func parseGPR(s string) (*gprNode, error) {
	toks := tokenizeGPR(s)
	if len(toks) == 0 {
		return nil, nil
	}

	p := &gprParser{toks: toks}
	node, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected token %q in GPR %q", p.toks[p.pos], s)
	}
	return node, nil
}

// tokenizeGPR splits a rule into parentheses and gene/keyword words
func tokenizeGPR(s string) []string {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	return strings.Fields(s)
}

type gprParser struct {
	toks []string
	pos  int
}

func (p *gprParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

// orExpr := andExpr { "or" andExpr }
func (p *gprParser) orExpr() (*gprNode, error) {
	node, err := p.andExpr()
	if err != nil {
		return nil, err
	}

	kids := []*gprNode{node}
	for strings.EqualFold(p.peek(), "or") {
		p.pos++
		next, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		kids = append(kids, next)
	}
	if len(kids) == 1 {
		return node, nil
	}
	return &gprNode{op: opOr, kids: flattenKids(kids, opOr)}, nil
}

// andExpr := factor { "and" factor }
func (p *gprParser) andExpr() (*gprNode, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}

	kids := []*gprNode{node}
	for strings.EqualFold(p.peek(), "and") {
		p.pos++
		next, err := p.factor()
		if err != nil {
			return nil, err
		}
		kids = append(kids, next)
	}
	if len(kids) == 1 {
		return node, nil
	}
	return &gprNode{op: opAnd, kids: flattenKids(kids, opAnd)}, nil
}

// factor := "(" orExpr ")" | gene
func (p *gprParser) factor() (*gprNode, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of GPR expression")
	case tok == "(":
		p.pos++
		node, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis in GPR expression")
		}
		p.pos++
		return node, nil
	case tok == ")" || strings.EqualFold(tok, "and") || strings.EqualFold(tok, "or"):
		return nil, fmt.Errorf("unexpected token %q in GPR expression", tok)
	default:
		p.pos++
		return &gprNode{op: opGene, gene: tok}, nil
	}
}

// flattenKids lifts same-operator children's kids so chains stay flat
func flattenKids(kids []*gprNode, op gprOp) []*gprNode {
	flat := make([]*gprNode, 0, len(kids))
	for _, k := range kids {
		if k.op == op {
			flat = append(flat, k.kids...)
			continue
		}
		flat = append(flat, k)
	}
	return flat
}

// alternatives returns the top-level OR alternatives of the tree: the
// isoenzyme complexes that can independently catalyze the reaction. A tree
// without a top-level OR is its own single alternative; a nil tree has none.
func (n *gprNode) alternatives() []*gprNode {
	if n == nil {
		return nil
	}
	if n.op == opOr {
		return n.kids
	}
	return []*gprNode{n}
}

// genes returns the distinct gene leaves of the subtree in appearance order
func (n *gprNode) genes() []string {
	if n == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	var walk func(*gprNode)
	walk = func(x *gprNode) {
		if x.op == opGene {
			if !seen[x.gene] {
				seen[x.gene] = true
				out = append(out, x.gene)
			}
			return
		}
		for _, k := range x.kids {
			walk(k)
		}
	}
	walk(n)
	return out
}

// ambiguous reports whether the subtree nests an OR beneath an AND, e.g.
// "(G1 or G2) and (G3 or G4)". Such complexes cannot be represented by one
// flat AND clause per isoenzyme, so they are flattened best-effort after a
// warning.
func (n *gprNode) ambiguous() bool {
	if n == nil {
		return false
	}
	var hasOr func(*gprNode) bool
	hasOr = func(x *gprNode) bool {
		if x.op == opOr {
			return true
		}
		for _, k := range x.kids {
			if hasOr(k) {
				return true
			}
		}
		return false
	}
	var walk func(*gprNode) bool
	walk = func(x *gprNode) bool {
		if x.op == opAnd {
			for _, k := range x.kids {
				if hasOr(k) {
					return true
				}
			}
		}
		for _, k := range x.kids {
			if walk(k) {
				return true
			}
		}
		return false
	}
	return walk(n)
}

// ruleString renders a subtree back to an "and"-joined clause. Used when an
// expansion copy takes over a single alternative; any nested OR has already
// been flattened best-effort into its gene list.
func (n *gprNode) ruleString() string {
	return strings.Join(n.genes(), " and ")
}
