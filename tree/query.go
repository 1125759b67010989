package tree

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/hier/record"
	"golang.org/x/text/cases"
)

// Operator is a search operator for Find.
type Operator string

// Search operators. The three string operators OpStartsWith, OpEndsWith and
// OpContains are case-insensitive.
const (
	OpEqual          Operator = "equ"
	OpNotEqual       Operator = "neq"
	OpGreaterThan    Operator = "grt"
	OpGreaterOrEqual Operator = "gte"
	OpLessThan       Operator = "let"
	OpLessOrEqual    Operator = "lte"
	OpBetween        Operator = "btw" // operand is an array [low, high], inclusive
	OpInSet          Operator = "ins" // operand is an array of candidates
	OpStartsWith     Operator = "stw"
	OpEndsWith       Operator = "enw"
	OpContains       Operator = "css"
	OpMatchesRegex   Operator = "mrx" // operand is a regular expression
)

// Operators lists all supported operators.
var Operators = []Operator{
	OpEqual, OpNotEqual, OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual,
	OpBetween, OpInSet, OpStartsWith, OpEndsWith, OpContains, OpMatchesRegex,
}

var operatorAliases = map[Operator][]string{
	OpEqual:          {"=", "==", "eq"},
	OpNotEqual:       {"!=", "<>", "ne"},
	OpGreaterThan:    {">", "gt"},
	OpGreaterOrEqual: {">=", "ge"},
	OpLessThan:       {"<", "lt"},
	OpLessOrEqual:    {"<=", "le"},
	OpBetween:        {"between"},
	OpInSet:          {"in"},
	OpStartsWith:     {"prefix"},
	OpEndsWith:       {"suffix"},
	OpContains:       {"contains"},
	OpMatchesRegex:   {"~", "regex"},
}

// ParseOperator accepts an operator code (e.g. "css") or one of its
// symbolic aliases (e.g. "contains", ">=").
func ParseOperator(s string) (Operator, error) {
	for _, op := range Operators {
		if string(op) == s {
			return op, nil
		}
	}
	for op, aliases := range operatorAliases {
		for _, alias := range aliases {
			if alias == strings.ToLower(s) {
				return op, nil
			}
		}
	}
	return "", fmt.Errorf("operator %q: %w", s, ErrUnsupportedOperator)
}

// Predicate matches a field value.
type Predicate func(v record.Value) bool

// Predicate creates a predicate which matches field values against operand.
func (op Operator) Predicate(operand record.Value) (Predicate, error) {
	switch op {
	case OpEqual:
		return func(v record.Value) bool { return v.Equal(operand) }, nil
	case OpNotEqual:
		return func(v record.Value) bool { return !v.Equal(operand) }, nil
	case OpGreaterThan:
		return func(v record.Value) bool { return v.Compare(operand) > 0 }, nil
	case OpGreaterOrEqual:
		return func(v record.Value) bool { return v.Compare(operand) >= 0 }, nil
	case OpLessThan:
		return func(v record.Value) bool { return v.Compare(operand) < 0 }, nil
	case OpLessOrEqual:
		return func(v record.Value) bool { return v.Compare(operand) <= 0 }, nil
	case OpBetween:
		if operand.Kind() != record.ArrayKind || operand.Len() != 2 {
			return nil, fmt.Errorf("%s needs a [low, high] pair, have %v: %w", op, operand, ErrInvalidOperand)
		}
		bounds := operand.Elements()
		return func(v record.Value) bool {
			return v.Compare(bounds[0]) >= 0 && v.Compare(bounds[1]) <= 0
		}, nil
	case OpInSet:
		if operand.Kind() != record.ArrayKind {
			return nil, fmt.Errorf("%s needs an array of candidates, have %v: %w", op, operand, ErrInvalidOperand)
		}
		set := operand.Elements()
		return func(v record.Value) bool {
			for _, candidate := range set {
				if v.Equal(candidate) {
					return true
				}
			}
			return false
		}, nil
	case OpStartsWith:
		return foldedMatch(operand, strings.HasPrefix), nil
	case OpEndsWith:
		return foldedMatch(operand, strings.HasSuffix), nil
	case OpContains:
		return foldedMatch(operand, strings.Contains), nil
	case OpMatchesRegex:
		re, err := regexp.Compile(operand.String())
		if err != nil {
			return nil, fmt.Errorf("%s: %v: %w", op, err, ErrInvalidOperand)
		}
		return func(v record.Value) bool { return re.MatchString(v.String()) }, nil
	}
	return nil, fmt.Errorf("operator %q: %w", string(op), ErrUnsupportedOperator)
}

// foldedMatch compares textual forms after Unicode case folding.
func foldedMatch(operand record.Value, match func(s, sub string) bool) Predicate {
	fold := cases.Fold()
	sub := fold.String(operand.String())
	return func(v record.Value) bool {
		return match(fold.String(v.String()), sub)
	}
}

// Find returns all nodes whose payload field matches operand, in index
// order. Nodes without the field are never matched. An unsupported operator
// is an error and no nodes are returned.
func (t *Tree) Find(field string, op Operator, operand record.Value) ([]*Node, error) {
	match, err := op.Predicate(operand)
	if err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	results := t.Filter(func(n *Node) bool {
		v, ok := n.value.Get(field)
		return ok && match(v)
	})
	tracer().Debugf("find %s %s %v: %d matches", field, op, operand, len(results))
	return results, nil
}

// Filter returns all nodes except the root for which a client-provided
// function returns true, in index order.
func (t *Tree) Filter(accept func(*Node) bool) []*Node {
	var results []*Node
	t.index.each(func(n *Node) bool {
		if !n.IsRoot() && accept(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}

// Search runs Find and returns a new tree consisting of all matching nodes
// together with their ancestors, i.e. the union of the paths from the
// top-level nodes down to every match (see Node.Limb).
func (t *Tree) Search(field string, op Operator, operand record.Value) (*Tree, error) {
	matches, err := t.Find(field, op, operand)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var nodes []*Node
	add := func(n *Node) {
		if key := n.id.Key(); !seen[key] {
			seen[key] = true
			nodes = append(nodes, n)
		}
	}
	for _, n := range matches {
		add(n)
		for _, anc := range n.Ancestors() {
			add(anc)
		}
	}
	return t.derive(exportAll(nodes))
}
