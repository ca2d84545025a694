package msgfmt

import (
	"regexp"
	"strconv"
	"strings"
)

// ConditionKind discriminates the predicate variants.
type ConditionKind uint8

const (
	// CondGreaterThan compares a parsed float against a threshold.
	CondGreaterThan ConditionKind = iota
	// CondLessThan compares a parsed float against a threshold.
	CondLessThan
	// CondEquals is exact string equality.
	CondEquals
	// CondContains is substring containment.
	CondContains
	// CondPattern is a regular-expression match.
	CondPattern
	// CondCustom is a named predicate with no implementation; it always
	// evaluates to false.
	CondCustom
)

// Condition is a pure predicate over a text node's value. Evaluation is
// total: unparsable numbers and invalid patterns are false, never errors.
type Condition struct {
	Kind      ConditionKind
	Threshold float64
	Value     string
}

// GreaterThan matches numeric values above threshold.
func GreaterThan(threshold float64) Condition {
	return Condition{Kind: CondGreaterThan, Threshold: threshold}
}

// LessThan matches numeric values below threshold.
func LessThan(threshold float64) Condition {
	return Condition{Kind: CondLessThan, Threshold: threshold}
}

// Equals matches values exactly equal to expected.
func Equals(expected string) Condition {
	return Condition{Kind: CondEquals, Value: expected}
}

// Contains matches values containing substr.
func Contains(substr string) Condition {
	return Condition{Kind: CondContains, Value: substr}
}

// Pattern matches values against a regular expression.
func Pattern(pattern string) Condition {
	return Condition{Kind: CondPattern, Value: pattern}
}

// CustomCondition names a caller-defined predicate. Custom predicates have
// no contract yet, so they evaluate to false.
func CustomCondition(name string) Condition {
	return Condition{Kind: CondCustom, Value: name}
}

// Evaluate applies the predicate to a value.
func (c Condition) Evaluate(value string) bool {
	switch c.Kind {
	case CondGreaterThan:
		v, err := strconv.ParseFloat(value, 64)
		return err == nil && v > c.Threshold
	case CondLessThan:
		v, err := strconv.ParseFloat(value, 64)
		return err == nil && v < c.Threshold
	case CondEquals:
		return value == c.Value
	case CondContains:
		return strings.Contains(value, c.Value)
	case CondPattern:
		re, err := regexp.Compile(c.Value)
		return err == nil && re.MatchString(value)
	default:
		return false
	}
}

// ConditionalFormat pairs a predicate with a pure transformation of an
// element sequence.
type ConditionalFormat struct {
	Condition Condition
	Format    func([]Element) []Element
}

// ApplyConditionalFormat re-formats a text node by the first rule whose
// condition matches its value. The rule's transformation receives the text
// node as a singleton sequence; an empty result keeps the node unchanged.
// Non-text elements pass through untouched.
func ApplyConditionalFormat(el Element, rules []ConditionalFormat) Element {
	if el.Kind != KindText {
		return el
	}
	for _, rule := range rules {
		if rule.Format == nil || !rule.Condition.Evaluate(el.Text) {
			continue
		}
		if out := rule.Format([]Element{el.Clone()}); len(out) > 0 {
			return out[0]
		}
		return el
	}
	return el
}

// ApplyConditionalFormats maps ApplyConditionalFormat over a sequence.
func ApplyConditionalFormats(elements []Element, rules []ConditionalFormat) []Element {
	if len(rules) == 0 || len(elements) == 0 {
		return elements
	}
	out := make([]Element, len(elements))
	for i, el := range elements {
		out[i] = ApplyConditionalFormat(el, rules)
	}
	return out
}
