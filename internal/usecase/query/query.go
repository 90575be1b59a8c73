// Package query runs JSONPath expressions against the stored JSON document.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/innkeep/internal/domain"
)

const op = "query.evaluate"

// Evaluate parses doc as JSON and returns what expr selects.
//
// An empty expression, a document that is not JSON, or a malformed
// expression is an invalid_query error. A null or empty result is not_found.
func Evaluate(doc []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid(fmt.Errorf("empty jsonpath expression"))
	}

	var root any
	if err := json.Unmarshal(doc, &root); err != nil {
		return nil, invalid(fmt.Errorf("document is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, root)
	if err != nil {
		return nil, invalid(fmt.Errorf("%s: %w", expr, err))
	}
	if isEmptyValue(val) {
		return nil, domain.NotFound(op, "match for", expr)
	}
	return val, nil
}

// Format renders a result for the terminal: scalars as-is, everything else
// as indented JSON.
func Format(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case float64, bool, int, int64:
		return fmt.Sprint(t), nil
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func invalid(err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidQuery,
		Err:  fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err),
	}
}
