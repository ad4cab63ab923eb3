package csvparser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ginjaninja78/recordkeeper/internal/config"
)

var (
	digitsPattern     = regexp.MustCompile(`\d+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// =============================================================================
// TRANSFORMER
// =============================================================================

// Transformer rewrites column values of parsed rows.
type Transformer struct {
	rules []config.ColumnTransform
}

// NewTransformer creates a Transformer for the given rules.
func NewTransformer(rules []config.ColumnTransform) *Transformer {
	return &Transformer{rules: rules}
}

// Apply runs every rule against row in place. Rules for columns the row
// does not have see an empty value and may fill it in.
func (t *Transformer) Apply(row map[string]string) error {
	for _, rule := range t.rules {
		column := strings.ToLower(strings.TrimSpace(rule.Column))

		value := row[column]
		for _, action := range rule.Actions {
			var err error
			value, err = ApplyAction(value, action, row)
			if err != nil {
				return fmt.Errorf("column %s: transformation '%s' failed: %w", column, action.Type, err)
			}
		}
		row[column] = value
	}

	return nil
}

// ApplyAction applies a single transformation action.
//
// PARAMETERS:
//   - value: The current value.
//   - action: The transformation action to apply.
//   - row: All cells of the current row, for if_empty_use_field.
//
// RETURNS:
//   - The transformed value.
//   - An error if the action type is unknown.
func ApplyAction(value string, action config.TransformAction, row map[string]string) (string, error) {
	switch action.Type {

	// =========================================================================
	// STRING MANIPULATIONS
	// =========================================================================

	case "trim":
		return strings.TrimSpace(value), nil

	case "uppercase":
		return strings.ToUpper(value), nil

	case "lowercase":
		return strings.ToLower(value), nil

	case "title_case":
		return titleCase(value), nil

	case "normalize_whitespace":
		return strings.TrimSpace(whitespacePattern.ReplaceAllString(value, " ")), nil

	case "prepend_string":
		return action.Value + value, nil

	case "append_string":
		return value + action.Value, nil

	case "replace":
		if action.Find == "" {
			return "", fmt.Errorf("replace needs a find string")
		}
		return strings.ReplaceAll(value, action.Find, action.Value), nil

	case "extract_digits":
		return strings.Join(digitsPattern.FindAllString(value, -1), ""), nil

	// =========================================================================
	// DEFAULTS
	// =========================================================================

	case "if_empty_use_default":
		if strings.TrimSpace(value) == "" {
			return action.Value, nil
		}
		return value, nil

	case "if_empty_use_field":
		if strings.TrimSpace(value) == "" {
			return row[strings.ToLower(action.Value)], nil
		}
		return value, nil

	// =========================================================================
	// LOOKUP TABLE REPLACEMENTS
	// =========================================================================

	case "lookup":
		if replacement, ok := action.LookupTable[value]; ok {
			return replacement, nil
		}
		return value, nil

	case "lookup_with_default":
		if replacement, ok := action.LookupTable[value]; ok {
			return replacement, nil
		}
		return action.Value, nil

	default:
		return "", fmt.Errorf("unknown transformation type %q", action.Type)
	}
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}

	return strings.Join(words, " ")
}
