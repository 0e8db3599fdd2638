package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName converts an ingredient name to its dictionary key:
// NFC-normalized, whitespace-trimmed, lower-cased. Two spellings that
// differ only in case, surrounding whitespace, or Unicode composition
// resolve to the same Ingredient row.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// ParseIngredientLine parses one free-text ingredient line of the form
// "<quantity> <unit> de <name>", e.g. "2 colheres de açúcar". A line
// without the " de " separator is taken as a bare ingredient name with
// empty quantity and unit. Returns ok=false for blank lines.
func ParseIngredientLine(line string) (IngredientLine, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return IngredientLine{}, false
	}

	before, name, found := strings.Cut(line, " de ")
	if !found {
		return IngredientLine{Name: line}, true
	}

	ing := IngredientLine{Name: strings.TrimSpace(name)}
	qty, unit, hasUnit := strings.Cut(strings.TrimSpace(before), " ")
	ing.Quantity = strings.TrimSpace(qty)
	if hasUnit {
		ing.Unit = strings.TrimSpace(unit)
	}
	return ing, true
}

// ParseIngredientLines parses a multi-line ingredient block, one line per
// ingredient. Blank lines are skipped.
func ParseIngredientLines(raw string) []IngredientLine {
	var lines []IngredientLine
	for _, line := range strings.Split(raw, "\n") {
		if ing, ok := ParseIngredientLine(line); ok {
			lines = append(lines, ing)
		}
	}
	return lines
}

// ParseIngredientList splits a comma-separated ingredient filter into
// normalized, non-empty tokens. The result is a set: stray commas
// contribute nothing and repeated names collapse to one token, so the
// coverage count downstream matches the number of distinct names asked
// for.
func ParseIngredientList(input string) []string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Split(input, ",") {
		t := NormalizeName(tok)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}

// ParsePrepTime strictly parses preparation time text for write paths.
// Empty input means the time is absent. Non-integer or negative input is
// rejected so the caller can refuse the write before touching the store.
func ParsePrepTime(text string) (*int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("preparation time must be an integer, got %q", text)
	}
	if n < 0 {
		return nil, fmt.Errorf("preparation time must not be negative, got %d", n)
	}
	return &n, nil
}

// FormatIngredient renders one association for display: quantity, unit and
// "de <name>" in order, each part contributing only when present, with no
// stray separators.
func FormatIngredient(name, quantity, unit string) string {
	var b strings.Builder
	if quantity != "" {
		b.WriteString(quantity)
		b.WriteString(" ")
	}
	if unit != "" {
		b.WriteString(unit)
		b.WriteString(" ")
	}
	if name != "" {
		b.WriteString("de ")
		b.WriteString(name)
	}
	return strings.TrimSpace(b.String())
}
