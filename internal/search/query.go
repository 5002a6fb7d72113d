package search

import (
	"strings"
	"unicode"
)

const maxVariants = 10

type QueryContext struct {
	Original   string
	Normalized string
	Variants   []string
}

// NormalizeQuery lowercases input, drops punctuation and collapses spaces.
func NormalizeQuery(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery returns the normalized query followed by synonym variants.
// The first one or two words are replaced by their synonyms and the rest of
// the query is kept.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)
	for _, syn := range GetSynonyms(normalized) {
		add(syn)
	}

	words := strings.Fields(normalized)
	if spaced, ok := compactKeys()[words[0]]; ok {
		words = append(strings.Fields(spaced), words[1:]...)
		add(strings.Join(words, " "))
	}

	replacePrefix := func(n int) {
		if len(words) < n {
			return
		}
		rest := strings.Join(words[n:], " ")
		for _, syn := range GetSynonyms(strings.Join(words[:n], " ")) {
			add(syn + " " + rest)
		}
	}
	replacePrefix(2)
	replacePrefix(1)

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

// ProcessQuery builds the variants matched against job titles. The trimmed
// original input is always the first variant so punctuation such as "K-9"
// still matches literally.
func ProcessQuery(input string) QueryContext {
	qc := QueryContext{Original: input, Normalized: NormalizeQuery(input)}
	if qc.Normalized == "" {
		qc.Variants = []string{}
		return qc
	}

	variants := ExpandQuery(qc.Normalized)
	raw := strings.Join(strings.Fields(strings.ToLower(input)), " ")
	if raw != qc.Normalized {
		variants = append([]string{raw}, variants...)
	}
	if len(variants) > maxVariants {
		variants = variants[:maxVariants]
	}
	qc.Variants = variants
	return qc
}
