package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Filter screens chat text against a deny list with an Aho-Corasick
// automaton. Matching is case-insensitive and ignores punctuation, spacing
// and common leet-speak substitutions, so "s.H !t" still matches.
type Filter struct {
	machine *goahocorasick.Machine
}

// New builds a filter from the given deny list. Words that normalize to
// nothing are skipped; an empty list yields a filter that flags nothing.
func New(words []string) (*Filter, error) {
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		if norm := normalize(w); len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}
	if len(patterns) == 0 {
		return &Filter{}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Filter{machine: m}, nil
}

// Flagged reports whether text contains any denied word.
func (f *Filter) Flagged(text string) bool {
	return len(f.Matches(text)) > 0
}

// Matches returns the denied words found in text, in normalized form.
func (f *Filter) Matches(text string) []string {
	if f.machine == nil {
		return nil
	}
	norm := normalize(text)
	if len(norm) == 0 {
		return nil
	}

	terms := f.machine.MultiPatternSearch(norm, false)
	return lo.Map(terms, func(t *goahocorasick.Term, _ int) string {
		return string(t.Word)
	})
}

// normalize lowercases the text, undoes leet-speak substitutions and strips
// characters that carry no signal for matching.
func normalize(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
