// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLadderSyntax indicates a malformed creator/annihilator string. The
// particle families wrap it in their own FromString sentinels.
var ErrLadderSyntax = errors.New("core: malformed ladder-operator string")

// ParseLadderProduct parses the canonical particle-product form shared by
// the boson and fermion families: a run of "c<index>" tokens followed by a
// run of "a<index>" tokens, e.g. "c0c1a0a2", or the literal "I" for the
// empty product. Index ordering rules are family-specific and checked by
// the caller; this parser only enforces token shape and the c-before-a
// block structure.
func ParseLadderProduct(s string) (creators, annihilators []int, err error) {
	if s == "I" {
		return nil, nil, nil
	}
	if s == "" {
		return nil, nil, fmt.Errorf("empty product string: %w", ErrLadderSyntax)
	}
	inAnnihilators := false
	for pos := 0; pos < len(s); {
		kind := s[pos]
		switch kind {
		case 'c':
			if inAnnihilators {
				return nil, nil, fmt.Errorf("creator after annihilator at %q: %w", s[pos:], ErrLadderSyntax)
			}
		case 'a':
			inAnnihilators = true
		default:
			return nil, nil, fmt.Errorf("expected 'c' or 'a' at %q: %w", s[pos:], ErrLadderSyntax)
		}
		pos++
		start := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		if pos == start {
			return nil, nil, fmt.Errorf("missing mode index after %q: %w", string(kind), ErrLadderSyntax)
		}
		if pos-start > 1 && s[start] == '0' {
			return nil, nil, fmt.Errorf("leading zero in mode index %q: %w", s[start:pos], ErrLadderSyntax)
		}
		index, convErr := strconv.Atoi(s[start:pos])
		if convErr != nil {
			return nil, nil, fmt.Errorf("mode index %q: %w", s[start:pos], ErrLadderSyntax)
		}
		if kind == 'c' {
			creators = append(creators, index)
		} else {
			annihilators = append(annihilators, index)
		}
	}
	return creators, annihilators, nil
}

// FormatLadderProduct renders the canonical particle-product form, or "I"
// for the empty product.
func FormatLadderProduct(creators, annihilators []int) string {
	if len(creators) == 0 && len(annihilators) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, c := range creators {
		b.WriteByte('c')
		b.WriteString(strconv.Itoa(c))
	}
	for _, a := range annihilators {
		b.WriteByte('a')
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}
