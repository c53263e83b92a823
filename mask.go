package numfmt

import "golang.org/x/text/runes"

// token is one rune of the mask: a fixed literal or a fillable slot.
type token struct {
	literal     rune
	placeholder bool
}

// mask is the tokenized form of the mask text. Token i is rune i of text.
type mask struct {
	text     string
	tokens   []token
	slots    int // number of placeholder tokens
	firstIdx int // index of the first placeholder token, or NotFound
	entryIdx int // index of the first placeholder or accepted literal, or NotFound
}

func parseMask(text string, placeholder rune, set runes.Set) mask {
	m := mask{text: text, firstIdx: NotFound, entryIdx: NotFound}
	for _, r := range text {
		if m.entryIdx == NotFound && (r == placeholder || set != nil && set.Contains(r)) {
			m.entryIdx = len(m.tokens)
		}
		if r == placeholder {
			if m.firstIdx == NotFound {
				m.firstIdx = len(m.tokens)
			}
			m.slots++
			m.tokens = append(m.tokens, token{placeholder: true})
			continue
		}
		m.tokens = append(m.tokens, token{literal: r})
	}
	return m
}
