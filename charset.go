package numfmt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
)

// NotFound is returned by the index and length scans when nothing matches.
const NotFound = -1

// Character sets accepted by [WithCharSet]. Any [runes.Set] works; these
// cover the common cases.
var (
	Digits       = runes.In(unicode.Nd)
	ASCIIDigits  = runes.Predicate(func(r rune) bool { return r >= '0' && r <= '9' })
	Letters      = runes.In(unicode.L)
	Alphanumeric = runes.Predicate(func(r rune) bool { return unicode.IsLetter(r) || unicode.Is(unicode.Nd, r) })
	HexDigits    = runes.Predicate(func(r rune) bool {
		return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
	})
)

// CharSet names understood by [ParseCharSet].
const (
	CharSetDigits       = "digits"
	CharSetASCIIDigits  = "ascii-digits"
	CharSetLetters      = "letters"
	CharSetAlphanumeric = "alphanumeric"
	CharSetHex          = "hex"
)

var charSetNames = []string{CharSetDigits, CharSetASCIIDigits, CharSetLetters, CharSetAlphanumeric, CharSetHex}

// ParseCharSet resolves a character set name. Names are case-insensitive.
func ParseCharSet(name string) (runes.Set, error) {
	switch strings.ToLower(name) {
	case CharSetDigits:
		return Digits, nil
	case CharSetASCIIDigits:
		return ASCIIDigits, nil
	case CharSetLetters:
		return Letters, nil
	case CharSetAlphanumeric:
		return Alphanumeric, nil
	case CharSetHex:
		return HexDigits, nil
	default:
		return nil, fmt.Errorf("%w: %q, want one of %s", ErrUnknownCharSet, name, strings.Join(charSetNames, ", "))
	}
}

// CharsOf returns a set containing exactly the runes of chars.
func CharsOf(chars string) runes.Set {
	return charList(chars)
}

type charList string

func (c charList) Contains(r rune) bool { return strings.ContainsRune(string(c), r) }

// Filter returns the runes of s that belong to set, in order. A nil set
// yields "".
func Filter(s string, set runes.Set) string {
	if set == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range s {
		if set.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CountMatching reports how many runes of s belong to set.
func CountMatching(s string, set runes.Set) int {
	if set == nil {
		return 0
	}
	n := 0
	for _, r := range s {
		if set.Contains(r) {
			n++
		}
	}
	return n
}

// MinPrefixLength returns the length in runes of the shortest prefix of s
// holding exactly count runes from set. It returns [NotFound] if set is nil
// or s holds fewer than count such runes.
func MinPrefixLength(s string, set runes.Set, count int) int {
	if set == nil || count < 0 {
		return NotFound
	}
	if count == 0 {
		return 0
	}
	seen, i := 0, 0
	for _, r := range s {
		i++
		if set.Contains(r) {
			seen++
			if seen == count {
				return i
			}
		}
	}
	return NotFound
}

// MinSuffixLength is the mirror of [MinPrefixLength], scanning from the end.
func MinSuffixLength(s string, set runes.Set, count int) int {
	if set == nil || count < 0 {
		return NotFound
	}
	if count == 0 {
		return 0
	}
	seen, n := 0, 0
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
		n++
		if set.Contains(r) {
			seen++
			if seen == count {
				return n
			}
		}
	}
	return NotFound
}

// IndexOfCharacter returns the rune index of the first r in s, or
// [NotFound].
func IndexOfCharacter(s string, r rune) int {
	i := 0
	for _, c := range s {
		if c == r {
			return i
		}
		i++
	}
	return NotFound
}
