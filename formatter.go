package numfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/runes"
)

// Formatter applies a mask to input strings. It is immutable once built and
// safe for concurrent use.
type Formatter struct {
	mask        mask
	placeholder rune
	mode        Mode
	charSet     runes.Set
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithMode sets the mode. Default: [Strict].
func WithMode(m Mode) Option {
	return func(f *Formatter) { f.mode = m }
}

// WithCharSet sets the characters allowed into placeholder slots.
// Default: [Digits].
func WithCharSet(set runes.Set) Option {
	return func(f *Formatter) { f.charSet = set }
}

// New builds a formatter for mask, where every occurrence of placeholder
// marks a slot. The mask must contain at least one placeholder.
func New(maskText string, placeholder rune, opts ...Option) (*Formatter, error) {
	f := &Formatter{
		placeholder: placeholder,
		mode:        Strict,
		charSet:     Digits,
	}
	for _, opt := range opts {
		opt(f)
	}
	if !f.mode.valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrUnsupportedMode, int(f.mode))
	}
	if f.charSet == nil {
		return nil, fmt.Errorf("%w: nil character set", ErrConfiguration)
	}
	f.mask = parseMask(maskText, placeholder, f.charSet)
	if f.mask.slots == 0 {
		return nil, fmt.Errorf("%w: %q has no %q", ErrNoPlaceholder, maskText, placeholder)
	}
	return f, nil
}

// MustNew is like [New] but panics on error.
func MustNew(maskText string, placeholder rune, opts ...Option) *Formatter {
	f, err := New(maskText, placeholder, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatString formats input against maskText in one call, accepting
// decimal digits.
func FormatString(input, maskText string, placeholder rune, mode Mode) (string, error) {
	f, err := New(maskText, placeholder, WithMode(mode))
	if err != nil {
		return "", err
	}
	return f.Format(input), nil
}

// Mask returns the mask text.
func (f *Formatter) Mask() string { return f.mask.text }

// Placeholder returns the placeholder character.
func (f *Formatter) Placeholder() rune { return f.placeholder }

// Mode returns the mode.
func (f *Formatter) Mode() Mode { return f.mode }

// CharSet returns the set of characters accepted into slots.
func (f *Formatter) CharSet() runes.Set { return f.charSet }

// Len returns the mask length in runes.
func (f *Formatter) Len() int { return len(f.mask.tokens) }

// Capacity returns the number of slots in the mask.
func (f *Formatter) Capacity() int { return f.mask.slots }

func (f *Formatter) String() string {
	return fmt.Sprintf("%s (%s, %q)", f.mask.text, f.mode, f.placeholder)
}

// IndexOfFirstPlaceholder returns the rune offset of the first slot in the
// mask.
func (f *Formatter) IndexOfFirstPlaceholder() int { return f.mask.firstIdx }

// IndexOfFirstDigitOrPlaceholder returns the rune offset of the first mask
// position that is a slot or a literal from the character set, such as the
// 7 of "+7 (XXX)". Text fields keep the caret at or after it.
func (f *Formatter) IndexOfFirstDigitOrPlaceholder() int { return f.mask.entryIdx }

// Format keeps the accepted characters of input and lays them into the
// mask. It returns "" when input has no accepted characters.
func (f *Formatter) Format(input string) string {
	return f.FillIn(Filter(input, f.charSet))
}

// FillIn lays content into the mask without filtering it first.
func (f *Formatter) FillIn(content string) string {
	if content == "" {
		return ""
	}
	src := []rune(content)
	var b, pending strings.Builder
	next := 0
	for _, t := range f.mask.tokens {
		if !t.placeholder {
			pending.WriteRune(t.literal)
			continue
		}
		if next < len(src) {
			b.WriteString(pending.String())
			pending.Reset()
			b.WriteRune(src[next])
			next++
			continue
		}
		switch f.mode.unfilled() {
		case stepStop:
			return b.String()
		case stepPadStop:
			b.WriteString(pending.String())
			b.WriteRune(f.placeholder)
			return b.String()
		case stepPadContinue:
			b.WriteString(pending.String())
			pending.Reset()
			b.WriteRune(f.placeholder)
		}
	}
	b.WriteString(pending.String())
	return b.String()
}

// IsFulfilled reports whether every slot is filled. A string that already
// matches the mask is judged by its own slots, so literal characters of the
// mask are never taken for entered content; any other string is formatted
// first.
func (f *Formatter) IsFulfilled(s string) bool {
	if content, ok := f.Unfixed(s); ok {
		return utf8.RuneCountInString(content) == f.mask.slots
	}
	out := []rune(f.Format(s))
	if len(out) != len(f.mask.tokens) {
		return false
	}
	for i, t := range f.mask.tokens {
		if t.placeholder && out[i] == f.placeholder {
			return false
		}
	}
	return true
}

// Matches reports whether s has the shape of the mask: literals in place,
// and each slot holding the placeholder or an accepted character.
func (f *Formatter) Matches(s string) bool {
	_, ok := f.Unfixed(s)
	return ok
}

// Unfixed returns the characters entered into the slots of s, leaving out
// literals and unfilled slots. ok is false if s does not match the mask.
func (f *Formatter) Unfixed(s string) (content string, ok bool) {
	src := []rune(s)
	if len(src) != len(f.mask.tokens) {
		return "", false
	}
	var b strings.Builder
	for i, t := range f.mask.tokens {
		r := src[i]
		switch {
		case !t.placeholder:
			if r != t.literal {
				return "", false
			}
		case r == f.placeholder:
		case f.charSet.Contains(r):
			b.WriteRune(r)
		default:
			return "", false
		}
	}
	return b.String(), true
}

// CaretIndex returns the rune offset in formatted just after the n-th
// filled slot, where a text field should put the caret after n characters
// have been entered. For n == 0 it is the first slot. It returns [NotFound]
// if formatted has fewer than n filled slots.
func (f *Formatter) CaretIndex(formatted string, n int) int {
	if n == 0 {
		return f.mask.firstIdx
	}
	seen, i := 0, 0
	for _, r := range formatted {
		if i >= len(f.mask.tokens) {
			break
		}
		if f.mask.tokens[i].placeholder && r != f.placeholder {
			seen++
			if seen == n {
				return i + 1
			}
		}
		i++
	}
	return NotFound
}

// CaretIndexFromEnd returns the rune offset in formatted that leaves n
// filled slots after it, or [NotFound].
func (f *Formatter) CaretIndexFromEnd(formatted string, n int) int {
	src := []rune(formatted)
	if len(src) > len(f.mask.tokens) {
		return NotFound
	}
	if n == 0 {
		return len(src)
	}
	seen := 0
	for i := len(src) - 1; i >= 0; i-- {
		if f.mask.tokens[i].placeholder && src[i] != f.placeholder {
			seen++
			if seen == n {
				return i
			}
		}
	}
	return NotFound
}

// Width returns the display width in terminal columns of the fully
// rendered mask.
func (f *Formatter) Width() int { return runewidth.StringWidth(f.mask.text) }

// WidthOf returns the display width in terminal columns of s.
func WidthOf(s string) int { return runewidth.StringWidth(s) }
