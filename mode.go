package numfmt

import (
	"fmt"
	"strings"
)

// Mode decides what happens to the rest of the mask once the input runs out.
type Mode int

const (
	// Strict stops at the first unfilled placeholder, dropping the literals
	// that lead up to it.
	Strict Mode = iota
	// FillIn renders the whole mask, showing unfilled slots as the
	// placeholder character.
	FillIn
	// Mixed renders up to and including the first unfilled slot.
	Mixed
)

var modes = []Mode{Strict, FillIn, Mixed}

var modeNames = map[Mode]string{
	Strict: "strict",
	FillIn: "fill-in",
	Mixed:  "mixed",
}

// Modes returns all modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// String returns the mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses a mode name. Matching is case-insensitive and also
// accepts "fillin" and "fill_in".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "fill-in", "fillin", "fill_in":
		return FillIn, nil
	case "mixed":
		return Mixed, nil
	}
	return Strict, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// step is what the walk does at a placeholder with no input left.
type step int

const (
	stepStop        step = iota // drop pending literals and stop
	stepPadContinue             // emit the placeholder and keep walking
	stepPadStop                 // emit the placeholder, then stop
)

// unfilled is the mode policy applied at the first unfilled placeholder.
func (m Mode) unfilled() step {
	switch m {
	case FillIn:
		return stepPadContinue
	case Mixed:
		return stepPadStop
	default:
		return stepStop
	}
}
