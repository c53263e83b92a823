package numfmt

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"gopkg.in/yaml.v3"
)

// Definition describes a formatter in a configuration file.
//
//	phone:
//	  mask: "(XXX) XXX-XXXX"
//	  placeholder: "X"
//	  mode: fill-in
//	  charset: digits
//
// Chars, when set, lists the accepted characters explicitly and takes
// precedence over CharSet. An empty CharSet means digits.
type Definition struct {
	Mask        string `yaml:"mask" json:"mask"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
	Mode        Mode   `yaml:"mode,omitempty" json:"mode,omitempty"`
	CharSet     string `yaml:"charset,omitempty" json:"charset,omitempty"`
	Chars       string `yaml:"chars,omitempty" json:"chars,omitempty"`
}

// Formatter builds the formatter the definition describes.
func (d Definition) Formatter() (*Formatter, error) {
	if utf8.RuneCountInString(d.Placeholder) != 1 {
		return nil, fmt.Errorf("%w: placeholder must be a single character, got %q", ErrInvalidDefinition, d.Placeholder)
	}
	placeholder, _ := utf8.DecodeRuneInString(d.Placeholder)
	set, err := d.charSet()
	if err != nil {
		return nil, err
	}
	return New(d.Mask, placeholder, WithMode(d.Mode), WithCharSet(set))
}

func (d Definition) charSet() (runes.Set, error) {
	if d.Chars != "" {
		return CharsOf(d.Chars), nil
	}
	if d.CharSet == "" {
		return Digits, nil
	}
	set, err := ParseCharSet(d.CharSet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return set, nil
}

// Definitions maps names to definitions.
type Definitions map[string]Definition

// LoadDefinitions decodes a YAML document of named definitions. Unknown
// fields are rejected.
func LoadDefinitions(r io.Reader) (Definitions, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var defs Definitions
	if err := dec.Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return Definitions{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if defs == nil {
		defs = Definitions{}
	}
	return defs, nil
}

// Names returns the definition names in sorted order.
func (d Definitions) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile builds a formatter for every definition.
func (d Definitions) Compile() (map[string]*Formatter, error) {
	out := make(map[string]*Formatter, len(d))
	for _, name := range d.Names() {
		f, err := d[name].Formatter()
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", name, err)
		}
		out[name] = f
	}
	return out, nil
}
