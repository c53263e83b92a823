// Package numfmt formats user input against a fixed mask.
//
// A mask is literal text with placeholder slots. [New] builds a [Formatter]
// from the mask text and the rune that marks a slot:
//
//	f, err := numfmt.New("(XXX) XXX-XXXX", 'X', numfmt.WithMode(numfmt.FillIn))
//	f.Format("5551234567extra") // "(555) 123-4567"
//
// Characters of the input that are not in the formatter's character set are
// discarded before the mask is applied. The default set is [Digits]; use
// [WithCharSet] with any [runes.Set] to accept something else.
//
// # Modes
//
// The mode decides what is rendered once the input runs out:
//
//   - [Strict] stops at the first unfilled slot: "(555"
//   - [FillIn] renders the whole mask: "(555) XXX-XXXX"
//   - [Mixed] renders up to the first unfilled slot: "(555) X"
//
// Input with no accepted characters always formats to "".
//
// # Validation and round trips
//
// [Formatter.Matches] reports whether a string has the shape of the mask,
// [Formatter.IsFulfilled] whether input fills every slot, and
// [Formatter.Unfixed] extracts the entered characters from a formatted
// string. [Formatter.FillIn] lays already clean content into the mask, so
//
//	content, _ := f.Unfixed(f.Format(s))
//	f.FillIn(content) == f.Format(s) // in FillIn mode
//
// # Definitions
//
// Formatters can be described in YAML and loaded with [LoadDefinitions]:
//
//	phone:
//	  mask: "(XXX) XXX-XXXX"
//	  placeholder: "X"
//	  mode: fill-in
//	  charset: digits
//
// # Errors
//
// Only construction fails. The package exports sentinel errors for
// programmatic handling:
//
//   - [ErrConfiguration] — the formatter cannot be built
//   - [ErrNoPlaceholder] — the mask has no slot (wraps ErrConfiguration)
//   - [ErrUnsupportedMode] — unknown mode
//   - [ErrUnknownCharSet] — unknown character set name
//   - [ErrInvalidDefinition] — malformed definition
//
// Formatting calls never fail; "not found" is [NotFound], "" or a false ok
// value.
package numfmt
