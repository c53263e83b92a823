package numfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrConfiguration     = errors.New("invalid formatter configuration")
	ErrNoPlaceholder     = fmt.Errorf("%w: mask has no placeholder", ErrConfiguration)
	ErrUnsupportedMode   = errors.New("unsupported mode")
	ErrUnknownCharSet    = errors.New("unknown character set")
	ErrInvalidDefinition = errors.New("invalid definition")
)
