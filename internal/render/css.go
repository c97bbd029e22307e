package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/css/scanner"
)

// ErrInvalidCSS matches extra CSS that would leave its rule body.
var ErrInvalidCSS = errors.New("invalid extra css")

// ValidateCSS checks that css is a run of declarations that can sit inside
// the bbpBox rule without closing it, opening a nested block, or ending the
// style element.
func ValidateCSS(css string) error {
	if strings.Contains(strings.ToLower(css), "</style") {
		return fmt.Errorf("%w: contains </style>", ErrInvalidCSS)
	}

	s := scanner.New(css)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%w: line %d col %d: %s", ErrInvalidCSS, tok.Line, tok.Column, tok.Value)
		case scanner.TokenCDO, scanner.TokenCDC:
			return fmt.Errorf("%w: line %d col %d: unexpected %q", ErrInvalidCSS, tok.Line, tok.Column, tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case "{", "}", "<":
				return fmt.Errorf("%w: line %d col %d: unexpected %q", ErrInvalidCSS, tok.Line, tok.Column, tok.Value)
			}
		}
	}
}

// Validate checks every entry of c.
func (c ExtraCSS) Validate() error {
	for class, css := range c {
		if err := ValidateCSS(css); err != nil {
			return fmt.Errorf("extra css %q: %w", class, err)
		}
	}
	return nil
}
