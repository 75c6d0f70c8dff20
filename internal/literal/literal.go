// Package literal converts scalar literal text into values. It is the
// bridge between CLI arguments and the value package: each token becomes
// exactly one Value of the most specific type its spelling admits.
package literal

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"martianoff/anyval/anyerr"
	"martianoff/anyval/value"
)

// NoneKeyword spells the empty value on the command line.
const NoneKeyword = "none"

// Parse converts one scalar literal to a Value:
//
//	none                 empty value
//	true, false          bool
//	42, -7, 0x1f, 0b101  int64
//	3.14, 1e-9           float64
//	'x'                  rune
//	"quoted text"        string
//	bare-text            string
//
// Text that looks numeric but fails to parse is a *anyerr.ParseError, never
// a silent string fallback.
func Parse(text string) (value.Value, error) {
	switch text {
	case "":
		return value.Value{}, anyerr.NewParseError(text, 0, "empty literal")
	case NoneKeyword:
		return value.Empty(), nil
	case "true":
		return value.New(true), nil
	case "false":
		return value.New(false), nil
	}

	switch text[0] {
	case '"':
		s, err := strconv.Unquote(text)
		if err != nil {
			return value.Value{}, anyerr.NewParseError(text, 0, "malformed string literal")
		}
		return value.New(s), nil
	case '\'':
		s, err := strconv.Unquote(text)
		if err != nil || utf8.RuneCountInString(s) != 1 {
			return value.Value{}, anyerr.NewParseError(text, 0, "malformed rune literal")
		}
		r, _ := utf8.DecodeRuneInString(s)
		return value.New(r), nil
	}

	if looksNumeric(text) {
		if i, err := strconv.ParseInt(text, 0, 64); err == nil {
			return value.New(i), nil
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return value.New(f), nil
		}
		return value.Value{}, anyerr.NewParseError(text, numericErrorOffset(text), "malformed numeric literal")
	}

	// Anything else is bare text, stored as a string.
	return value.New(text), nil
}

// ParseAll converts a sequence of literals, collecting every failure into a
// single *anyerr.MultiError so the caller can report all of them at once.
func ParseAll(texts []string) ([]value.Value, error) {
	vals := make([]value.Value, 0, len(texts))
	var errs []error
	for _, text := range texts {
		v, err := Parse(text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals = append(vals, v)
	}
	if len(errs) > 0 {
		return nil, &anyerr.MultiError{Errors: errs}
	}
	return vals, nil
}

// looksNumeric reports whether text commits to a numeric reading: an
// optional sign followed by a digit, or a leading decimal point.
func looksNumeric(text string) bool {
	s := text
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	return (s[0] >= '0' && s[0] <= '9') || (s[0] == '.' && len(s) > 1 && s[1] >= '0' && s[1] <= '9')
}

// numericErrorOffset finds the first byte that cannot belong to the literal
// form its prefix selects, for error reporting. The base prefix decides the
// digit set: hex admits exponent p, decimal admits exponent e, binary and
// octal admit digits only.
func numericErrorOffset(text string) int {
	i := 0
	if text[i] == '+' || text[i] == '-' {
		i++
	}
	digits := "0123456789.eE+-_"
	if i+1 < len(text) && text[i] == '0' {
		switch text[i+1] {
		case 'x', 'X':
			digits = "0123456789abcdefABCDEF.pP+-_"
			i += 2
		case 'o', 'O':
			digits = "01234567_"
			i += 2
		case 'b', 'B':
			digits = "01_"
			i += 2
		}
	}
	for ; i < len(text); i++ {
		if !strings.ContainsRune(digits, rune(text[i])) {
			return i
		}
	}
	return 0
}
