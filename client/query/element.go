package query

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyName is returned when parsing a token without a parameter name.
	ErrEmptyName = errors.New("empty parameter name")
	// ErrInvalidEncoding is returned when a name or value is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8")
)

// Scalar lists the value kinds accepted by [Of].
type Scalar interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Element is a single query parameter. A value-less element, created
// with [Flag], encodes as its bare name.
type Element struct {
	Name     string
	Value    string
	HasValue bool
}

// Param returns an element with a value.
func Param(name, value string) Element {
	return Element{Name: name, Value: value, HasValue: true}
}

// Flag returns a value-less element, e.g. the "debug" in "?debug".
func Flag(name string) Element {
	return Element{Name: name}
}

// Of returns an element whose value is the string form of v.
func Of[V Scalar](name string, v V) Element {
	return Param(name, fmt.Sprint(v))
}

// ParseElement parses a raw "name=value" or "name" token. The token is
// split on the first '=' only, so any further '=' belong to the value.
// The value is kept as given; use [Element.Decode] to percent-decode it.
func ParseElement(raw string) (Element, error) {
	name, value, found := strings.Cut(raw, "=")
	if name == "" {
		return Element{}, fmt.Errorf("parsing %q: %w", raw, ErrEmptyName)
	}

	if !found {
		return Flag(name), nil
	}

	return Param(name, value), nil
}

// Encode returns the percent-encoded form of the element. It never fails:
// an unencodable name yields "" and an unencodable value is dropped,
// leaving only the encoded name.
func (e Element) Encode() string {
	name, err := escape(e.Name)
	if err != nil {
		return ""
	}

	if !e.HasValue {
		return name
	}

	value, err := escape(e.Value)
	if err != nil {
		return name
	}

	return name + "=" + value
}

// EncodeStrict is like Encode but reports unencodable input instead of
// falling back.
func (e Element) EncodeStrict() (string, error) {
	name, err := escape(e.Name)
	if err != nil {
		return "", fmt.Errorf("encoding name: %w", err)
	}

	if !e.HasValue {
		return name, nil
	}

	value, err := escape(e.Value)
	if err != nil {
		return "", fmt.Errorf("encoding value of %q: %w", e.Name, err)
	}

	return name + "=" + value, nil
}

// Decode returns a copy of the element with its name and value
// percent-decoded. '+' is left as-is.
func (e Element) Decode() (Element, error) {
	name, err := url.PathUnescape(e.Name)
	if err != nil {
		return Element{}, fmt.Errorf("decoding name: %w", err)
	}

	out := Element{Name: name, HasValue: e.HasValue}
	if e.HasValue {
		if out.Value, err = url.PathUnescape(e.Value); err != nil {
			return Element{}, fmt.Errorf("decoding value of %q: %w", name, err)
		}
	}

	return out, nil
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return e.Encode()
}

const upperhex = "0123456789ABCDEF"

// shouldEscape reports whether c falls outside the unreserved set and the
// sub-delimiters minus '&' and '='.
func shouldEscape(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}

	switch c {
	case '-', '.', '_', '~', '!', '$', '\'', '(', ')', '*', '+', ',', ';':
		return false
	}

	return true
}

func escape(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidEncoding
	}

	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !shouldEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}

	return b.String(), nil
}
