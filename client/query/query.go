package query

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Query is an ordered list of parameters. Duplicate names are legal and
// keep their relative order in the encoded output.
type Query []Element

// FromMap builds a Query from m with keys sorted, so the result does not
// depend on map iteration order.
func FromMap(m map[string]string) Query {
	q := make(Query, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		q = append(q, Param(k, m[k]))
	}

	return q
}

// Parse splits a raw query string, without the leading '?', into its
// elements. Empty tokens between '&' separators are skipped. Values are
// not decoded.
func Parse(raw string) (Query, error) {
	var q Query
	for token := range strings.SplitSeq(raw, "&") {
		if token == "" {
			continue
		}

		e, err := ParseElement(token)
		if err != nil {
			return nil, err
		}
		q = append(q, e)
	}

	return q, nil
}

// Append adds elems to the end of the query.
func (q *Query) Append(elems ...Element) {
	*q = append(*q, elems...)
}

// At returns the element at index i.
func (q Query) At(i int) Element {
	return q[i]
}

// Set replaces the element at index i.
func (q Query) Set(i int, e Element) {
	q[i] = e
}

// Clear removes all elements.
func (q *Query) Clear() {
	*q = (*q)[:0]
}

// Len returns the number of elements.
func (q Query) Len() int {
	return len(q)
}

// Clone returns a copy that shares no storage with q.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}

	return slices.Clone(q)
}

// Encode joins the encoded elements with '&' in order. The boolean is
// false when the query is empty, which is distinct from a query whose
// only element encodes to "".
func (q Query) Encode() (string, bool) {
	if len(q) == 0 {
		return "", false
	}

	parts := make([]string, len(q))
	for i, e := range q {
		parts[i] = e.Encode()
	}

	return strings.Join(parts, "&"), true
}

// EncodeStrict is like Encode but fails on the first element that cannot
// be encoded.
func (q Query) EncodeStrict() (string, bool, error) {
	if len(q) == 0 {
		return "", false, nil
	}

	parts := make([]string, len(q))
	for i, e := range q {
		s, err := e.EncodeStrict()
		if err != nil {
			return "", false, fmt.Errorf("element %d: %w", i, err)
		}
		parts[i] = s
	}

	return strings.Join(parts, "&"), true, nil
}

// String returns the encoded query, or "" when empty.
func (q Query) String() string {
	s, _ := q.Encode()
	return s
}
