// Package query provides an ordered container of URL query parameters
// with deterministic percent-encoding.
//
// Unlike [net/url.Values], a [Query] keeps parameters in insertion order,
// preserves duplicate names, and supports value-less flag parameters:
//
//	q := query.Query{
//		query.Param("symbol", "AAPL"),
//		query.Of("count", 42),
//		query.Flag("debug"),
//	}
//	s, _ := q.Encode() // "symbol=AAPL&count=42&debug"
//
// Names and values are encoded with a conservative safe set: the RFC 3986
// unreserved characters plus the sub-delimiters other than '&' and '='.
// Everything else, including '%', '#', '/' and spaces, is percent-encoded.
package query
