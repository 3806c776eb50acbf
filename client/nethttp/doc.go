// Package nethttp provides a [client.Transport] backed by [net/http].
//
// # Usage
//
//	tr, err := nethttp.New(
//		nethttp.WithTimeout(10*time.Second),
//		nethttp.WithMaxResponseSize(8<<20),
//	)
//	c, err := client.Build(tr)
//
// The transport keeps a cookie jar for its lifetime so that cookies set by
// Yahoo are replayed on later calls from the same client. Response bodies
// are read fully, capped by [WithMaxResponseSize], and always drained and
// closed.
package nethttp
