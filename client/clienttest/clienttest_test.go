package clienttest_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/clienttest"
)

func TestTransport_Queue(t *testing.T) {
	tr := clienttest.New(
		clienttest.JSON(http.StatusOK, map[string]string{"symbol": "AAPL"}),
		clienttest.Raw(http.StatusNotFound, "missing"),
	)
	tr.Enqueue(clienttest.Failure(io.ErrUnexpectedEOF))

	req := client.WireRequest{Method: http.MethodGet, Scheme: "https", Authority: "query1.finance.yahoo.com", Path: "/a", Header: http.Header{"User-Agent": {"ua"}}}

	body, resp, err := tr.Send(context.Background(), req, []byte("one"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(body) != `{"symbol":"AAPL"}` {
		t.Errorf("unexpected first response %d %q", resp.StatusCode, body)
	}
	if resp.Header.Get("Content-Type") != "application/json" {
		t.Errorf("expected json content type")
	}

	body, resp, err = tr.Send(context.Background(), req, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound || string(body) != "missing" {
		t.Errorf("unexpected second response %d %q", resp.StatusCode, body)
	}

	if _, _, err := tr.Send(context.Background(), req, nil); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected queued failure, got: %v", err)
	}

	if _, _, err := tr.Send(context.Background(), req, nil); !errors.Is(err, clienttest.ErrNoResponse) {
		t.Errorf("expected ErrNoResponse, got: %v", err)
	}

	calls := tr.Calls()
	if len(calls) != 4 {
		t.Fatalf("exp 4 calls, got %d", len(calls))
	}
	if string(calls[0].Body) != "one" || calls[1].Body != nil {
		t.Errorf("unexpected recorded bodies %q %q", calls[0].Body, calls[1].Body)
	}
}

func TestTransport_RecordsCopies(t *testing.T) {
	tr := clienttest.New(clienttest.Raw(http.StatusOK, ""))

	header := http.Header{"User-Agent": {"ua"}}
	body := []byte("body")
	req := client.WireRequest{Method: http.MethodPost, Scheme: "https", Authority: "h", Path: "/p", Header: header}

	if _, _, err := tr.Send(context.Background(), req, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	header.Set("User-Agent", "changed")
	body[0] = 'B'

	call, ok := tr.LastCall()
	if !ok {
		t.Fatal("expected a recorded call")
	}

	exp := clienttest.Call{
		Request: client.WireRequest{Method: http.MethodPost, Scheme: "https", Authority: "h", Path: "/p", Header: http.Header{"User-Agent": {"ua"}}},
		Body:    []byte("body"),
	}
	if diff := cmp.Diff(exp, call); diff != "" {
		t.Errorf("call mismatch (-want +got):\n%s", diff)
	}
}

func TestTransport_Func(t *testing.T) {
	tr := clienttest.NewFunc(func(ctx context.Context, req client.WireRequest, body []byte) ([]byte, client.WireResponse, error) {
		return []byte(req.Path), client.WireResponse{StatusCode: http.StatusAccepted}, nil
	})

	for _, path := range []string{"/a", "/b"} {
		body, resp, err := tr.Send(context.Background(), client.WireRequest{Path: path}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != path || resp.StatusCode != http.StatusAccepted {
			t.Errorf("unexpected response %d %q", resp.StatusCode, body)
		}
	}

	if len(tr.Calls()) != 2 {
		t.Errorf("exp 2 calls, got %d", len(tr.Calls()))
	}
}

func TestTransport_LastCallEmpty(t *testing.T) {
	if _, ok := clienttest.New().LastCall(); ok {
		t.Error("expected no call")
	}
}
