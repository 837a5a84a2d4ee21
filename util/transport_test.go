package util

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClassifyConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewRestClient().R().Get(url)
	if err == nil {
		t.Fatal("expected an error from a closed server")
	}
	te := ClassifyTransportError(err)
	if te.Kind != TransportConnect {
		t.Errorf("Kind = %v, expected connect (err: %v)", te.Kind, err)
	}
}

func TestClassifyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewRestClient().SetTimeout(50 * time.Millisecond)
	_, err := client.R().Get(srv.URL)
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	te := ClassifyTransportError(err)
	if te.Kind != TransportTimeout {
		t.Errorf("Kind = %v, expected timeout (err: %v)", te.Kind, err)
	}
}

func TestClassifyUnknown(t *testing.T) {
	_, err := NewRestClient().R().Get("ftp://example.invalid/file")
	if err == nil {
		t.Fatal("expected an error for an unsupported scheme")
	}
	if te := ClassifyTransportError(err); te.Kind != TransportUnknown {
		t.Errorf("Kind = %v, expected unknown (err: %v)", te.Kind, err)
	}

	plain := errors.New("boom")
	te := ClassifyTransportError(plain)
	if te.Kind != TransportUnknown {
		t.Errorf("Kind = %v, expected unknown", te.Kind)
	}
	if !errors.Is(te, plain) {
		t.Error("TransportError should unwrap to the original error")
	}
}

func TestClassifyKeepsTransportError(t *testing.T) {
	status := NewStatusError(http.StatusNotFound)
	wrapped := fmt.Errorf("calling server: %w", status)

	if te := ClassifyTransportError(wrapped); te != status {
		t.Errorf("ClassifyTransportError should return the wrapped TransportError, got %v", te)
	}
}

func TestTransportErrorText(t *testing.T) {
	if got := NewStatusError(503).Error(); got != "unexpected status 503" {
		t.Errorf("status error text = %q", got)
	}
	te := &TransportError{Kind: TransportTimeout, Err: errors.New("deadline")}
	if got := te.Error(); !strings.HasPrefix(got, "timeout") {
		t.Errorf("timeout error text = %q", got)
	}
	if got := (&TransportError{Kind: TransportConnect}).Error(); got != "connect" {
		t.Errorf("bare connect error text = %q", got)
	}
}
