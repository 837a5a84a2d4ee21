package util

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestTimeout bounds every HTTP call a script makes.
const RequestTimeout = 10 * time.Second

type TransportKind int

const ( // failure classes reported to the user
	TransportConnect TransportKind = iota
	TransportTimeout
	TransportUnknown
	TransportStatus
)

func (k TransportKind) String() string {
	switch k {
	case TransportConnect:
		return "connect"
	case TransportTimeout:
		return "timeout"
	case TransportStatus:
		return "status"
	default:
		return "unknown"
	}
}

// TransportError is a failed HTTP exchange. StatusCode is only set for
// TransportStatus.
type TransportError struct {
	Err        error
	Kind       TransportKind
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.Kind == TransportStatus {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func NewStatusError(code int) *TransportError {
	return &TransportError{Kind: TransportStatus, StatusCode: code}
}

// ClassifyTransportError sorts an error returned by the HTTP client.
// Timeouts are checked first so a dial that times out counts as a timeout.
func ClassifyTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TransportError{Kind: TransportTimeout, Err: err}
	}
	var (
		opErr     *net.OpError
		dnsErr    *net.DNSError
		verifyErr *tls.CertificateVerificationError
		unknownCA x509.UnknownAuthorityError
		hostErr   x509.HostnameError
	)
	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.As(err, &verifyErr),
		errors.As(err, &unknownCA),
		errors.As(err, &hostErr):
		return &TransportError{Kind: TransportConnect, Err: err}
	}
	return &TransportError{Kind: TransportUnknown, Err: err}
}

// NewRestClient returns the resty client used by both scripts: fixed
// timeout, no retries, logging through Logger.
func NewRestClient() *resty.Client {
	return resty.New().
		SetTimeout(RequestTimeout).
		SetRetryCount(0).
		SetLogger(RestyLogger{})
}
