// File: pkg/utils/domain/probe.go
package domain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hglnd/certprobe/pkg/utils"
)

const (
	defaultPort      = 443
	handshakeTimeout = 10 * time.Second
)

// CertificateData holds the fields extracted from the peer's leaf certificate.
type CertificateData struct {
	Subject       string
	Issuer        string
	NotBefore     time.Time
	NotAfter      time.Time
	DaysRemaining int
	IsValid       bool
	SerialNumber  string
}

// Report is the raw outcome of a single probe. ResponseTime covers the TLS
// handshake plus the liveness check, measured up to the point all data has
// been gathered.
type Report struct {
	Host         string
	HTTPStatus   *int
	Certificate  *CertificateData
	TLSVersion   string
	ALPNProtocol string
	ResponseTime time.Duration
	CheckedAt    time.Time
}

// ProbeError marks a failed TLS connect/handshake (DNS failure, connection
// refused, handshake failure, timeout). Everything after a successful
// handshake degrades gracefully instead of failing the probe.
type ProbeError struct {
	Host string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("certificate probe failed for %s: %v", e.Host, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// Probe opens a TLS session to host:443 (or the given port), captures the
// handshake parameters and leaf certificate, then independently checks HTTP
// liveness over a fresh connection. The HTTP handler always probes the
// default port; the variadic port exists for callers that manage their own
// listeners, such as tests.
func Probe(ctx context.Context, host string, port ...int) (*Report, error) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}

	targetPort := defaultPort
	if len(port) > 0 && port[0] > 0 {
		targetPort = port[0]
	}
	address := fmt.Sprintf("%s:%d", host, targetPort)

	started := time.Now()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: handshakeTimeout},
		Config: &tls.Config{
			ServerName:         host,
			NextProtos:         []string{"h2", "http/1.1"},
			InsecureSkipVerify: true, // expired or otherwise invalid certs are still reported
		},
	}

	netConn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, &ProbeError{Host: host, Err: err}
	}

	state := netConn.(*tls.Conn).ConnectionState()

	report := &Report{
		Host:         host,
		TLSVersion:   tlsVersionName(state.Version),
		ALPNProtocol: state.NegotiatedProtocol,
	}
	if report.ALPNProtocol == "" {
		report.ALPNProtocol = "http/1.1"
	}
	if len(state.PeerCertificates) > 0 {
		report.Certificate = certificateData(host, state.PeerCertificates[0])
	}

	// Handshake data is captured; the connection is not reused for the
	// liveness check.
	netConn.Close()

	report.HTTPStatus = checkLiveness(host, targetPort)

	report.ResponseTime = time.Since(started)
	report.CheckedAt = time.Now()
	return report, nil
}

// certificateData extracts the report fields from a leaf certificate,
// falling back per field rather than aborting when something is missing.
func certificateData(host string, cert *x509.Certificate) *CertificateData {
	data := &CertificateData{
		Subject:      cert.Subject.CommonName,
		Issuer:       cert.Issuer.CommonName,
		NotBefore:    cert.NotBefore,
		NotAfter:     cert.NotAfter,
		SerialNumber: "Unknown",
	}
	if data.Subject == "" {
		data.Subject = host
	}
	if data.Issuer == "" {
		data.Issuer = "Unknown"
	}
	if cert.SerialNumber != nil {
		data.SerialNumber = cert.SerialNumber.String()
	}

	data.DaysRemaining = int(math.Floor(time.Until(cert.NotAfter).Hours() / 24))
	data.IsValid = data.DaysRemaining > 0
	return data
}

// checkLiveness issues a bounded HEAD request against the host, retrying once
// as GET. A nil result means the check could not complete; that never fails
// the probe.
func checkLiveness(host string, port int) *int {
	target := fmt.Sprintf("https://%s/", host)
	if port != defaultPort {
		target = fmt.Sprintf("https://%s:%d/", host, port)
	}

	for _, method := range []string{http.MethodHead, http.MethodGet} {
		status, err := utils.FetchStatus(method, target)
		if err != nil {
			continue
		}
		return &status
	}
	return nil
}

// tlsVersionName converts a TLS version constant to its display name
func tlsVersionName(version uint16) string {
	switch version {
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	default:
		return "Unknown"
	}
}
