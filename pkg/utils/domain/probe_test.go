package domain

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func splitServerAddr(t *testing.T, ts *httptest.Server) (string, int) {
	t.Helper()

	host, portStr, err := net.SplitHostPort(ts.Listener.Addr().String())
	if err != nil {
		t.Fatalf("failed to split server address: %v", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("failed to parse server port: %v", err)
	}
	return host, port
}

func TestProbeLocalTLSServer(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	host, port := splitServerAddr(t, ts)

	report, err := Probe(context.Background(), host, port)
	if err != nil {
		t.Fatalf("expected probe to succeed, got %v", err)
	}

	if report.Host != host {
		t.Errorf("expected host %q, got %q", host, report.Host)
	}
	if report.Certificate == nil {
		t.Fatal("expected certificate data to be populated")
	}
	if !report.Certificate.IsValid {
		t.Error("expected test server certificate to be valid")
	}
	if report.Certificate.DaysRemaining <= 0 {
		t.Errorf("expected positive daysRemaining, got %d", report.Certificate.DaysRemaining)
	}
	if report.Certificate.Subject == "" {
		t.Error("expected subject to be populated or fall back to host")
	}
	if report.Certificate.SerialNumber == "" {
		t.Error("expected serial number to be populated or fall back")
	}
	if !strings.HasPrefix(report.TLSVersion, "TLS") {
		t.Errorf("expected a named TLS version, got %q", report.TLSVersion)
	}
	if report.ALPNProtocol == "" {
		t.Error("expected ALPN protocol to be populated or fall back")
	}
	if report.HTTPStatus == nil {
		t.Fatal("expected liveness check to succeed against local server")
	}
	if *report.HTTPStatus != http.StatusOK {
		t.Errorf("expected liveness status 200, got %d", *report.HTTPStatus)
	}
	if report.ResponseTime <= 0 {
		t.Error("expected positive response time")
	}
	if report.CheckedAt.IsZero() {
		t.Error("expected checkedAt to be stamped")
	}
}

func TestProbeIdempotentCertificateFields(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	host, port := splitServerAddr(t, ts)

	first, err := Probe(context.Background(), host, port)
	if err != nil {
		t.Fatalf("first probe failed: %v", err)
	}
	second, err := Probe(context.Background(), host, port)
	if err != nil {
		t.Fatalf("second probe failed: %v", err)
	}

	if first.Certificate.SerialNumber != second.Certificate.SerialNumber {
		t.Error("expected serial number to be stable across probes")
	}
	if first.Certificate.Subject != second.Certificate.Subject {
		t.Error("expected subject to be stable across probes")
	}
	if !first.Certificate.NotAfter.Equal(second.Certificate.NotAfter) {
		t.Error("expected validity window to be stable across probes")
	}
}

func TestProbeExpiredCertificate(t *testing.T) {
	ts := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	ts.TLS = &tls.Config{Certificates: []tls.Certificate{selfSignedCert(t, -24*time.Hour)}}
	ts.StartTLS()
	defer ts.Close()

	host, port := splitServerAddr(t, ts)

	report, err := Probe(context.Background(), host, port)
	if err != nil {
		t.Fatalf("expected probe of expired cert to succeed, got %v", err)
	}

	if report.Certificate == nil {
		t.Fatal("expected certificate data for expired cert")
	}
	if report.Certificate.IsValid {
		t.Error("expected expired certificate to be invalid")
	}
	if report.Certificate.DaysRemaining > 0 {
		t.Errorf("expected non-positive daysRemaining, got %d", report.Certificate.DaysRemaining)
	}
}

func TestProbeUnreachableHost(t *testing.T) {
	// .invalid is reserved and guaranteed not to resolve (RFC 2606).
	_, err := Probe(context.Background(), "certprobe-test.invalid")
	if err == nil {
		t.Fatal("expected probe of unresolvable host to fail")
	}

	var probeErr *ProbeError
	if !errors.As(err, &probeErr) {
		t.Fatalf("expected *ProbeError, got %T", err)
	}
	if probeErr.Error() == "" {
		t.Error("expected descriptive error message")
	}
	if probeErr.Host != "certprobe-test.invalid" {
		t.Errorf("expected error to carry host, got %q", probeErr.Host)
	}
}

func TestProbeEmptyHost(t *testing.T) {
	if _, err := Probe(context.Background(), "   "); err == nil {
		t.Fatal("expected probe of empty host to fail")
	}
}

func TestCertificateDataFallbacks(t *testing.T) {
	cert := &x509.Certificate{
		NotBefore: time.Now().Add(-72 * time.Hour),
		NotAfter:  time.Now().Add(-48 * time.Hour),
	}

	data := certificateData("example.com", cert)

	if data.Subject != "example.com" {
		t.Errorf("expected subject fallback to host, got %q", data.Subject)
	}
	if data.Issuer != "Unknown" {
		t.Errorf("expected issuer fallback, got %q", data.Issuer)
	}
	if data.SerialNumber != "Unknown" {
		t.Errorf("expected serial number fallback, got %q", data.SerialNumber)
	}
	if data.DaysRemaining != -2 {
		t.Errorf("expected floor of -48h to be -2 days, got %d", data.DaysRemaining)
	}
	if data.IsValid {
		t.Error("expected certificate expired 2 days ago to be invalid")
	}
}

func TestCertificateDataPopulated(t *testing.T) {
	cert := &x509.Certificate{
		Subject:      pkix.Name{CommonName: "example.com"},
		Issuer:       pkix.Name{CommonName: "Test CA"},
		SerialNumber: big.NewInt(424242),
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(30*24*time.Hour + time.Hour),
	}

	data := certificateData("example.com", cert)

	if data.Issuer != "Test CA" {
		t.Errorf("expected issuer from certificate, got %q", data.Issuer)
	}
	if data.SerialNumber != "424242" {
		t.Errorf("expected serial number from certificate, got %q", data.SerialNumber)
	}
	if data.DaysRemaining != 30 {
		t.Errorf("expected 30 days remaining, got %d", data.DaysRemaining)
	}
	if !data.IsValid {
		t.Error("expected certificate to be valid")
	}
}

func TestTLSVersionName(t *testing.T) {
	cases := []struct {
		version uint16
		want    string
	}{
		{tls.VersionTLS10, "TLS 1.0"},
		{tls.VersionTLS11, "TLS 1.1"},
		{tls.VersionTLS12, "TLS 1.2"},
		{tls.VersionTLS13, "TLS 1.3"},
		{0x0300, "Unknown"},
	}
	for _, c := range cases {
		if got := tlsVersionName(c.version); got != c.want {
			t.Errorf("tlsVersionName(%#x) = %q, want %q", c.version, got, c.want)
		}
	}
}

// selfSignedCert generates a certificate for 127.0.0.1 whose NotAfter lies
// the given offset from now.
func selfSignedCert(t *testing.T, notAfterOffset time.Duration) tls.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "certprobe.test"},
		NotBefore:    time.Now().Add(-48 * time.Hour),
		NotAfter:     time.Now().Add(notAfterOffset),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")},
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}
