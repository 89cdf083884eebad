package utils

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"
)

const livenessUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Safari/537.36"

var (
	livenessClient     *http.Client
	livenessClientOnce sync.Once
)

// initializeLivenessClient creates the shared HTTP client used for liveness
// checks. The 5 second overall timeout bounds how long a slow or unresponsive
// host can stall a probe. Certificate inspection already happened on the
// probe connection, so certificate verification is skipped here.
func initializeLivenessClient() {
	livenessClientOnce.Do(func() {
		jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

		transport := &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
			ForceAttemptHTTP2:   true,
		}

		livenessClient = &http.Client{
			Timeout:   5 * time.Second,
			Jar:       jar,
			Transport: transport,
		}
	})
}

// FetchStatus performs a single HTTP request with the given method and
// returns the response status code. The body is discarded.
func FetchStatus(method, targetURL string) (int, error) {
	initializeLivenessClient()

	req, err := http.NewRequest(method, targetURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request for %s: %w", targetURL, err)
	}
	req.Header.Set("User-Agent", livenessUserAgent)

	resp, err := livenessClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", targetURL, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
