package handlers

import "regexp"

// hostPattern is a syntactic filter only. It does not guarantee a resolvable
// hostname, and it does not prevent the probe from being pointed at addresses
// that resolve to private networks.
var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

func validateHost(host string) bool {
	return host != "" && len(host) <= 253 && hostPattern.MatchString(host)
}
