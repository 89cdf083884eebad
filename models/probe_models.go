package models

import "time"

// ProbeStatus is the overall outcome of a certificate probe.
type ProbeStatus string

const (
	StatusOnline ProbeStatus = "online"
	StatusError  ProbeStatus = "error"
)

// CertificateDetails describes the peer's leaf certificate.
type CertificateDetails struct {
	Subject       string    `json:"subject" example:"hglnd.se"`
	Issuer        string    `json:"issuer" example:"R11"`
	ValidFrom     time.Time `json:"validFrom"`
	ValidTo       time.Time `json:"validTo"`
	DaysRemaining int       `json:"daysRemaining" example:"57"`
	IsValid       bool      `json:"isValid" example:"true"`
	SerialNumber  string    `json:"serialNumber"`
}

// TLSDetails describes the negotiated TLS session parameters.
type TLSDetails struct {
	Version  string `json:"version" example:"TLS 1.3"`
	Protocol string `json:"protocol" example:"h2"`
}

// IPDetails is optional enrichment about the probed host's resolved address.
// GeoIP fields are only present when the MaxMind databases are loaded.
type IPDetails struct {
	Address        string `json:"address" example:"93.184.216.34"`
	CountryCode    string `json:"countryCode,omitempty" example:"SE"`
	CountryName    string `json:"countryName,omitempty" example:"Sweden"`
	ASN            uint   `json:"asn,omitempty" example:"15133"`
	ASOrganization string `json:"asOrganization,omitempty"`
}

// CertificateReport is the response body of a probe. A failed TLS handshake
// yields Status "error" with Error set and the optional records omitted;
// partial data (no liveness status, no certificate fields) never raises an
// error on its own.
type CertificateReport struct {
	Host           string              `json:"host" example:"hglnd.se"`
	Status         ProbeStatus         `json:"status" example:"online"`
	HTTPStatus     *int                `json:"httpStatus,omitempty" example:"200"`
	Certificate    *CertificateDetails `json:"certificate,omitempty"`
	TLS            *TLSDetails         `json:"tls,omitempty"`
	IP             *IPDetails          `json:"ip,omitempty"`
	ResponseTimeMs int64               `json:"responseTimeMs" example:"182"`
	CheckedAt      time.Time           `json:"checkedAt"`
	Error          string              `json:"error,omitempty"`
}
