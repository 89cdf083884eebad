package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hglnd/certprobe/models"
	"github.com/hglnd/certprobe/pkg/utils"
	"github.com/hglnd/certprobe/pkg/utils/domain"
)

// ProbeHandlers groups the certificate probe endpoints
type ProbeHandlers struct {
	// Dependencies can be injected here if needed
}

func NewProbeHandlers() *ProbeHandlers {
	return &ProbeHandlers{}
}

// CertCheckHandler godoc
// @Summary      Probe the HTTPS certificate of a host
// @Description  Opens a TLS session to host:443, extracts leaf certificate and handshake metadata, then performs an HTTP liveness check. TLS failures are reported as data (status "error") with HTTP 200, not as server errors.
// @Tags         Certificate Probe
// @Produce      json
// @Param        host query string true "Hostname to probe"
// @Success      200 {object} models.CertificateReport "Probe outcome, online or soft error"
// @Failure      400 {object} models.ErrorResponse "Error: Missing or malformed host parameter"
// @Router       /check [get]
func (h *ProbeHandlers) CertCheckHandler(c *gin.Context) {
	hostQuery := c.Query("host")
	if hostQuery == "" {
		c.IndentedJSON(http.StatusBadRequest, models.ErrorResponse{Error: `Missing "host" parameter`})
		return
	}
	if !validateHost(hostQuery) {
		c.IndentedJSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid host format"})
		return
	}

	// The probe is deliberately not tied to the request context: if the
	// client disconnects early, the probe runs to completion or times out
	// on its own.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	started := time.Now()
	report, err := domain.Probe(ctx, hostQuery)
	if err != nil {
		c.IndentedJSON(http.StatusOK, models.CertificateReport{
			Host:           hostQuery,
			Status:         models.StatusError,
			ResponseTimeMs: time.Since(started).Milliseconds(),
			CheckedAt:      time.Now(),
			Error:          err.Error(),
		})
		return
	}

	response := models.CertificateReport{
		Host:       report.Host,
		Status:     models.StatusOnline,
		HTTPStatus: report.HTTPStatus,
		TLS: &models.TLSDetails{
			Version:  report.TLSVersion,
			Protocol: report.ALPNProtocol,
		},
		ResponseTimeMs: report.ResponseTime.Milliseconds(),
		CheckedAt:      report.CheckedAt,
	}
	if report.Certificate != nil {
		response.Certificate = &models.CertificateDetails{
			Subject:       report.Certificate.Subject,
			Issuer:        report.Certificate.Issuer,
			ValidFrom:     report.Certificate.NotBefore,
			ValidTo:       report.Certificate.NotAfter,
			DaysRemaining: report.Certificate.DaysRemaining,
			IsValid:       report.Certificate.IsValid,
			SerialNumber:  report.Certificate.SerialNumber,
		}
	}
	if ipInfo := utils.LookupHostIP(report.Host); ipInfo != nil {
		response.IP = &models.IPDetails{
			Address:        ipInfo.Address,
			CountryCode:    ipInfo.CountryCode,
			CountryName:    ipInfo.CountryName,
			ASN:            ipInfo.ASN,
			ASOrganization: ipInfo.ASOrganization,
		}
	}

	c.IndentedJSON(http.StatusOK, response)
}
