package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/clients/scanclient"
	"trustgate/cmd/api/dto"
	"trustgate/cmd/api/services"
	"trustgate/models"
)

// assessmentResponse decorates the upstream assessment with the derived
// risk-level bucket the results page renders.
type assessmentResponse struct {
	models.Assessment
	RiskLevel models.RiskLevel `json:"riskLevel"`
}

// CreateScanHandler godoc
// @Summary      Start an external security scan
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateScanRequest  true  "Organization and domain to assess"
// @Success      201  {object}  models.Assessment
// @Failure      502  {object}  object{code=string,error=string}
// @Router       /security/external-scans [post]
func CreateScanHandler(svc *services.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, "invalid JSON body"))
			return
		}
		if err := req.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, dto.Err(dto.CodeValidationFailed, err.Error()))
			return
		}

		assessment, err := svc.Create(c.Request.Context(), scanclient.CreateScanInput{
			OrganizationName: req.OrganizationName,
			Domain:           req.Domain,
			ClientCategory:   req.ClientCategory,
			ClientStatus:     req.ClientStatus,
		})
		if err != nil {
			writeScanError(c, err)
			return
		}
		c.JSON(http.StatusCreated, assessmentResponse{
			Assessment: assessment,
			RiskLevel:  svc.RiskLevel(assessment.SecurityScore),
		})
	}
}

// GetScanHandler godoc
// @Summary      Read an assessment (polling endpoint)
// @Tags         security
// @Param        id  path  string  true  "Assessment id"
// @Produce      json
// @Success      200  {object}  models.Assessment
// @Router       /security/external-scans/{id} [get]
func GetScanHandler(svc *services.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		assessment, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeScanError(c, err)
			return
		}
		c.JSON(http.StatusOK, assessmentResponse{
			Assessment: assessment,
			RiskLevel:  svc.RiskLevel(assessment.SecurityScore),
		})
	}
}

// GetScanFindingsHandler godoc
// @Summary      Read assessment findings
// @Tags         security
// @Param        id  path  string  true  "Assessment id"
// @Produce      json
// @Router       /security/external-scans/{id}/findings [get]
func GetScanFindingsHandler(svc *services.ScanService) gin.HandlerFunc {
	return relayRaw(func(c *gin.Context) (json.RawMessage, error) {
		return svc.Findings(c.Request.Context(), c.Param("id"))
	})
}

// GetScanBreachesHandler godoc
// @Summary      Read breach data for the assessed domain
// @Tags         security
// @Param        id  path  string  true  "Assessment id"
// @Produce      json
// @Router       /security/external-scans/{id}/breaches [get]
func GetScanBreachesHandler(svc *services.ScanService) gin.HandlerFunc {
	return relayRaw(func(c *gin.Context) (json.RawMessage, error) {
		return svc.BreachData(c.Request.Context(), c.Param("id"))
	})
}

// GetFindingDetailsHandler godoc
// @Summary      Read a single finding
// @Tags         security
// @Param        id         path  string  true  "Assessment id"
// @Param        findingId  path  string  true  "Finding id"
// @Produce      json
// @Router       /security/external-scans/{id}/findings/{findingId} [get]
func GetFindingDetailsHandler(svc *services.ScanService) gin.HandlerFunc {
	return relayRaw(func(c *gin.Context) (json.RawMessage, error) {
		return svc.FindingDetails(c.Request.Context(), c.Param("id"), c.Param("findingId"))
	})
}

// GetReportURLHandler godoc
// @Summary      Resolve the downloadable report URL
// @Tags         security
// @Param        id  path  string  true  "Assessment id"
// @Produce      json
// @Success      200  {object}  object{url=string}
// @Router       /security/external-scans/{id}/report-url [get]
func GetReportURLHandler(svc *services.ScanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		url, err := svc.ReportURL(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeScanError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func relayRaw(fetch func(c *gin.Context) (json.RawMessage, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := fetch(c)
		if err != nil {
			writeScanError(c, err)
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	}
}

// writeScanError maps proxy failures. Unlike the webhook relay, upstream
// errors surface as 5xx here: the caller has to know the scan did not start.
func writeScanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scanclient.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Err(dto.CodeNotFound, "assessment not found"))
	case errors.Is(err, scanclient.ErrUnconfigured):
		c.JSON(http.StatusServiceUnavailable, dto.Err(dto.CodeUnconfigured, "scan api credential not configured"))
	case errors.Is(err, services.ErrPollTimeout):
		c.JSON(http.StatusGatewayTimeout, dto.Err(dto.CodeTimeout, "scan did not finish in time"))
	default:
		c.JSON(http.StatusBadGateway, dto.Err(dto.CodeUpstreamUnavailable, "scan api request failed"))
	}
}
