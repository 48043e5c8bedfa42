package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/metrics"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

const defaultMaxUploadBytes = 10 << 20

// VendorHandler serves the vendor dashboard.
type VendorHandler struct {
	service        ports.VendorService
	maxUploadBytes int64
}

func NewVendorHandler(service ports.VendorService, maxUploadBytes int64) *VendorHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &VendorHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// GetProfile handles GET /v1/vendor/profile.
//
// @Summary      Get the vendor profile
// @Description  Returns {"profile": null} when the vendor has not saved one yet.
// @Tags         vendor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/vendor/profile [get]
func (h *VendorHandler) GetProfile(c echo.Context) error {
	vendorID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	profile, err := h.service.GetProfile(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// SaveProfile handles PUT /v1/vendor/profile.
//
// @Summary      Create or update the vendor profile
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/vendor/profile [put]
func (h *VendorHandler) SaveProfile(c echo.Context) error {
	vendorID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.service.SaveProfile(c.Request().Context(), vendorID, toProfileInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Profile: profile})
}

// Apply handles POST /v1/vendor/applications.
//
// @Summary      Apply to work an event
// @Tags         vendor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string        false  "Form instance key"
// @Param        body             body      applyRequest  true   "Event to apply for"
// @Success      201              {object}  messageResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/vendor/applications [post]
func (h *VendorHandler) Apply(c echo.Context) error {
	vendorID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.Apply(c.Request().Context(), vendorID, req.EventID); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.VendorApplicationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.VendorApplicationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Application submitted"})
}

// Applications handles GET /v1/vendor/applications.
//
// @Summary      List events the vendor applied to
// @Tags         vendor
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/vendor/applications [get]
func (h *VendorHandler) Applications(c echo.Context) error {
	vendorID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	ids, err := h.service.ListApplications(c.Request().Context(), vendorID)
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, applicationsResponse{EventIDs: ids})
}

// UploadDocument handles POST /v1/vendor/documents.
//
// @Summary      Upload a verification document
// @Tags         vendor
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Form instance key"
// @Param        doc_type         formData  string  true   "GovID or Business"
// @Param        file             formData  file    true   "Image or PDF"
// @Success      201              {object}  domain.VendorDocument
// @Failure      400              {object}  errorResponse
// @Failure      413              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /v1/vendor/documents [post]
func (h *VendorHandler) UploadDocument(c echo.Context) error {
	vendorID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}

	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUploadBytes)
	if err := req.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds %d bytes", h.maxUploadBytes))
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	docType := c.FormValue("doc_type")
	if !domain.ValidDocType(docType) {
		return domain.ErrInvalidDocType
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if !acceptedDocumentType(contentType) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "file must be an image or PDF")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	doc, err := h.service.UploadDocument(c.Request().Context(), ports.UploadDocumentInput{
		VendorID:    vendorID,
		DocType:     docType,
		FileName:    fh.Filename,
		ContentType: contentType,
		Body:        src,
	})
	if err != nil {
		return err
	}

	metrics.DocumentsUploadedTotal.WithLabelValues(docType).Inc()
	return c.JSON(http.StatusCreated, doc)
}

func acceptedDocumentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
