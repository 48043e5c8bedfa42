package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/middleware"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
)

func TestVendorHandler_GetProfile_None(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{}, 0)

	c, rec := newContext(http.MethodGet, "/v1/vendor/profile", "", "v1", domain.RoleVendor)
	if err := h.GetProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "{\"profile\":null}\n" {
		t.Fatalf("expected null profile, got %s", got)
	}
}

func TestVendorHandler_SaveProfile_IgnoresVerified(t *testing.T) {
	svc := &stubVendorService{}
	h := NewVendorHandler(svc, 0)

	c, rec := newContext(http.MethodPut, "/v1/vendor/profile",
		`{"name":"Silver Trays","bio":"Catering","verified":true}`, "v1", domain.RoleVendor)
	if err := h.SaveProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.saved.Name != "Silver Trays" {
		t.Fatalf("unexpected profile input: %+v", svc.saved)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Profile == nil || resp.Profile.Verified {
		t.Fatalf("verified must not be client-writable: %+v", resp.Profile)
	}
}

func TestVendorHandler_Apply(t *testing.T) {
	svc := &stubVendorService{}
	h := NewVendorHandler(svc, 0)

	c, rec := newContext(http.MethodPost, "/v1/vendor/applications", `{"event_id":"e1"}`, "v1", domain.RoleVendor)
	if err := h.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated || svc.appliedTo != "e1" {
		t.Fatalf("unexpected result: code=%d event=%q", rec.Code, svc.appliedTo)
	}
}

func TestVendorHandler_Apply_Duplicate(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{applyErr: domain.ErrAlreadyApplied}, 0)

	c, _ := newContext(http.MethodPost, "/v1/vendor/applications", `{"event_id":"e1"}`, "v1", domain.RoleVendor)
	if err := h.Apply(c); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestVendorHandler_Applications_EmptyList(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{}, 0)

	c, rec := newContext(http.MethodGet, "/v1/vendor/applications", "", "v1", domain.RoleVendor)
	if err := h.Applications(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Body.String(); got != "{\"event_ids\":[]}\n" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func multipartContext(t *testing.T, docType, fileName, contentType, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if docType != "" {
		if err := w.WriteField("doc_type", docType); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		hdr.Set("Content-Type", contentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		_, _ = part.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/vendor/documents", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeyAccountID, "v1")
	c.Set(middleware.KeyRole, "vendor")
	return c, rec
}

func TestVendorHandler_UploadDocument(t *testing.T) {
	svc := &stubVendorService{}
	h := NewVendorHandler(svc, 0)

	c, rec := multipartContext(t, "GovID", "passport.pdf", "application/pdf", "%PDF-1.4")
	if err := h.UploadDocument(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.uploaded.VendorID != "v1" || svc.uploaded.FileName != "passport.pdf" || svc.uploaded.ContentType != "application/pdf" {
		t.Fatalf("unexpected upload input: %+v", svc.uploaded)
	}
	if svc.uploadBody != "%PDF-1.4" {
		t.Fatalf("unexpected body %q", svc.uploadBody)
	}
}

func TestVendorHandler_UploadDocument_Rejects(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{}, 0)

	t.Run("bad doc type", func(t *testing.T) {
		c, _ := multipartContext(t, "Selfie", "me.png", "image/png", "x")
		if err := h.UploadDocument(c); !errors.Is(err, domain.ErrInvalidDocType) {
			t.Fatalf("expected ErrInvalidDocType, got %v", err)
		}
	})

	t.Run("bad content type", func(t *testing.T) {
		c, _ := multipartContext(t, "Business", "notes.txt", "text/plain", "x")
		var he *echo.HTTPError
		if err := h.UploadDocument(c); !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		c, _ := multipartContext(t, "Business", "", "", "")
		var he *echo.HTTPError
		if err := h.UploadDocument(c); !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %v", err)
		}
	})
}

func TestVendorHandler_UploadDocument_TooLarge(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{}, 64)

	c, _ := multipartContext(t, "GovID", "big.pdf", "application/pdf", string(bytes.Repeat([]byte("a"), 1024)))
	var he *echo.HTTPError
	if err := h.UploadDocument(c); !errors.As(err, &he) || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
}

func TestVendorHandler_UploadDocument_StorageFailure(t *testing.T) {
	h := NewVendorHandler(&stubVendorService{uploadErr: domain.ErrUploadFailed}, 0)

	c, _ := multipartContext(t, "GovID", "id.jpg", "image/jpeg", "jpeg")
	if err := h.UploadDocument(c); !errors.Is(err, domain.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
}
