package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventstaff/hospitality-hub/internal/api/middleware"
	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

type stubRouter struct {
	routeFn func(ctx context.Context, in ports.LoginInput) (*ports.RouteResult, error)
}

func (s *stubRouter) Route(ctx context.Context, in ports.LoginInput) (*ports.RouteResult, error) {
	return s.routeFn(ctx, in)
}

type stubSignup struct {
	registerFn func(ctx context.Context, in ports.SignupInput) (*domain.Account, error)
}

func (s *stubSignup) Register(ctx context.Context, in ports.SignupInput) (*domain.Account, error) {
	return s.registerFn(ctx, in)
}

type stubIdentity struct {
	current    *domain.Account
	currentErr error
	signedOut  []*domain.Session
}

func (s *stubIdentity) Authenticate(context.Context, string, string) (*domain.Session, *domain.Account, error) {
	return nil, nil, domain.NewAuthenticationError(domain.ErrInvalidCredentials)
}

func (s *stubIdentity) CurrentAccount(_ context.Context, _ *domain.Session) (*domain.Account, error) {
	return s.current, s.currentErr
}

func (s *stubIdentity) SignOut(_ context.Context, session *domain.Session) error {
	s.signedOut = append(s.signedOut, session)
	return nil
}

type stubEventService struct {
	createFn    func(ctx context.Context, in ports.CreateEventInput) (*ports.CreateEventResult, error)
	events      []domain.Event
	positions   []domain.Position
	positionErr error
}

func (s *stubEventService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*ports.CreateEventResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubEventService) ListEvents(context.Context) ([]domain.Event, error) {
	return s.events, nil
}

func (s *stubEventService) ListPositions(context.Context, string) ([]domain.Position, error) {
	return s.positions, s.positionErr
}

type stubVendorService struct {
	profile    *domain.VendorProfile
	saved      ports.ProfileInput
	applyErr   error
	appliedTo  string
	eventIDs   []string
	uploaded   ports.UploadDocumentInput
	uploadBody string
	uploadErr  error
}

func (s *stubVendorService) GetProfile(context.Context, string) (*domain.VendorProfile, error) {
	return s.profile, nil
}

func (s *stubVendorService) SaveProfile(_ context.Context, vendorID string, in ports.ProfileInput) (*domain.VendorProfile, error) {
	s.saved = in
	return &domain.VendorProfile{ID: vendorID, Name: in.Name, Bio: in.Bio}, nil
}

func (s *stubVendorService) Apply(_ context.Context, _ string, eventID string) error {
	s.appliedTo = eventID
	return s.applyErr
}

func (s *stubVendorService) ListApplications(context.Context, string) ([]string, error) {
	return s.eventIDs, nil
}

func (s *stubVendorService) UploadDocument(_ context.Context, in ports.UploadDocumentInput) (*domain.VendorDocument, error) {
	s.uploaded = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		s.uploadBody = string(b)
	}
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &domain.VendorDocument{ID: "d1", VendorID: in.VendorID, DocType: in.DocType, Status: domain.DocumentStatusPending}, nil
}

// newContext builds an echo context with the validator installed and, when
// accountID is set, the claims the Auth middleware would inject.
func newContext(method, target, body, accountID string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if accountID != "" {
		c.Set(middleware.KeyAccountID, accountID)
		c.Set(middleware.KeyRole, string(role))
		c.Set(middleware.KeySessionID, "sid-1")
		c.Set(middleware.KeyToken, "tok")
	}
	return c, rec
}
