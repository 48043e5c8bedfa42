package service

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	byEmail   map[string]*domain.Account
	findErr   error
	createErr error
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[a.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.byEmail[a.Email] = cloneAccount(a)
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

type stubSessionStore struct {
	sessions map[string]string
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Save(_ context.Context, sessionID, accountID string, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sessions[sessionID] = accountID
	return nil
}

func (s *stubSessionStore) AccountID(_ context.Context, sessionID string) (string, error) {
	id, ok := s.sessions[sessionID]
	if !ok {
		return "", domain.ErrNoSession
	}
	return id, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type stubProfileRepo struct {
	profiles  []*domain.Profile
	roleRows  []domain.Role
	createErr error
}

func (r *stubProfileRepo) CreateProfile(_ context.Context, p *domain.Profile) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.profiles = append(r.profiles, p)
	return nil
}

func (r *stubProfileRepo) CreateRoleRecord(_ context.Context, role domain.Role, _, _, _ string) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.roleRows = append(r.roleRows, role)
	return nil
}

type stubEventRepo struct {
	events       map[string]*domain.Event
	positions    []domain.Position
	createErr    error
	positionsErr error
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{events: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *e
	r.events[e.ID] = &clone
	return nil
}

func (r *stubEventRepo) InsertPositions(_ context.Context, p []domain.Position) error {
	if r.positionsErr != nil {
		return r.positionsErr
	}
	r.positions = append(r.positions, p...)
	return nil
}

func (r *stubEventRepo) List(_ context.Context) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventDate.Before(out[j].EventDate) })
	return out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id string) (*domain.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) ListPositions(_ context.Context, eventID string) ([]domain.Position, error) {
	var out []domain.Position
	for _, p := range r.positions {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubVendorRepo struct {
	profiles  map[string]*domain.VendorProfile
	apps      map[string]bool // vendor|event
	docs      []*domain.VendorDocument
	docErr    error
	upsertErr error
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{
		profiles: make(map[string]*domain.VendorProfile),
		apps:     make(map[string]bool),
	}
}

func (r *stubVendorRepo) GetProfile(_ context.Context, vendorID string) (*domain.VendorProfile, error) {
	p, ok := r.profiles[vendorID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubVendorRepo) UpsertProfile(_ context.Context, p *domain.VendorProfile) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	clone := *p
	if existing, ok := r.profiles[p.ID]; ok {
		clone.Verified = existing.Verified
	}
	r.profiles[p.ID] = &clone
	return nil
}

func (r *stubVendorRepo) InsertApplication(_ context.Context, a *domain.VendorApplication) error {
	key := a.VendorID + "|" + a.EventID
	if r.apps[key] {
		return domain.ErrAlreadyApplied
	}
	r.apps[key] = true
	return nil
}

func (r *stubVendorRepo) ListApplicationEventIDs(_ context.Context, vendorID string) ([]string, error) {
	var out []string
	for key := range r.apps {
		if len(key) > len(vendorID) && key[:len(vendorID)+1] == vendorID+"|" {
			out = append(out, key[len(vendorID)+1:])
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubVendorRepo) InsertDocument(_ context.Context, d *domain.VendorDocument) error {
	if r.docErr != nil {
		return r.docErr
	}
	r.docs = append(r.docs, d)
	return nil
}

type stubStorage struct {
	files map[string][]byte
	err   error
}

func (s *stubStorage) Upload(_ context.Context, path, _ string, r io.Reader) error {
	if s.err != nil {
		return s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[path] = b
	return nil
}

type recordingAudit struct {
	mu     sync.Mutex
	events []ports.AuthEventInput
}

func (a *recordingAudit) Enqueue(e ports.AuthEventInput) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, e)
}

func (a *recordingAudit) outcomes() []domain.AuthOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.AuthOutcome, len(a.events))
	for i, e := range a.events {
		out[i] = e.Outcome
	}
	return out
}
