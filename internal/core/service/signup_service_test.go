package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventstaff/hospitality-hub/internal/core/domain"
	"github.com/eventstaff/hospitality-hub/internal/core/ports"
)

func TestSignupService_Register_Success(t *testing.T) {
	accounts := newStubAccountRepo()
	profiles := &stubProfileRepo{}
	svc := NewSignupService(accounts, profiles, zerolog.Nop())

	acc, err := svc.Register(context.Background(), ports.SignupInput{
		Email:    " Alice@Example.com",
		Password: "pass12345",
		FullName: "Alice",
		Role:     domain.RoleVendor,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if acc.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", acc.Email)
	}
	if acc.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(profiles.profiles) != 1 || profiles.profiles[0].Role != domain.RoleVendor {
		t.Fatalf("expected profile row, got %+v", profiles.profiles)
	}
	if len(profiles.roleRows) != 1 || profiles.roleRows[0] != domain.RoleVendor {
		t.Fatalf("expected vendor row, got %+v", profiles.roleRows)
	}
}

func TestSignupService_Register_Validation(t *testing.T) {
	svc := NewSignupService(newStubAccountRepo(), &stubProfileRepo{}, zerolog.Nop())
	ctx := context.Background()

	cases := []struct {
		name string
		in   ports.SignupInput
		want error
	}{
		{"missing role", ports.SignupInput{Email: "a@example.com", Password: "pass12345", FullName: "A"}, domain.ErrInvalidRole},
		{"unknown role", ports.SignupInput{Email: "a@example.com", Password: "pass12345", FullName: "A", Role: "admin"}, domain.ErrInvalidRole},
		{"short password", ports.SignupInput{Email: "a@example.com", Password: "1234", FullName: "A", Role: domain.RoleCompany}, domain.ErrWeakPassword},
		{"missing name", ports.SignupInput{Email: "a@example.com", Password: "pass12345", Role: domain.RoleCompany}, domain.ErrInvalidCredentials},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestSignupService_Register_Duplicate(t *testing.T) {
	svc := NewSignupService(newStubAccountRepo(), &stubProfileRepo{}, zerolog.Nop())
	in := ports.SignupInput{Email: "bob@example.com", Password: "pass12345", FullName: "Bob", Role: domain.RoleOrganiser}

	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignupService_Register_ProfileFailureKeepsAccount(t *testing.T) {
	accounts := newStubAccountRepo()
	svc := NewSignupService(accounts, &stubProfileRepo{createErr: errors.New("insert failed")}, zerolog.Nop())

	acc, err := svc.Register(context.Background(), ports.SignupInput{
		Email: "c@example.com", Password: "pass12345", FullName: "C", Role: domain.RoleCompany,
	})
	if err != nil {
		t.Fatalf("expected account despite profile failure, got %v", err)
	}
	if _, ok := accounts.byEmail[acc.Email]; !ok {
		t.Fatalf("account not stored")
	}
}
