package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
)

func newDoctorService(repo *fakeDoctorRepo) *DoctorService {
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	return NewDoctorService(repo, jwt, nil, nil, false)
}

func TestRegisterThenLogin(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newDoctorService(repo)
	ctx := context.Background()

	id, err := svc.Register(ctx, "DrAlice", "Alice@Example.com", "secret1A")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored := repo.doctors[id]
	if stored == nil {
		t.Fatal("doctor not stored")
	}
	if stored.Username != "dralice" || stored.Email != "alice@example.com" {
		t.Fatalf("expected lowercased identity, got %q / %q", stored.Username, stored.Email)
	}
	if stored.Password == "secret1A" {
		t.Fatal("password stored in plain text")
	}

	token, email, err := svc.Login(ctx, "ALICE@example.COM", "secret1A")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("unexpected login email %q", email)
	}

	claims, err := svc.JWT.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.DoctorID != id {
		t.Fatalf("token doctor id %q, registered id %q", claims.DoctorID, id)
	}
}

func TestRegisterDuplicateCaseInsensitive(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newDoctorService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dralice", "alice@example.com", "secret1A"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	for _, tc := range []struct{ username, email string }{
		{"dralice", "other@example.com"},
		{"DRALICE", "other@example.com"},
		{"someoneelse", "alice@example.com"},
		{"someoneelse", "Alice@EXAMPLE.com"},
	} {
		if _, err := svc.Register(ctx, tc.username, tc.email, "secret1A"); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("Register(%q,%q): expected ErrDuplicate, got %v", tc.username, tc.email, err)
		}
	}
	if len(repo.doctors) != 1 {
		t.Fatalf("expected 1 stored doctor, got %d", len(repo.doctors))
	}
}

func TestLoginBadCredentials(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newDoctorService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dralice", "alice@example.com", "secret1A"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "alice@example.com", "wrongpass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "secret1A"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestDoctorGetByIDNotFound(t *testing.T) {
	svc := newDoctorService(newFakeDoctorRepo())

	if _, err := svc.GetByID(context.Background(), "64f1a2b3c4d5e6f708192a3b"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDoctorUpdateSelfOnly(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newDoctorService(repo)
	ctx := context.Background()

	id, err := svc.Register(ctx, "dralice", "alice@example.com", "secret1A")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	otherID := "64f1a2b3c4d5e6f708192a3b"
	if err := svc.Update(ctx, id, otherID, UpdateDoctorInput{}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("updating someone else: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, id, otherID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("deleting someone else: expected ErrForbidden, got %v", err)
	}

	newEmail := "New@Example.com"
	if err := svc.Update(ctx, id, id, UpdateDoctorInput{Email: &newEmail}); err != nil {
		t.Fatalf("self update: %v", err)
	}
	if repo.doctors[id].Email != "new@example.com" {
		t.Fatalf("email not lowercased on update: %q", repo.doctors[id].Email)
	}
	if _, ok := repo.lastUpdate["username"]; ok {
		t.Fatal("username must not be in the update set when not provided")
	}
	if _, ok := repo.lastUpdate["updated_at"]; !ok {
		t.Fatal("updated_at must always be in the update set")
	}
}

func TestDoctorDelete(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := newDoctorService(repo)
	ctx := context.Background()

	id, err := svc.Register(ctx, "dralice", "alice@example.com", "secret1A")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Delete(ctx, id, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, id, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}
