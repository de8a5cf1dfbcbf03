package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	repo "github.com/MuhammadUmar248/clinic-backend/internal/domain/repository"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
	"github.com/MuhammadUmar248/clinic-backend/pkg/mailer"
)

// DoctorService owns registration, login and doctor self-service. Emails
// and usernames are normalized to lowercase before every store round trip.
type DoctorService struct {
	Repo        repo.DoctorRepository
	JWT         *helpers.JWTManager
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewDoctorService(r repo.DoctorRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *DoctorService {
	return &DoctorService{Repo: r, JWT: jwt, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

// Register creates a doctor account and returns the new id. Duplicate email
// or username (case-insensitive) yields ErrDuplicate; the store's unique
// index backstops the lookup against concurrent registrations.
func (s *DoctorService) Register(ctx context.Context, username, email, password string) (string, error) {
	username = strings.ToLower(username)
	email = strings.ToLower(email)

	existing, err := s.Repo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrDuplicate
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}

	now := time.Now().Unix()
	d := &entity.Doctor{
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.Repo.Insert(ctx, d)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return "", ErrDuplicate
		}
		return "", err
	}

	s.notifyRegistered(ctx, username, email)
	return id, nil
}

// notifyRegistered enqueues a welcome email. The mail pipeline never fails
// a registration; publish errors are only logged.
func (s *DoctorService) notifyRegistered(ctx context.Context, username, email string) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:      email,
		Subject: "Welcome to the clinic portal",
		Text:    "Hi " + username + ",\n\nYour doctor account has been created. You can now log in and start managing your patients.",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Warn("failed to enqueue welcome email")
	}
}

// Login verifies credentials and issues an access token for the doctor id.
func (s *DoctorService) Login(ctx context.Context, email, password string) (token string, doctorEmail string, err error) {
	d, err := s.Repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", "", err
	}
	if d == nil {
		return "", "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(d.Password, password) {
		return "", "", ErrInvalidCredentials
	}
	token, _, err = s.JWT.GenerateAccessToken(d.ID.Hex())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("doctor_id", d.ID.Hex()).Error("generate access token failed")
		}
		return "", "", err
	}
	return token, d.Email, nil
}

func (s *DoctorService) GetAll(ctx context.Context) ([]entity.Doctor, error) {
	return s.Repo.FindAll(ctx)
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	d, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	return d, nil
}

type UpdateDoctorInput struct {
	Username *string
	Email    *string
}

// Update applies the provided fields to the caller's own profile. Mutating
// any other doctor is rejected with ErrForbidden before touching the store.
func (s *DoctorService) Update(ctx context.Context, callerID, id string, in UpdateDoctorInput) error {
	if id != callerID {
		return ErrForbidden
	}
	fields := map[string]any{"updated_at": time.Now().Unix()}
	if in.Username != nil {
		fields["username"] = strings.ToLower(*in.Username)
	}
	if in.Email != nil {
		fields["email"] = strings.ToLower(*in.Email)
	}
	modified, err := s.Repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return ErrDuplicate
		}
		return err
	}
	if modified == 0 {
		return ErrNoChanges
	}
	return nil
}

func (s *DoctorService) Delete(ctx context.Context, callerID, id string) error {
	if id != callerID {
		return ErrForbidden
	}
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
