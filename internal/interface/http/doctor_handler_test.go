package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MuhammadUmar248/clinic-backend/internal/application"
	"github.com/MuhammadUmar248/clinic-backend/internal/domain/entity"
	"github.com/MuhammadUmar248/clinic-backend/internal/interface/middleware"
	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
	"github.com/MuhammadUmar248/clinic-backend/pkg/validation"
)

type memDoctorRepo struct {
	doctors map[string]*entity.Doctor
}

func (m *memDoctorRepo) Insert(_ context.Context, d *entity.Doctor) (string, error) {
	d.ID = primitive.NewObjectID()
	m.doctors[d.ID.Hex()] = d
	return d.ID.Hex(), nil
}

func (m *memDoctorRepo) FindByID(_ context.Context, id string) (*entity.Doctor, error) {
	return m.doctors[id], nil
}

func (m *memDoctorRepo) FindByEmail(_ context.Context, email string) (*entity.Doctor, error) {
	for _, d := range m.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDoctorRepo) FindByEmailOrUsername(_ context.Context, email, username string) (*entity.Doctor, error) {
	for _, d := range m.doctors {
		if d.Email == email || d.Username == username {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDoctorRepo) FindAll(_ context.Context) ([]entity.Doctor, error) {
	out := make([]entity.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (m *memDoctorRepo) Update(_ context.Context, id string, fields map[string]any) (int64, error) {
	d, ok := m.doctors[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["username"].(string); ok {
		d.Username = v
	}
	if v, ok := fields["email"].(string); ok {
		d.Email = v
	}
	return 1, nil
}

func (m *memDoctorRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

func newDoctorTestRouter() (*gin.Engine, *memDoctorRepo, *helpers.JWTManager) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	repo := &memDoctorRepo{doctors: make(map[string]*entity.Doctor)}
	jwt := &helpers.JWTManager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	logger := logrus.New()
	svc := application.NewDoctorService(repo, jwt, logger, nil, false)
	h := NewDoctorHandler(svc, logger)

	r := gin.New()
	r.POST("/doctor/register", h.Register)
	r.POST("/doctor/login", h.Login)
	r.GET("/doctor/all", h.GetAll)
	r.GET("/doctor/:id", h.GetByID)
	auth := r.Group("/doctor", middleware.Auth(jwt))
	auth.PUT("/:id", h.Update)
	auth.DELETE("/:id", h.Delete)
	return r, repo, jwt
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDoctorRegisterEndpoint(t *testing.T) {
	r, repo, _ := newDoctorTestRouter()

	w := doJSON(r, http.MethodPost, "/doctor/register", gin.H{
		"username": "DrAlice",
		"email":    "Alice@Example.com",
		"password": "secret1A",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["message"] != "User registered successfully" || body["status"] != "success" {
		t.Fatalf("unexpected body: %v", body)
	}
	id, _ := body["user_id"].(string)
	if repo.doctors[id] == nil {
		t.Fatalf("user_id %q does not resolve to a stored doctor", id)
	}

	// Same email again, different casing
	w = doJSON(r, http.MethodPost, "/doctor/register", gin.H{
		"username": "someoneelse",
		"email":    "ALICE@example.com",
		"password": "secret1A",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}
}

func TestDoctorRegisterValidation(t *testing.T) {
	r, _, _ := newDoctorTestRouter()

	w := doJSON(r, http.MethodPost, "/doctor/register", gin.H{
		"username": "ab",
		"email":    "not-an-email",
		"password": "short",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Errors) != 3 {
		t.Fatalf("expected 3 violations, got %+v", body.Errors)
	}
	fields := map[string]bool{}
	for _, e := range body.Errors {
		fields[e.Field] = true
	}
	for _, f := range []string{"username", "email", "password"} {
		if !fields[f] {
			t.Fatalf("missing violation for %q: %+v", f, body.Errors)
		}
	}
}

func TestDoctorLoginEndpoint(t *testing.T) {
	r, _, jwt := newDoctorTestRouter()

	doJSON(r, http.MethodPost, "/doctor/register", gin.H{
		"username": "dralice",
		"email":    "alice@example.com",
		"password": "secret1A",
	}, "")

	w := doJSON(r, http.MethodPost, "/doctor/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret1A",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Token struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"token"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Token.TokenType != "bearer" || body.Email != "alice@example.com" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if _, err := jwt.ParseAccessToken(body.Token.AccessToken); err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/doctor/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpass1",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", w.Code)
	}
}

func TestDoctorGetByIDInvalidAndMissing(t *testing.T) {
	r, _, _ := newDoctorTestRouter()

	w := doJSON(r, http.MethodGet, "/doctor/not-a-hex-id", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: expected 400, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/doctor/64f1a2b3c4d5e6f708192a3b", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing doctor: expected 404, got %d", w.Code)
	}
}

func TestDoctorUpdateOtherDoctorForbidden(t *testing.T) {
	r, repo, jwt := newDoctorTestRouter()

	doJSON(r, http.MethodPost, "/doctor/register", gin.H{
		"username": "dralice",
		"email":    "alice@example.com",
		"password": "secret1A",
	}, "")

	var callerID string
	for id := range repo.doctors {
		callerID = id
	}
	token, _, err := jwt.GenerateAccessToken(callerID)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := doJSON(r, http.MethodPut, "/doctor/64f1a2b3c4d5e6f708192a3b", gin.H{
		"username": "newname",
	}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPut, "/doctor/"+callerID, gin.H{"username": "newname"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("self update: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if repo.doctors[callerID].Username != "newname" {
		t.Fatal("username not updated")
	}

	// No token at all
	w = doJSON(r, http.MethodPut, "/doctor/"+callerID, gin.H{"username": "another"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", w.Code)
	}
}
