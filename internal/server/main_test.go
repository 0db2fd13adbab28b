package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server against a fresh in-memory sqlite database and
// returns it with a Fiber app carrying the full route table. The prometheus
// middleware is left unset so repeated test runs do not re-register collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	s := &Server{
		config:      &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		profileRepo: repository.NewProfileRepository(db),
		postRepo:    repository.NewPostRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// jsonReq builds a JSON request, optionally carrying a bearer token.
func jsonReq(method, target string, body any, token string) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// registerAndLogin creates a user through the API and returns its bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()

	resp, err := app.Test(jsonReq(http.MethodPost, "/api/users/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	}, ""), -1)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d", resp.StatusCode)
	}

	resp, err = app.Test(jsonReq(http.MethodPost, "/api/users/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, ""), -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned no token")
	}
	return body.Token
}
