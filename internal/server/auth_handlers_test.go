package server

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockUserRepository)
		expectedStatus int
		expectedField  string
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "password123",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "test@example.com").Return(nil, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate Email",
			body: map[string]string{
				"name":     "Test User",
				"email":    "exists@example.com",
				"password": "password123",
			},
			mockSetup: func(m *MockUserRepository) {
				m.On("GetByEmail", mock.Anything, "exists@example.com").Return(&models.User{ID: 1}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "email",
		},
		{
			name: "Short Password",
			body: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "short",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "password",
		},
		{
			name: "Missing Name",
			body: map[string]string{
				"email":    "test@example.com",
				"password": "password123",
			},
			mockSetup:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedField:  "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.mockSetup(mockRepo)

			s := &Server{
				config:   &config.Config{JWTSecret: "test_secret"},
				userRepo: mockRepo,
			}
			app := fiber.New()
			app.Post("/register", s.Register)

			resp, err := app.Test(jsonReq(http.MethodPost, "/register", tt.body, ""), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedField != "" {
				var body map[string]string
				decodeBody(t, resp, &body)
				assert.Contains(t, body, tt.expectedField)
			} else {
				_ = resp.Body.Close()
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegister_HashesPasswordAndSetsAvatar(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "hash@example.com").Return(nil, nil)

	var created *models.User
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
	}).Return(nil)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret"},
		userRepo: mockRepo,
	}
	app := fiber.New()
	app.Post("/register", s.Register)

	resp, err := app.Test(jsonReq(http.MethodPost, "/register", map[string]string{
		"name":     "Hash User",
		"email":    "hash@example.com",
		"password": "password123",
	}, ""), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NotNil(t, created)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	assert.Contains(t, created.Avatar, "gravatar.com/avatar/")
}

func TestLogin(t *testing.T) {
	_, app := newTestServer(t)
	token := registerAndLogin(t, app, "Login User", "login@example.com")

	assert.True(t, strings.HasPrefix(token, "Bearer "))

	t.Run("Wrong Password", func(t *testing.T) {
		resp, err := app.Test(jsonReq(http.MethodPost, "/api/users/login", map[string]string{
			"email":    "login@example.com",
			"password": "wrongpassword",
		}, ""), -1)
		require.NoError(t, err)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "password")
	})

	t.Run("Unknown Email", func(t *testing.T) {
		resp, err := app.Test(jsonReq(http.MethodPost, "/api/users/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		}, ""), -1)
		require.NoError(t, err)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "email")
	})
}

func TestCurrentUser(t *testing.T) {
	_, app := newTestServer(t)
	token := registerAndLogin(t, app, "Current User", "current@example.com")

	resp, err := app.Test(jsonReq(http.MethodGet, "/api/users/current", nil, token), -1)
	require.NoError(t, err)

	var body map[string]any
	decodeBody(t, resp, &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Current User", body["name"])
	assert.Equal(t, "current@example.com", body["email"])
	assert.NotZero(t, body["id"])

	t.Run("No Token", func(t *testing.T) {
		resp, err := app.Test(jsonReq(http.MethodGet, "/api/users/current", nil, ""), -1)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		resp, err := app.Test(jsonReq(http.MethodGet, "/api/users/current", nil, "Bearer not-a-token"), -1)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
