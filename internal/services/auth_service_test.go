package services

import (
	"testing"

	"github.com/artatlas/atlas-api/internal/dto"
	"github.com/artatlas/atlas-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "wanjina",
		Email:    "wanjina@example.com",
		Password: "secret123",
		FullName: "Wanjina Painter",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "wanjina", resp.User.Username)
	assert.Equal(t, models.RoleArtist, resp.User.Role)
	assert.Equal(t, models.UserStatusActive, resp.User.Status)

	// The password is stored hashed, never verbatim.
	var user models.User
	require.NoError(t, db.Where("username = ?", "wanjina").First(&user).Error)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)

	// The access token is a valid HS256 JWT carrying identity claims.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "wanjina", claims["username"])
	assert.Equal(t, models.RoleArtist, claims["role"])
	assert.NotEmpty(t, claims["jti"])
}

func TestRegisterRoleMapping(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	// The legacy signup form posts "general" for the public option.
	req := registerRequest()
	req.Role = "general"
	resp, err := svc.Register(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleArtist, resp.User.Role)

	req = registerRequest()
	req.Username = "curator"
	req.Email = "curator@example.com"
	req.Role = "researcher"
	resp, err = svc.Register(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleResearcher, resp.User.Role)

	// Unknown role values fall back to artist rather than failing signup.
	req = registerRequest()
	req.Username = "mystery"
	req.Email = "mystery@example.com"
	req.Role = "superuser"
	resp, err = svc.Register(req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleArtist, resp.User.Role)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
	}{
		{"missing fields", func(r *dto.RegisterRequest) { r.Password = "" }},
		{"username too short", func(r *dto.RegisterRequest) { r.Username = "ab" }},
		{"password too short", func(r *dto.RegisterRequest) { r.Password = "12345" }},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			tt.mutate(req)
			_, err := svc.Register(req)
			var ve ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestRegisterConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "different@example.com"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	req = registerRequest()
	req.Username = "different"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	// Username works as the identifier.
	resp, err := svc.Login(&dto.LoginRequest{Identifier: "wanjina", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.AccessToken)

	// So does the email address.
	_, err = svc.Login(&dto.LoginRequest{Identifier: "wanjina@example.com", Password: "secret123"})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("username = ?", "wanjina").First(&user).Error)
	assert.NotNil(t, user.LastLoginAt)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(registerRequest())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(&dto.LoginRequest{Identifier: "wanjina", Password: "wrong"})
	_, unknownUser := svc.Login(&dto.LoginRequest{Identifier: "nobody", Password: "secret123"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	first, err := svc.Register(registerRequest())
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The consumed token is revoked; replaying it fails.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(registerRequest())
	require.NoError(t, err)

	svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken})

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	user := createUser(t, db, "someone", models.RoleArtist)

	found, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "someone", found.Username)

	_, err = svc.GetUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
