package services

import (
	"errors"
	"testing"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims *GoogleClaims
	err    error
}

func (s stubVerifier) Verify(string) (*GoogleClaims, error) {
	return s.claims, s.err
}

func validClaims() *GoogleClaims {
	return &GoogleClaims{
		Sub:        "test_google_id",
		Email:      "test@example.com",
		Name:       "Test User",
		GivenName:  "Test",
		FamilyName: "User",
	}
}

func TestGoogleLogin_NewUserCreated(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	resp, created, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(15*60*1000), resp.ExpiresIn)
	assert.Equal(t, "test_google_id", resp.User.ID)
	assert.Equal(t, "test@example.com", resp.User.Email)
	assert.False(t, resp.User.IsOnboarded)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGoogleLogin_ExistingUserFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	_, created, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.True(t, created)

	resp, created, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "test_google_id", resp.User.ID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGoogleLogin_NameSplitFallback(t *testing.T) {
	db := newTestDB(t)
	claims := validClaims()
	claims.GivenName = ""
	claims.FamilyName = ""
	claims.Name = "Ada Maria Lovelace"
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: claims})

	resp, _, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.Equal(t, "Ada", resp.User.FirstName)
	assert.Equal(t, "Maria Lovelace", resp.User.LastName)
}

func TestGoogleLogin_EmptyFullName(t *testing.T) {
	db := newTestDB(t)
	claims := validClaims()
	claims.GivenName = ""
	claims.FamilyName = ""
	claims.Name = ""
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: claims})

	resp, _, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.Empty(t, resp.User.FirstName)
	assert.Empty(t, resp.User.LastName)
}

func TestGoogleLogin_MissingToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	_, _, err := svc.GoogleLogin("")
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "ID Token is required", ve.Message)
}

func TestGoogleLogin_InvalidToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{err: errors.New("signature verification failed")})

	_, _, err := svc.GoogleLogin("bad-token")
	var ae *apperrors.AuthenticationError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "Invalid ID token", ae.Message)
}

func TestGoogleLogin_MissingEmail(t *testing.T) {
	db := newTestDB(t)
	claims := validClaims()
	claims.Email = ""
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: claims})

	_, _, err := svc.GoogleLogin("fake-token")
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Email not found in token", ve.Message)

	// Validation fails before any write
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGoogleLogin_OnboardedFlag(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAuthServiceWithVerifier(db, cfg, stubVerifier{claims: validClaims()})

	resp, _, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.False(t, resp.User.IsOnboarded)

	profiles := NewProfileService(db)
	_, _, err = profiles.Submit(resp.User.ID, dto.SubmitProfileRequest{
		Weight: ptrFloat(75), Height: ptrFloat(180), Age: ptrFloat(28),
	})
	assert.NoError(t, err)

	resp, created, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.True(t, resp.User.IsOnboarded)
}

func TestRefresh_RotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	login, _, err := svc.GoogleLogin("fake-token")
	assert.NoError(t, err)

	refreshed, err := svc.Refresh(login.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token was revoked on rotation
	_, err = svc.Refresh(login.RefreshToken)
	var ae *apperrors.AuthenticationError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, "Invalid or expired refresh token", ae.Message)
}

func TestRefresh_MissingToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	_, err := svc.Refresh("")
	var ve *apperrors.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "Refresh token is required", ve.Message)
}

func TestRefresh_UnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})

	_, err := svc.Refresh("never-issued")
	var ae *apperrors.AuthenticationError
	assert.True(t, errors.As(err, &ae))
}

func TestUserInfo(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthServiceWithVerifier(db, newTestConfig(), stubVerifier{claims: validClaims()})
	user := createTestUser(t, db, "info_google_id", "info@example.com")

	info, err := svc.UserInfo(user.GoogleID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, info.Email)
	assert.False(t, info.IsOnboarded)

	_, err = svc.UserInfo("missing_google_id")
	var nfe *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nfe))
}
