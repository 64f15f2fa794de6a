package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fitme95/fitme-backend/internal/apperrors"
	"github.com/fitme95/fitme-backend/internal/config"
	"github.com/fitme95/fitme-backend/internal/dto"
	"github.com/fitme95/fitme-backend/internal/models"
	"github.com/fitme95/fitme-backend/internal/scope"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdentityVerifier checks an externally issued identity token and returns its
// claims. The production implementation talks to Google's JWKS endpoint.
type IdentityVerifier interface {
	Verify(idToken string) (*GoogleClaims, error)
}

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	verifier IdentityVerifier
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:       db,
		cfg:      cfg,
		verifier: NewGoogleIDTokenVerifier(cfg.GoogleClientID),
	}
}

func NewAuthServiceWithVerifier(db *gorm.DB, cfg *config.Config, verifier IdentityVerifier) *AuthService {
	return &AuthService{db: db, cfg: cfg, verifier: verifier}
}

// GoogleLogin resolves a Google ID token into a local user, creating the user
// on first sight. The bool result reports whether a new user was created.
func (s *AuthService) GoogleLogin(idToken string) (*dto.LoginResponse, bool, error) {
	if idToken == "" {
		return nil, false, apperrors.NewValidation("ID Token is required")
	}

	claims, err := s.verifier.Verify(idToken)
	if err != nil {
		slog.Error("google token verification failed", "error", err)
		return nil, false, &apperrors.AuthenticationError{Message: "Invalid ID token", Err: err}
	}

	firstName, lastName := resolveName(claims)

	if claims.Email == "" {
		return nil, false, apperrors.NewValidation("Email not found in token")
	}

	var user models.User
	created := false
	onboarded := false

	// Lookup-or-insert and the onboarding check share one transaction; the
	// unique key on google_id breaks ties between concurrent first logins.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("google_id = ?", claims.Sub).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				GoogleID:  claims.Sub,
				Email:     claims.Email,
				FirstName: firstName,
				LastName:  lastName,
			}
			if cerr := tx.Create(&user).Error; cerr != nil {
				if !errors.Is(cerr, gorm.ErrDuplicatedKey) {
					return cerr
				}
				// Lost the race: another request inserted this identity
				// first. Re-read and treat the user as found.
				if rerr := tx.Where("google_id = ?", claims.Sub).First(&user).Error; rerr != nil {
					return rerr
				}
			} else {
				created = true
			}
		} else if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Profile{}).Scopes(scope.OwnedBy(user.GoogleID)).Count(&count).Error; err != nil {
			return err
		}
		onboarded = count > 0
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	accessToken, refreshToken, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, false, err
	}

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.cfg.JWTAccessExpiry.Milliseconds(),
		User: dto.UserPayload{
			ID:          user.GoogleID,
			Email:       user.Email,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			IsOnboarded: onboarded,
		},
	}, created, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.NewValidation("Refresh token is required")
	}

	tokenHash := hashToken(refreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = ?", tokenHash, false).First(&stored).Error; err != nil {
		return nil, &apperrors.AuthenticationError{Message: "Invalid or expired refresh token", Err: err}
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, &apperrors.AuthenticationError{Message: "Invalid or expired refresh token"}
	}

	if err := s.db.Model(&stored).Update("revoked", true).Error; err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("google_id = ?", stored.UserID).First(&user).Error; err != nil {
		return nil, &apperrors.AuthenticationError{Message: "Invalid or expired refresh token", Err: err}
	}

	accessToken, newRefreshToken, err := s.generateTokenPair(&user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		Token:        accessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    s.cfg.JWTAccessExpiry.Milliseconds(),
	}, nil
}

// UserInfo returns the resolved caller together with the onboarding flag.
func (s *AuthService) UserInfo(userID string) (*dto.UserPayload, error) {
	var user models.User
	if err := s.db.Where("google_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Message: "User Not Found"}
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Profile{}).Scopes(scope.OwnedBy(user.GoogleID)).Count(&count).Error; err != nil {
		return nil, err
	}

	return &dto.UserPayload{
		ID:          user.GoogleID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsOnboarded: count > 0,
	}, nil
}

// resolveName prefers the structured name claims and falls back to splitting
// the display name on whitespace.
func resolveName(claims *GoogleClaims) (string, string) {
	firstName := claims.GivenName
	lastName := claims.FamilyName

	if firstName == "" || lastName == "" {
		parts := strings.Fields(claims.Name)
		if len(parts) > 0 {
			firstName = parts[0]
			lastName = strings.Join(parts[1:], " ")
		} else {
			firstName = ""
			lastName = ""
		}
	}

	return firstName, lastName
}

func (s *AuthService) generateTokenPair(user *models.User) (string, string, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.GoogleID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.GoogleID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
