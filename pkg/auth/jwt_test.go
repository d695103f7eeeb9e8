package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/otr-legal/otr-backend/internal/domain"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		userID         uuid.UUID
		role           domain.Role
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			userID:         uuid.New(),
			role:           domain.RoleUser,
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			userID:         uuid.New(),
			role:           domain.RoleLawyer,
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.role, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}
	userID := uuid.New()

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
		role        domain.Role
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, domain.RoleAdmin, time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
			role:        domain.RoleAdmin,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, domain.RoleUser, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing User ID",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(uuid.Nil, domain.RoleUser, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: userID,
					Role:   domain.RoleUser,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString(secretKey)
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Wrong Signing Key",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: userID,
					Role:   domain.RoleUser,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "otr",
					},
				})
				signedToken, _ := token.SignedString([]byte("another-secret"))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, tt.role, claims.Role)
			}
		})
	}
}

func TestSetSecret(t *testing.T) {
	defer SetSecret("dev-secret")

	jwtService := &JWTService{}
	userID := uuid.New()

	token, err := jwtService.GenerateJWT(userID, domain.RoleUser, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	SetSecret("rotated-secret")
	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)

	// Empty secret keeps the current key.
	SetSecret("")
	token, err = jwtService.GenerateJWT(userID, domain.RoleUser, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}
