package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "venuebook-dev"
	}
	return secret
}

// GenerateStaffToken creates a signed JWT for a staff member managing
// day-offs and packages. The token expires after the specified duration.
func GenerateStaffToken(staffID, locationID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": staffID,
		"loc": locationID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
}

// ExtractStaffFromToken returns the staff ID and location ID carried by a
// valid token.
func ExtractStaffFromToken(tokenString string) (staffID, locationID string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	staffID, ok = claims["sub"].(string)
	if !ok || staffID == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	locationID, _ = claims["loc"].(string)
	return staffID, locationID, nil
}
