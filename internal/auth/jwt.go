package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = time.Hour

var jwtSecret string

func Init(secret string) {
	jwtSecret = secret
}

// Identity is the authenticated principal embedded in a token.
type Identity struct {
	ID    uint
	Email string
}

func GenerateJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user": map[string]interface{}{
			"id":    userID,
			"email": email,
		},
		"exp": time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func VerifyJWT(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	payload, ok := claims["user"].(map[string]interface{})

	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	id, ok := payload["id"].(float64)

	if !ok {
		return Identity{}, fmt.Errorf("invalid user ID in token claims")
	}

	email, _ := payload["email"].(string)

	return Identity{ID: uint(id), Email: email}, nil
}
