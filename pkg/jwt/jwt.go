package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia de un token desde su emisión.
const DefaultTTL = time.Hour

// ErrEmptySecret se devuelve si se intenta firmar o validar sin secreto.
var ErrEmptySecret = errors.New("jwt: secret vacío")

// Claims incluye los claims estándar JWT más el id del usuario (claim "id").
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

// Generate genera un token JWT firmado (HS256) para userID con expiración now+ttl.
func Generate(secret string, userID int64, issuer string, ttl time.Duration) (string, error) {
	return GenerateAt(secret, userID, issuer, ttl, time.Now())
}

// GenerateAt igual que Generate pero con instante de emisión explícito.
func GenerateAt(secret string, userID int64, issuer string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el userID.
// Retorna error si el token es inválido, expirado, malformado o tiene firma incorrecta.
func Parse(secret, tokenString string) (int64, error) {
	return ParseAt(secret, tokenString, time.Now())
}

// ParseAt igual que Parse pero evaluando la expiración en el instante now.
func ParseAt(secret, tokenString string, now time.Time) (int64, error) {
	if secret == "" {
		return 0, ErrEmptySecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	},
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("claims inválidos")
	}
	return claims.UserID, nil
}
