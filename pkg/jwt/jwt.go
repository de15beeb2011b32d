package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrDecode el token falta, está mal formado o sus claims no traen exp legible.
var ErrDecode = errors.New("jwt: token no decodificable")

// Claims claims que firma Generate: los registrados más la autoridad del usuario.
// DecodeExpiry no los usa; el formato de roles varía según el emisor.
type Claims struct {
	jwt.RegisteredClaims
	Roles string `json:"roles"`
}

// DecodeExpiry lee el claim exp sin verificar la firma.
// La verificación es del servidor: este chequeo solo evita usar una sesión ya vencida.
func DecodeExpiry(tokenString string) (time.Time, error) {
	if tokenString == "" {
		return time.Time{}, fmt.Errorf("%w: vacío", ErrDecode)
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: sin exp", ErrDecode)
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpiredAt reporta si el token está vencido en now. Un token no decodificable
// cuenta como vencido.
func IsExpiredAt(tokenString string, now time.Time) bool {
	exp, err := DecodeExpiry(tokenString)
	if err != nil {
		return true
	}
	return !exp.After(now)
}

// IsExpired IsExpiredAt con el reloj del sistema.
func IsExpired(tokenString string) bool {
	return IsExpiredAt(tokenString, time.Now())
}

// Generate genera un token HS256 con subject=username y la autoridad en roles.
// Lo usa el autenticador mock; en producción los tokens los emite la API.
func Generate(secret, username, roles, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
