package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Errores de verificación clasificados para que el caller distinga causa sin
// depender de los tipos internos de golang-jwt.
var (
	ErrExpired     = errors.New("jwt: token expirado")
	ErrNotYetValid = errors.New("jwt: token aún no válido (nbf)")
	ErrSignature   = errors.New("jwt: firma inválida")
	ErrMalformed   = errors.New("jwt: token malformado")
)

// DeviceData payload propio del token bajo el claim "data", igual que lo espera la app móvil.
type DeviceData struct {
	DeviceUUID string `json:"device_uuid"`
}

// Claims incluye los claims estándar JWT más los datos del dispositivo.
// El jti (RegisteredClaims.ID) correlaciona el token con el registro activo
// del dispositivo en servidor; es lo que hace la revocación inmediata.
type Claims struct {
	jwt.RegisteredClaims
	Data DeviceData `json:"data"`
}

// Generate emite un token HS256 para un dispositivo con un jti fresco.
// Devuelve el token firmado y el jti que debe persistirse junto al dispositivo.
func Generate(secret, issuer, deviceUUID string, ttl time.Duration) (token, jti string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	if deviceUUID == "" {
		return "", "", fmt.Errorf("jwt: device uuid vacío")
	}
	now := time.Now()
	jti = uuid.New().String()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
		Data: DeviceData{DeviceUUID: deviceUUID},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

// Parse valida firma y ventana temporal y devuelve device_uuid y jti.
// Los fallos se clasifican en ErrExpired / ErrNotYetValid / ErrSignature / ErrMalformed.
func Parse(secret, tokenString string) (deviceUUID, jti string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", classify(err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", ErrMalformed
	}
	if claims.Data.DeviceUUID == "" || claims.ID == "" {
		return "", "", ErrMalformed
	}
	return claims.Data.DeviceUUID, claims.ID, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	default:
		return ErrMalformed
	}
}
