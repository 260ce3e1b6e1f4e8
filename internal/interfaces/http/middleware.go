package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// LocalDeviceUUID clave de c.Locals con el uuid del dispositivo autenticado.
const LocalDeviceUUID = "device_uuid"

// TokenVerifier valida un token crudo y devuelve el uuid del dispositivo.
type TokenVerifier interface {
	VerifyToken(rawToken string) (string, error)
}

// MasterKeyChecker valida la clave maestra para las rutas de administración.
type MasterKeyChecker interface {
	CheckMasterKey(key string) error
}

// AuthMiddleware exige un Bearer token de dispositivo válido y deja el uuid
// en c.Locals. Token revocado (dispositivo fuera del roster o jti rotado)
// responde 403, el resto de fallos 401.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "Se requiere un token de autorización Bearer",
			})
		}

		deviceUUID, err := verifier.VerifyToken(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenRevoked):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Code:    "TOKEN_REVOKED",
					Message: "El dispositivo fue revocado; vuelve a registrarlo",
				})
			case errors.Is(err, domain.ErrTokenExpired):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "TOKEN_EXPIRED",
					Message: "El token expiró; vuelve a registrar el dispositivo",
				})
			default:
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Code:    "INVALID_TOKEN",
					Message: "Token inválido",
				})
			}
		}

		c.Locals(LocalDeviceUUID, deviceUUID)
		return c.Next()
	}
}

// AdminMiddleware protege las rutas de administración con la clave maestra
// enviada en el header X-Admin-Key.
func AdminMiddleware(checker MasterKeyChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := checker.CheckMasterKey(c.Get("X-Admin-Key")); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Clave de administración inválida",
			})
		}
		return c.Next()
	}
}

// deviceUUID recupera el uuid dejado por AuthMiddleware.
func deviceUUID(c *fiber.Ctx) string {
	uuid, _ := c.Locals(LocalDeviceUUID).(string)
	return uuid
}
