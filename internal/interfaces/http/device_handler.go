package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-movil-api/internal/application/auth"
	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
)

// DeviceHandler registro de dispositivos y administración del roster.
type DeviceHandler struct {
	authUC *auth.AuthUseCase
}

// NewDeviceHandler construye el handler.
func NewDeviceHandler(authUC *auth.AuthUseCase) *DeviceHandler {
	return &DeviceHandler{authUC: authUC}
}

// Register vincula un dispositivo con la clave maestra y devuelve su token.
// POST /api/auth/register-device
func (h *DeviceHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}

	resp, err := h.authUC.RegisterDevice(req)
	if err != nil {
		return respondError(c, err)
	}

	log.Info().Str("device_uuid", req.DeviceUUID).Str("name", req.DeviceName).
		Msg("dispositivo registrado")
	return c.Status(fiber.StatusOK).JSON(resp)
}

// List devuelve el roster de dispositivos vinculados.
// GET /api/admin/devices
func (h *DeviceHandler) List(c *fiber.Ctx) error {
	devices, err := h.authUC.ListDevices()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"devices": devices})
}

// Revoke elimina un dispositivo del roster; su token queda inservible.
// DELETE /api/admin/devices/:uuid
func (h *DeviceHandler) Revoke(c *fiber.Ctx) error {
	uuid := c.Params("uuid")
	if err := h.authUC.RevokeDevice(uuid); err != nil {
		return respondError(c, err)
	}
	log.Info().Str("device_uuid", uuid).Msg("dispositivo revocado")
	return c.JSON(fiber.Map{"status": "success"})
}

// RotateKey reemplaza la clave maestra y vacía el roster completo.
// POST /api/admin/rotate-key
func (h *DeviceHandler) RotateKey(c *fiber.Ctx) error {
	resp, err := h.authUC.RotateMasterKey()
	if err != nil {
		return respondError(c, err)
	}
	log.Warn().Msg("clave maestra rotada; roster vaciado")
	return c.JSON(resp)
}
