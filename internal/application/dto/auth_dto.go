package dto

import "time"

// RegisterDeviceRequest body para POST /api/auth/register-device.
// api_key es la clave maestra que el administrador entrega por fuera de banda
// (QR en la pantalla de ajustes); device_uuid lo genera la app y es estable.
type RegisterDeviceRequest struct {
	APIKey     string `json:"api_key"`
	DeviceUUID string `json:"device_uuid"`
	DeviceName string `json:"device_name"`
}

// RegisterDeviceResponse respuesta con el token de sesión del dispositivo.
type RegisterDeviceResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	JWT     string `json:"jwt"`
}

// DeviceResponse entrada del roster para el panel admin.
type DeviceResponse struct {
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	LastSeen     time.Time `json:"last_seen"`
}

// RotateKeyResponse resultado de rotar la clave maestra: la nueva clave se
// muestra en claro una única vez y el roster queda vacío.
type RotateKeyResponse struct {
	NewKey  string           `json:"new_key"`
	Devices []DeviceResponse `json:"devices"`
}
