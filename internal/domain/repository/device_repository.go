package repository

import "github.com/jhoicas/pos-movil-api/internal/domain/entity"

// DeviceRepository roster de dispositivos vinculados.
type DeviceRepository interface {
	// GetByUUID devuelve nil, nil si el dispositivo no existe.
	GetByUUID(uuid string) (*entity.Device, error)
	List() ([]*entity.Device, error)
	// Upsert crea el dispositivo o reemplaza nombre, jti y last_seen si ya existe.
	Upsert(device *entity.Device) error
	Delete(uuid string) error
	// DeleteAll vacía el roster completo (rotación de clave maestra).
	DeleteAll() error
}
