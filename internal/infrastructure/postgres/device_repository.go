package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo persistencia del roster de dispositivos.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el repositorio sobre un pool o una transacción.
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

const deviceColumns = `uuid, name, jti, registered_at, last_seen`

func (r *DeviceRepo) GetByUUID(uuid string) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE uuid = $1`

	var d entity.Device
	err := r.q.QueryRow(context.Background(), query, uuid).
		Scan(&d.UUID, &d.Name, &d.JTI, &d.RegisteredAt, &d.LastSeen)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("consultar dispositivo: %w", err)
	}
	return &d, nil
}

func (r *DeviceRepo) List() ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY registered_at DESC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar dispositivos: %w", err)
	}
	defer rows.Close()

	var devices []*entity.Device
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.UUID, &d.Name, &d.JTI, &d.RegisteredAt, &d.LastSeen); err != nil {
			return nil, fmt.Errorf("escanear dispositivo: %w", err)
		}
		devices = append(devices, &d)
	}
	return devices, rows.Err()
}

func (r *DeviceRepo) Upsert(device *entity.Device) error {
	query := `
		INSERT INTO devices (uuid, name, jti, registered_at, last_seen)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uuid) DO UPDATE
		SET name = EXCLUDED.name, jti = EXCLUDED.jti, last_seen = EXCLUDED.last_seen`

	_, err := r.q.Exec(context.Background(), query,
		device.UUID, device.Name, device.JTI, device.RegisteredAt, device.LastSeen)
	if err != nil {
		return fmt.Errorf("guardar dispositivo: %w", err)
	}
	return nil
}

func (r *DeviceRepo) Delete(uuid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM devices WHERE uuid = $1`, uuid)
	if err != nil {
		return fmt.Errorf("eliminar dispositivo: %w", err)
	}
	return nil
}

func (r *DeviceRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM devices`)
	if err != nil {
		return fmt.Errorf("vaciar roster: %w", err)
	}
	return nil
}
