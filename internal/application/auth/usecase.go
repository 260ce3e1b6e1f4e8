package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
	"github.com/jhoicas/pos-movil-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/pos-movil-api/pkg/jwt"
)

// Claves en app_options para el estado persistente del proceso.
const (
	optMasterKeyHash = "master_key_hash"
	optSigningSecret = "jwt_signing_secret"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Issuer   string
	TokenTTL time.Duration
}

// AuthUseCase casos de uso de identidad de dispositivos: registro con clave
// maestra, verificación de tokens con revocación por jti, revocación de
// dispositivos y rotación de la clave maestra.
//
// El secreto de firma y la clave maestra viven en app_options; EnsureSecrets
// los materializa al arranque en lugar de crearlos perezosamente por petición.
type AuthUseCase struct {
	deviceRepo repository.DeviceRepository
	optionRepo repository.OptionRepository
	cfg        Config
	secret     string
}

// NewAuthUseCase construye el caso de uso. Llamar EnsureSecrets antes de servir tráfico.
func NewAuthUseCase(deviceRepo repository.DeviceRepository, optionRepo repository.OptionRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{deviceRepo: deviceRepo, optionRepo: optionRepo, cfg: cfg}
}

// EnsureSecrets carga (o crea y persiste) el secreto de firma y la clave
// maestra. Devuelve la clave maestra en claro únicamente cuando acaba de
// generarse, para que el operador la anote; en arranques posteriores devuelve "".
func (uc *AuthUseCase) EnsureSecrets() (newMasterKey string, err error) {
	secret, err := uc.optionRepo.Get(optSigningSecret)
	if err != nil {
		return "", fmt.Errorf("leer secreto de firma: %w", err)
	}
	if secret == "" {
		raw := make([]byte, 64)
		if _, err := rand.Read(raw); err != nil {
			return "", fmt.Errorf("generar secreto de firma: %w", err)
		}
		secret = hex.EncodeToString(raw)
		if err := uc.optionRepo.Set(optSigningSecret, secret); err != nil {
			return "", fmt.Errorf("persistir secreto de firma: %w", err)
		}
	}
	uc.secret = secret

	hash, err := uc.optionRepo.Get(optMasterKeyHash)
	if err != nil {
		return "", fmt.Errorf("leer clave maestra: %w", err)
	}
	if hash == "" {
		newMasterKey = uuid.New().String()
		if err := uc.storeMasterKey(newMasterKey); err != nil {
			return "", err
		}
	}
	return newMasterKey, nil
}

func (uc *AuthUseCase) storeMasterKey(key string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear clave maestra: %w", err)
	}
	if err := uc.optionRepo.Set(optMasterKeyHash, string(hash)); err != nil {
		return fmt.Errorf("persistir clave maestra: %w", err)
	}
	return nil
}

// CheckMasterKey compara la clave recibida contra el hash almacenado.
// Devuelve ErrForbidden si no coincide o si nunca se configuró una clave.
func (uc *AuthUseCase) CheckMasterKey(key string) error {
	if key == "" {
		return domain.ErrForbidden
	}
	hash, err := uc.optionRepo.Get(optMasterKeyHash)
	if err != nil {
		return fmt.Errorf("leer clave maestra: %w", err)
	}
	if hash == "" {
		return domain.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
		return domain.ErrForbidden
	}
	return nil
}

// RegisterDevice valida la clave maestra y registra (o re-registra) el
// dispositivo. El re-registro con el mismo uuid refresca el nombre y rota el
// jti: el token anterior queda revocado de inmediato.
func (uc *AuthUseCase) RegisterDevice(in dto.RegisterDeviceRequest) (*dto.RegisterDeviceResponse, error) {
	if in.DeviceUUID == "" || in.DeviceName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.CheckMasterKey(in.APIKey); err != nil {
		return nil, err
	}

	token, jti, err := pkgjwt.Generate(uc.secret, uc.cfg.Issuer, in.DeviceUUID, uc.cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}

	now := time.Now()
	device := &entity.Device{
		UUID:         in.DeviceUUID,
		Name:         in.DeviceName,
		JTI:          jti,
		RegisteredAt: now,
		LastSeen:     now,
	}
	if existing, err := uc.deviceRepo.GetByUUID(in.DeviceUUID); err != nil {
		return nil, err
	} else if existing != nil {
		device.RegisteredAt = existing.RegisteredAt
	}
	if err := uc.deviceRepo.Upsert(device); err != nil {
		return nil, err
	}

	return &dto.RegisterDeviceResponse{
		Status:  "success",
		Message: "Dispositivo registrado. Utiliza este token para futuras solicitudes.",
		JWT:     token,
	}, nil
}

// VerifyToken valida un token de dispositivo y devuelve su uuid.
// Además de firma y ventana temporal, exige que el jti coincida con el token
// activo del dispositivo: revocar el dispositivo o rotar la clave maestra
// invalida el token aunque su exp siga vigente.
func (uc *AuthUseCase) VerifyToken(rawToken string) (deviceUUID string, err error) {
	uuid, jti, err := pkgjwt.Parse(uc.secret, rawToken)
	if err != nil {
		switch {
		case errors.Is(err, pkgjwt.ErrExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, pkgjwt.ErrNotYetValid):
			return "", domain.ErrTokenNotYetValid
		case errors.Is(err, pkgjwt.ErrSignature):
			return "", domain.ErrTokenInvalid
		default:
			return "", domain.ErrTokenInvalid
		}
	}

	device, err := uc.deviceRepo.GetByUUID(uuid)
	if err != nil {
		return "", err
	}
	if device == nil {
		return "", domain.ErrTokenRevoked
	}
	if subtle.ConstantTimeCompare([]byte(device.JTI), []byte(jti)) != 1 {
		return "", domain.ErrTokenRevoked
	}
	return uuid, nil
}

// ListDevices devuelve el roster para el panel admin.
func (uc *AuthUseCase) ListDevices() ([]dto.DeviceResponse, error) {
	devices, err := uc.deviceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, toDeviceResponse(d))
	}
	return out, nil
}

// RevokeDevice elimina el dispositivo del roster; su token falla la
// verificación en la siguiente petición.
func (uc *AuthUseCase) RevokeDevice(deviceUUID string) error {
	device, err := uc.deviceRepo.GetByUUID(deviceUUID)
	if err != nil {
		return err
	}
	if device == nil {
		return domain.ErrNotFound
	}
	return uc.deviceRepo.Delete(deviceUUID)
}

// RotateMasterKey reemplaza la clave maestra y vacía el roster completo.
// Interruptor de emergencia: todos los dispositivos deben re-registrarse con
// la clave nueva y todos los tokens emitidos quedan revocados.
func (uc *AuthUseCase) RotateMasterKey() (*dto.RotateKeyResponse, error) {
	newKey := uuid.New().String()
	if err := uc.storeMasterKey(newKey); err != nil {
		return nil, err
	}
	if err := uc.deviceRepo.DeleteAll(); err != nil {
		return nil, err
	}
	return &dto.RotateKeyResponse{NewKey: newKey, Devices: []dto.DeviceResponse{}}, nil
}

func toDeviceResponse(d *entity.Device) dto.DeviceResponse {
	return dto.DeviceResponse{
		UUID:         d.UUID,
		Name:         d.Name,
		RegisteredAt: d.RegisteredAt,
		LastSeen:     d.LastSeen,
	}
}
