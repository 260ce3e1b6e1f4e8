package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-movil-api/internal/application/auth"
	"github.com/jhoicas/pos-movil-api/internal/application/dto"
	"github.com/jhoicas/pos-movil-api/internal/domain"
	"github.com/jhoicas/pos-movil-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeDeviceRepo struct {
	devices map[string]*entity.Device
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: make(map[string]*entity.Device)}
}

func (r *fakeDeviceRepo) GetByUUID(uuid string) (*entity.Device, error) {
	d, ok := r.devices[uuid]
	if !ok {
		return nil, nil
	}
	copia := *d
	return &copia, nil
}

func (r *fakeDeviceRepo) List() ([]*entity.Device, error) {
	out := make([]*entity.Device, 0, len(r.devices))
	for _, d := range r.devices {
		copia := *d
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeDeviceRepo) Upsert(device *entity.Device) error {
	copia := *device
	r.devices[device.UUID] = &copia
	return nil
}

func (r *fakeDeviceRepo) Delete(uuid string) error {
	delete(r.devices, uuid)
	return nil
}

func (r *fakeDeviceRepo) DeleteAll() error {
	r.devices = make(map[string]*entity.Device)
	return nil
}

type fakeOptionRepo struct {
	options map[string]string
}

func newFakeOptionRepo() *fakeOptionRepo {
	return &fakeOptionRepo{options: make(map[string]string)}
}

func (r *fakeOptionRepo) Get(key string) (string, error) { return r.options[key], nil }
func (r *fakeOptionRepo) Set(key, value string) error {
	r.options[key] = value
	return nil
}

// newTestAuth construye el caso de uso con fakes y secretos materializados.
// Devuelve también la clave maestra generada.
func newTestAuth(t *testing.T) (*auth.AuthUseCase, *fakeDeviceRepo, string) {
	t.Helper()
	deviceRepo := newFakeDeviceRepo()
	uc := auth.NewAuthUseCase(deviceRepo, newFakeOptionRepo(), auth.Config{
		Issuer:   "pos-movil-test",
		TokenTTL: time.Hour,
	})
	masterKey, err := uc.EnsureSecrets()
	require.NoError(t, err)
	require.NotEmpty(t, masterKey, "el primer arranque debe generar clave maestra")
	return uc, deviceRepo, masterKey
}

func register(t *testing.T, uc *auth.AuthUseCase, key, uuid, name string) string {
	t.Helper()
	resp, err := uc.RegisterDevice(dto.RegisterDeviceRequest{
		APIKey:     key,
		DeviceUUID: uuid,
		DeviceName: name,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.JWT)
	return resp.JWT
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterDevice_ClaveCorrecta_EmiteToken(t *testing.T) {
	uc, _, masterKey := newTestAuth(t)

	token := register(t, uc, masterKey, "dev-1", "Caja principal")

	uuid, err := uc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", uuid)
}

func TestRegisterDevice_ClaveIncorrecta_Forbidden(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.RegisterDevice(dto.RegisterDeviceRequest{
		APIKey:     "clave-equivocada",
		DeviceUUID: "dev-1",
		DeviceName: "Caja principal",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterDevice_CamposVacios_InvalidInput(t *testing.T) {
	uc, _, masterKey := newTestAuth(t)

	_, err := uc.RegisterDevice(dto.RegisterDeviceRequest{APIKey: masterKey})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Re-registro con el mismo uuid: el token anterior queda revocado porque el
// jti del roster rota, y la fecha de registro original se conserva.
func TestRegisterDevice_ReRegistro_RevocaTokenAnterior(t *testing.T) {
	uc, deviceRepo, masterKey := newTestAuth(t)

	tokenViejo := register(t, uc, masterKey, "dev-1", "Caja principal")
	registrado, err := deviceRepo.GetByUUID("dev-1")
	require.NoError(t, err)
	primeraFecha := registrado.RegisteredAt

	tokenNuevo := register(t, uc, masterKey, "dev-1", "Caja renombrada")

	_, err = uc.VerifyToken(tokenViejo)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked, "el token anterior debe quedar revocado")

	uuid, err := uc.VerifyToken(tokenNuevo)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", uuid)

	actual, err := deviceRepo.GetByUUID("dev-1")
	require.NoError(t, err)
	assert.Equal(t, "Caja renombrada", actual.Name)
	assert.Equal(t, primeraFecha, actual.RegisteredAt,
		"el re-registro conserva la fecha de registro original")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de verificación y revocación
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyToken_Malformado(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	_, err := uc.VerifyToken("no.es.un.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyToken_DispositivoFueraDelRoster_Revocado(t *testing.T) {
	uc, _, masterKey := newTestAuth(t)

	token := register(t, uc, masterKey, "dev-1", "Caja principal")
	require.NoError(t, uc.RevokeDevice("dev-1"))

	_, err := uc.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked,
		"firma válida pero dispositivo revocado debe fallar")
}

func TestRevokeDevice_Inexistente_NotFound(t *testing.T) {
	uc, _, _ := newTestAuth(t)

	err := uc.RevokeDevice("dev-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de rotación de clave maestra (interruptor de emergencia)
// ──────────────────────────────────────────────────────────────────────────────

func TestRotateMasterKey_VaciaRosterYRevocaTodo(t *testing.T) {
	uc, _, masterKey := newTestAuth(t)

	token1 := register(t, uc, masterKey, "dev-1", "Caja 1")
	token2 := register(t, uc, masterKey, "dev-2", "Caja 2")

	resp, err := uc.RotateMasterKey()
	require.NoError(t, err)
	require.NotEmpty(t, resp.NewKey)
	assert.NotEqual(t, masterKey, resp.NewKey)
	assert.Empty(t, resp.Devices, "el roster queda vacío tras la rotación")

	// Todos los tokens emitidos quedan revocados.
	_, err = uc.VerifyToken(token1)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)
	_, err = uc.VerifyToken(token2)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	// La clave anterior deja de servir; la nueva registra con normalidad.
	_, err = uc.RegisterDevice(dto.RegisterDeviceRequest{
		APIKey: masterKey, DeviceUUID: "dev-3", DeviceName: "Caja 3",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	token3 := register(t, uc, resp.NewKey, "dev-3", "Caja 3")
	uuid, err := uc.VerifyToken(token3)
	require.NoError(t, err)
	assert.Equal(t, "dev-3", uuid)
}

func TestEnsureSecrets_SegundoArranque_NoRegeneraClave(t *testing.T) {
	deviceRepo := newFakeDeviceRepo()
	optionRepo := newFakeOptionRepo()
	cfg := auth.Config{Issuer: "pos-movil-test", TokenTTL: time.Hour}

	uc1 := auth.NewAuthUseCase(deviceRepo, optionRepo, cfg)
	key, err := uc1.EnsureSecrets()
	require.NoError(t, err)
	require.NotEmpty(t, key)
	token := register(t, uc1, key, "dev-1", "Caja 1")

	// Simula reinicio del proceso con el mismo almacenamiento.
	uc2 := auth.NewAuthUseCase(deviceRepo, optionRepo, cfg)
	key2, err := uc2.EnsureSecrets()
	require.NoError(t, err)
	assert.Empty(t, key2, "arranques posteriores no muestran la clave")

	// El token emitido antes del reinicio sigue siendo válido.
	uuid, err := uc2.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dev-1", uuid)
}
