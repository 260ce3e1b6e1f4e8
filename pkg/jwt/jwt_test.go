package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/pos-movil-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "pos-movil-test"
	testDevice = "11111111-1111-1111-1111-111111111111"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, jti, err := pkgjwt.Generate(testSecret, testIssuer, testDevice, 14*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.NotEmpty(t, jti, "el jti debe generarse siempre")

	uuid, parsedJTI, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testDevice, uuid, "el device_uuid debe viajar en el claim data")
	assert.Equal(t, jti, parsedJTI, "el jti parseado debe coincidir con el emitido")
}

func TestJWT_JTIUnicoPorEmision(t *testing.T) {
	_, jti1, err := pkgjwt.Generate(testSecret, testIssuer, testDevice, time.Hour)
	require.NoError(t, err)
	_, jti2, err := pkgjwt.Generate(testSecret, testIssuer, testDevice, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, jti1, jti2, "cada emisión debe rotar el jti")
}

func TestJWT_Expirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, testDevice, -time.Minute)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestJWT_FirmaInvalida(t *testing.T) {
	tok, _, err := pkgjwt.Generate("otro-secreto", testIssuer, testDevice, time.Hour)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrSignature)
}

func TestJWT_Malformado(t *testing.T) {
	_, _, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.ErrorIs(t, err, pkgjwt.ErrMalformed)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", testIssuer, testDevice, time.Hour)
	assert.Error(t, err)

	_, _, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
