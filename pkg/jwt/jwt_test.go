package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stocktrack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "stocktrack-test"
)

func strPtr(s string) *string { return &s }

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "technician", strPtr("site-1"), testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, siteID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "technician", role)
	require.NotNil(t, siteID)
	assert.Equal(t, "site-1", *siteID)
}

// Admin: sin sede ligada, el claim site_id queda ausente.
func TestGenerateParse_SinSede(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", nil, testIssuer, 60)
	require.NoError(t, err)

	_, role, siteID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
	assert.Nil(t, siteID)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", nil, testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "firma con otro secret debe rechazarse")
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración negativa: el token nace vencido
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", nil, testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe rechazarse")
}

func TestParse_TokenMalformado(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", nil, testIssuer, 60)
	assert.Error(t, err)
}
