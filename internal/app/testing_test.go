//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/MGTheTrain/crypto-toolbox/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/config"
	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func testDefaults() *config.CryptoDefaults {
	return &config.CryptoDefaults{
		AESMode:      "GCM",
		AESPadding:   "NONE",
		AESKeyBits:   128,
		AESEncoding:  "HEX",
		RSAKeySize:   1024,
		RSAPEMFormat: "PKCS",
		RSAPadding:   "OAEP_SHA256",
	}
}

func setupSymmetricService(t *testing.T) cryptoalg.SymmetricService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := cryptography.NewAESProcessor(logger)
	require.NoError(t, err)
	service, err := NewSymmetricService(processor, testDefaults(), logger)
	require.NoError(t, err)
	return service
}

func setupAsymmetricService(t *testing.T) cryptoalg.AsymmetricService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	codec, err := cryptography.NewRSAKeyCodec(logger)
	require.NoError(t, err)
	processor, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)
	service, err := NewAsymmetricService(codec, processor, testDefaults(), logger)
	require.NoError(t, err)
	return service
}
