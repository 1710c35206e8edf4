//go:build unit
// +build unit

package v1

import (
	"github.com/MGTheTrain/crypto-toolbox/internal/domain/cryptoalg"
	"github.com/stretchr/testify/mock"
)

// MockSymmetricService is a mock implementation of SymmetricService
type MockSymmetricService struct {
	mock.Mock
}

func (m *MockSymmetricService) GenerateKey(keyBits int, mode string) cryptoalg.Result {
	args := m.Called(keyBits, mode)
	return args.Get(0).(cryptoalg.Result)
}

func (m *MockSymmetricService) Encrypt(req cryptoalg.SymmetricRequest) cryptoalg.SymmetricResult {
	args := m.Called(req)
	return args.Get(0).(cryptoalg.SymmetricResult)
}

func (m *MockSymmetricService) Decrypt(req cryptoalg.SymmetricRequest) cryptoalg.Result {
	args := m.Called(req)
	return args.Get(0).(cryptoalg.Result)
}

// MockAsymmetricService is a mock implementation of AsymmetricService
type MockAsymmetricService struct {
	mock.Mock
}

func (m *MockAsymmetricService) GenerateKeyPair(keySize int, format string) cryptoalg.KeyPairResult {
	args := m.Called(keySize, format)
	return args.Get(0).(cryptoalg.KeyPairResult)
}

func (m *MockAsymmetricService) Encrypt(req cryptoalg.AsymmetricRequest) cryptoalg.Result {
	args := m.Called(req)
	return args.Get(0).(cryptoalg.Result)
}

func (m *MockAsymmetricService) Decrypt(req cryptoalg.AsymmetricRequest) cryptoalg.Result {
	args := m.Called(req)
	return args.Get(0).(cryptoalg.Result)
}
