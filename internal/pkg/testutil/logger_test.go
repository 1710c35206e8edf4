//go:build unit
// +build unit

package testutil

import (
	"testing"

	"github.com/MGTheTrain/crypto-toolbox/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestLogger_ReusesProcessLogger(t *testing.T) {
	first := SetupTestLogger(t)
	second := SetupTestLogger(t)
	assert.Same(t, first, second)

	shared, err := logger.GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, shared)
}
