package cfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/peter-kozarec/psecalc/pkg/fees"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, zapcore.InfoLevel, c.LogLevel)
	assert.False(t, c.DevMode)
	assert.Nil(t, c.CommissionRate)

	s, err := c.Schedule()
	require.NoError(t, err)
	assert.True(t, s.CommissionRate().Eq(fees.Default().CommissionRate()))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PSECALC_LOG_LEVEL", "debug")
	t.Setenv("PSECALC_DEV_MODE", "true")
	t.Setenv("PSECALC_MIN_COMMISSION", "10")
	t.Setenv("PSECALC_SALES_TAX_RATE", "0.6")

	c, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, zapcore.DebugLevel, c.LogLevel)
	assert.True(t, c.DevMode)
	require.NotNil(t, c.MinimumCommission)
	assert.True(t, c.MinimumCommission.Eq(fixed.New(10, 0)))

	s, err := c.Schedule()
	require.NoError(t, err)
	assert.True(t, s.MinimumCommission().Eq(fixed.New(10, 0)))
	assert.True(t, s.SalesTax(fixed.New(1000, 0)).Eq(fixed.New(6, 0)))
}

func TestLoad_EnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("PSECALC_COMMISSION_RATE=0.3\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("PSECALC_COMMISSION_RATE") })

	c, err := Load(file)
	require.NoError(t, err)
	require.NotNil(t, c.CommissionRate)
	assert.True(t, c.CommissionRate.Eq(fixed.MustParse("0.3")))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"log level", "PSECALC_LOG_LEVEL", "loud"},
		{"dev mode", "PSECALC_DEV_MODE", "maybe"},
		{"rate", "PSECALC_VAT_RATE", "twelve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestConfig_ScheduleRejectsNegativeRate(t *testing.T) {
	t.Setenv("PSECALC_CLEARING_FEE_RATE", "-0.01")

	c, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	_, err = c.Schedule()
	assert.ErrorIs(t, err, fees.ErrInvalidSchedule)
}
