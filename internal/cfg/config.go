package cfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/peter-kozarec/psecalc/pkg/fees"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
)

const envPrefix = "PSECALC_"

type Config struct {
	LogLevel zapcore.Level
	DevMode  bool

	// Fee overrides, nil keeps the exchange default.
	MinimumCommission  *fixed.Point
	CommissionRate     *fixed.Point
	VatRate            *fixed.Point
	TransactionFeeRate *fixed.Point
	ClearingFeeRate    *fixed.Point
	SalesTaxRate       *fixed.Point
}

// Load reads the configuration from the environment. Values from a .env file in
// the working directory are used for variables that are not already set.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unable to load env file: %w", err)
	}

	c := &Config{}

	level := getEnv("LOG_LEVEL", "info")
	if err := c.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid %sLOG_LEVEL %q: %w", envPrefix, level, err)
	}

	devMode, err := strconv.ParseBool(getEnv("DEV_MODE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %sDEV_MODE: %w", envPrefix, err)
	}
	c.DevMode = devMode

	points := []struct {
		key string
		dst **fixed.Point
	}{
		{"MIN_COMMISSION", &c.MinimumCommission},
		{"COMMISSION_RATE", &c.CommissionRate},
		{"VAT_RATE", &c.VatRate},
		{"TRANSACTION_FEE_RATE", &c.TransactionFeeRate},
		{"CLEARING_FEE_RATE", &c.ClearingFeeRate},
		{"SALES_TAX_RATE", &c.SalesTaxRate},
	}

	for _, p := range points {
		value, ok := os.LookupEnv(envPrefix + p.key)
		if !ok || value == "" {
			continue
		}
		var point fixed.Point
		if err := point.UnmarshalText([]byte(value)); err != nil {
			return nil, fmt.Errorf("invalid %s%s %q: %w", envPrefix, p.key, value, err)
		}
		*p.dst = &point
	}

	return c, nil
}

// Schedule builds the fee schedule with the configured overrides applied.
func (c *Config) Schedule() (*fees.Schedule, error) {
	var options []fees.Option

	if c.MinimumCommission != nil {
		options = append(options, fees.WithMinimumCommission(*c.MinimumCommission))
	}
	if c.CommissionRate != nil {
		options = append(options, fees.WithCommissionRate(*c.CommissionRate))
	}
	if c.VatRate != nil {
		options = append(options, fees.WithVatRate(*c.VatRate))
	}
	if c.TransactionFeeRate != nil {
		options = append(options, fees.WithTransactionFeeRate(*c.TransactionFeeRate))
	}
	if c.ClearingFeeRate != nil {
		options = append(options, fees.WithClearingFeeRate(*c.ClearingFeeRate))
	}
	if c.SalesTaxRate != nil {
		options = append(options, fees.WithSalesTaxRate(*c.SalesTaxRate))
	}

	return fees.NewSchedule(options...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(envPrefix + key); ok && value != "" {
		return value
	}
	return fallback
}
