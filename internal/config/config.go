// Package config содержит логику чтения конфигурации приложения FurniFindr.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config содержит параметры конфигурации приложения FurniFindr.
type Config struct {
	TaxRate     string `env:"FURNIFINDR_TAX_RATE"`
	ShippingFee string `env:"FURNIFINDR_SHIPPING_FEE"`
	Coupons     string `env:"FURNIFINDR_COUPONS"`
	LogFile     string `env:"FURNIFINDR_LOG_FILE"`
}

// Значения по умолчанию соответствуют поведению исходного приложения:
// налог 8%, фиксированная доставка 15.00, один купон WELCOME20 на 20%.
const (
	defaultTaxRate     = "0.08"
	defaultShippingFee = "15.00"
	defaultCoupons     = "WELCOME20:0.20"
	defaultLogFile     = "furnifindr.log"
)

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envTaxRate := cfg.TaxRate
	envShippingFee := cfg.ShippingFee
	envCoupons := cfg.Coupons
	envLogFile := cfg.LogFile

	flag.StringVar(&cfg.TaxRate, "t", defaultTaxRate, "tax rate applied to the subtotal")
	flag.StringVar(&cfg.ShippingFee, "s", defaultShippingFee, "flat shipping fee")
	flag.StringVar(&cfg.Coupons, "c", defaultCoupons, "coupon table, CODE:RATE pairs separated by commas")
	flag.StringVar(&cfg.LogFile, "l", defaultLogFile, "log file path")

	flag.Parse()

	if envTaxRate != "" {
		cfg.TaxRate = envTaxRate
	}
	if envShippingFee != "" {
		cfg.ShippingFee = envShippingFee
	}
	if envCoupons != "" {
		cfg.Coupons = envCoupons
	}
	if envLogFile != "" {
		cfg.LogFile = envLogFile
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return fmt.Errorf("invalid tax rate %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("tax rate must not be negative, got %s", rate)
	}

	fee, err := decimal.NewFromString(c.ShippingFee)
	if err != nil {
		return fmt.Errorf("invalid shipping fee %q: %w", c.ShippingFee, err)
	}
	if fee.IsNegative() {
		return fmt.Errorf("shipping fee must not be negative, got %s", fee)
	}

	return nil
}

// TaxRateDecimal возвращает налоговую ставку как decimal.
// Вызывается только после успешного Parse.
func (c *Config) TaxRateDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.TaxRate)
}

// ShippingFeeDecimal возвращает стоимость доставки как decimal.
// Вызывается только после успешного Parse.
func (c *Config) ShippingFeeDecimal() decimal.Decimal {
	return decimal.RequireFromString(c.ShippingFee)
}
