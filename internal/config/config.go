package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Variant string

const (
	// Sample injects data-quality defects.
	Sample Variant = "sample"
	// Pure is the clean control dataset.
	Pure Variant = "pure"
)

type Config struct {
	Variant       Variant `json:"-" mapstructure:"-"`
	OutputDir     string  `json:"output_dir" mapstructure:"output_dir"`
	ReferenceDate string  `json:"reference_date" mapstructure:"reference_date"`
	Seed          uint64  `json:"seed" mapstructure:"seed"` // 0 derives a seed from the clock
	WriteManifest bool    `json:"write_manifest" mapstructure:"write_manifest"`
	Counts        Counts  `json:"counts" mapstructure:"counts"`
	Defects       Defects `json:"defects" mapstructure:"defects"`
}

type Counts struct {
	Customers              int     `json:"customers" mapstructure:"customers"`
	AccountsPerCustomer    float64 `json:"accounts_per_customer" mapstructure:"accounts_per_customer"`
	TransactionsPerAccount int     `json:"transactions_per_account" mapstructure:"transactions_per_account"`
	BalanceDays            int     `json:"balance_days" mapstructure:"balance_days"`
	FxDays                 int     `json:"fx_days" mapstructure:"fx_days"`
}

// Defects holds injection probabilities. Email, phone and date rates only
// apply to customers flagged by CustomerIssueRate.
type Defects struct {
	CustomerIssueRate  float64 `json:"customer_issue_rate" mapstructure:"customer_issue_rate"`
	EmailRate          float64 `json:"email_rate" mapstructure:"email_rate"`
	PhoneRate          float64 `json:"phone_rate" mapstructure:"phone_rate"`
	DateRate           float64 `json:"date_rate" mapstructure:"date_rate"`
	MissingIDRate      float64 `json:"missing_id_rate" mapstructure:"missing_id_rate"`
	MissingNameRate    float64 `json:"missing_name_rate" mapstructure:"missing_name_rate"`
	MissingCountryRate float64 `json:"missing_country_rate" mapstructure:"missing_country_rate"`
	OrphanAccountRate  float64 `json:"orphan_account_rate" mapstructure:"orphan_account_rate"`
	InvalidFxRate      float64 `json:"invalid_fx_rate" mapstructure:"invalid_fx_rate"`
}

func Default() *Config {
	return &Config{
		Variant:       Sample,
		OutputDir:     "sample_data",
		ReferenceDate: "2026-01-22",
		WriteManifest: true,
		Counts: Counts{
			Customers:              1000,
			AccountsPerCustomer:    1.5,
			TransactionsPerAccount: 10,
			BalanceDays:            30,
			FxDays:                 90,
		},
		Defects: Defects{
			CustomerIssueRate:  0.20,
			EmailRate:          0.15,
			PhoneRate:          0.10,
			DateRate:           0.05,
			MissingIDRate:      0.01,
			MissingNameRate:    0.05,
			MissingCountryRate: 0.03,
			OrphanAccountRate:  0.05,
			InvalidFxRate:      0.05,
		},
	}
}

func PureDefault() *Config {
	cfg := Default()
	cfg.Variant = Pure
	cfg.OutputDir = "pure_sample_data"
	cfg.Defects = Defects{}
	return cfg
}

func defaultFor(variant Variant) *Config {
	if variant == Pure {
		return PureDefault()
	}
	return Default()
}

// Load overlays the global viper settings on the compiled defaults.
func Load(variant Variant) (*Config, error) {
	return LoadFrom(viper.GetViper(), variant)
}

func LoadFrom(v *viper.Viper, variant Variant) (*Config, error) {
	base := defaultFor(variant)

	v.SetDefault("output_dir", base.OutputDir)
	v.SetDefault("reference_date", base.ReferenceDate)
	v.SetDefault("seed", base.Seed)
	v.SetDefault("write_manifest", base.WriteManifest)
	v.SetDefault("counts.customers", base.Counts.Customers)
	v.SetDefault("counts.accounts_per_customer", base.Counts.AccountsPerCustomer)
	v.SetDefault("counts.transactions_per_account", base.Counts.TransactionsPerAccount)
	v.SetDefault("counts.balance_days", base.Counts.BalanceDays)
	v.SetDefault("counts.fx_days", base.Counts.FxDays)
	v.SetDefault("defects.customer_issue_rate", base.Defects.CustomerIssueRate)
	v.SetDefault("defects.email_rate", base.Defects.EmailRate)
	v.SetDefault("defects.phone_rate", base.Defects.PhoneRate)
	v.SetDefault("defects.date_rate", base.Defects.DateRate)
	v.SetDefault("defects.missing_id_rate", base.Defects.MissingIDRate)
	v.SetDefault("defects.missing_name_rate", base.Defects.MissingNameRate)
	v.SetDefault("defects.missing_country_rate", base.Defects.MissingCountryRate)
	v.SetDefault("defects.orphan_account_rate", base.Defects.OrphanAccountRate)
	v.SetDefault("defects.invalid_fx_rate", base.Defects.InvalidFxRate)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Variant = variant
	// The control dataset stays clean whatever the overlay says.
	if variant == Pure {
		cfg.Defects = Defects{}
	}

	return &cfg, nil
}

func (c *Config) IsPure() bool {
	return c.Variant == Pure
}

func (c *Config) ReferenceTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference_date %q: %w", c.ReferenceDate, err)
	}
	return t, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	if _, err := c.ReferenceTime(); err != nil {
		return err
	}

	counts := []struct {
		key string
		n   int
	}{
		{"counts.customers", c.Counts.Customers},
		{"counts.transactions_per_account", c.Counts.TransactionsPerAccount},
		{"counts.balance_days", c.Counts.BalanceDays},
		{"counts.fx_days", c.Counts.FxDays},
	}
	for _, kv := range counts {
		if kv.n < 0 {
			return fmt.Errorf("%s cannot be negative: %d", kv.key, kv.n)
		}
	}
	if c.Counts.AccountsPerCustomer < 0 {
		return fmt.Errorf("counts.accounts_per_customer cannot be negative: %g", c.Counts.AccountsPerCustomer)
	}

	rates := []struct {
		key string
		p   float64
	}{
		{"defects.customer_issue_rate", c.Defects.CustomerIssueRate},
		{"defects.email_rate", c.Defects.EmailRate},
		{"defects.phone_rate", c.Defects.PhoneRate},
		{"defects.date_rate", c.Defects.DateRate},
		{"defects.missing_id_rate", c.Defects.MissingIDRate},
		{"defects.missing_name_rate", c.Defects.MissingNameRate},
		{"defects.missing_country_rate", c.Defects.MissingCountryRate},
		{"defects.orphan_account_rate", c.Defects.OrphanAccountRate},
		{"defects.invalid_fx_rate", c.Defects.InvalidFxRate},
	}
	for _, kv := range rates {
		if kv.p < 0 || kv.p > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", kv.key, kv.p)
		}
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.OutputDir, err)
	}
	return nil
}
