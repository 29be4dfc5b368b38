package policy

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Limits are the numeric thresholds of the written credit policy.
//
// They can be overridden by a YAML policy file; the defaults mirror the
// standing policy document (max credit utilization 80%, min credit
// score 600, review below 650, large-order review above 100k).

type Limits struct {
	ExposureLimit  decimal.Decimal `yaml:"exposure_limit"`
	MinCreditScore int             `yaml:"min_credit_score"`
	ReviewScore    int             `yaml:"review_score"`
	LargeOrder     decimal.Decimal `yaml:"large_order"`
}

type limitsFile struct {
	ExposureLimit  string `yaml:"exposure_limit"`
	MinCreditScore int    `yaml:"min_credit_score"`
	ReviewScore    int    `yaml:"review_score"`
	LargeOrder     string `yaml:"large_order"`
}

// DefaultLimits returns the standing policy thresholds.
func DefaultLimits() Limits {
	return Limits{
		ExposureLimit:  decimal.RequireFromString("0.80"),
		MinCreditScore: 600,
		ReviewScore:    650,
		LargeOrder:     decimal.NewFromInt(100_000),
	}
}

// LoadLimits reads a policy limits file, falling back to the defaults
// for absent fields. A missing file is not an error: the defaults are
// the policy of record.
func LoadLimits(path string) (Limits, error) {
	limits := DefaultLimits()
	if path == "" {
		return limits, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return limits, nil
		}
		return Limits{}, fmt.Errorf("read policy limits: %w", err)
	}

	var f limitsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Limits{}, fmt.Errorf("parse policy limits: %w", err)
	}

	if f.ExposureLimit != "" {
		v, err := decimal.NewFromString(f.ExposureLimit)
		if err != nil {
			return Limits{}, fmt.Errorf("parse policy limits: exposure_limit: %w", err)
		}
		limits.ExposureLimit = v
	}
	if f.MinCreditScore > 0 {
		limits.MinCreditScore = f.MinCreditScore
	}
	if f.ReviewScore > 0 {
		limits.ReviewScore = f.ReviewScore
	}
	if f.LargeOrder != "" {
		v, err := decimal.NewFromString(f.LargeOrder)
		if err != nil {
			return Limits{}, fmt.Errorf("parse policy limits: large_order: %w", err)
		}
		limits.LargeOrder = v
	}
	return limits, nil
}
