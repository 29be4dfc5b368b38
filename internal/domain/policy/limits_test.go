package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadLimits(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		limits, err := LoadLimits("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limits.MinCreditScore != 600 || limits.ReviewScore != 650 {
			t.Fatalf("expected default scores, got %+v", limits)
		}
		if !limits.ExposureLimit.Equal(decimal.RequireFromString("0.80")) {
			t.Fatalf("expected default exposure limit, got %s", limits.ExposureLimit)
		}
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		limits, err := LoadLimits(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !limits.LargeOrder.Equal(decimal.NewFromInt(100_000)) {
			t.Fatalf("expected default large order threshold, got %s", limits.LargeOrder)
		}
	})

	t.Run("file overrides only the fields it names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "limits.yaml")
		content := "exposure_limit: \"0.70\"\nmin_credit_score: 640\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write limits file: %v", err)
		}

		limits, err := LoadLimits(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !limits.ExposureLimit.Equal(decimal.RequireFromString("0.70")) {
			t.Fatalf("expected exposure limit 0.70, got %s", limits.ExposureLimit)
		}
		if limits.MinCreditScore != 640 {
			t.Fatalf("expected min credit score 640, got %d", limits.MinCreditScore)
		}
		if limits.ReviewScore != 650 {
			t.Fatalf("expected review score to keep its default, got %d", limits.ReviewScore)
		}
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "limits.yaml")
		if err := os.WriteFile(path, []byte("exposure_limit: [nope"), 0o600); err != nil {
			t.Fatalf("write limits file: %v", err)
		}
		if _, err := LoadLimits(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("malformed decimal fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "limits.yaml")
		if err := os.WriteFile(path, []byte("large_order: \"lots\""), 0o600); err != nil {
			t.Fatalf("write limits file: %v", err)
		}
		if _, err := LoadLimits(path); err == nil {
			t.Fatalf("expected parse error")
		}
	})
}
