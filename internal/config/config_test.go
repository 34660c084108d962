package config

import (
	"bytes"
	"errors"
	"flag"
	"testing"
	"time"

	apperrors "github.com/agbru/reducebench/internal/errors"
)

var testStrategies = []string{"lockfree", "locked", "sequential"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	var buf bytes.Buffer
	return ParseConfig("reducebench", args, &buf, testStrategies)
}

// TestParseConfigDefaults verifies the baseline workload shape.
func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Size != 10_000_000 {
		t.Errorf("Size = %d, want 10000000", cfg.Size)
	}
	if cfg.Workers != 32 {
		t.Errorf("Workers = %d, want 32", cfg.Workers)
	}
	if cfg.MinValue != 0 || cfg.MaxValue != 10000 {
		t.Errorf("range = [%d, %d], want [0, 10000]", cfg.MinValue, cfg.MaxValue)
	}
	if cfg.Algo != "all" {
		t.Errorf("Algo = %q, want all", cfg.Algo)
	}
	if cfg.Trials != 1 {
		t.Errorf("Trials = %d, want 1", cfg.Trials)
	}
	if cfg.Timeout != 5*time.Minute {
		t.Errorf("Timeout = %v, want 5m", cfg.Timeout)
	}
}

// TestParseConfigFlags covers flags and their aliases.
func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t,
		"-n", "1000", "--workers", "8", "--min", "-5", "--max", "5",
		"--algo", "lockfree", "--trials", "3", "--timeout", "30s",
		"-q", "--no-color", "-o", "report.txt", "--metrics-addr", ":9090")
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if cfg.Size != 1000 || cfg.Workers != 8 {
		t.Errorf("Size/Workers = %d/%d", cfg.Size, cfg.Workers)
	}
	if cfg.MinValue != -5 || cfg.MaxValue != 5 {
		t.Errorf("range = [%d, %d]", cfg.MinValue, cfg.MaxValue)
	}
	if cfg.Algo != "lockfree" || cfg.Trials != 3 || cfg.Timeout != 30*time.Second {
		t.Errorf("Algo/Trials/Timeout = %q/%d/%v", cfg.Algo, cfg.Trials, cfg.Timeout)
	}
	if !cfg.Quiet || !cfg.NoColor {
		t.Error("Quiet and NoColor should be set")
	}
	if cfg.OutputFile != "report.txt" || cfg.MetricsAddr != ":9090" {
		t.Errorf("OutputFile/MetricsAddr = %q/%q", cfg.OutputFile, cfg.MetricsAddr)
	}
}

// TestParseConfigHelp verifies --help maps to flag.ErrHelp.
func TestParseConfigHelp(t *testing.T) {
	_, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

// TestParseConfigRejectsPositionalArgs verifies trailing arguments fail.
func TestParseConfigRejectsPositionalArgs(t *testing.T) {
	_, err := parse(t, "extra")
	var cfgErr apperrors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}

// TestValidate covers each validation rule.
func TestValidate(t *testing.T) {
	valid := AppConfig{
		Size: 100, Workers: 4, MinValue: 0, MaxValue: 10,
		Trials: 1, Algo: "all", Timeout: time.Minute,
	}

	tests := []struct {
		name      string
		mutate    func(*AppConfig)
		wantField string
	}{
		{"negative size", func(c *AppConfig) { c.Size = -1 }, "n"},
		{"zero workers", func(c *AppConfig) { c.Workers = 0 }, "workers"},
		{"inverted range", func(c *AppConfig) { c.MinValue = 11 }, "min"},
		{"range beyond int32", func(c *AppConfig) { c.MaxValue = 1 << 40 }, "min"},
		{"zero trials", func(c *AppConfig) { c.Trials = 0 }, "trials"},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, "timeout"},
		{"unknown algo", func(c *AppConfig) { c.Algo = "spinlock" }, "algo"},
		{"quiet and verbose", func(c *AppConfig) { c.Quiet = true; c.Verbose = true }, "quiet"},
	}

	if err := valid.Validate(testStrategies); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate(testStrategies)
			var verr apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

// TestEnvOverrides verifies env values apply only when the flag was not
// set explicitly.
func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag unset", func(t *testing.T) {
		t.Setenv("REDUCEBENCH_WORKERS", "16")
		t.Setenv("REDUCEBENCH_ALGO", "locked")
		t.Setenv("REDUCEBENCH_QUIET", "yes")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Workers != 16 {
			t.Errorf("Workers = %d, want 16 from env", cfg.Workers)
		}
		if cfg.Algo != "locked" {
			t.Errorf("Algo = %q, want locked from env", cfg.Algo)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
	})

	t.Run("CLI flag wins over env", func(t *testing.T) {
		t.Setenv("REDUCEBENCH_WORKERS", "16")

		cfg, err := parse(t, "-w", "4")
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4 from flag", cfg.Workers)
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv("REDUCEBENCH_TRIALS", "many")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig: %v", err)
		}
		if cfg.Trials != 1 {
			t.Errorf("Trials = %d, want default 1", cfg.Trials)
		}
	})

	t.Run("env failing validation is rejected", func(t *testing.T) {
		t.Setenv("REDUCEBENCH_ALGO", "bogus")

		_, err := parse(t)
		var verr apperrors.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})
}
