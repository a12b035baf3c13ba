package timeouts_test

import (
	"testing"
	"time"

	"github.com/dalemusser/eduadmin/internal/app/system/timeouts"
)

func TestDefaults(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	if got := timeouts.Ping(); got != timeouts.DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, timeouts.DefaultPing)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, timeouts.DefaultMedium)
	}
}

func TestConfigure_IgnoresZeroValues(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 7 * time.Second})

	cur := timeouts.Current()
	if cur.Short != 7*time.Second {
		t.Errorf("Short = %v, want 7s", cur.Short)
	}
	if cur.Long != timeouts.DefaultLong {
		t.Errorf("Long = %v, want default %v", cur.Long, timeouts.DefaultLong)
	}
}

func TestConfigureFromEnv(t *testing.T) {
	timeouts.Reset()
	t.Cleanup(timeouts.Reset)

	t.Setenv("EDUADMIN_TIMEOUT_PING", "500ms")
	t.Setenv("EDUADMIN_TIMEOUT_MEDIUM", "not-a-duration")
	t.Setenv("EDUADMIN_TIMEOUT_LONG", "-5s")

	if n := timeouts.ConfigureFromEnv(); n != 1 {
		t.Fatalf("ConfigureFromEnv() = %d, want 1", n)
	}
	if got := timeouts.Ping(); got != 500*time.Millisecond {
		t.Errorf("Ping() = %v, want 500ms", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium() = %v, want default", got)
	}
	if got := timeouts.Long(); got != timeouts.DefaultLong {
		t.Errorf("Long() = %v, want default", got)
	}
}
