package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, DefaultPing)
	}
	if got := Short(); got != DefaultShort {
		t.Errorf("Short() = %v, want %v", got, DefaultShort)
	}
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want %v", got, DefaultMedium)
	}
	if got := Long(); got != DefaultLong {
		t.Errorf("Long() = %v, want %v", got, DefaultLong)
	}
}

func TestConfigure_OverridesNonZero(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Short: 9 * time.Second})

	if got := Short(); got != 9*time.Second {
		t.Errorf("Short() = %v, want 9s", got)
	}
	// Zero values keep defaults.
	if got := Medium(); got != DefaultMedium {
		t.Errorf("Medium() = %v, want default %v", got, DefaultMedium)
	}
}

func TestConfigure_IgnoresNegative(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Configure(Config{Ping: -1 * time.Second})

	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping() = %v, want default %v", got, DefaultPing)
	}
}
