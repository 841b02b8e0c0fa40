package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_STR", "hello")
	if got := GetEnv("SNAKE_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("SNAKE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback = %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SNAKE_TEST_INT", "25")
	if got := GetEnvInt("SNAKE_TEST_INT", 20); got != 25 {
		t.Errorf("GetEnvInt = %d", got)
	}
	t.Setenv("SNAKE_TEST_BAD_INT", "twenty")
	if got := GetEnvInt("SNAKE_TEST_BAD_INT", 20); got != 20 {
		t.Errorf("GetEnvInt bad value = %d, want fallback", got)
	}
	if got := GetEnvInt("SNAKE_TEST_MISSING", 7); got != 7 {
		t.Errorf("GetEnvInt missing = %d, want fallback", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SNAKE_TEST_DUR", "80ms")
	if got := GetEnvDuration("SNAKE_TEST_DUR", time.Second); got != 80*time.Millisecond {
		t.Errorf("GetEnvDuration = %v", got)
	}
	t.Setenv("SNAKE_TEST_BAD_DUR", "fast")
	if got := GetEnvDuration("SNAKE_TEST_BAD_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration bad value = %v, want fallback", got)
	}
}
