package services

import (
	"fmt"
	"strings"
	"time"

	"gym_club_backend/internal/calc"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// requireText trims s and fails with base when it ends up empty.
func requireText(base error, field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: %s is required", base, field)
	}
	return s, nil
}

func requireNonNegative(base error, field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%w: %s cannot be negative", base, field)
	}
	return nil
}

func requireDate(base error, field, s string) (string, error) {
	t, err := calc.ParseDate(s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", base, field, err)
	}
	return calc.FormatDate(t), nil
}
