package util

import (
	"fmt"
	"strings"
	"time"
)

// ValidateDate checks the YYYY-MM-DD date parameter.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	_, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateReflection checks the required free-text field.
func ValidateReflection(reflection string) error {
	if strings.TrimSpace(reflection) == "" {
		return fmt.Errorf("reflection is empty")
	}
	return nil
}

// ValidateDays checks the ?days=N window parameter.
func ValidateDays(days int) error {
	if days < 0 {
		return fmt.Errorf("days must be non-negative, got %d", days)
	}
	if days > 3650 {
		return fmt.Errorf("days too large, got %d", days)
	}
	return nil
}
