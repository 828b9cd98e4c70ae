package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tanudin/Happy-Child/internal/domain"
)

// Timestamps are stored as UTC RFC3339 strings so SQLite's lexicographic
// string comparison matches chronological order in range filters.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t.Local(), nil
}

// encodeDays serializes a weekday set as a JSON array, e.g. "[0,1,2]".
func encodeDays(days []int) (string, error) {
	b, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("encoding days of week: %w", err)
	}
	return string(b), nil
}

func decodeDays(s string) ([]int, error) {
	var days []int
	if err := json.Unmarshal([]byte(s), &days); err != nil {
		return nil, fmt.Errorf("decoding days of week %q: %w", s, err)
	}
	return days, nil
}

// nullableDateToValue converts an optional calendar date for storage.
func nullableDateToValue(d *domain.CalDate) interface{} {
	if d == nil {
		return nil
	}
	return d.Key()
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
