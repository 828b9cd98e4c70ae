package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// monthFlag is a pflag.Value for YYYY-MM month arguments. The zero
// value means "not set"; callers fall back to the current month.
type monthFlag struct {
	Year  int
	Month time.Month
}

var _ pflag.Value = (*monthFlag)(nil)

func (m *monthFlag) String() string {
	if m.Year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

func (m *monthFlag) Set(value string) error {
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return fmt.Errorf("invalid month %q, expected YYYY-MM", value)
	}
	m.Year = parsed.Year()
	m.Month = parsed.Month()
	return nil
}

func (m *monthFlag) Type() string { return "month" }

// orNow returns the flag's month, or the month containing now when the
// flag was never set.
func (m *monthFlag) orNow(now time.Time) (int, time.Month) {
	if m.Year == 0 {
		return now.Year(), now.Month()
	}
	return m.Year, m.Month
}
