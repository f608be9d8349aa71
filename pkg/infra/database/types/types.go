package types

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// StringArray maps a Postgres text[] column.
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return pq.Array([]string{}).Value()
	}
	return pq.Array([]string(s)).Value()
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan string array: %w", err)
	}

	out := make(StringArray, len(strs))
	for i, str := range strs {
		out[i] = strings.TrimSpace(str)
	}
	*s = out
	return nil
}
