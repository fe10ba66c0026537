package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"RFC3339", "2025-03-10T09:00:00Z", true},
		{"RFC3339 with offset", "2025-03-10T09:00:00+01:00", true},
		{"RFC3339 nano", "2025-03-10T09:00:00.123Z", true},
		{"naive datetime", "2025-03-10T09:00:00", true},
		{"space separated", "2025-03-10 09:00:00", true},
		{"date only", "2025-03-10", true},
		{"empty", "", false},
		{"garbage", "not-a-timestamp", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseISOTime(tt.input)
			if tt.ok {
				assert.NoError(t, err)
				assert.NotNil(t, parsed)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMustParseDate(t *testing.T) {
	d := MustParseDate("2025-03-10")
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, "2025-03-10", d.Format(DateLayout))
}
