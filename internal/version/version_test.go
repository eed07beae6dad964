package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "01/02/2026", wantError: true},
		{name: "empty", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildID(tt.date)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestString(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "", ""
	assert.Contains(t, String(), "dev build")

	BuildDate, BuildCommit = "2026-10-18", "abc123"
	assert.Equal(t, "bestiary build 290 (2026-10-18) commit[abc123] branch[unknown]", String())
}
