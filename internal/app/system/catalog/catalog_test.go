package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Dates, 4)
	assert.Len(t, c.SPOCs, 15)
	assert.Len(t, c.Topics, 15)
	for _, cat := range Categories() {
		assert.Len(t, c.Slots[cat], SlotsPerCategory, cat)
	}
}

func TestDefault_FreshSlices(t *testing.T) {
	a := Default()
	a.Dates[0] = "changed"
	a.Slots["afternoon"][0] = "changed"
	b := Default()
	assert.Equal(t, "2025-10-16", b.Dates[0])
	assert.Equal(t, "12:00-12:30", b.Slots["afternoon"][0])
}

func TestWindow(t *testing.T) {
	c := Default()
	w, ok := c.Window("evening", 7)
	require.True(t, ok)
	assert.Equal(t, "20:30-21:00", w)

	_, ok = c.Window("evening", 8)
	assert.False(t, ok)
	_, ok = c.Window("morning", 0)
	assert.False(t, ok)
}

func TestSPOCFor(t *testing.T) {
	c := Default()
	assert.Equal(t, "ADITYA SINGH", c.SPOCFor(0))
	assert.Equal(t, "ADITYA SINGH", c.SPOCFor(11))
	assert.Equal(t, "ARNAV JOSHI", c.SPOCFor(12))
	assert.Equal(t, "VAIBHAV VERMA", c.SPOCFor(179))
	assert.Equal(t, "", c.SPOCFor(180))
}

func TestDefaultAvailability(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"2025-10-16", "2025-10-17"}, c.DefaultAvailability())

	c.Dates = []string{"2025-01-01"}
	assert.Equal(t, []string{"2025-01-01"}, c.DefaultAvailability())
}

func TestParse_OverlaysSections(t *testing.T) {
	c, err := Parse([]byte(`
dates: ["2026-03-01", "2026-03-02"]
topics: ["Only Topic"]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-01", "2026-03-02"}, c.Dates)
	assert.Equal(t, []string{"Only Topic"}, c.Topics)
	assert.Len(t, c.SPOCs, 15, "spocs keep defaults")
	assert.Equal(t, "12:00-12:30", c.Slots["afternoon"][0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "{}", ErrEmptyCatalogFS},
		{"bad date", `dates: ["16/10/2025"]`, ErrBadDate},
		{"short window list", `slots: {evening: ["17:00-17:30"]}`, ErrWindowCount},
		{"unknown category", `slots: {morning: ["a","b","c","d","e","f","g","h"]}`, ErrUnknownSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spocs: [\"A\", \"B\"]\n"), 0o600))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, c.SPOCs)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
