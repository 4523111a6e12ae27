package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_String(t *testing.T) {
	assert.Equal(t, "light", ThemeLight.String())
	assert.Equal(t, "dark", ThemeDark.String())
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
		ok       bool
	}{
		{"light", ThemeLight, true},
		{"dark", ThemeDark, true},
		{"", ThemeLight, false},
		{"system", ThemeLight, false},
		{"Dark", ThemeLight, false},
		{"DARK", ThemeLight, false},
		{"blue", ThemeLight, false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			parsed, err := ParseTheme(tc.input)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestTheme_ZeroValueIsLight(t *testing.T) {
	var theme Theme
	assert.Equal(t, ThemeLight, theme)
}

func TestTheme_TextMarshalling(t *testing.T) {
	data, err := json.Marshal(ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(data))

	var theme Theme
	require.NoError(t, json.Unmarshal([]byte(`"dark"`), &theme))
	assert.Equal(t, ThemeDark, theme)

	require.Error(t, json.Unmarshal([]byte(`"bogus"`), &theme))
}
