package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	settings := Default()
	require.NoError(t, settings.Validate())
	assert.Equal(t, "~", settings.Placeholder)
	assert.Equal(t, " ", settings.Separator)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.Equal(t, "text", settings.LogFormat)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatTOML, DetectFormat("tproj.toml"))
	assert.Equal(t, FormatTOML, DetectFormat("TPROJ.TOML"))
	assert.Equal(t, FormatYAML, DetectFormat("tproj.yaml"))
	assert.Equal(t, FormatYAML, DetectFormat("tproj.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("tprojrc"))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"yaml": FormatYAML, "YML": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "tproj.yaml", "placeholder: \"?\"\nlog_level: DEBUG\n")

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "?", file.Placeholder)
	assert.Empty(t, file.Separator)

	settings, err := ApplyToDefaults(file)
	require.NoError(t, err)
	assert.Equal(t, "?", settings.Placeholder)
	assert.Equal(t, " ", settings.Separator)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "tproj.toml", "separator = \" | \"\nlog_format = \"json\"\n")

	file, err := LoadFile(path)
	require.NoError(t, err)

	settings, err := ApplyToDefaults(file)
	require.NoError(t, err)
	assert.Equal(t, " | ", settings.Separator)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, "~", settings.Placeholder)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := writeFile(t, "bad.toml", "placeholder = \n")
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	bad = writeFile(t, "bad.yaml", "placeholder: [unclosed\n")
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "YAML parse error")
}

func TestApplyToDefaultsValidation(t *testing.T) {
	tests := []struct {
		name string
		file File
	}{
		{"Placeholder with space", File{Placeholder: "a b"}},
		{"Unknown log level", File{LogLevel: "loud"}},
		{"Unknown log format", File{LogFormat: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyToDefaults(&tt.file)
			assert.Error(t, err)
		})
	}

	settings, err := ApplyToDefaults(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestMarshalRoundTrip(t *testing.T) {
	settings := Default()
	settings.Separator = "  "

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := settings.Marshal(format)
			require.NoError(t, err)

			file, err := Parse(data, format)
			require.NoError(t, err)

			back, err := ApplyToDefaults(file)
			require.NoError(t, err)
			assert.Equal(t, settings, back)
		})
	}
}
