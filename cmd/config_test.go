package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "modxml", configBaseName)
	assert.Equal(t, "modxml.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude_patterns", excludeConfigKey)
	assert.Equal(t, ".modxml-reports", defaultReportsDir)
	assert.Equal(t, int64(1<<20), int64(defaultFileSizeThreshold))
	assert.Equal(t, "MODXML", envPrefix)
	assert.Equal(t, []string{"console", "markdown", "csv"}, defaultOutputFormats)
	assert.Positive(t, defaultMaxParallelism)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestVerifyArgsFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		dir       string
		check     func(t *testing.T, args domain.VerifyArgs)
		wantErr   error
	}{
		{
			name:      "config directory",
			overrides: map[string]any{xmlDirectoryKey: "data/xml"},
			check: func(t *testing.T, args domain.VerifyArgs) {
				assert.Equal(t, m.Path("data/xml"), args.Directory)
			},
		},
		{
			name:      "argument overrides config directory",
			overrides: map[string]any{xmlDirectoryKey: "data/xml"},
			dir:       "other",
			check: func(t *testing.T, args domain.VerifyArgs) {
				assert.Equal(t, m.Path("other"), args.Directory)
			},
		},
		{
			name: "settings are carried over",
			overrides: map[string]any{
				modelDirectoriesKey:  []string{"defs", "more"},
				outputFormatsKey:     []string{"json", "html"},
				maxParallelismKey:    3,
				fileSizeThresholdKey: 512,
				strictKey:            true,
				recursiveKey:         true,
				parallelKey:          false,
			},
			check: func(t *testing.T, args domain.VerifyArgs) {
				assert.Equal(t, []m.Path{"defs", "more"}, args.ModelDirectories)
				assert.Equal(t, []m.OutputFormat{m.FormatJSON, m.FormatHTML}, args.Formats)
				assert.Equal(t, 3, args.MaxParallelism)
				assert.Equal(t, int64(512), args.FileSizeThreshold)
				assert.True(t, args.Strict)
				assert.True(t, args.Recursive)
				assert.False(t, args.Parallel)
			},
		},
		{
			name:      "unknown format",
			overrides: map[string]any{outputFormatsKey: []string{"pdf"}},
			wantErr:   m.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.overrides {
				viper.Set(key, value)
			}
			t.Cleanup(func() {
				for key := range tt.overrides {
					viper.Set(key, nil)
				}
			})

			args, err := verifyArgsFromConfig(tt.dir)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			tt.check(t, args)
		})
	}
}
