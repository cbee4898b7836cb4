package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"modxml.dev/pkg/modxml/internal/domain"
	m "modxml.dev/pkg/modxml/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "modxml"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName          = "output"
	modelsFlagName          = "models"
	excludeFlagName         = "exclude"
	recursiveFlagName       = "recursive"
	strictFlagName          = "strict"
	verboseFlagName         = "verbose"
	logFileFlagName         = "log-file"
	formatFlagName          = "format"
	parallelFlagName        = "parallel"
	maxParallelismFlagName  = "max-parallelism"
	sizeThresholdFlagName   = "size-threshold"
	roundTripOutputFlagName = "write"
	printFlagName           = "print"
	rawFlagName             = "raw"

	xmlDirectoryKey      = "xml_directory"
	modelDirectoriesKey  = "model_directories"
	outputFormatsKey     = "output_formats"
	outputDirectoryKey   = "output_directory"
	parallelKey          = "enable_parallel_processing"
	maxParallelismKey    = "max_parallelism"
	fileSizeThresholdKey = "file_size_threshold"
	excludeConfigKey     = "exclude_patterns"
	recursiveKey         = "recursive"
	strictKey            = "strict_models"

	defaultXMLDirectory      = "."
	defaultReportsDir        = ".modxml-reports"
	defaultParallel          = true
	defaultFileSizeThreshold = 1 << 20
	defaultRecursive         = false
	defaultStrict            = false

	envPrefix = "MODXML"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".modxml.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultOutputFormats   = []string{string(m.FormatConsole), string(m.FormatMarkdown), string(m.FormatCSV)}
	defaultExcludePatterns = []string{"*.backup", "*.tmp"}
	defaultMaxParallelism  = runtime.NumCPU()
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		slog.Warn("Failed to read config file", "file", configFileName, "error", err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(xmlDirectoryKey, defaultXMLDirectory)
	viper.SetDefault(modelDirectoriesKey, []string{})
	viper.SetDefault(outputFormatsKey, defaultOutputFormats)
	viper.SetDefault(outputDirectoryKey, defaultReportsDir)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(maxParallelismKey, defaultMaxParallelism)
	viper.SetDefault(fileSizeThresholdKey, defaultFileSizeThreshold)
	viper.SetDefault(excludeConfigKey, defaultExcludePatterns)
	viper.SetDefault(recursiveKey, defaultRecursive)
	viper.SetDefault(strictKey, defaultStrict)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// verifyArgsFromConfig resolves the batch arguments from flags, env and the
// config file. A non-empty dir overrides xml_directory.
func verifyArgsFromConfig(dir string) (domain.VerifyArgs, error) {
	formats, err := m.ParseOutputFormats(viper.GetStringSlice(outputFormatsKey))
	if err != nil {
		return domain.VerifyArgs{}, err
	}

	directory := viper.GetString(xmlDirectoryKey)
	if dir != "" {
		directory = dir
	}

	return domain.VerifyArgs{
		Directory:         m.Path(directory),
		ModelDirectories:  modelDirectories(),
		Recursive:         viper.GetBool(recursiveKey),
		Exclude:           viper.GetStringSlice(excludeConfigKey),
		Parallel:          viper.GetBool(parallelKey),
		MaxParallelism:    viper.GetInt(maxParallelismKey),
		Strict:            viper.GetBool(strictKey),
		FileSizeThreshold: viper.GetInt64(fileSizeThresholdKey),
		Reports:           m.Path(viper.GetString(outputDirectoryKey)),
		Formats:           formats,
	}, nil
}

func modelDirectories() []m.Path {
	return parsePaths(viper.GetStringSlice(modelDirectoriesKey))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	logLevel := parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	if verbose {
		logLevel = slog.LevelDebug
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
