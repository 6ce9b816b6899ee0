package config

const (
	defaultStateDir       = "~/.local/share/datapipe"
	defaultLogDir         = "~/.local/share/datapipe/logs"
	defaultRecordCount    = 100
	defaultTransformation = "uppercase_conversion"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Pipeline: Pipeline{
			RecordCount:    defaultRecordCount,
			Transformation: defaultTransformation,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
