package config

const (
	defaultLogDir               = "~/.local/share/sortdir/logs"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultMaxCollisionAttempts = 10000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Organize: Organize{
			VerifyCopies:         false,
			MaxCollisionAttempts: defaultMaxCollisionAttempts,
			History:              true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
