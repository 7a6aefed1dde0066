package logger

type Config struct {
	Level      string `mapstructure:"level"`
	FileName   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
	// Stdout mirrors every entry to standard output.
	Stdout bool `mapstructure:"stdout"`
}

func DefaultConfig() *Config {
	return &Config{
		Level:      "INFO",
		FileName:   "./logs/memkv.log",
		MaxSize:    500,
		MaxAge:     360,
		MaxBackups: 20,
		Compress:   true,
		Stdout:     true,
	}
}
