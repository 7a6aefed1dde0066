package config

import (
	"strings"

	"github.com/korthochain/memkv/pkg/logger"
	"github.com/spf13/viper"
)

type CfgInfo struct {
	ServerCfg  *ServerConfig  `mapstructure:"server"`
	StatusCfg  *StatusConfig  `mapstructure:"status"`
	LimiterCfg *LimiterConfig `mapstructure:"limiter"`
	LogConfig  *logger.Config `mapstructure:"log"`
}

type ServerConfig struct {
	Address    string `mapstructure:"address"`
	Port       int    `mapstructure:"port"`
	BufferSize int    `mapstructure:"buffersize"`
}

// StatusConfig enables the HTTP status endpoint when Address is non-empty.
type StatusConfig struct {
	Address string `mapstructure:"address"`
}

type LimiterConfig struct {
	Enable    bool     `mapstructure:"enable"`
	Rate      float64  `mapstructure:"rate"`
	Burst     int      `mapstructure:"burst"`
	WhiteList []string `mapstructure:"whitelist"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8888)
	v.SetDefault("server.buffersize", 1024)

	v.SetDefault("status.address", "")

	v.SetDefault("limiter.enable", false)
	v.SetDefault("limiter.rate", 50000)
	v.SetDefault("limiter.burst", 50000)
	v.SetDefault("limiter.whitelist", []string{"127.0.0.1"})

	lc := logger.DefaultConfig()
	v.SetDefault("log.level", lc.Level)
	v.SetDefault("log.filename", lc.FileName)
	v.SetDefault("log.maxsize", lc.MaxSize)
	v.SetDefault("log.maxage", lc.MaxAge)
	v.SetDefault("log.maxbackups", lc.MaxBackups)
	v.SetDefault("log.compress", lc.Compress)
	v.SetDefault("log.stdout", lc.Stdout)
}

// LoadConfig load configuration information. An empty path looks for
// memkv.yaml under ./config/; a missing file there is not an error and
// leaves the defaults in place. MEMKV_* environment variables override both.
func LoadConfig(path string) (*CfgInfo, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("memkv")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("memkv")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config/")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, err
		}
	}

	var cfg CfgInfo
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
