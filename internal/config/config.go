package config

import "strings"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" env:"PORT" env-default:"8080"`
}

// MongoConfig holds document store connection settings. Both fields are
// required; startup fails without them.
type MongoConfig struct {
	URL    string `yaml:"url"     env:"MONGO_URL" env-required:"true"`
	DBName string `yaml:"db_name" env:"DB_NAME"   env-required:"true"`
}

// CORSConfig holds the cross-origin allow-list, a comma-separated origin
// list defaulting to allow-all.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-default:"*"`
}

// Origins splits the configured allow-list into trimmed non-empty origins,
// falling back to allow-all when the list is empty.
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
