package config

import "time"

// Built-in fallbacks applied after all explicit sources.
const (
	DefaultAppName        = "userd"
	DefaultAppVersion     = "1.0.0"
	DefaultHTTPAddress    = ":16801"
	DefaultDBDriver       = DriverPostgres
	DefaultRequestTimeout = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
