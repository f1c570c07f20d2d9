// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/jonnyallum/construct.fm-estimate-generator/services"
)

// Environment variable names.
const (
	EnvTemplatesDir   = "ESTIMATE_TEMPLATES_DIR"
	EnvDefaultPrelims = "ESTIMATE_DEFAULT_PRELIMS"
	EnvStaticDir      = "ESTIMATE_STATIC_DIR"
	EnvCompanyName    = "ESTIMATE_COMPANY_NAME"
	EnvCompanyAddress = "ESTIMATE_COMPANY_ADDRESS"
	EnvCompanyEmail   = "ESTIMATE_COMPANY_EMAIL"
)

// Config holds the settings shared by the HTTP routes and the CLI.
type Config struct {
	TemplatesDir   string
	StaticDir      string
	DefaultPrelims float64
	Company        services.Company
}

// LoadEnv loads variables from .env files if present. Variables already set
// in the environment win.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value when
// the variable is unset or not a number.
func GetFloatEnv(key string, defaultVal float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return defaultVal
	}
	f, err := cast.ToFloat64E(val)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %v", key, val, defaultVal)
		return defaultVal
	}
	return f
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		TemplatesDir:   GetEnv(EnvTemplatesDir, "./workbooks"),
		StaticDir:      GetEnv(EnvStaticDir, "./static"),
		DefaultPrelims: GetFloatEnv(EnvDefaultPrelims, services.DefaultPrelimsPercent),
		Company: services.Company{
			Name:    GetEnv(EnvCompanyName, services.DefaultCompany.Name),
			Address: GetEnv(EnvCompanyAddress, services.DefaultCompany.Address),
			Email:   GetEnv(EnvCompanyEmail, services.DefaultCompany.Email),
		},
	}
}
