package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig holds all configuration for the restroom catalog service.
type ServiceConfig struct {
	Port   string
	AppEnv string

	OSRMBaseURL      string
	NominatimBaseURL string
	GeoIPBaseURL     string
	CountryCode      string

	CORSOrigins []string
}

// Load reads configuration from the environment (prefix RESTROOM_), after
// loading a .env file when one is present.
func Load() (*ServiceConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RESTROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_port", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("osrm_base_url", "https://router.project-osrm.org")
	v.SetDefault("nominatim_base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geoip_base_url", "http://ip-api.com")
	v.SetDefault("country_code", "ph")
	v.SetDefault("cors_origins", "*")

	port := v.GetString("service_port")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &ServiceConfig{
		Port:             port,
		AppEnv:           v.GetString("app_env"),
		OSRMBaseURL:      v.GetString("osrm_base_url"),
		NominatimBaseURL: v.GetString("nominatim_base_url"),
		GeoIPBaseURL:     v.GetString("geoip_base_url"),
		CountryCode:      v.GetString("country_code"),
		CORSOrigins:      strings.Split(v.GetString("cors_origins"), ","),
	}, nil
}
