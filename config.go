// runtime configuration, all environment driven
package main

import "os"

type Config struct {
	DBURL          string
	Port           string
	JWTSecret      string
	DefaultStation string
	StationsFile   string
}

func LoadConfig() Config {
	cfg := Config{
		DBURL:          os.Getenv("DB_URL"),
		Port:           os.Getenv("PORT"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DefaultStation: os.Getenv("DEFAULT_STATION"),
		StationsFile:   os.Getenv("STATIONS_FILE"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "secret"
	}
	if cfg.DefaultStation == "" {
		cfg.DefaultStation = "liquid_radio"
	}
	return cfg
}
