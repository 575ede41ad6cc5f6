package config

import "os"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Addr is the listen address, ":8080" unless APP_PORT says otherwise.
func Addr() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok {
		port = "8080"
	}
	return ":" + port
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
