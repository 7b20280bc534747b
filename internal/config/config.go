// Package config loads runtime settings from the environment.
// Table and bucket names live here so they can be injected into the
// repositories instead of being read from package-level globals.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	AWSRegion      string
	AWSAccessKey   string
	AWSSecretKey   string
	DynamoEndpoint string
	S3Endpoint     string

	UsersTable    string
	BlogsTable    string
	ServicesTable string
	S3Bucket      string

	AdminSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("APP_PORT", "3001"),
		AWSRegion:      getEnv("AWS_REGION", "ap-south-1"),
		AWSAccessKey:   os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		UsersTable:     getEnv("USERS_TABLE", "Users"),
		BlogsTable:     getEnv("BLOGS_TABLE", "Blogs"),
		ServicesTable:  getEnv("SERVICES_TABLE", "Services"),
		S3Bucket:       getEnv("AWS_S3_BUCKET_NAME", "dr-chandra-assets"),
		AdminSecret:    os.Getenv("ADMIN_SHARED_SECRET"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
