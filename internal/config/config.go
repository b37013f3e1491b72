package config

import "os"

type Config struct {
	ServerPort         string
	JWTSecret          string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	BucketName         string
	BucketBaseURL      string
}

func Load() *Config {
	return &Config{
		ServerPort:         getEnv("PORT", "3000"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AWSRegion:          getEnv("AWS_REGION", "ap-northeast-2"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		BucketName:         getEnv("BUCKET_NAME", "inkwell"),
		BucketBaseURL:      getEnv("BUCKET_BASE_URL", "https://static.inkwell.dev"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
