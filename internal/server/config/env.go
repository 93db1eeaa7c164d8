package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are actually set override the current values, so defaults and JSON
// settings survive an empty environment.
//
// Recognized variables:
//
//	ADDRESS, DATABASE_DSN, JWT_SECRET, SESSION_VALIDITY, OTP_VALIDITY,
//	ENVIRONMENT, CLIENT_URL, SMTP_HOST, SMTP_PORT, EMAIL_USER, EMAIL_PASS,
//	MAIL_FROM, S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION,
//	S3_BASE_ENDPOINT, MAX_UPLOAD_BYTES
//
// Durations use time.ParseDuration syntax ("5m", "168h"). Malformed values
// panic, matching the behaviour of the JSON overlay.
func parseEnv(config *Config) {
	setString := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	setString("ADDRESS", &config.EndpointAddr)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("JWT_SECRET", &config.SecretKey)
	setString("ENVIRONMENT", &config.Environment)
	setString("CLIENT_URL", &config.ClientBaseURL)
	setString("SMTP_HOST", &config.SMTPHost)
	setString("EMAIL_USER", &config.SMTPUser)
	setString("EMAIL_PASS", &config.SMTPPassword)
	setString("MAIL_FROM", &config.MailFrom)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	if v, ok := os.LookupEnv("SMTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.SMTPPort = port
	}

	if v, ok := os.LookupEnv("MAX_UPLOAD_BYTES"); ok {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		config.MaxUploadBytes = size
	}

	if v, ok := os.LookupEnv("SESSION_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SessionValidityDuration = d
	}

	if v, ok := os.LookupEnv("OTP_VALIDITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.OTPValidityDuration = d
	}
}
