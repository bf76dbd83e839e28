package cmd

import "time"

// Config carries everything main reads from the environment.
type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaBrokers            string
	KafkaNotificationsTopic string
	GatewaySuccessRate      float64
	PaymentWatchdogWindow   time.Duration
}
