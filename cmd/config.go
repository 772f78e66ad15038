package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"warehouse/internal/pkg/errs"
)

// Notification gateways selectable through NOTIFICATION_GATEWAY.
const (
	GatewayHTTP  = "http"
	GatewayKafka = "kafka"
)

// Database drivers selectable through DB_DRIVER.
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBDriver   string
	LogLevel   string

	AuditDir               string
	NotificationGateway    string
	EmailGatewayURL        string
	KafkaHost              string
	KafkaNotificationTopic string
	DefaultCustomerEmail   string

	OtelExporterEndpoint  string
	PendingOrdersSchedule string
	SeedDemoData          bool
}

// WithDefaults fills the optional settings that were left empty.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8082"
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.DBDriver == "" {
		c.DBDriver = DriverPgx
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.AuditDir == "" {
		c.AuditDir = "audit"
	}
	if c.NotificationGateway == "" {
		c.NotificationGateway = GatewayHTTP
	}
	if c.KafkaNotificationTopic == "" {
		c.KafkaNotificationTopic = "order-notifications"
	}
	return c
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var problems []error
	for name, value := range map[string]string{
		"DB_HOST": c.DBHost,
		"DB_PORT": c.DBPort,
		"DB_USER": c.DBUser,
		"DB_NAME": c.DBName,
	} {
		if value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(name))
		}
	}

	if c.DBDriver != DriverPgx && c.DBDriver != DriverPq {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("DB_DRIVER",
			fmt.Errorf("%q is not one of %q, %q", c.DBDriver, DriverPgx, DriverPq)))
	}

	switch c.NotificationGateway {
	case GatewayHTTP:
		if c.EmailGatewayURL == "" {
			problems = append(problems, errs.NewValueIsRequiredError("EMAIL_GATEWAY_URL"))
		} else if u, err := url.Parse(c.EmailGatewayURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("EMAIL_GATEWAY_URL",
				fmt.Errorf("%q is not an absolute URL", c.EmailGatewayURL)))
		}
	case GatewayKafka:
		if c.KafkaHost == "" {
			problems = append(problems, errs.NewValueIsRequiredError("KAFKA_HOST"))
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("NOTIFICATION_GATEWAY",
			fmt.Errorf("%q is not one of %q, %q", c.NotificationGateway, GatewayHTTP, GatewayKafka)))
	}

	return errors.Join(problems...)
}

// DSN builds the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
