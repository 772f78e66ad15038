package cmd_test

import (
	"testing"

	"warehouse/cmd"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		DBHost:          "localhost",
		DBPort:          "5432",
		DBUser:          "warehouse",
		DBPassword:      "secret",
		DBName:          "warehouse",
		EmailGatewayURL: "http://mail.local/send",
	}.WithDefaults()
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Run("should fill empty optional settings", func(t *testing.T) {
		cfg := cmd.Config{}.WithDefaults()

		assert.Equal(t, "8082", cfg.HTTPPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, cmd.DriverPgx, cfg.DBDriver)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "audit", cfg.AuditDir)
		assert.Equal(t, cmd.GatewayHTTP, cfg.NotificationGateway)
		assert.Equal(t, "order-notifications", cfg.KafkaNotificationTopic)
	})

	t.Run("should keep explicit settings", func(t *testing.T) {
		cfg := cmd.Config{HTTPPort: "9000", DBDriver: cmd.DriverPq, AuditDir: "/var/audit"}.WithDefaults()

		assert.Equal(t, "9000", cfg.HTTPPort)
		assert.Equal(t, cmd.DriverPq, cfg.DBDriver)
		assert.Equal(t, "/var/audit", cfg.AuditDir)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept a complete http configuration", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("should accept a kafka configuration without an email gateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.NotificationGateway = cmd.GatewayKafka
		cfg.EmailGatewayURL = ""
		cfg.KafkaHost = "kafka:9092"

		require.NoError(t, cfg.Validate())
	})

	t.Run("should report every missing database setting", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBHost = ""
		cfg.DBName = ""

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "DB_HOST")
		assert.Contains(t, err.Error(), "DB_NAME")
	})

	t.Run("should reject an unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.DBDriver = "mysql"

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "DB_DRIVER")
	})

	t.Run("should reject a relative email gateway url", func(t *testing.T) {
		cfg := validConfig()
		cfg.EmailGatewayURL = "/send"

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "EMAIL_GATEWAY_URL")
	})

	t.Run("should require a kafka host for the kafka gateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.NotificationGateway = cmd.GatewayKafka

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "KAFKA_HOST")
	})

	t.Run("should reject an unknown gateway", func(t *testing.T) {
		cfg := validConfig()
		cfg.NotificationGateway = "sms"

		err := cfg.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "NOTIFICATION_GATEWAY")
	})
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=warehouse password=secret dbname=warehouse sslmode=disable",
		validConfig().DSN())
}
