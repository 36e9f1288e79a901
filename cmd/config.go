package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"marketplace.db"`

	OwnerAddress   string `env:"OWNER_ADDRESS,required,notEmpty"`
	TrackerAddress string `env:"TRACKER_ADDRESS"`
	PlatformFeeBP  int    `env:"PLATFORM_FEE_BP" envDefault:"250"`
	JWTSecret      string `env:"JWT_SECRET,required,notEmpty"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaEventsTopic  string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"marketplace.events"`
	KafkaPayoutsTopic string   `env:"KAFKA_PAYOUTS_TOPIC" envDefault:"marketplace.payouts"`

	OutboxBatchSize int           `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	OutboxSchedule  string        `env:"OUTBOX_SCHEDULE" envDefault:"*/5 * * * * *"`
	OutboxRetention time.Duration `env:"OUTBOX_RETENTION" envDefault:"168h"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// A missing file is fine; everything may come from the environment.
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
