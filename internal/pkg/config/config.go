package config

import (
	"fmt"
	"time"

	"nightlife-feedback/internal/domain/feedback"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Mongo     MongoConfig
	Store     StoreConfig
	AMQP      AMQPConfig
	Scheduler SchedulerConfig
	Gateway   GatewayConfig
	Presence  PresenceConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type MongoConfig struct {
	URI        string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database   string `envconfig:"MONGO_DATABASE" default:"nightlife"`
	Collection string `envconfig:"MONGO_COLLECTION" default:"feedback_requests"`
}

type StoreConfig struct {
	// Driver selects the FeedbackStore backend: postgres, mongo or memory.
	Driver       string        `envconfig:"STORE_DRIVER" default:"postgres"`
	SaveRetries  int           `envconfig:"STORE_SAVE_RETRIES" default:"3"`
	RetryBackoff time.Duration `envconfig:"STORE_RETRY_BACKOFF" default:"50ms"`
}

type AMQPConfig struct {
	// URL empty disables the broker; sinks then only log.
	URL             string `envconfig:"AMQP_URL"`
	Exchange        string `envconfig:"AMQP_EXCHANGE" default:"nightlife.events"`
	AttendanceQueue string `envconfig:"AMQP_ATTENDANCE_QUEUE" default:"feedback.attendance"`
	AttendanceKey   string `envconfig:"AMQP_ATTENDANCE_KEY" default:"booking.attended"`
}

type SchedulerConfig struct {
	InitialDelay        time.Duration `envconfig:"FEEDBACK_INITIAL_DELAY" default:"12h"`
	UnfocusedRetryDelay time.Duration `envconfig:"FEEDBACK_UNFOCUSED_RETRY_DELAY" default:"30m"`
	DismissRetryDelay   time.Duration `envconfig:"FEEDBACK_DISMISS_RETRY_DELAY" default:"24h"`
	PromptTimeout       time.Duration `envconfig:"FEEDBACK_PROMPT_TIMEOUT" default:"24h"`
	MaxAttempts         int           `envconfig:"FEEDBACK_MAX_ATTEMPTS" default:"3"`
	RewardPoints        int           `envconfig:"FEEDBACK_REWARD_POINTS" default:"10"`
}

type GatewayConfig struct {
	SubmitURL string        `envconfig:"GATEWAY_SUBMIT_URL" required:"true"`
	PhotoURL  string        `envconfig:"GATEWAY_PHOTO_URL" required:"true"`
	Timeout   time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"10s"`
}

type PresenceConfig struct {
	// TTL is how long a focus heartbeat counts as current.
	TTL time.Duration `envconfig:"PRESENCE_TTL" default:"2m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c SchedulerConfig) Policy() feedback.Policy {
	return feedback.Policy{
		InitialDelay:        c.InitialDelay,
		UnfocusedRetryDelay: c.UnfocusedRetryDelay,
		DismissRetryDelay:   c.DismissRetryDelay,
		PromptTimeout:       c.PromptTimeout,
		MaxAttempts:         c.MaxAttempts,
	}
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Scheduler.Policy().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scheduler config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	policy := feedback.DefaultPolicy()
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Store: StoreConfig{
			Driver:       "memory",
			SaveRetries:  1,
			RetryBackoff: time.Millisecond,
		},
		Scheduler: SchedulerConfig{
			InitialDelay:        policy.InitialDelay,
			UnfocusedRetryDelay: policy.UnfocusedRetryDelay,
			DismissRetryDelay:   policy.DismissRetryDelay,
			PromptTimeout:       policy.PromptTimeout,
			MaxAttempts:         policy.MaxAttempts,
			RewardPoints:        10,
		},
		Gateway: GatewayConfig{
			SubmitURL: "http://localhost:18080/feedback",
			PhotoURL:  "http://localhost:18080/feedback/photo",
			Timeout:   2 * time.Second,
		},
		Presence: PresenceConfig{
			TTL: 2 * time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
