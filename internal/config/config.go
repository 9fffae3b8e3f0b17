package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Store struct {
		Driver     string `mapstructure:"driver"`
		SQLitePath string `mapstructure:"sqlite_path"`
	} `mapstructure:"store"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr      string `mapstructure:"addr"`
		Password  string `mapstructure:"password"`
		DB        int    `mapstructure:"db"`
		KeyPrefix string `mapstructure:"key_prefix"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
		ServiceName  string `mapstructure:"service_name"`
	} `mapstructure:"tracing"`
}

// LoadConfig reads config.yaml from the working directory and any extra
// paths, then overlays .env and process environment variables.
func LoadConfig(paths ...string) (cfg Config, err error) {

	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	v.AddConfigPath(".")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.sqlite_path", "portfolio.db")
	v.SetDefault("redis.key_prefix", "portfolio:")
	v.SetDefault("kafka.group_id", "portfolio-view-counter")
	v.SetDefault("tracing.service_name", "portfolio-view")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.sqlite_path", "STORE_SQLITE_PATH")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.key_prefix", "REDIS_KEY_PREFIX")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	v.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")
	v.BindEnv("tracing.service_name", "OTEL_SERVICE_NAME")

	err = v.Unmarshal(&cfg)
	return
}
