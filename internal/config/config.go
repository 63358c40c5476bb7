package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// PlaceholderCredential é o valor de exemplo do .env; enquanto estiver lá o banco é tratado como não configurado.
const PlaceholderCredential = "SUA_API_KEY_AQUI"

// Drivers do banco de documentos
const (
	DocStoreDriverPostgres = "postgres"
	DocStoreDriverMemory   = "memory"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	DocStore        DocStore        `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// IsConfigured indica se há credenciais reais para o banco.
func (d Database) IsConfigured() bool {
	return d.URL != "" && d.Password != PlaceholderCredential
}

type DocStore struct {
	Driver               string        `mapstructure:"docstore_driver"`
	NotifyChannel        string        `mapstructure:"docstore_notify_channel"`
	MinReconnectInterval time.Duration `mapstructure:"docstore_min_reconnect_interval"`
	MaxReconnectInterval time.Duration `mapstructure:"docstore_max_reconnect_interval"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/painel?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", PlaceholderCredential)

	viper.SetDefault("DOCSTORE_DRIVER", DocStoreDriverPostgres)
	viper.SetDefault("DOCSTORE_NOTIFY_CHANNEL", "document_changes")
	viper.SetDefault("DOCSTORE_MIN_RECONNECT_INTERVAL", "10s")
	viper.SetDefault("DOCSTORE_MAX_RECONNECT_INTERVAL", "1m")

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
