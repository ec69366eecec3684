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

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Meta          Meta          `mapstructure:",squash"`
	Sync          Sync          `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	ChunkDispatch ChunkDispatch `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url"`
	User        string `mapstructure:"database_user"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"meta_url"`
	Version        string        `mapstructure:"meta_version"`
	AppID          string        `mapstructure:"meta_app_id"`
	AppSecret      string        `mapstructure:"meta_app_secret"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

// Sync agrupa os parâmetros do pipeline de sincronização por chunks
type Sync struct {
	PageSize                  int           `mapstructure:"sync_page_size"`
	MaxPages                  int           `mapstructure:"sync_max_pages"`
	PageInterval              time.Duration `mapstructure:"sync_page_interval"`
	MaxRetries                int           `mapstructure:"sync_max_retries"`
	BackoffBase               time.Duration `mapstructure:"sync_backoff_base"`
	BatchSize                 int           `mapstructure:"sync_batch_size"`
	ConversionValueMultiplier float64       `mapstructure:"sync_conversion_value_multiplier"`
	DefaultEntityLimit        int           `mapstructure:"sync_default_entity_limit"`
	MaxEntityLimit            int           `mapstructure:"sync_max_entity_limit"`
	DefaultLookbackDays       int           `mapstructure:"sync_default_lookback_days"`
	TokenRefreshWindow        time.Duration `mapstructure:"sync_token_refresh_window"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ChunkDispatch struct {
	CronSchedule      string `mapstructure:"chunk_dispatch_cron"`
	MaxConcurrentJobs int    `mapstructure:"chunk_dispatch_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"chunk_dispatch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsync")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", false)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")

	// Defaults do pipeline de sincronização
	viper.SetDefault("SYNC_PAGE_SIZE", 500)                    // Registros por página na Graph API
	viper.SetDefault("SYNC_MAX_PAGES", 1000)                   // Limite de páginas por endpoint
	viper.SetDefault("SYNC_PAGE_INTERVAL", "600ms")            // Intervalo entre páginas
	viper.SetDefault("SYNC_MAX_RETRIES", 2)                    // Tentativas extras em rate limit
	viper.SetDefault("SYNC_BACKOFF_BASE", "3s")                // Espera = (tentativa+1) * base
	viper.SetDefault("SYNC_BATCH_SIZE", 200)                   // Linhas por upsert
	viper.SetDefault("SYNC_CONVERSION_VALUE_MULTIPLIER", 10.0) // Escala aplicada ao valor de conversão
	viper.SetDefault("SYNC_DEFAULT_ENTITY_LIMIT", 50)          // Entidades por chunk de métricas
	viper.SetDefault("SYNC_MAX_ENTITY_LIMIT", 500)             // Maior janela aceita numa invocação
	viper.SetDefault("SYNC_DEFAULT_LOOKBACK_DAYS", 30)         // Janela padrão de datas
	viper.SetDefault("SYNC_TOKEN_REFRESH_WINDOW", "24h")       // Renovar token perto da expiração

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("CHUNK_DISPATCH_CRON", "0 3 * * *")      // Todos os dias às 3h da manhã
	viper.SetDefault("CHUNK_DISPATCH_MAX_CONCURRENT_JOBS", 3) // 3 contas em paralelo
	viper.SetDefault("CHUNK_DISPATCH_ENABLED", false)         // Habilitar despacho automático

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Sync.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que os limites do pipeline não travem a sincronização
func (s Sync) Validate() error {
	if s.PageSize <= 0 {
		return fmt.Errorf("SYNC_PAGE_SIZE deve ser positivo, recebido %d", s.PageSize)
	}
	if s.MaxPages <= 0 {
		return fmt.Errorf("SYNC_MAX_PAGES deve ser positivo, recebido %d", s.MaxPages)
	}
	if s.BatchSize <= 0 {
		return fmt.Errorf("SYNC_BATCH_SIZE deve ser positivo, recebido %d", s.BatchSize)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("SYNC_MAX_RETRIES não pode ser negativo, recebido %d", s.MaxRetries)
	}
	if s.DefaultEntityLimit <= 0 {
		return fmt.Errorf("SYNC_DEFAULT_ENTITY_LIMIT deve ser positivo, recebido %d", s.DefaultEntityLimit)
	}
	if s.MaxEntityLimit < s.DefaultEntityLimit {
		return fmt.Errorf("SYNC_MAX_ENTITY_LIMIT (%d) deve ser maior ou igual a SYNC_DEFAULT_ENTITY_LIMIT (%d)", s.MaxEntityLimit, s.DefaultEntityLimit)
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
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
