package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Services   Services   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	QueryCache QueryCache `mapstructure:",squash"`
	Devtools   Devtools   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Services concentra as URLs base dos serviços de backend. Cada domínio do
// CRM é servido por um serviço distinto.
type Services struct {
	CampaignURL           string `mapstructure:"campaign_service_url"`
	AnalyticsURL          string `mapstructure:"analytics_service_url"`
	PaymentURL            string `mapstructure:"payment_service_url"`
	IntegrationURL        string `mapstructure:"integration_service_url"`
	SharedURL             string `mapstructure:"shared_service_url"`
	UserURL               string `mapstructure:"user_service_url"`
	RequestTimeoutSeconds int    `mapstructure:"service_request_timeout_seconds"`
}

// RequestTimeout retorna o timeout das requisições HTTP aos serviços
func (s Services) RequestTimeout() time.Duration {
	if s.RequestTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

type Auth struct {
	BearerToken string `mapstructure:"auth_bearer_token"`
}

type QueryCache struct {
	ListTTLMinutes   int    `mapstructure:"query_cache_list_ttl_minutes"`
	DetailTTLMinutes int    `mapstructure:"query_cache_detail_ttl_minutes"`
	JanitorCron      string `mapstructure:"query_cache_janitor_cron"`
	Enabled          bool   `mapstructure:"query_cache_enabled"`
}

type Devtools struct {
	Enabled bool `mapstructure:"devtools_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("CAMPAIGN_SERVICE_URL", "http://localhost:8002")
	viper.SetDefault("ANALYTICS_SERVICE_URL", "http://localhost:8003")
	viper.SetDefault("PAYMENT_SERVICE_URL", "http://localhost:8004")
	viper.SetDefault("INTEGRATION_SERVICE_URL", "http://localhost:8005")
	viper.SetDefault("SHARED_SERVICE_URL", "http://localhost:8006")
	viper.SetDefault("USER_SERVICE_URL", "http://localhost:8001")
	viper.SetDefault("SERVICE_REQUEST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_BEARER_TOKEN", "") // ONLY LOCAL

	// Defaults do cache de consultas
	viper.SetDefault("QUERY_CACHE_LIST_TTL_MINUTES", 5)   // Janela de listagens
	viper.SetDefault("QUERY_CACHE_DETAIL_TTL_MINUTES", 1) // Janela de detalhes
	viper.SetDefault("QUERY_CACHE_JANITOR_CRON", "*/5 * * * *")
	viper.SetDefault("QUERY_CACHE_ENABLED", true)

	viper.SetDefault("DEVTOOLS_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	return config, nil
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
