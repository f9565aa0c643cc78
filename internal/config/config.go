package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrInvalidConfig é retornado quando falta alguma configuração obrigatória
var ErrInvalidConfig = errors.New("configuração inválida")

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	MoySklad        MoySklad        `mapstructure:",squash"`
	GoogleSheets    GoogleSheets    `mapstructure:",squash"`
	Telegram        Telegram        `mapstructure:",squash"`
	Reconcile       Reconcile       `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	SalesReportSync SalesReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	LockTTL  time.Duration `mapstructure:"redis_lock_ttl"`
}

type MoySklad struct {
	BaseURL        string        `mapstructure:"moysklad_base_url"`
	Username       string        `mapstructure:"moysklad_username"`
	Password       string        `mapstructure:"moysklad_password"`
	Timeout        time.Duration `mapstructure:"moysklad_timeout"`
	AcceptTimezone string        `mapstructure:"moysklad_accept_timezone"`
	SkipArchived   bool          `mapstructure:"moysklad_skip_archived"`
}

type GoogleSheets struct {
	// JSON da service account, inline ou caminho de arquivo
	ServiceAccountKey     string `mapstructure:"google_service_account_key"`
	ServiceAccountKeyFile string `mapstructure:"google_service_account_key_file"`
	SalesPlanSheetID      string `mapstructure:"google_sales_plan_sheet_id"`
	SalesPlanSheetName    string `mapstructure:"google_sales_plan_sheet_name"`
	PeriodStartMarker     string `mapstructure:"google_sales_plan_period_start_marker"`
	PeriodEndMarker       string `mapstructure:"google_sales_plan_period_end_marker"`
}

type Telegram struct {
	BotToken     string  `mapstructure:"telegram_bot_token"`
	ReportChatID int64   `mapstructure:"telegram_report_chat_id"`
	AllowedChats []int64 `mapstructure:"telegram_allowed_chats"`
	BotEnabled   bool    `mapstructure:"telegram_bot_enabled"`
	Debug        bool    `mapstructure:"telegram_debug"`
}

type Reconcile struct {
	ExcludedKeywords   []string `mapstructure:"reconcile_excluded_keywords"`
	EfficiencyKeywords []string `mapstructure:"reconcile_efficiency_keywords"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

type SalesReportSync struct {
	CronSchedule string        `mapstructure:"sales_report_sync_cron"`
	Pause        time.Duration `mapstructure:"sales_report_sync_pause"`
	Enabled      bool          `mapstructure:"sales_report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales_plan?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LOCK_TTL", "30m")

	viper.SetDefault("MOYSKLAD_BASE_URL", "https://api.moysklad.ru/")
	viper.SetDefault("MOYSKLAD_USERNAME", "")
	viper.SetDefault("MOYSKLAD_PASSWORD", "")
	viper.SetDefault("MOYSKLAD_TIMEOUT", "30s")
	viper.SetDefault("MOYSKLAD_ACCEPT_TIMEZONE", "")
	viper.SetDefault("MOYSKLAD_SKIP_ARCHIVED", true)

	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_KEY_FILE", "")
	viper.SetDefault("GOOGLE_SALES_PLAN_SHEET_ID", "")
	viper.SetDefault("GOOGLE_SALES_PLAN_SHEET_NAME", "Чита")
	viper.SetDefault("GOOGLE_SALES_PLAN_PERIOD_START_MARKER", "Начало периода")
	viper.SetDefault("GOOGLE_SALES_PLAN_PERIOD_END_MARKER", "Конец периода")

	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_REPORT_CHAT_ID", 0)
	viper.SetDefault("TELEGRAM_ALLOWED_CHATS", "")
	viper.SetDefault("TELEGRAM_BOT_ENABLED", false)
	viper.SetDefault("TELEGRAM_DEBUG", false)

	viper.SetDefault("RECONCILE_EXCLUDED_KEYWORDS", "аккумулятор,испаритель,катридж")
	viper.SetDefault("RECONCILE_EFFICIENCY_KEYWORDS", "картридж,испаритель,фильтр,расходник,cartridge,coil,filter,consumable")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	// 13:15 UTC = 22:15 UTC+9
	viper.SetDefault("SALES_REPORT_SYNC_CRON", "15 13 * * *")
	viper.SetDefault("SALES_REPORT_SYNC_PAUSE", "2s")
	viper.SetDefault("SALES_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	config.Reconcile.ExcludedKeywords = cleanKeywords(config.Reconcile.ExcludedKeywords)
	config.Reconcile.EfficiencyKeywords = cleanKeywords(config.Reconcile.EfficiencyKeywords)

	if config.GoogleSheets.ServiceAccountKey == "" && config.GoogleSheets.ServiceAccountKeyFile != "" {
		key, err := os.ReadFile(config.GoogleSheets.ServiceAccountKeyFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler arquivo da service account: %w", err)
		}
		config.GoogleSheets.ServiceAccountKey = string(key)
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

// Validate garante que as credenciais e IDs obrigatórios foram informados.
// Falhas aqui são fatais na inicialização e nunca são re-tentadas.
func (c *Config) Validate() error {
	var missing []string

	if c.MoySklad.BaseURL == "" {
		missing = append(missing, "MOYSKLAD_BASE_URL")
	}
	if c.MoySklad.Username == "" {
		missing = append(missing, "MOYSKLAD_USERNAME")
	}
	if c.MoySklad.Password == "" {
		missing = append(missing, "MOYSKLAD_PASSWORD")
	}
	if c.GoogleSheets.SalesPlanSheetID == "" {
		missing = append(missing, "GOOGLE_SALES_PLAN_SHEET_ID")
	}
	if c.GoogleSheets.ServiceAccountKey == "" {
		missing = append(missing, "GOOGLE_SERVICE_ACCOUNT_KEY")
	}
	if c.GoogleSheets.SalesPlanSheetName == "" {
		missing = append(missing, "GOOGLE_SALES_PLAN_SHEET_NAME")
	}
	if c.Telegram.BotEnabled && c.Telegram.BotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.SalesReportSync.Enabled && c.Telegram.ReportChatID == 0 {
		missing = append(missing, "TELEGRAM_REPORT_CHAT_ID")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: variáveis ausentes: %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	return nil
}

func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword != "" {
			cleaned = append(cleaned, keyword)
		}
	}
	return cleaned
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

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
