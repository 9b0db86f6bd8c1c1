package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de origem de dados suportados pelo pipeline
const (
	SourceKindCSV        = "csv"
	SourceKindXLSX       = "xlsx"
	SourceKindStorefront = "storefront"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Pipeline     Pipeline     `mapstructure:",squash"`
	Source       Source       `mapstructure:",squash"`
	Storefront   Storefront   `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	MaxUploadBytes int64  `mapstructure:"server_max_upload_bytes"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret             string        `mapstructure:"secret_key" validate:"required"`
	TokenTTL           time.Duration `mapstructure:"auth_token_ttl" validate:"gt=0"`
	AdminUser          string        `mapstructure:"auth_admin_user"`
	AdminPasswordHash  string        `mapstructure:"auth_admin_password_hash"`
	ViewerUser         string        `mapstructure:"auth_viewer_user"`
	ViewerPasswordHash string        `mapstructure:"auth_viewer_password_hash"`
}

// Pipeline é a configuração explícita entregue a cada etapa do pipeline
type Pipeline struct {
	UnknownLabel      string   `mapstructure:"pipeline_unknown_label" validate:"required"`
	Categories        []string `mapstructure:"pipeline_categories" validate:"dive,required"`
	Regions           []string `mapstructure:"pipeline_regions" validate:"dive,required"`
	PaymentMethods    []string `mapstructure:"pipeline_payment_methods" validate:"dive,required"`
	AgeGroups         []string `mapstructure:"pipeline_age_groups" validate:"dive,required"`
	DateLayouts       []string `mapstructure:"pipeline_date_layouts" validate:"min=1,dive,required"`
	TopN              int      `mapstructure:"pipeline_top_n" validate:"gte=1"`
	MaxReportedErrors int      `mapstructure:"pipeline_max_reported_errors" validate:"gte=0"`
	Columns           Columns  `mapstructure:",squash"`
}

// Columns mapeia os nomes das colunas da origem para os campos do RawRecord
type Columns struct {
	TransactionID string `mapstructure:"pipeline_column_transaction_id" validate:"required"`
	Date          string `mapstructure:"pipeline_column_date" validate:"required"`
	CustomerID    string `mapstructure:"pipeline_column_customer_id" validate:"required"`
	Product       string `mapstructure:"pipeline_column_product" validate:"required"`
	Category      string `mapstructure:"pipeline_column_category" validate:"required"`
	Region        string `mapstructure:"pipeline_column_region" validate:"required"`
	PaymentMethod string `mapstructure:"pipeline_column_payment_method" validate:"required"`
	Quantity      string `mapstructure:"pipeline_column_quantity" validate:"required"`
	UnitPrice     string `mapstructure:"pipeline_column_unit_price" validate:"required"`
	Discount      string `mapstructure:"pipeline_column_discount" validate:"required"`
	AgeGroup      string `mapstructure:"pipeline_column_age_group"` // Opcional: sem a coluna, todas as linhas recebem o sentinela
}

type Source struct {
	Kind  string `mapstructure:"pipeline_source_kind" validate:"oneof=csv xlsx storefront"`
	Path  string `mapstructure:"pipeline_source_path"`
	Sheet string `mapstructure:"pipeline_source_sheet"`
}

type Storefront struct {
	URL          string `mapstructure:"storefront_url"`
	AccessToken  string `mapstructure:"storefront_access_token"`
	LookbackDays int    `mapstructure:"storefront_lookback_days"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

var (
	defaultCategories = []string{
		"Electronics", "Clothing", "Home & Kitchen", "Books",
		"Sports", "Beauty", "Toys", "Food & Beverages",
	}
	defaultRegions        = []string{"North America", "Europe", "Asia", "South America", "Africa", "Oceania"}
	defaultPaymentMethods = []string{"Credit Card", "Debit Card", "PayPal", "Cash on Delivery", "Bank Transfer"}
	defaultAgeGroups      = []string{"18-25", "26-35", "36-45", "46-55", "56+"}
	defaultDateLayouts    = []string{time.DateOnly, time.DateTime, time.RFC3339, "02/01/2006"}
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("SERVER_MAX_UPLOAD_BYTES", 32<<20) // 32MB

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_ADMIN_USER", "admin")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_VIEWER_USER", "viewer")
	viper.SetDefault("AUTH_VIEWER_PASSWORD_HASH", "")

	viper.SetDefault("PIPELINE_UNKNOWN_LABEL", "Unknown")
	viper.SetDefault("PIPELINE_CATEGORIES", defaultCategories)
	viper.SetDefault("PIPELINE_REGIONS", defaultRegions)
	viper.SetDefault("PIPELINE_PAYMENT_METHODS", defaultPaymentMethods)
	viper.SetDefault("PIPELINE_AGE_GROUPS", defaultAgeGroups)
	viper.SetDefault("PIPELINE_DATE_LAYOUTS", defaultDateLayouts)
	viper.SetDefault("PIPELINE_TOP_N", 10)
	viper.SetDefault("PIPELINE_MAX_REPORTED_ERRORS", 100)

	// Colunas do CSV gerado pela ferramenta de dados sintéticos
	viper.SetDefault("PIPELINE_COLUMN_TRANSACTION_ID", "Order_ID")
	viper.SetDefault("PIPELINE_COLUMN_DATE", "Order_Date")
	viper.SetDefault("PIPELINE_COLUMN_CUSTOMER_ID", "Customer_ID")
	viper.SetDefault("PIPELINE_COLUMN_PRODUCT", "Product_Name")
	viper.SetDefault("PIPELINE_COLUMN_CATEGORY", "Category")
	viper.SetDefault("PIPELINE_COLUMN_REGION", "Region")
	viper.SetDefault("PIPELINE_COLUMN_PAYMENT_METHOD", "Payment_Method")
	viper.SetDefault("PIPELINE_COLUMN_QUANTITY", "Quantity")
	viper.SetDefault("PIPELINE_COLUMN_UNIT_PRICE", "Unit_Price")
	viper.SetDefault("PIPELINE_COLUMN_DISCOUNT", "Discount")
	viper.SetDefault("PIPELINE_COLUMN_AGE_GROUP", "Customer_Age_Group")

	viper.SetDefault("PIPELINE_SOURCE_KIND", SourceKindCSV)
	viper.SetDefault("PIPELINE_SOURCE_PATH", "data/raw/sales_data.csv")
	viper.SetDefault("PIPELINE_SOURCE_SHEET", "")

	viper.SetDefault("STOREFRONT_URL", "https://api.storefront.example.com/v1")
	viper.SetDefault("STOREFRONT_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("STOREFRONT_LOOKBACK_DAYS", 30)

	viper.SetDefault("PIPELINE_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

// DefaultPipeline retorna a configuração padrão do pipeline sem depender do viper
func DefaultPipeline() Pipeline {
	return Pipeline{
		UnknownLabel:      "Unknown",
		Categories:        append([]string(nil), defaultCategories...),
		Regions:           append([]string(nil), defaultRegions...),
		PaymentMethods:    append([]string(nil), defaultPaymentMethods...),
		AgeGroups:         append([]string(nil), defaultAgeGroups...),
		DateLayouts:       append([]string(nil), defaultDateLayouts...),
		TopN:              10,
		MaxReportedErrors: 100,
		Columns: Columns{
			TransactionID: "Order_ID",
			Date:          "Order_Date",
			CustomerID:    "Customer_ID",
			Product:       "Product_Name",
			Category:      "Category",
			Region:        "Region",
			PaymentMethod: "Payment_Method",
			Quantity:      "Quantity",
			UnitPrice:     "Unit_Price",
			Discount:      "Discount",
			AgeGroup:      "Customer_Age_Group",
		},
	}
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

	config.Pipeline.Categories = trimAll(config.Pipeline.Categories)
	config.Pipeline.Regions = trimAll(config.Pipeline.Regions)
	config.Pipeline.PaymentMethods = trimAll(config.Pipeline.PaymentMethods)
	config.Pipeline.AgeGroups = trimAll(config.Pipeline.AgeGroups)
	config.Pipeline.UnknownLabel = NormalizeLabel(config.Pipeline.UnknownLabel)
	config.Pipeline.DateLayouts = trimAll(config.Pipeline.DateLayouts)

	if err := config.Validate(); err != nil {
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

// Validate verifica as seções que o pipeline e a autenticação dependem
func (c *Config) Validate() error {
	if err := c.Pipeline.Validate(); err != nil {
		return err
	}

	v := validator.New()
	if err := v.Struct(c.Auth); err != nil {
		return fmt.Errorf("configuração de autenticação inválida: %w", err)
	}
	if err := v.Struct(c.Source); err != nil {
		return fmt.Errorf("configuração de origem inválida: %w", err)
	}

	return nil
}

// Validate verifica a configuração do pipeline
func (p Pipeline) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("configuração do pipeline inválida: %w", err)
	}
	return nil
}

// NormalizeLabel remove espaços nas pontas e colapsa espaços internos,
// a mesma normalização aplicada aos textos dos registros
func NormalizeLabel(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
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
