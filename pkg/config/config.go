package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Storage StorageConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo y los DB_* dejan de ser obligatorios.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host         string
	Port         int
	BodyLimitMB  int
	AllowOrigins string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Drivers de almacenamiento de imágenes.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// StorageConfig configuración del almacenamiento de imágenes subidas.
type StorageConfig struct {
	Driver    string // local | s3
	UploadDir string // directorio para el driver local
	S3        S3Config
}

// S3Config bucket S3 o compatible (MinIO). Endpoint vacío = endpoint de AWS.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// MissingKeysError se devuelve cuando faltan variables obligatorias.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return "config: faltan variables obligatorias: " + strings.Join(e.Keys, ", ")
}

// InvalidValuesError se devuelve cuando una variable numérica o booleana no se puede convertir.
type InvalidValuesError struct {
	Keys []string
}

func (e *InvalidValuesError) Error() string {
	return "config: valores inválidos en: " + strings.Join(e.Keys, ", ")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Falla si falta cualquier credencial de base de datos o el secreto JWT.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	r := &envReader{v: v}
	cfg := &Config{
		App: AppConfig{
			Env:         r.str("APP_ENV", "development"),
			Name:        r.str("APP_NAME", "catalog-api"),
			LogLevel:    r.str("LOG_LEVEL", "info"),
			SwaggerFile: r.str("SWAGGER_FILE", "./docs/swagger.json"),
		},
		DB: DBConfig{
			DatabaseURL: r.str("DATABASE_URL", ""),
			Host:        r.str("DB_HOST", ""),
			Port:        r.int("DB_PORT", 5432),
			User:        r.str("DB_USER", ""),
			Password:    r.str("DB_PASSWORD", ""),
			DBName:      r.str("DB_NAME", ""),
			SSLMode:     r.str("DB_SSLMODE", "disable"),
			AutoMigrate: r.bool("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     r.str("JWT_SECRET", ""),
			Expiration: r.int("JWT_EXPIRATION_MINUTES", 60),
			Issuer:     r.str("JWT_ISSUER", "catalog-api"),
		},
		HTTP: HTTPConfig{
			Host:         r.str("HTTP_HOST", "0.0.0.0"),
			Port:         r.int("HTTP_PORT", 5000),
			BodyLimitMB:  r.int("HTTP_BODY_LIMIT_MB", 16),
			AllowOrigins: r.str("CORS_ALLOW_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			Driver:    strings.ToLower(r.str("STORAGE_DRIVER", StorageLocal)),
			UploadDir: r.str("UPLOAD_DIR", "uploads"),
			S3: S3Config{
				Bucket:    r.str("S3_BUCKET", ""),
				Region:    r.str("S3_REGION", "us-east-1"),
				Endpoint:  r.str("S3_ENDPOINT", ""),
				AccessKey: r.str("S3_ACCESS_KEY", ""),
				SecretKey: r.str("S3_SECRET_KEY", ""),
			},
		},
	}

	if len(r.invalid) > 0 {
		return nil, &InvalidValuesError{Keys: r.invalid}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.DB.DatabaseURL == "" {
		required := []struct{ key, val string }{
			{"DB_HOST", c.DB.Host},
			{"DB_USER", c.DB.User},
			{"DB_PASSWORD", c.DB.Password},
			{"DB_NAME", c.DB.DBName},
		}
		for _, r := range required {
			if r.val == "" {
				missing = append(missing, r.key)
			}
		}
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	switch c.Storage.Driver {
	case StorageLocal:
	case StorageS3:
		if c.Storage.S3.Bucket == "" {
			missing = append(missing, "S3_BUCKET")
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// envReader lee claves con valor por defecto y acumula las que no se pueden convertir.
type envReader struct {
	v       *viper.Viper
	invalid []string
}

func (r *envReader) str(key, def string) string {
	if r.v.IsSet(key) {
		return r.v.GetString(key)
	}
	return def
}

func (r *envReader) int(key string, def int) int {
	if !r.v.IsSet(key) {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(r.v.GetString(key)))
	if err != nil {
		r.invalid = append(r.invalid, key)
		return def
	}
	return n
}

func (r *envReader) bool(key string, def bool) bool {
	if !r.v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(r.v.GetString(key)))
	if err != nil {
		r.invalid = append(r.invalid, key)
		return def
	}
	return b
}
