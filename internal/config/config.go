package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/jellydator/validation"
	"gopkg.in/yaml.v3"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	configFileEnvKey      = "LEDGERLOAD_CONFIG"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	txnFolderEnvKey       = "TXN_GZ_FOLDER"
	tracesFolderEnvKey    = "TRACES_GZ_FOLDER"
	contractsFolderEnvKey = "CONTRACTS_GZ_FOLDER"
	workersEnvKey         = "INGEST_WORKERS"
	batchSizeEnvKey       = "INGEST_BATCH_SIZE"
	timeoutEnvKey         = "INGEST_TIMEOUT"
	maxRetriesEnvKey      = "INGEST_MAX_RETRIES"
	apiPortEnvKey         = "API_PORT"
	jwtSecretEnvKey       = "JWT_SECRET"
	redisURLEnvKey        = "REDIS_URL"
	cacheTTLEnvKey        = "CACHE_TTL"
	logLevelEnvKey        = "LOG_LEVEL"

	defaultFolder     = "/tmp"
	defaultBatchSize  = 1000
	defaultMaxRetries = 3
	defaultPort       = "8080"
	defaultCacheTTL   = 24 * time.Hour
	defaultLogLevel   = "info"
)

// App is loaded once at startup and passed to every component that needs it.
type App struct {
	DBConnectionURL string `yaml:"db_connection_url"`

	TransactionsFolder string `yaml:"transactions_folder"`
	TracesFolder       string `yaml:"traces_folder"`
	ContractsFolder    string `yaml:"contracts_folder"`

	Workers    int           `yaml:"workers"`
	BatchSize  int           `yaml:"batch_size"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`

	Port      string        `yaml:"port"`
	JWTSecret string        `yaml:"jwt_secret"`
	RedisURL  string        `yaml:"redis_url"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`

	LogLevel string `yaml:"log_level"`
}

// NewApp reads the optional YAML file named by LEDGERLOAD_CONFIG, lets environment
// variables override it, fills defaults and validates the result.
func NewApp() (App, error) {
	app := App{}

	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		fileApp, err := LoadFile(path)
		if err != nil {
			return App{}, err
		}
		app = fileApp
	}

	if err := app.applyEnv(); err != nil {
		return App{}, err
	}

	if app.DBConnectionURL == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	app.setDefaults()

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

// JWTSecret resolves only the API signing secret, from the same file and
// environment NewApp reads, for commands that never touch the store.
func JWTSecret() (string, error) {
	app := App{}

	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		fileApp, err := LoadFile(path)
		if err != nil {
			return "", err
		}
		app = fileApp
	}

	lookupString(jwtSecretEnvKey, &app.JWTSecret)
	return app.JWTSecret, nil
}

// LoadFile parses a YAML configuration file.
func LoadFile(path string) (App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return App{}, fmt.Errorf("read config file: %w", err)
	}

	var app App
	if err := yaml.Unmarshal(data, &app); err != nil {
		return App{}, fmt.Errorf("parse config file: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.TransactionsFolder, validation.Required),
		validation.Field(&a.TracesFolder, validation.Required),
		validation.Field(&a.ContractsFolder, validation.Required),
		validation.Field(&a.Workers, validation.Min(1)),
		validation.Field(&a.BatchSize, validation.Min(1), validation.Max(10000)),
		validation.Field(&a.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&a.MaxRetries, validation.Min(1)),
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.CacheTTL, validation.Min(time.Second)),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

func (a *App) applyEnv() error {
	lookupString(dbConnEnvKey, &a.DBConnectionURL)
	lookupString(txnFolderEnvKey, &a.TransactionsFolder)
	lookupString(tracesFolderEnvKey, &a.TracesFolder)
	lookupString(contractsFolderEnvKey, &a.ContractsFolder)
	lookupString(apiPortEnvKey, &a.Port)
	lookupString(jwtSecretEnvKey, &a.JWTSecret)
	lookupString(redisURLEnvKey, &a.RedisURL)
	lookupString(logLevelEnvKey, &a.LogLevel)

	if err := lookupInt(workersEnvKey, &a.Workers); err != nil {
		return err
	}
	if err := lookupInt(batchSizeEnvKey, &a.BatchSize); err != nil {
		return err
	}
	if err := lookupInt(maxRetriesEnvKey, &a.MaxRetries); err != nil {
		return err
	}
	if err := lookupDuration(timeoutEnvKey, &a.Timeout); err != nil {
		return err
	}
	if err := lookupDuration(cacheTTLEnvKey, &a.CacheTTL); err != nil {
		return err
	}

	return nil
}

func (a *App) setDefaults() {
	if a.TransactionsFolder == "" {
		a.TransactionsFolder = defaultFolder
	}
	if a.TracesFolder == "" {
		a.TracesFolder = defaultFolder
	}
	if a.ContractsFolder == "" {
		a.ContractsFolder = defaultFolder
	}
	if a.Workers == 0 {
		a.Workers = runtime.NumCPU()
	}
	if a.BatchSize == 0 {
		a.BatchSize = defaultBatchSize
	}
	if a.MaxRetries == 0 {
		a.MaxRetries = defaultMaxRetries
	}
	if a.Port == "" {
		a.Port = defaultPort
	}
	if a.CacheTTL == 0 {
		a.CacheTTL = defaultCacheTTL
	}
	if a.LogLevel == "" {
		a.LogLevel = defaultLogLevel
	}
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n

	return nil
}

func lookupDuration(key string, dst *time.Duration) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = d

	return nil
}
