package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Data sources
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

const (
	defaultDataDir       = "datasets"
	defaultStocksFile    = "sp500_stocks.csv"
	defaultCompaniesFile = "sp500_companies.csv"
	defaultIndexFile     = "sp500_index.csv"
	defaultGRPCPort      = ":8080"
	defaultAPIToken      = "dev-token"
)

// Config holds the server settings.
// Values come from an optional YAML file (CONFIG_FILE), then environment
// variables, then defaults.
type Config struct {
	Data struct {
		Source        string `yaml:"source"`
		Dir           string `yaml:"dir"`
		StocksFile    string `yaml:"stocksFile"`
		CompaniesFile string `yaml:"companiesFile"`
		IndexFile     string `yaml:"indexFile"`
	} `yaml:"data"`
	Database struct {
		ConnStr  string `yaml:"connStr"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Server struct {
		GRPCPort string `yaml:"grpcPort"`
		APIToken string `yaml:"apiToken"`
	} `yaml:"server"`
}

// Load builds the configuration from CONFIG_FILE (if set) and the environment
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.Data.Source = getEnv("DATA_SOURCE", cfg.Data.Source, SourceCSV)
	cfg.Data.Dir = getEnv("DATA_DIR", cfg.Data.Dir, defaultDataDir)
	cfg.Data.StocksFile = getEnv("STOCKS_FILE", cfg.Data.StocksFile, defaultStocksFile)
	cfg.Data.CompaniesFile = getEnv("COMPANIES_FILE", cfg.Data.CompaniesFile, defaultCompaniesFile)
	cfg.Data.IndexFile = getEnv("INDEX_FILE", cfg.Data.IndexFile, defaultIndexFile)

	cfg.Database.ConnStr = getEnv("DB_CONN_STR", cfg.Database.ConnStr, "")
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host, "localhost") // Default for local run without docker
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port, "5432")
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User, "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password, "postgres")
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name, "stockscope")

	cfg.Server.GRPCPort = getEnv("GRPC_PORT", cfg.Server.GRPCPort, defaultGRPCPort)
	cfg.Server.APIToken = getEnv("API_TOKEN", cfg.Server.APIToken, defaultAPIToken)

	if cfg.Data.Source != SourceCSV && cfg.Data.Source != SourcePostgres {
		return nil, fmt.Errorf("unknown data source %q (want %q or %q)", cfg.Data.Source, SourceCSV, SourcePostgres)
	}

	return cfg, nil
}

// StocksPath returns the stock table path; relative file names resolve under Dir
func (c *Config) StocksPath() string {
	return c.dataPath(c.Data.StocksFile)
}

// CompaniesPath returns the company table path
func (c *Config) CompaniesPath() string {
	return c.dataPath(c.Data.CompaniesFile)
}

// IndexPath returns the index table path
func (c *Config) IndexPath() string {
	return c.dataPath(c.Data.IndexFile)
}

func (c *Config) dataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}

// DBConnStr returns the explicit connection string, or builds it from the
// individual settings (Docker friendly)
func (c *Config) DBConnStr() string {
	if c.Database.ConnStr != "" {
		return c.Database.ConnStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}

// getEnv prefers the environment, then the file value, then the default
func getEnv(key, fileValue, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if fileValue != "" {
		return fileValue
	}
	return fallback
}
