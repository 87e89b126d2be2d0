package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-bank-records/pkg/mysql"
)

const (
	// EnvPath 覆寫設定檔路徑的環境變數
	EnvPath = "BANK_CONFIG"
	// DefaultPath 預設設定檔路徑
	DefaultPath = "config/config.yaml"
)

// StoreDriver 選擇資料儲存實作
type StoreDriver string

const (
	StoreMySQL     StoreDriver = "mysql"
	StoreMemory    StoreDriver = "memory"
	// StoreSequenced 記憶體資料，所有寫入由單一 goroutine 依序執行
	StoreSequenced StoreDriver = "memory-sequenced"
)

type Config struct {
	GRPC  GRPCConfig   `yaml:"grpc"`
	Store StoreConfig  `yaml:"store"`
	MySQL mysql.Config `yaml:"mysql"`
	WAL   WALConfig    `yaml:"wal"`
	Log   LogConfig    `yaml:"log"`
}

type GRPCConfig struct {
	Addr string `yaml:"addr"`
}

type StoreConfig struct {
	Driver StoreDriver `yaml:"driver"`
}

type WALConfig struct {
	// Path 為空時 memory store 不寫 WAL，重啟後資料消失
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// ResolvePath 決定設定檔路徑，優先順序: flag > BANK_CONFIG > 預設值
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load 讀取並解析 yaml 設定檔，補全預設值後檢查
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 yaml 內容
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GRPC.Addr == "" {
		c.GRPC.Addr = ":50051"
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreMySQL
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.MySQL.ApplyDefaults()
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMySQL:
		if c.MySQL.Host == "" || c.MySQL.DBName == "" {
			return fmt.Errorf("mysql store requires mysql.host and mysql.dbname")
		}
	case StoreMemory, StoreSequenced:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}
