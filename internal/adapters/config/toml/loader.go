package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"dilemma/internal/domain"
	"dilemma/internal/ports"
)

const (
	configName     = "config"
	configType     = "toml"
	poolPathKey    = "pool.path"
	configDirName  = "dilemma"
	poolConfigFile = "pool.toml"
)

// Loader reads the pool configuration from a TOML file. The file location
// comes from config.toml's pool.path key and defaults to
// ~/.config/dilemma/pool.toml; a missing file just yields the base config.
type Loader struct {
	poolPath string
}

var _ ports.ConfigLoader = (*Loader)(nil)

func NewLoader(cfg *viper.Viper) (*Loader, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", configDirName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(configDir)
	cfg.SetDefault(poolPathKey, filepath.Join(configDir, poolConfigFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	poolPath := cfg.GetString(poolPathKey)
	if poolPath == "" {
		return nil, errors.New("pool config path is empty")
	}
	poolPath, err = filepath.Abs(poolPath)
	if err != nil {
		return nil, fmt.Errorf("resolve pool config path: %w", err)
	}

	return &Loader{poolPath: filepath.Clean(poolPath)}, nil
}

func (l *Loader) Load(ctx context.Context, base domain.PoolConfig) (domain.PoolConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.PoolConfig{}, err
	}

	data, err := os.ReadFile(l.poolPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return domain.PoolConfig{}, fmt.Errorf("read pool config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.PoolConfig{}, fmt.Errorf("decode pool config file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.PoolConfig{}, err
	}
	file.applyDefaults()

	return file.Pool.overlay(base)
}
