package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/ItsNotGoodName/x-howm/internal/core"
	"gopkg.in/yaml.v3"
)

// NewDriver picks a file driver from the extension of filePath.
func NewDriver(filePath string) (Driver, error) {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".yaml", ".yml":
		return NewYAML(filePath), nil
	case ".json":
		return NewJSON(filePath), nil
	case ".toml":
		return NewTOML(filePath), nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
}

// fileDriver implements the parts shared by every file driver: reading onto the
// defaults so omitted keys keep their default value, and atomic writes.
type fileDriver struct {
	filePath string
	decode   func(r io.Reader, cfg *Config) error
	encode   func(w io.Writer, cfg Config) error
}

func (f fileDriver) Exists() (bool, error) {
	return core.FileExists(f.filePath)
}

func (f fileDriver) Read() (Config, error) {
	file, err := os.Open(f.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}
	defer file.Close()

	cfg := Default()
	if err := f.decode(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", f.filePath, err)
	}
	return cfg, nil
}

func (f fileDriver) Write(cfg Config) error {
	filePathTmp := f.filePath + ".tmp"
	file, err := os.OpenFile(filePathTmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if err := f.encode(file, cfg); err != nil {
		return errors.Join(err, file.Close(), os.Remove(filePathTmp))
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(filePathTmp, f.filePath)
}

func NewYAML(filePath string) Driver {
	return fileDriver{
		filePath: filePath,
		decode: func(r io.Reader, cfg *Config) error {
			err := yaml.NewDecoder(r).Decode(cfg)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		},
		encode: func(w io.Writer, cfg Config) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func NewJSON(filePath string) Driver {
	return fileDriver{
		filePath: filePath,
		decode: func(r io.Reader, cfg *Config) error {
			return json.NewDecoder(r).Decode(cfg)
		},
		encode: func(w io.Writer, cfg Config) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

func NewTOML(filePath string) Driver {
	return fileDriver{
		filePath: filePath,
		decode: func(r io.Reader, cfg *Config) error {
			_, err := toml.NewDecoder(r).Decode(cfg)
			return err
		},
		encode: func(w io.Writer, cfg Config) error {
			return toml.NewEncoder(w).Encode(cfg)
		},
	}
}

// Memory is a Driver that keeps the config in memory.
type Memory struct {
	mu  sync.RWMutex
	cfg *Config
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Exists() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg != nil, nil
}

func (m *Memory) Read() (Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cfg == nil {
		return Default(), nil
	}
	return *m.cfg, nil
}

func (m *Memory) Write(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = &cfg
	return nil
}
