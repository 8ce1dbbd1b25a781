package config

import "github.com/google/uuid"

type Driver interface {
	Exists() (bool, error)
	Write(config Config) error
	Read() (Config, error)
}

// NewStore returns a store backed by driver, writing the default config
// first when none exists yet.
func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(Default()); err != nil {
			return Store{}, err
		}
	}

	return Store{
		driver: driver,
	}, nil
}

type Store struct {
	driver Driver
}

func (p Store) GetConfig() (Config, error) {
	return p.driver.Read()
}

func (p Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := p.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return p.driver.Write(cfg)
}

// Normalize gives every rule a stable ID. The file is only rewritten when an
// ID was missing.
func Normalize(store Store) error {
	cfg, err := store.GetConfig()
	if err != nil {
		return err
	}
	if !missingIDs(cfg) {
		return nil
	}

	return store.UpdateConfig(func(cfg Config) (Config, error) {
		for i := range cfg.Rules {
			if cfg.Rules[i].ID == "" {
				cfg.Rules[i].ID = uuid.NewString()
			}
		}
		return cfg, nil
	})
}

func missingIDs(cfg Config) bool {
	for _, r := range cfg.Rules {
		if r.ID == "" {
			return true
		}
	}
	return false
}
