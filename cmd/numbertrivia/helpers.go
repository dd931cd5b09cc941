package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/ddanielcruz/numbertrivia/internal/config"
	"github.com/ddanielcruz/numbertrivia/internal/database"
	"github.com/ddanielcruz/numbertrivia/internal/trivia"
	"github.com/ddanielcruz/numbertrivia/internal/trivia/cache"
	"github.com/ddanielcruz/numbertrivia/internal/trivia/numbersapi"
	"github.com/ddanielcruz/numbertrivia/internal/trivia/probe"
)

type CacheBackend string

func (b *CacheBackend) Set(val string) error {
	for _, backend := range allCacheBackends {
		if val == string(backend) {
			*b = backend
			return nil
		}
	}
	return fmt.Errorf("invalid cache backend: %s", val)
}

func (b CacheBackend) String() string {
	return string(b)
}

func (b *CacheBackend) Type() string {
	return "CacheBackend"
}

const (
	CacheBackendFile CacheBackend = "file"
	CacheBackendDB   CacheBackend = "db"
)

var (
	_                pflag.Value = (*CacheBackend)(nil)
	allCacheBackends             = []CacheBackend{CacheBackendFile, CacheBackendDB}
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newRepository wires the probe, remote source and cache store selected by
// the config. The returned closer releases the cache backend.
func newRepository(cfg *config.Config) (trivia.Repository, func() error, error) {
	netProbe := probe.New(cfg.Probe.Address, time.Duration(cfg.Probe.TimeoutSeconds)*time.Second)
	remote := numbersapi.NewClient(numbersapi.Config{
		Host:          cfg.NumbersAPI.Host,
		Timeout:       time.Duration(cfg.NumbersAPI.TimeoutSeconds) * time.Second,
		RetryAttempts: uint(cfg.NumbersAPI.RetryAttempts),
	})

	backend := cfg.Cache.Backend
	if cacheBackend != "" {
		backend = string(cacheBackend)
	}

	var store trivia.CacheStore
	closer := func() error { return nil }
	switch backend {
	case "db":
		db, err := database.Open(cfg.Cache.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open > %w", err)
		}
		store = cache.NewDBStore(db)
		closer = db.Close
	default:
		store = cache.NewFileStore(cfg.Cache.FilePath)
	}

	return trivia.NewTriviaRepository(netProbe, remote, store), closer, nil
}
