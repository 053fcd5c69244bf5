package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"amozeshgah/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

const driverName = "pgx"

// Provider hands out the shared connection pool.
type Provider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// Opener opens a *sql.DB for a driver and DSN. sql.Open satisfies it.
type Opener func(driverName, dsn string) (*sql.DB, error)

// Settings describes how to reach the database and size the pool.
type Settings struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
}

// SettingsFromConfig copies the database section of cfg. password overrides
// cfg.DBPassword when it was resolved from a secret store.
func SettingsFromConfig(cfg *config.Config, password string) Settings {
	if password == "" {
		password = cfg.DBPassword
	}
	return Settings{
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        password,
		Name:            cfg.DBName,
		SSLMode:         cfg.DBSSLMode,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdleTime: cfg.DBConnMaxIdle,
	}
}

// DSN renders the settings as a postgres URL.
func (s Settings) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, strconv.Itoa(s.Port)),
		Path:   "/" + s.Name,
	}
	q := url.Values{}
	if s.SSLMode != "" {
		q.Set("sslmode", s.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Manager lazily opens one pool per process and returns it to every caller.
// A failed attempt is not remembered; the next call tries again.
type Manager struct {
	settings Settings
	open     Opener
	logger   zerolog.Logger

	mu sync.Mutex
	db *sql.DB
}

type Option func(*Manager)

// WithOpener replaces sql.Open, mostly for tests.
func WithOpener(open Opener) Option {
	return func(m *Manager) {
		m.open = open
	}
}

func NewManager(settings Settings, logger zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		settings: settings,
		open:     sql.Open,
		logger:   logger.With().Str("component", "database").Logger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DB returns the shared pool, connecting on first use.
func (m *Manager) DB(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	db, err := m.open(driverName, m.settings.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open DB connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	if m.settings.MaxOpenConns > 0 {
		db.SetMaxOpenConns(m.settings.MaxOpenConns)
	}
	if m.settings.MaxIdleConns > 0 {
		db.SetMaxIdleConns(m.settings.MaxIdleConns)
	}
	if m.settings.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(m.settings.ConnMaxIdleTime)
	}

	m.logger.Info().
		Str("host", m.settings.Host).
		Int("port", m.settings.Port).
		Str("database", m.settings.Name).
		Msg("Database connection successful")

	m.db = db
	return db, nil
}

// Close releases the pool if it was opened.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
