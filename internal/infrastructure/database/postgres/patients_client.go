package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PatientsClient enveloppe le pool pgx de la base patients, connexion
// logique distincte de la base principale. Les corrélations entre
// patients et fiches navette se font par id côté applicatif, jamais
// par jointure SQL entre les deux bases.
type PatientsClient struct {
	pool *pgxpool.Pool
}

type PatientsDatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
}

func NewPatientsClient(config *PatientsDatabaseConfig) (*PatientsClient, error) {
	pool, err := newPool(config.Host, config.Port, config.Database,
		config.Username, config.Password, config.SSLMode, config.MaxConns)
	if err != nil {
		return nil, err
	}

	client := &PatientsClient{pool: pool}

	if err := client.Ping(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping patients database: %w", err)
	}

	return client, nil
}

func (c *PatientsClient) Ping(ctx context.Context) error {
	if c.pool == nil {
		return fmt.Errorf("patients database pool is nil")
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for ping: %w", err)
	}
	defer conn.Release()

	return conn.Ping(ctx)
}

func (c *PatientsClient) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

func (c *PatientsClient) Pool() *pgxpool.Pool {
	return c.pool
}

func (c *PatientsClient) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return c.pool.Query(ctx, sql, args...)
}

func (c *PatientsClient) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return c.pool.QueryRow(ctx, sql, args...)
}

func (c *PatientsClient) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return c.pool.Exec(ctx, sql, args...)
}
