package db

import (
	"context"
	"fmt"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultUser = "postgres"

type NewDBPoolParams struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	// MaxConns is left to the pgx default when not positive.
	MaxConns       int32
	TracingEnabled bool
}

// ConnString builds the postgres URL. Empty password and sslmode are omitted.
func (p NewDBPoolParams) ConnString() string {
	user := p.User
	if user == "" {
		user = defaultUser
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.User(user),
		Host:   p.Host + ":" + p.Port,
		Path:   "/" + p.Name,
	}
	if p.Password != "" {
		u.User = url.UserPassword(user, p.Password)
	}
	if p.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {p.SSLMode}}.Encode()
	}
	return u.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(params.ConnString())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.MaxConns > 0 {
		poolConfig.MaxConns = params.MaxConns
	}
	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool for %s/%s: %w", params.Host, params.Name, err)
	}

	return pool, nil
}
