package database

import (
	"context"
	"fmt"

	"medical-appointment-api/config"

	"github.com/sirupsen/logrus"
)

// Connection is the external datastore held open for the lifetime of the
// process. No route reads or writes through it.
type Connection interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Driver() string
}

// NewConnection opens the datastore selected by cfg.Driver. Opening does not
// require the server to be reachable; callers Ping to find out.
func NewConnection(ctx context.Context, cfg config.DBConfig, log *logrus.Logger) (Connection, error) {
	switch cfg.Driver {
	case config.DBDriverMongo:
		return NewMongoConnection(ctx, cfg, log)
	case config.DBDriverPostgres:
		return NewPostgresConnection(cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
