package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/tracker-go/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgres returns a migrated database. TEST_DB_DSN points at an
// existing server; otherwise a throwaway postgres container is started.
func SetupPostgres(ctx context.Context) (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gdb, err := openMigrated(dsn)
		if err != nil {
			return nil, nil, err
		}
		return gdb, func() { closeGorm(gdb) }, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "tracker",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres: %w", err)
	}
	terminate := func() { _ = pg.Terminate(context.Background()) }

	host, err := pg.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, nil, err
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/tracker?sslmode=disable", host, port.Port())
	if err := waitReady(dsn, 10); err != nil {
		terminate()
		return nil, nil, err
	}

	gdb, err := openMigrated(dsn)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	return gdb, func() {
		closeGorm(gdb)
		terminate()
	}, nil
}

// waitReady pings over database/sql until the server accepts connections.
func waitReady(dsn string, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", dsn)
		if err == nil {
			err = sqlDB.Ping()
			_ = sqlDB.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("postgres not ready: %w", err)
}

func openMigrated(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := gdb.Migrator().DropTable(reversed(db.Models())...); err != nil {
		return nil, fmt.Errorf("reset schema: %w", err)
	}
	if err := db.Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func reversed(models []any) []any {
	out := make([]any, len(models))
	for i, m := range models {
		out[len(models)-1-i] = m
	}
	return out
}

func closeGorm(gdb *gorm.DB) {
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
