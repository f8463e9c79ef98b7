// Package gormstore is the relational storage adapter for todos. It owns the
// gorm connection pool and hands out per-request sessions that implement the
// data access port.
//
// Construction and shutdown:
//
//	client, err := gormstore.Open(&cfg.Database, metrics, logger)
//	defer client.Close()
//
// Per-request use:
//
//	sess, err := client.Session(ctx)
//	defer sess.Close()
//	t, err := sess.Get(ctx, 42)
//
// Every data access call runs through a circuit breaker, an OpenTelemetry
// client span and the db.client.operation.* metrics.
package gormstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Supported values of config.DatabaseConfig.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	healthCheckName = "database"
	tableName       = "todos"

	// sqliteBusyTimeout makes concurrent sessions wait for the write lock
	// instead of failing with SQLITE_BUSY.
	sqliteBusyTimeout = "_pragma=busy_timeout(5000)"
)

// sqliteCreateTodos is the sqlite DDL for the todos table. AUTOINCREMENT stops
// sqlite from handing out the id of the most recently deleted row again.
const sqliteCreateTodos = `CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title VARCHAR(255) NOT NULL,
	description VARCHAR(255),
	done BOOLEAN NOT NULL DEFAULT 0
)`

// Compile-time interface checks.
var (
	_ ports.SessionProvider = (*Client)(nil)
	_ ports.HealthChecker   = (*Client)(nil)
)

// Client owns the database connection pool for the todos table. It is built
// once at startup, shared by all requests, and closed at shutdown.
type Client struct {
	db      *gorm.DB
	sqlDB   *sql.DB
	driver  string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Open connects to the configured database and sizes the pool. It does not
// create the todos table; call Migrate for that. If metrics is nil, metric
// recording is skipped.
func Open(cfg *config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dialector, err := newDialector(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(logger, cfg.LogLevel, cfg.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing %s connection pool: %w", cfg.Driver, err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Client{
		db:      db,
		sqlDB:   sqlDB,
		driver:  cfg.Driver,
		breaker: newBreaker(cfg.CircuitBreaker, logger),
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Migrate creates the todos table if it does not exist. It is idempotent.
func (c *Client) Migrate(ctx context.Context) error {
	db := c.db.WithContext(ctx)

	var err error
	if c.driver == DriverSQLite {
		err = db.Exec(sqliteCreateTodos).Error
	} else {
		err = db.AutoMigrate(&todoRecord{})
	}
	if err != nil {
		return fmt.Errorf("creating %s table: %w", tableName, err)
	}
	return nil
}

// Session checks out a dedicated connection from the pool and binds a gorm
// session to it. The returned session must be closed to give the connection
// back.
func (c *Client) Session(ctx context.Context) (ports.TodoSession, error) {
	conn, err := c.sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring database connection: %w", err)
	}

	db := c.db.Session(&gorm.Session{Context: ctx, NewDB: true})
	db.Statement.ConnPool = conn

	return &Session{client: c, db: db, conn: conn}, nil
}

// Close closes the connection pool. Sessions still open fail afterwards.
func (c *Client) Close() error {
	return c.sqlDB.Close()
}

// Name returns the identifier used with the health registry.
func (c *Client) Name() string {
	return healthCheckName
}

// HealthCheck reports an open or half-open circuit breaker without touching
// the database, otherwise pings it.
func (c *Client) HealthCheck(ctx context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", healthCheckName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", healthCheckName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", healthCheckName, state)
	}

	if err := c.sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping: %w", healthCheckName, err)
	}
	return nil
}

func newDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(dsn)), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// sqliteDSN adds a busy timeout unless the DSN already sets pragmas.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqliteBusyTimeout
}

func newBreaker(cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        healthCheckName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		// A missing row is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, gorm.ErrRecordNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// startSpan opens a client span named after the operation, e.g.
// "DB update todos".
func (c *Client) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("gormstore")

	return tracer.Start(ctx, fmt.Sprintf("DB %s %s", op, tableName),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrDBSystem.String(c.driver),
			telemetry.AttrDBOperation.String(op),
			attribute.String("db.collection.name", tableName),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records operation duration and count. Safe to call with nil
// metrics.
func (c *Client) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(c.driver),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(resultOf(err)),
	)

	c.metrics.DBOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "error"
	}
}

// logFailure writes the diagnostic record for a failed operation. The cause
// stays in the log; callers only ever see the client-safe detail.
func (c *Client) logFailure(ctx context.Context, op string, id int64, err error) {
	attrs := logging.OperationAttrs(op, id, slog.String("db.system", c.driver))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs = append(attrs,
			slog.String("sqlstate", pgErr.Code),
			slog.String("pg_severity", pgErr.Severity),
		)
		if pgErr.ConstraintName != "" {
			attrs = append(attrs, slog.String("constraint", pgErr.ConstraintName))
		}
	}
	attrs = append(attrs, slog.Any("error", err))

	logging.FromContextOr(ctx, c.logger).LogAttrs(ctx, slog.LevelError, "storage operation failed", attrs...)
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
