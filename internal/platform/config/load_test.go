package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want \"sqlite\"", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "file:todos.local.db" {
		t.Errorf("Database.DSN = %q, want \"file:todos.local.db\"", cfg.Database.DSN)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want \"postgres\"", cfg.Database.Driver)
	}
	if cfg.Database.MaxOpenConns != 25 {
		t.Errorf("Database.MaxOpenConns = %d, want 25", cfg.Database.MaxOpenConns)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Database.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
	if cfg.Database.ConnMaxLifetime != time.Hour {
		t.Errorf("Database.ConnMaxLifetime = %v, want 1h (from base)", cfg.Database.ConnMaxLifetime)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "minimal.yaml"), "database:\n  dsn: /tmp/minimal.db\n")

	cfg, err := config.Load("minimal", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want \"sqlite\" (default)", cfg.Database.Driver)
	}
	if cfg.Database.DSN != "/tmp/minimal.db" {
		t.Errorf("Database.DSN = %q, want \"/tmp/minimal.db\"", cfg.Database.DSN)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s (default)", cfg.Server.ReadTimeout)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_MAX_OPEN_CONNS", "3")
	t.Setenv("APP_DATABASE_MAX_IDLE_CONNS", "1")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.MaxOpenConns != 3 {
		t.Errorf("Database.MaxOpenConns = %d, want 3 (env override)", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_CIRCUIT_BREAKER_MAX_FAILURES", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.CircuitBreaker.MaxFailures != 7 {
		t.Errorf("Database.CircuitBreaker.MaxFailures = %d, want 7 (env override)",
			cfg.Database.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Chdir("../../..")
	// Registers cleanup so the variable set by godotenv does not leak.
	t.Setenv("APP_DATABASE_DSN", "")
	if err := os.Unsetenv("APP_DATABASE_DSN"); err != nil {
		t.Fatalf("Unsetenv: %v", err)
	}

	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "APP_DATABASE_DSN=/tmp/from-dotenv.db\n")

	cfg, err := config.Load("local", config.WithEnvFile(envFile))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.DSN != "/tmp/from-dotenv.db" {
		t.Errorf("Database.DSN = %q, want \"/tmp/from-dotenv.db\" (from .env)", cfg.Database.DSN)
	}
}

func TestLoad_MissingEnvFileIgnored(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("local", config.WithEnvFile(filepath.Join(t.TempDir(), "absent.env")))
	if err != nil {
		t.Fatalf("Load with missing env file error: %v", err)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b", `a\b`} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_Database(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.DatabaseConfig)
	}{
		{"unknown driver", func(d *config.DatabaseConfig) { d.Driver = "mysql" }},
		{"empty dsn", func(d *config.DatabaseConfig) { d.DSN = "" }},
		{"zero open conns", func(d *config.DatabaseConfig) { d.MaxOpenConns = 0 }},
		{"idle above open", func(d *config.DatabaseConfig) { d.MaxIdleConns = d.MaxOpenConns + 1 }},
		{"unknown log level", func(d *config.DatabaseConfig) { d.LogLevel = "trace" }},
		{"breaker without failures", func(d *config.DatabaseConfig) { d.CircuitBreaker.MaxFailures = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.modify(&cfg.Database)

			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			DSN:             "todos.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			SlowThreshold:   200 * time.Millisecond,
			LogLevel:        "warn",
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}
