package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.DBDriver != "sqlite" {
		t.Fatalf("DBDriver = %q, want sqlite", c.DBDriver)
	}
	if c.SessionTTLSecs != 8*3600 {
		t.Fatalf("SessionTTLSecs = %d, want %d", c.SessionTTLSecs, 8*3600)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_HOST", "db.example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SESSION_TTL_SECONDS", "600")

	c := Load()
	if c.DBDriver != "mysql" || c.MySQLHost != "db.example" {
		t.Fatalf("env overrides not applied: %+v", c)
	}
	if c.RedisAddr != "redis:6379" || c.SessionTTLSecs != 600 {
		t.Fatalf("env overrides not applied: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	base := func() *Config {
		c := Load()
		return c
	}

	c := base()
	c.DBDriver = "postgres"
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "unsupported DB_DRIVER") {
		t.Fatalf("got %v, want unsupported driver error", err)
	}

	c = base()
	c.SQLitePath = ""
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing sqlite path")
	}

	c = base()
	c.DBDriver = "mysql"
	c.MySQLPort = "notaport"
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "MYSQL_PORT") {
		t.Fatalf("got %v, want port error", err)
	}

	c = base()
	c.SessionTTLSecs = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for non-positive TTL")
	}
}

func TestDSN(t *testing.T) {
	c := &Config{DBDriver: "sqlite", SQLitePath: "app.db"}
	if c.DSN() != "app.db" {
		t.Fatalf("sqlite DSN = %q", c.DSN())
	}

	c = &Config{
		DBDriver:  "mysql",
		MySQLHost: "db.example", MySQLPort: "3306",
		MySQLDB: "gestor_centros", MySQLUser: "gestor", MySQLPass: "secreta",
	}
	dsn := c.DSN()
	if !strings.HasPrefix(dsn, "gestor:secreta@tcp(db.example:3306)/gestor_centros?") {
		t.Fatalf("mysql DSN = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("mysql DSN missing parseTime: %q", dsn)
	}
}
