// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/system/catalog"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// appConfigKeys defines the configuration keys for mentorhub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: MENTORHUB_MONGO_URI, MENTORHUB_ADMIN_KEY_HASH, etc.
//   - Command-line flags: --mongo_uri, --catalog_file, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "mentorhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 50, Desc: "MongoDB max connection pool size (default: 50)"},

	{Name: "session_key", Default: "", Desc: "Session signing key (blank generates a throwaway key outside prod)"},
	{Name: "session_name", Default: "mentorhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "720h", Desc: "Session cookie lifetime (e.g., 24h, 720h)"},

	// Admin key
	{Name: "admin_key_hash", Default: "", Desc: "bcrypt hash of the admin key sent in X-Admin-Key"},
	{Name: "admin_lockout_attempts", Default: 5, Desc: "Failed admin key attempts before lockout"},
	{Name: "admin_lockout_window", Default: "15m", Desc: "Window for counting failed admin key attempts"},

	// Scheduling
	{Name: "catalog_file", Default: "", Desc: "YAML file overriding the dates, slots, SPOCs and GD topics"},
	{Name: "schedule_seed", Default: 0, Desc: "Fixed random seed for generation (0 seeds from the clock)"},

	// Audit logging settings
	{Name: "audit_roster", Default: "all", Desc: "Roster event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_schedule", Default: "all", Desc: "Schedule event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_retention", Default: "2160h", Desc: "How long audit events are kept (0 keeps them forever)"},
	{Name: "audit_prune_interval", Default: "1h", Desc: "How often expired audit events are deleted"},

	// Timeouts
	{Name: "timeout_batch", Default: "60s", Desc: "Deadline for a roster upload"},
	{Name: "timeout_generate", Default: "90s", Desc: "Deadline for generating and storing a schedule"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, MENTORHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MENTORHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 720*time.Hour),

		AdminKeyHash:         appValues.String("admin_key_hash"),
		AdminLockoutAttempts: appValues.Int("admin_lockout_attempts"),
		AdminLockoutWindow:   appValues.Duration("admin_lockout_window", 15*time.Minute),

		CatalogFile:  appValues.String("catalog_file"),
		ScheduleSeed: int64(appValues.Int("schedule_seed")),

		AuditRoster:   appValues.String("audit_roster"),
		AuditSchedule: appValues.String("audit_schedule"),

		AuditRetention:     appValues.Duration("audit_retention", 2160*time.Hour),
		AuditPruneInterval: appValues.Duration("audit_prune_interval", time.Hour),

		TimeoutBatch:    appValues.Duration("timeout_batch", 60*time.Second),
		TimeoutGenerate: appValues.Duration("timeout_generate", 90*time.Second),
	}

	return coreCfg, appCfg, nil
}

var auditSettings = map[string]bool{"": true, "all": true, "db": true, "log": true, "off": true}

// ValidateConfig performs app-specific config validation.
//
// mentorhub checks the MongoDB URI, the admin key hash, the audit
// settings and the catalog file so a bad deployment fails before it
// connects to anything.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return errors.New("mongo_database must be set")
	}

	if appCfg.AdminKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(appCfg.AdminKeyHash)); err != nil {
			return fmt.Errorf("admin_key_hash is not a bcrypt hash: %w", err)
		}
	}
	if appCfg.AdminLockoutAttempts < 1 {
		return errors.New("admin_lockout_attempts must be at least 1")
	}

	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.SessionKey == "" {
			return errors.New("session_key must be set in prod")
		}
		if appCfg.AdminKeyHash == "" {
			return errors.New("admin_key_hash must be set in prod")
		}
	}

	if !auditSettings[appCfg.AuditRoster] {
		return fmt.Errorf("audit_roster: unknown setting %q", appCfg.AuditRoster)
	}
	if !auditSettings[appCfg.AuditSchedule] {
		return fmt.Errorf("audit_schedule: unknown setting %q", appCfg.AuditSchedule)
	}

	if appCfg.AuditRetention < 0 {
		return errors.New("audit_retention must not be negative")
	}
	if appCfg.AuditRetention > 0 && appCfg.AuditPruneInterval <= 0 {
		return errors.New("audit_prune_interval must be positive when audit_retention is set")
	}

	if _, err := catalog.Load(appCfg.CatalogFile); err != nil {
		logger.Error("invalid catalog file", zap.String("path", appCfg.CatalogFile), zap.Error(err))
		return fmt.Errorf("catalog_file: %w", err)
	}

	return nil
}
