// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig keeps the
// framework-level settings (ports, TLS, logging, CORS); everything here is
// specific to the scheduler.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in the driver pool

	// Session cookie used for viewer preferences (remembered SPOC filter)
	SessionKey    string        // Secret key for signing session cookies
	SessionName   string        // Cookie name (default: mentorhub-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime

	// Admin key guarding uploads, generation and edits
	AdminKeyHash         string        // bcrypt hash of the shared admin key (blank leaves the API open)
	AdminLockoutAttempts int           // Failed attempts before an address is locked out
	AdminLockoutWindow   time.Duration // Window the failures are counted in

	// Scheduling inputs
	CatalogFile  string // Optional YAML catalog overriding dates, slots, SPOCs and topics
	ScheduleSeed int64  // Fixed random seed for generation (0 = seed from the clock)

	// Audit logging: "all", "db", "log" or "off"
	AuditRoster   string
	AuditSchedule string

	// Audit retention (0 keeps events forever)
	AuditRetention     time.Duration
	AuditPruneInterval time.Duration

	// Deadlines for long-running work
	TimeoutBatch    time.Duration // roster uploads
	TimeoutGenerate time.Duration // schedule generation
}
