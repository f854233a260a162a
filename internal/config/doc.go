// Package config manages application configuration for the Quiver API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: API bearer token settings
//   - LinkCheckConfig: background link checker settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	SERVER_ENV          - development | production | test
//	DB_HOST / DB_PORT   - SurrealDB endpoint
//	DB_NAMESPACE        - Database namespace (default: quiver)
//	DB_DATABASE         - Database name (default: main)
//	API_TOKEN_HASH      - bcrypt hash of the API bearer token
//	LINKCHECK_ENABLED   - enable the background link checker
//	LINKCHECK_INTERVAL  - full-sweep interval (default: 6h)
//
// Sensible defaults are provided for development; production requires an
// API token hash.
package config
