// Package main implements folioctl, the FolioBoard server and administration
// CLI.
//
// FolioBoard is a portfolio and job board service: designers publish
// projects, employers post jobs under verified companies, and admins author
// the blog.
//
// # Quick Start
//
//	# Point at a database file
//	export FOLIOBOARD_DB=/var/lib/folioboard/folioboard.db
//
//	# Set the session signing key
//	export FOLIOBOARD_SESSION_KEY=$(head -c 32 /dev/urandom | base64)
//
//	# Run database migrations
//	folioctl db migrate
//
//	# Start the server
//	folioctl server
//
//	# Grant the first admin
//	folioctl user promote alice@example.com
//
// # Environment Variables
//
//   - FOLIOBOARD_DB: SQLite database file path
//   - FOLIOBOARD_SESSION_KEY: HMAC key for session tokens (32+ bytes)
//   - FOLIOBOARD_AUDIT_DB: optional SQLite file for persisted audit events
//   - FOLIOBOARD_CONFIG_PATH: directory holding folioboard.yml
//   - FOLIOBOARD_LOG_LEVEL: set to debug for SQL logging
//   - PORT: server port (default: 8000)
package main
