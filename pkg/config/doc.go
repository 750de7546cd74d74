// Package config loads FolioBoard server configuration.
//
// Configuration comes from three layers, in increasing precedence:
// built-in defaults, a YAML config file (folioboard.yml), and environment
// variables prefixed FOLIOBOARD_. The loaded config is a process-wide
// singleton; Watch can reload it when the file changes.
package config
