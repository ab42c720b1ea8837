// Package config defines the application's configuration structures and
// loads them from environment variables and optional config files using
// viper, validating the result before it reaches the rest of the system.
package config
