// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file through viper, may be overridden with
// TRIFASICKO_ prefixed environment variables, and are validated section by
// section before any component is built from them.
package config
