// Package config loads env-tagged configuration structs from the process
// environment, with optional dotenv file support for local development.
//
//	cfg, err := config.Load[backend.Config](".env")
package config
