package credstore

// Config provides environment-based configuration for the file-backed store.
type Config struct {
	Path string `env:"CREDSTORE_FILE" envDefault:".credstore.json"`
}

// DefaultConfig returns a Config with the default jar location.
func DefaultConfig() Config {
	return Config{Path: ".credstore.json"}
}
