package config

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	History  HistoryConfig  `toml:"history"`
	Export   ExportConfig   `toml:"export"`
}

// DatabaseConfig holds SQLite store settings.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// HistoryConfig holds Rekordbox history ingestion settings.
type HistoryConfig struct {
	Dir string `toml:"dir"`
}

// ExportConfig holds visualization export settings.
type ExportConfig struct {
	Output string `toml:"output"`
}
