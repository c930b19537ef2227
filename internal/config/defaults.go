package config

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "mix-memory.db",
		},
		History: HistoryConfig{
			Dir: "./rekordbox_histories",
		},
		Export: ExportConfig{
			Output: "./web/track_network.json",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.History.Dir == "" {
		c.History.Dir = d.History.Dir
	}
	if c.Export.Output == "" {
		c.Export.Output = d.Export.Output
	}
}
