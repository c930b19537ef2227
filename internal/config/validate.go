package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}
	if err := c.History.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("history: %w", err))
	}
	if err := c.Export.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("export: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks DatabaseConfig for errors.
func (c *DatabaseConfig) Validate() error {
	if c.Path == "" {
		return errors.New("path must not be empty")
	}
	if !strings.HasSuffix(c.Path, ".db") {
		return fmt.Errorf("path %q must end in .db", c.Path)
	}
	return nil
}

// Validate checks HistoryConfig for errors.
func (c *HistoryConfig) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	return nil
}

// Validate checks ExportConfig for errors.
func (c *ExportConfig) Validate() error {
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if !strings.HasSuffix(c.Output, ".json") {
		return fmt.Errorf("output %q must end in .json", c.Output)
	}
	return nil
}
