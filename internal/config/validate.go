package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRegistry(); err != nil {
		return err
	}
	if err := c.validateAbsorb(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if len(c.Paths.SourceDirs) == 0 {
		return errors.New("paths.source_dirs must list at least one directory")
	}
	if strings.TrimSpace(c.Paths.InventoryFile) == "" {
		return errors.New("paths.inventory_file must be set")
	}
	if strings.TrimSpace(c.Paths.MappingFile) == "" {
		return errors.New("paths.mapping_file must be set")
	}
	if strings.TrimSpace(c.Paths.LockFile) == "" {
		return errors.New("paths.lock_file must be set")
	}
	return nil
}

func (c *Config) validateRegistry() error {
	if strings.TrimSpace(c.Registry.Path) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/alchemia/config.toml"
		}
		return fmt.Errorf("registry.path is required; edit %s (create with 'alchemia config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateAbsorb() error {
	if c.Absorb.Workers < 0 {
		return errors.New("absorb.workers must not be negative")
	}
	if c.Absorb.ReadTimeoutSeconds <= 0 {
		return errors.New("absorb.read_timeout_seconds must be positive")
	}
	if c.Absorb.MaxScanLines <= 0 {
		return errors.New("absorb.max_scan_lines must be positive")
	}
	if c.Absorb.MaxScanBytes <= 0 {
		return errors.New("absorb.max_scan_bytes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
