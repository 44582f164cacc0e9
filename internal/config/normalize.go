package config

import "strings"

// normalize expands and absolutizes every path field so the rest of the
// pipeline never sees "~" or relative paths.
func (c *Config) normalize() error {
	expanded := make([]string, 0, len(c.Paths.SourceDirs))
	for _, dir := range c.Paths.SourceDirs {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			continue
		}
		abs, err := expandPath(dir)
		if err != nil {
			return err
		}
		expanded = append(expanded, abs)
	}
	c.Paths.SourceDirs = expanded

	fields := []*string{
		&c.Paths.InventoryFile,
		&c.Paths.MappingFile,
		&c.Paths.LogDir,
		&c.Paths.LockFile,
		&c.Registry.Path,
		&c.Manifest.CSVPath,
	}
	for _, field := range fields {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		abs, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = abs
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
