package config

const (
	defaultInventoryFile      = "~/.local/share/alchemia/inventory.json"
	defaultMappingFile        = "~/.local/share/alchemia/mapping.json"
	defaultLogDir             = "~/.local/share/alchemia/logs"
	defaultLockFile           = "~/.local/share/alchemia/alchemia.lock"
	defaultRegistryPath       = "~/Workspace/meta-organvm/organvm-corpvs-testamentvm/registry-v2.json"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultReadTimeoutSeconds = 2
	defaultMaxScanLines       = 50
	defaultMaxScanBytes       = 256 * 1024
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceDirs:    []string{"~/Workspace"},
			InventoryFile: defaultInventoryFile,
			MappingFile:   defaultMappingFile,
			LogDir:        defaultLogDir,
			LockFile:      defaultLockFile,
		},
		Registry: Registry{
			Path: defaultRegistryPath,
		},
		Absorb: Absorb{
			Workers:            0,
			ReadTimeoutSeconds: defaultReadTimeoutSeconds,
			MaxScanLines:       defaultMaxScanLines,
			MaxScanBytes:       defaultMaxScanBytes,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
