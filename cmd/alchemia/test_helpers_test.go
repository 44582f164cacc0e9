package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir       string
	workspaceDir  string
	configPath    string
	registryPath  string
	inventoryFile string
	mappingFile   string
}

const testRegistryJSON = `{
  "organs": {
    "ORGAN-I": {
      "repositories": [
        {"name": "life", "org": "organvm-i-theoria", "status": "ACTIVE"}
      ]
    },
    "ORGAN-II": {
      "repositories": [
        {"name": "showcase-portfolio", "org": "organvm-ii-poiesis", "status": "ACTIVE"},
        {"name": "old-portfolio", "org": "organvm-ii-poiesis", "status": "ARCHIVED"}
      ]
    }
  }
}`

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	workspace := filepath.Join(base, "Workspace")
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		t.Fatalf("mkdir workspace: %v", err)
	}

	registryPath := filepath.Join(base, "registry-v2.json")
	if err := os.WriteFile(registryPath, []byte(testRegistryJSON), 0o644); err != nil {
		t.Fatalf("write registry: %v", err)
	}

	env := &cliTestEnv{
		baseDir:       base,
		workspaceDir:  workspace,
		configPath:    filepath.Join(base, "config.toml"),
		registryPath:  registryPath,
		inventoryFile: filepath.Join(base, "state", "inventory.json"),
		mappingFile:   filepath.Join(base, "state", "mapping.json"),
	}
	writeTestConfig(t, env)
	return env
}

func writeTestConfig(t *testing.T, env *cliTestEnv) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
source_dirs = [%q]
inventory_file = %q
mapping_file = %q
log_dir = %q
lock_file = %q

[registry]
path = %q

[logging]
format = "json"
level = "error"
`,
		env.workspaceDir,
		env.inventoryFile,
		env.mappingFile,
		filepath.Join(env.baseDir, "logs"),
		filepath.Join(env.baseDir, "alchemia.lock"),
		env.registryPath,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func writeWorkspaceFile(t *testing.T, env *cliTestEnv, rel, content string) string {
	t.Helper()
	path := filepath.Join(env.workspaceDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
