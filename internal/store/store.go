package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
	"navrail-cli/internal/sidebar"
)

const (
	configFileName = "sidebar.json"
	dirName        = ".navrail"
)

// Store is a workspace-scoped sidebar configuration on disk.
type Store struct {
	Dir string
}

// DiscoverDir walks upward from start looking for a .navrail directory.
func DiscoverDir(start string) (string, bool) {
	dir := start
	for {
		candidate := filepath.Join(dir, dirName)
		if st, err := os.Stat(candidate); err == nil && st.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// DefaultDir resolves the store directory: NAVRAIL_CONFIG_DIR override first,
// then the nearest .navrail above the working directory, then ~/.navrail.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("NAVRAIL_CONFIG_DIR")); v != "" {
		return v, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if found, ok := DiscoverDir(cwd); ok {
		return found, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) configPath() string {
	return filepath.Join(s.Dir, configFileName)
}

// Exists reports whether a configuration file is present.
func (s Store) Exists() bool {
	_, err := os.Stat(s.configPath())
	return err == nil
}

// LoadRaw reads the configuration exactly as stored, without catalog
// reconciliation. A missing file yields the catalog default.
func (s Store) LoadRaw() (*model.ModuleConfig, error) {
	b, err := os.ReadFile(s.configPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return catalog.DefaultConfig(), nil
		}
		return nil, err
	}
	var c model.ModuleConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the configuration, reconciling it against the current catalog
// (missing modules appended, unknown modules dropped). reconciled=true means
// the on-disk blob was stale; the repaired config has not been written back
// (callers decide when to Save).
func (s Store) Load() (cfg *model.ModuleConfig, reconciled bool, err error) {
	c, err := s.LoadRaw()
	if err != nil {
		return nil, false, err
	}
	out, changed := sidebar.Reconcile(c)
	return out, changed, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes the configuration atomically, keeping a .bak copy of the
// previous contents as a best-effort safety net.
func (s Store) Save(cfg *model.ModuleConfig) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	if cfg.Version == 0 {
		cfg.Version = model.SchemaVersion
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path := s.configPath()
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(s.Dir, configFileName+".bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(s.Dir, configFileName+".*.tmp", path, b, 0o644)
}
