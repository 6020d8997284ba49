package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Manager tracks the directory being browsed and enumerates its entries
type Manager struct {
	fs         afero.Fs
	dir        string
	showHidden bool
}

// NewManager creates a manager rooted at dir
func NewManager(fsys afero.Fs, dir string) *Manager {
	return &Manager{fs: fsys, dir: filepath.Clean(dir)}
}

// Snapshot returns a copy that can list the current directory while m keeps moving
func (m *Manager) Snapshot() *Manager {
	c := *m
	return &c
}

// Fs returns the filesystem the manager reads from
func (m *Manager) Fs() afero.Fs {
	return m.fs
}

// Dir returns the current directory
func (m *Manager) Dir() string {
	return m.dir
}

// ShowHidden reports whether dot entries are listed
func (m *Manager) ShowHidden() bool {
	return m.showHidden
}

// SetShowHidden toggles listing of dot entries
func (m *Manager) SetShowHidden(show bool) {
	m.showHidden = show
}

// List returns the entry names of the current directory, directories first
func (m *Manager) List() ([]string, error) {
	infos, err := afero.ReadDir(m.fs, m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", m.dir, err)
	}

	entries := make([]os.FileInfo, 0, len(infos))
	for _, info := range infos {
		if !m.showHidden && strings.HasPrefix(info.Name(), ".") {
			continue
		}
		entries = append(entries, info)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	names := make([]string, len(entries))
	for i, info := range entries {
		names[i] = info.Name()
	}
	logrus.Debugf("Manager: listed %d entries in %s", len(names), m.dir)
	return names, nil
}

// Chdir moves to path, which must be an existing directory
func (m *Manager) Chdir(path string) error {
	path = filepath.Clean(path)
	info, err := m.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot open %s: not a directory", path)
	}
	m.dir = path
	return nil
}

// Enter moves into the named child directory
func (m *Manager) Enter(name string) error {
	return m.Chdir(filepath.Join(m.dir, name))
}

// Parent moves one level up; it returns false when already at the root
func (m *Manager) Parent() bool {
	parent := filepath.Dir(m.dir)
	if parent == m.dir {
		return false
	}
	m.dir = parent
	return true
}

// Rename renames an entry of the current directory
func (m *Manager) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("new name cannot be empty")
	}
	if strings.ContainsRune(newName, filepath.Separator) || strings.ContainsRune(newName, '/') {
		return fmt.Errorf("new name %q must not contain a path separator", newName)
	}
	if newName == oldName {
		return nil
	}

	target := filepath.Join(m.dir, newName)
	if _, err := m.fs.Stat(target); err == nil {
		return fmt.Errorf("%s already exists", newName)
	}
	if err := m.fs.Rename(filepath.Join(m.dir, oldName), target); err != nil {
		return fmt.Errorf("failed to rename %s: %w", oldName, err)
	}
	logrus.Infof("Manager: renamed %s to %s in %s", oldName, newName, m.dir)
	return nil
}

// StartDir picks the initial directory: the configured one, else the user home, else "."
func StartDir(configured string) string {
	if configured != "" {
		if strings.HasPrefix(configured, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				configured = filepath.Join(home, strings.TrimPrefix(configured, "~"))
			}
		}
		if abs, err := filepath.Abs(configured); err == nil {
			return abs
		}
		return configured
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logrus.Warnf("Failed to resolve home directory: %v", err)
		return "."
	}
	return home
}
