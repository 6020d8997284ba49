package window

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultGeometryFile is where the window position and size are kept
const DefaultGeometryFile = "properties/sizePosition.txt"

// Geometry is the window position and size
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// DefaultGeometry is used when no geometry file can be read
func DefaultGeometry() Geometry {
	return Geometry{X: 100, Y: 100, Width: 640, Height: 480}
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// GeometryStore reads and writes the geometry file.
// The file holds X, Y, Height and Width, one integer per line, in that order.
type GeometryStore struct {
	fs   afero.Fs
	path string
}

// NewGeometryStore creates a store for the file at path
func NewGeometryStore(fsys afero.Fs, path string) *GeometryStore {
	if path == "" {
		path = DefaultGeometryFile
	}
	return &GeometryStore{fs: fsys, path: path}
}

// Path returns the geometry file path
func (s *GeometryStore) Path() string {
	return s.path
}

// Load reads the stored geometry. An unreadable file yields DefaultGeometry.
// Parsing stops at the first token that is not an integer; fields not reached stay zero.
func (s *GeometryStore) Load() Geometry {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		logrus.Infof("Geometry file %s not readable, using defaults: %v", s.path, err)
		return DefaultGeometry()
	}

	var g Geometry
	fields := []*int{&g.X, &g.Y, &g.Height, &g.Width}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Split(bufio.ScanWords)
	for i := 0; i < len(fields) && scanner.Scan(); i++ {
		n, err := strconv.Atoi(scanner.Text())
		if err != nil {
			logrus.Warnf("Geometry file %s: stopped at %q: %v", s.path, scanner.Text(), err)
			break
		}
		*fields[i] = n
	}

	logrus.Debugf("Loaded window geometry %s from %s", g, s.path)
	return g
}

// Save overwrites the geometry file, creating it and its directory when absent
func (s *GeometryStore) Save(g Geometry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	content := fmt.Sprintf("%d\n%d\n%d\n%d\n", g.X, g.Y, g.Height, g.Width)
	if err := afero.WriteFile(s.fs, s.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	if abs, err := filepath.Abs(s.path); err == nil {
		logrus.Infof("Saved window geometry %s to %s", g, abs)
	}
	return nil
}

// Remove deletes the geometry file so the next start uses defaults
func (s *GeometryStore) Remove() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", s.path, err)
	}
	return nil
}
