package files

import (
	"errors"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FailureKind tells why a metadata field could not be read
type FailureKind int

// Failure kinds, KindNone means the field holds a real value
const (
	KindNone FailureKind = iota
	KindPermission
	KindNotFound
	KindIO
	KindUnsupported
)

func (k FailureKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "io"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ErrBirthTimeUnsupported is returned when the filesystem does not record creation times
var ErrBirthTimeUnsupported = errors.New("creation time not available")

// Attr is a metadata field that may have failed independently of the others
type Attr[T any] struct {
	Value T
	Kind  FailureKind
	Err   error
}

// Ok reports whether Value is meaningful
func (a Attr[T]) Ok() bool {
	return a.Kind == KindNone
}

func okAttr[T any](v T) Attr[T] {
	return Attr[T]{Value: v}
}

func failedAttr[T any](err error) Attr[T] {
	return Attr[T]{Kind: kindOf(err), Err: err}
}

func kindOf(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrBirthTimeUnsupported):
		return KindUnsupported
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	default:
		return KindIO
	}
}

// BirthTimeFunc returns the creation time of path
type BirthTimeFunc func(path string) (time.Time, error)

// Metadata is everything a row shows about one entry
type Metadata struct {
	Path     string
	IsDir    bool
	Size     Attr[uint64]
	Modified Attr[time.Time]
	Created  Attr[time.Time]
}

// Inspector reads entry metadata, degrading each field on its own when a lookup fails
type Inspector struct {
	fs        afero.Fs
	birthTime BirthTimeFunc
}

// NewInspector creates an inspector over fsys. Creation times are only read from the
// OS filesystem; other filesystems report them as unsupported.
func NewInspector(fsys afero.Fs) *Inspector {
	birth := unsupportedBirthTime
	if _, ok := fsys.(*afero.OsFs); ok {
		birth = platformBirthTime
	}
	return &Inspector{fs: fsys, birthTime: birth}
}

// WithBirthTime replaces the creation time source
func (i *Inspector) WithBirthTime(fn BirthTimeFunc) *Inspector {
	i.birthTime = fn
	return i
}

// Fs returns the underlying filesystem
func (i *Inspector) Fs() afero.Fs {
	return i.fs
}

// IsDir reports whether path is a directory; lookup errors count as "not a directory"
func (i *Inspector) IsDir(path string) bool {
	info, err := i.fs.Stat(path)
	if err != nil {
		logFailure(path, "type", err)
		return false
	}
	return info.IsDir()
}

// Size returns the byte length of path. Directories report zero.
func (i *Inspector) Size(path string) Attr[uint64] {
	info, err := i.fs.Stat(path)
	if err != nil {
		logFailure(path, "size", err)
		return failedAttr[uint64](err)
	}
	if info.IsDir() || info.Size() < 0 {
		return okAttr[uint64](0)
	}
	return okAttr(uint64(info.Size()))
}

// Modified returns the last modification time of path
func (i *Inspector) Modified(path string) Attr[time.Time] {
	info, err := i.fs.Stat(path)
	if err != nil {
		logFailure(path, "modified", err)
		return failedAttr[time.Time](err)
	}
	return okAttr(info.ModTime())
}

// Created returns the creation time of path
func (i *Inspector) Created(path string) Attr[time.Time] {
	if _, err := i.fs.Stat(path); err != nil {
		logFailure(path, "created", err)
		return failedAttr[time.Time](err)
	}
	created, err := i.birthTime(path)
	if err != nil {
		logFailure(path, "created", err)
		return failedAttr[time.Time](err)
	}
	return okAttr(created)
}

// Inspect reads all fields of path
func (i *Inspector) Inspect(path string) Metadata {
	meta := Metadata{
		Path:     path,
		IsDir:    i.IsDir(path),
		Modified: i.Modified(path),
		Created:  i.Created(path),
	}
	if !meta.IsDir {
		meta.Size = i.Size(path)
	}
	return meta
}

func logFailure(path, field string, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"path":  path,
		"field": field,
		"kind":  kindOf(err).String(),
	})
	if kindOf(err) == KindUnsupported {
		entry.Debugf("metadata lookup skipped: %v", err)
		return
	}
	entry.Warnf("metadata lookup failed: %v", err)
}

func unsupportedBirthTime(string) (time.Time, error) {
	return time.Time{}, ErrBirthTimeUnsupported
}
