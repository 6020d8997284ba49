//go:build darwin

package files

import (
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func platformBirthTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Birthtimespec.Unix()), nil
}
