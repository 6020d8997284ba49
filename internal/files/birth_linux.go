//go:build linux

package files

import (
	"errors"
	"io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func platformBirthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		if errors.Is(err, unix.ENOSYS) {
			return time.Time{}, ErrBirthTimeUnsupported
		}
		return time.Time{}, &fs.PathError{Op: "statx", Path: path, Err: err}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, ErrBirthTimeUnsupported
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
