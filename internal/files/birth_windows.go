//go:build windows

package files

import (
	"os"
	"syscall"
	"time"
)

func platformBirthTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, ErrBirthTimeUnsupported
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), nil
}
