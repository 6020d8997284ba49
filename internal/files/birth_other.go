//go:build !linux && !darwin && !windows

package files

import "time"

func platformBirthTime(path string) (time.Time, error) {
	return unsupportedBirthTime(path)
}
