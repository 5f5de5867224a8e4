//go:build windows

package filelock

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/windows"
)

// pollInterval is how long to wait before asking again for a held lock.
const pollInterval = 2 * time.Millisecond

// lockedRange covers the first byte of the file; every writer locks the same byte.
func lockedRange(f *os.File, exclusive bool) error {
	var flags uint32 = windows.LOCKFILE_FAIL_IMMEDIATELY
	if exclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, 1, 0, new(windows.Overlapped))
}

// lockFile polls instead of blocking in LockFileEx so the OS thread stays
// available to the Go scheduler.
func lockFile(f *os.File) error {
	for {
		err := lockedRange(f, true)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, windows.ERROR_LOCK_VIOLATION):
			time.Sleep(pollInterval)
		default:
			return fmt.Errorf("locking %s: %w", f.Name(), err)
		}
	}
}

func unlockFile(f *os.File) error {
	if err := windows.UnlockFileEx(windows.Handle(f.Fd()), 0, 1, 0, new(windows.Overlapped)); err != nil {
		return fmt.Errorf("unlocking %s: %w", f.Name(), err)
	}
	return nil
}
