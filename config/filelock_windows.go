//go:build windows

package config

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func (l *FileLock) acquire(exclusive bool) error {
	f, err := l.open()
	if err != nil {
		return err
	}

	// No flags means a shared lock. The first byte stands for the whole file.
	var flags uint32
	if exclusive {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	if err := windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, 1, 0, new(windows.Overlapped)); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	l.file = f
	return nil
}

func (l *FileLock) release() error {
	return windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, new(windows.Overlapped))
}
