//go:build !windows

package config

import (
	"fmt"
	"syscall"
)

func (l *FileLock) acquire(exclusive bool) error {
	f, err := l.open()
	if err != nil {
		return err
	}

	how := syscall.LOCK_SH
	if exclusive {
		how = syscall.LOCK_EX
	}
	if err := syscall.Flock(int(f.Fd()), how); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}

	l.file = f
	return nil
}

func (l *FileLock) release() error {
	return syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
}
