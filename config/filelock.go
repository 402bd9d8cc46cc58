package config

import (
	"fmt"
	"os"
)

// FileLock provides file-based locking for cross-process synchronization.
// It uses a separate lock file rather than locking the data file directly,
// because the data file is replaced by rename on every write.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new FileLock guarding path. The lock file lives next
// to it with a ".lock" suffix.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		path: path + ".lock",
	}
}

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	return l.acquire(true)
}

// RLock acquires a shared lock, blocking until it is available. Readers in
// several processes can hold it at once.
func (l *FileLock) RLock() error {
	return l.acquire(false)
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	if err := l.release(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	l.file = nil
	return nil
}

func (l *FileLock) open() (*os.File, error) {
	if l.file != nil {
		return nil, fmt.Errorf("lock already held")
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	return f, nil
}
