package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/footprint-tools/argtree/internal/paths"
)

// ErrLockTimeout means another argtree process kept the rc file locked.
var ErrLockTimeout = errors.New("config: lock timeout")

// lockPolicy bounds how long WithLock waits for the rc lock.
type lockPolicy struct {
	timeout time.Duration // give up after this long
	stale   time.Duration // older lock files are left over from a crash
	poll    time.Duration
}

var defaultLockPolicy = lockPolicy{
	timeout: 5 * time.Second,
	stale:   30 * time.Second,
	poll:    50 * time.Millisecond,
}

// WithLock runs fn while holding "<rc file>.lock", so that concurrent
// `argtree config` and `argtree theme` invocations do not lose writes.
func WithLock(fn func() error) error {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	unlock, err := defaultLockPolicy.acquire(rc + ".lock")
	if err != nil {
		return err
	}
	defer unlock()

	return fn()
}

func (p lockPolicy) acquire(path string) (func(), error) {
	deadline := time.Now().Add(p.timeout)

	for {
		if info, err := os.Stat(path); err == nil && time.Since(info.ModTime()) > p.stale {
			_ = os.Remove(path)
		}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		switch {
		case err == nil:
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return func() {
				_ = f.Close()
				_ = os.Remove(path)
			}, nil
		case !errors.Is(err, os.ErrExist):
			return nil, fmt.Errorf("config: lock %s: %w", path, err)
		case time.Now().After(deadline):
			return nil, ErrLockTimeout
		}

		time.Sleep(p.poll)
	}
}
