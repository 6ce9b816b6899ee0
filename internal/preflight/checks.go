// Package preflight provides the environment checks behind `datapipe doctor`.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"datapipe/internal/history"
)

// Result captures the outcome of a single check.
type Result struct {
	Name    string
	Passed  bool
	Warning bool
	Detail  string
}

// minFreeBytes is the free-space floor below which doctor warns.
const minFreeBytes = 100 << 20

// CheckStateDir verifies the state directory exists (or can be created) and
// is writable by the current user.
func CheckStateDir(dir string) Result {
	const name = "State directory"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("cannot create %s: %v", dir, err)}
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: dir}
}

// CheckFreeSpace inspects the filesystem backing dir and warns when free
// space drops under the floor.
func CheckFreeSpace(dir string) Result {
	const name = "Free space"
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("statfs %s: %v", dir, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	detail := fmt.Sprintf("%d MiB available", free>>20)
	if free < minFreeBytes {
		return Result{Name: name, Passed: true, Warning: true, Detail: detail + " (low)"}
	}
	return Result{Name: name, Passed: true, Detail: detail}
}

// CheckHistory verifies the run ledger opens and its schema version matches.
func CheckHistory(enabled bool, path string) Result {
	const name = "History ledger"
	if !enabled {
		return Result{Name: name, Passed: true, Warning: true, Detail: "disabled in config"}
	}
	store, err := history.Open(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("open %s: %v", path, err)}
	}
	defer store.Close()
	return Result{Name: name, Passed: true, Detail: path}
}
