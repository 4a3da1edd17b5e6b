// Package osutil holds operating system constants shared across calmclock
package osutil

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// Int returns the exit code as an int for os.Exit.
func (c exitCode) Int() int {
	return int(c)
}

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)
