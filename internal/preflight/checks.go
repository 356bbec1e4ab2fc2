// Package preflight verifies that an organize run can proceed before any
// directory enumeration starts, so permission problems surface as one clear
// fatal message instead of a wall of per-file errors.
package preflight

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Result captures a single preflight check outcome.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckScanRoot verifies the scan root permits the planned run: listing it is
// always required, writing into it only for real (non-dry-run) runs.
func CheckScanRoot(root string, dryRun bool) Result {
	const name = "scan root access"

	mode := uint32(unix.R_OK | unix.X_OK)
	if !dryRun {
		mode |= unix.W_OK
	}
	if err := unix.Access(root, mode); err != nil {
		detail := fmt.Sprintf("insufficient permissions on %s (%v)", root, err)
		if dryRun {
			detail = fmt.Sprintf("cannot list %s (%v)", root, err)
		}
		return Result{Name: name, Detail: detail}
	}
	return Result{Name: name, Passed: true, Detail: "accessible"}
}
