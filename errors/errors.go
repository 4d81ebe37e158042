package errors

import "fmt"

// Generic errors

var FileCreateErrorTpl = "failed to create file %s: %w"
var FileOpenErrorTpl = "failed to open %s: %w"
var FileStatErrorTpl = "failed to stat file %s: %w"
var FileCopyErrorTpl = "failed to copy '%s' to '%s': %w"
var FileMoveErrorTpl = "failed to move file from %s to %s: %w"

// Download errors

var DownloadFailedErrorTpl = "failed to download %s: %w"
var DownloadBadStatusErrorTpl = "failed to download %s with status '%s'"

// Tool errors

var ToolDownloadFailedErrorTpl = "%s download failed: %w"
var ToolInstallFailedErrorTpl = "failed to install %s: %w"
var ToolRemovalFailedErrorTpl = "failed to remove %s from %s: %w"
var ToolSetPermissionsFailedErrorTpl = "failed to set permissions on %s to %s: %w"
var ToolVerifyFailedErrorTpl = "%s version query failed: %w"

type UnsupportedOSError struct {
	Vendor  string
	Version string
}

func (e *UnsupportedOSError) Error() string {
	return fmt.Sprintf("unsupported os %s %s", e.Vendor, e.Version)
}

type BinaryDoesNotExistError struct {
	Pkg  string
	Path string
}

func (e *BinaryDoesNotExistError) Error() string {
	return fmt.Sprintf("binary %s does not exist at %s", e.Pkg, e.Path)
}
