package domain

import "path/filepath"

const (
	// WorkDirName is the name of the internal working directory.
	WorkDirName = ".cssinjs"

	// StoreDirName is the name of the snapshot store directory.
	StoreDirName = "store"

	// StylefileName is the default name of the style configuration file.
	StylefileName = "cssinjs.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the snapshot store.
// It joins .cssinjs and store.
func DefaultStorePath() string {
	return filepath.Join(WorkDirName, StoreDirName)
}
