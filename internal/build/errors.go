package build

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
