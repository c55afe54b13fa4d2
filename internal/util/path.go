package util

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the path as string to the project_root.
// PROJECT_ROOT_DIR env may override the path derived from this source file.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if dir, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = dir
			return
		}

		_, b, _, _ := runtime.Caller(0) //nolint:dogsled
		projectRootDir = filepath.Join(filepath.Dir(b), "../..")
	})

	return projectRootDir
}
