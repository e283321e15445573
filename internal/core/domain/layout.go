package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user application directory.
	AppDirName = "labbuddy"

	// CacheFileName is the name of the persisted cache data document.
	CacheFileName = "chemical_cache.json"

	// CacheSigFileName is the name of the detached cache signature document.
	CacheSigFileName = "chemical_cache.sig"

	// ConfigFileName is the name of the project/user configuration file.
	ConfigFileName = "labbuddy.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the default directory for the persisted cache.
// It falls back to a hidden directory under the CWD when the user cache
// directory cannot be determined.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return "." + AppDirName
	}
	return filepath.Join(base, AppDirName)
}

// CacheDataPath returns the path of the cache data document inside dir.
func CacheDataPath(dir string) string {
	return filepath.Join(dir, CacheFileName)
}

// CacheSigPath returns the path of the detached signature inside dir.
func CacheSigPath(dir string) string {
	return filepath.Join(dir, CacheSigFileName)
}
