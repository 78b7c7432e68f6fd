package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the shared package cache directory under the
	// system temporary directory. It is shared between processes and survives
	// the process that created it.
	CacheDirName = "test-packages"

	// LocalDirName is the name of the process-local extraction tier inside the cache root.
	LocalDirName = "local"

	// GlobalDirName is the name of the shared extraction tier inside the cache root.
	GlobalDirName = "global"

	// LockFileName is the name of the advisory lock file guarding the cache root.
	LockFileName = ".lock"

	// ManifestFileName is the name of the manifest file inside an extracted package.
	ManifestFileName = "manifest.json"

	// FacadesDirName is the name of the facade assembly directory inside a
	// reference assembly installation.
	FacadesDirName = "Facades"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "refset.yaml"

	// AssemblyExt is the file extension of assembly files collected into a reference set.
	AssemblyExt = ".dll"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the default shared package cache root.
// It joins the system temporary directory and test-packages.
func DefaultCacheRoot() string {
	return filepath.Join(os.TempDir(), CacheDirName)
}

// LockFilePath returns the advisory lock file path for the given cache root.
func LockFilePath(cacheRoot string) string {
	return filepath.Join(cacheRoot, LockFileName)
}

// LocalCacheDir returns the process-local extraction tier for the given cache root.
func LocalCacheDir(cacheRoot string) string {
	return filepath.Join(cacheRoot, LocalDirName)
}

// GlobalCacheDir returns the shared extraction tier for the given cache root.
func GlobalCacheDir(cacheRoot string) string {
	return filepath.Join(cacheRoot, GlobalDirName)
}
