package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInstalled is returned when no extracted copy of a package exists in any cache tier.
	ErrNotInstalled = zerr.New("package not installed")

	// ErrRegistryMiss is returned when no configured registry has dependency info for an identity.
	ErrRegistryMiss = zerr.New("no registry responded for package")

	// ErrVersionConflict is returned when no version satisfies every constraint in the graph.
	ErrVersionConflict = zerr.New("version conflict")

	// ErrDownloadFailed is returned when downloading a package from a registry fails.
	ErrDownloadFailed = zerr.New("failed to download package")

	// ErrExtractFailed is returned when unpacking a package archive fails.
	ErrExtractFailed = zerr.New("failed to extract package")

	// ErrLockFailed is returned when the cross-process cache lock cannot be acquired.
	ErrLockFailed = zerr.New("failed to acquire cache lock")

	// ErrInvalidIdentity is returned when a package reference cannot be parsed.
	ErrInvalidIdentity = zerr.New("invalid package reference, expected format: id@version")

	// ErrInvalidVersion is returned when a version string cannot be parsed.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range string cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrInvalidFramework is returned when a target framework moniker cannot be parsed.
	ErrInvalidFramework = zerr.New("invalid target framework")

	// ErrUnknownPreset is returned when a named reference set preset does not exist.
	ErrUnknownPreset = zerr.New("unknown preset")

	// ErrMissingRootPackage is returned when a descriptor has neither a root package nor extra packages.
	ErrMissingRootPackage = zerr.New("descriptor has no packages to resolve")

	// ErrManifestReadFailed is returned when an installed package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when an installed package manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrRegistryRequestFailed is returned when a registry HTTP request fails.
	ErrRegistryRequestFailed = zerr.New("registry request failed")

	// ErrRegistryParseFailed is returned when a registry response cannot be decoded.
	ErrRegistryParseFailed = zerr.New("failed to parse registry response")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheCleanFailed is returned when removing the package cache fails.
	ErrCacheCleanFailed = zerr.New("failed to clean package cache")

	// ErrCacheCreateFailed is returned when a cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")
)
