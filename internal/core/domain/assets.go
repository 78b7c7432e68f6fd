package domain

// AssetKind names the kind of a compile-time asset group inside a package.
type AssetKind string

const (
	// AssetRef marks contract (reference-only) assemblies.
	AssetRef AssetKind = "ref"
	// AssetLib marks implementation assemblies.
	AssetLib AssetKind = "lib"
)

// AssetGroup is a set of files inside an installed package, tagged with the
// target framework moniker of the folder they live in.
type AssetGroup struct {
	Kind      AssetKind
	Framework string
	// Files are paths relative to the installed package directory.
	Files []string
}

// FrameworkReference names facade assemblies that a package expects to be
// satisfied from the root reference-assembly installation, per framework.
type FrameworkReference struct {
	Framework string
	// AssemblyNames are simple names without extension, e.g. "System.Core".
	AssemblyNames []string
}

// PackageContents describes the compile-relevant contents of an installed
// package: its ref/lib asset groups and its declared framework references.
type PackageContents struct {
	Groups              []AssetGroup
	FrameworkReferences []FrameworkReference
}

// Reference is an opaque handle to a single resolved assembly file, as
// produced by the reference factory.
type Reference struct {
	// Path is the absolute path of the assembly on disk.
	Path string
}
