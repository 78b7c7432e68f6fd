// Package presets holds the catalog of shared target-framework descriptors.
// Each preset is a lazily-initialized process-wide singleton: resolution
// results are memoized per descriptor instance, so handing out the same
// instance makes repeated resolutions across the process cheap.
package presets

import (
	"strings"
	"sync"

	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// Language names accepted by the catalog descriptors.
const (
	LanguageCSharp      = "CSharp"
	LanguageVisualBasic = "VisualBasic"
)

// classicAssemblies is the assembly set shared by all .NET Framework presets.
var classicAssemblies = []string{
	"mscorlib",
	"System",
	"System.Core",
	"System.Data",
	"System.Drawing",
	"System.Runtime.Serialization",
	"System.Xml",
	"System.Xml.Linq",
}

// netFramework builds a .NET Framework preset rooted in the matching
// reference-assemblies package.
func netFramework(tfm, version, assetVersion string, extra ...string) *domain.Descriptor {
	root := domain.MustNewPackageIdentity("Microsoft.NETFramework.ReferenceAssemblies."+tfm, version)
	return domain.NewDescriptor(tfm, &root, "build/.NETFramework/"+assetVersion).
		WithAssemblies(append(append([]string(nil), classicAssemblies...), extra...)...).
		WithLanguageAssemblies(LanguageCSharp, "Microsoft.CSharp").
		WithLanguageAssemblies(LanguageVisualBasic, "Microsoft.VisualBasic")
}

// Net20 is the .NET Framework 2.0 reference set.
var Net20 = sync.OnceValue(func() *domain.Descriptor {
	root := domain.MustNewPackageIdentity("Microsoft.NETFramework.ReferenceAssemblies.net20", "1.0.3")
	return domain.NewDescriptor("net20", &root, "build/.NETFramework/v2.0").
		WithAssemblies("mscorlib", "System", "System.Data", "System.Drawing", "System.Xml").
		WithLanguageAssemblies(LanguageVisualBasic, "Microsoft.VisualBasic")
})

// Net40 is the .NET Framework 4.0 reference set.
var Net40 = sync.OnceValue(func() *domain.Descriptor {
	return netFramework("net40", "1.0.3", "v4.0")
})

// Net462 is the .NET Framework 4.6.2 reference set.
var Net462 = sync.OnceValue(func() *domain.Descriptor {
	return netFramework("net462", "1.0.3", "v4.6.2", "System.IO.Compression.FileSystem", "System.Numerics")
})

// Net472 is the .NET Framework 4.7.2 reference set.
var Net472 = sync.OnceValue(func() *domain.Descriptor {
	return netFramework("net472", "1.0.3", "v4.7.2", "System.IO.Compression.FileSystem", "System.Numerics")
})

// Net48 is the .NET Framework 4.8 reference set.
var Net48 = sync.OnceValue(func() *domain.Descriptor {
	return netFramework("net48", "1.0.3", "v4.8", "System.IO.Compression.FileSystem", "System.Numerics")
})

// NetStandard20 is the .NET Standard 2.0 reference set.
var NetStandard20 = sync.OnceValue(func() *domain.Descriptor {
	root := domain.MustNewPackageIdentity("NETStandard.Library", "2.0.3")
	return domain.NewDescriptor("netstandard2.0", &root, "build/netstandard2.0/ref").
		WithAssemblies("netstandard")
})

// Net60 is the .NET 6.0 reference set.
var Net60 = sync.OnceValue(func() *domain.Descriptor {
	root := domain.MustNewPackageIdentity("Microsoft.NETCore.App.Ref", "6.0.36")
	return domain.NewDescriptor("net6.0", &root, "ref/net6.0")
})

// Net80 is the .NET 8.0 reference set.
var Net80 = sync.OnceValue(func() *domain.Descriptor {
	root := domain.MustNewPackageIdentity("Microsoft.NETCore.App.Ref", "8.0.12")
	return domain.NewDescriptor("net8.0", &root, "ref/net8.0")
})

// catalog maps preset names, lower-cased, to their descriptor accessors.
var catalog = map[string]func() *domain.Descriptor{
	"net20":          Net20,
	"net40":          Net40,
	"net462":         Net462,
	"net472":         Net472,
	"net48":          Net48,
	"netstandard2.0": NetStandard20,
	"net6.0":         Net60,
	"net8.0":         Net80,
}

// ByName returns the shared preset descriptor for the name, case-insensitive.
func ByName(name string) (*domain.Descriptor, error) {
	accessor, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPreset, "preset", name)
	}
	return accessor(), nil
}

// Names lists the catalog entries in stable order for help output.
func Names() []string {
	return []string{"net20", "net40", "net462", "net472", "net48", "netstandard2.0", "net6.0", "net8.0"}
}
