package domain

// Descriptor is an immutable description of a reference assembly set: the
// target framework, the root reference-assembly package, extra packages, and
// explicitly named assemblies. All transform methods are pure and return a
// new Descriptor; none touches the network or the file system.
//
// Resolution results are memoized per Descriptor instance, so descriptors
// meant to be shared (the presets) should be created once and reused.
type Descriptor struct {
	// TargetFramework is the target framework moniker assets are selected for.
	TargetFramework string

	// RootPackage is the reference-assembly package, when the set is rooted
	// in one. Nil for purely package-driven sets.
	RootPackage *PackageIdentity

	// RootAssetPath is the directory inside the installed root package that
	// holds the reference assemblies, e.g. "build/.NETFramework/v4.7.2".
	RootAssetPath string

	// Assemblies are simple assembly names resolved against the root asset
	// directory for every language. Order is preserved; duplicates are
	// tolerated and collapse at path-collection time.
	Assemblies []string

	// LanguageAssemblies holds additional per-language assembly names,
	// keyed by language ("CSharp", "VisualBasic").
	LanguageAssemblies map[string][]string

	// Packages are extra package requirements added on top of the root.
	Packages []PackageIdentity
}

// NewDescriptor creates a descriptor for a target framework rooted in the
// given package and asset path. rootPackage may be nil.
func NewDescriptor(targetFramework string, rootPackage *PackageIdentity, rootAssetPath string) *Descriptor {
	d := &Descriptor{
		TargetFramework: targetFramework,
		RootAssetPath:   rootAssetPath,
	}
	if rootPackage != nil {
		p := *rootPackage
		d.RootPackage = &p
	}
	return d
}

// clone produces a deep copy sharing nothing mutable with the receiver.
func (d *Descriptor) clone() *Descriptor {
	c := &Descriptor{
		TargetFramework: d.TargetFramework,
		RootAssetPath:   d.RootAssetPath,
	}
	if d.RootPackage != nil {
		p := *d.RootPackage
		c.RootPackage = &p
	}
	if len(d.Assemblies) > 0 {
		c.Assemblies = append([]string(nil), d.Assemblies...)
	}
	if len(d.LanguageAssemblies) > 0 {
		c.LanguageAssemblies = make(map[string][]string, len(d.LanguageAssemblies))
		for lang, names := range d.LanguageAssemblies {
			c.LanguageAssemblies[lang] = append([]string(nil), names...)
		}
	}
	if len(d.Packages) > 0 {
		c.Packages = append([]PackageIdentity(nil), d.Packages...)
	}
	return c
}

// WithAssemblies returns a copy whose assembly name list is replaced.
func (d *Descriptor) WithAssemblies(names ...string) *Descriptor {
	c := d.clone()
	c.Assemblies = append([]string(nil), names...)
	return c
}

// AddAssemblies returns a copy with the names appended to the assembly list.
func (d *Descriptor) AddAssemblies(names ...string) *Descriptor {
	return d.WithAssemblies(append(append([]string(nil), d.Assemblies...), names...)...)
}

// WithLanguageAssemblies returns a copy whose assembly list for the language
// is replaced.
func (d *Descriptor) WithLanguageAssemblies(language string, names ...string) *Descriptor {
	c := d.clone()
	if c.LanguageAssemblies == nil {
		c.LanguageAssemblies = make(map[string][]string, 1)
	}
	c.LanguageAssemblies[language] = append([]string(nil), names...)
	return c
}

// AddLanguageAssemblies returns a copy with the names appended to the
// language's assembly list.
func (d *Descriptor) AddLanguageAssemblies(language string, names ...string) *Descriptor {
	current := d.LanguageAssemblies[language]
	return d.WithLanguageAssemblies(language, append(append([]string(nil), current...), names...)...)
}

// WithPackages returns a copy whose extra package list is replaced.
func (d *Descriptor) WithPackages(packages ...PackageIdentity) *Descriptor {
	c := d.clone()
	c.Packages = append([]PackageIdentity(nil), packages...)
	return c
}

// AddPackages returns a copy with the packages appended to the extra package
// list.
func (d *Descriptor) AddPackages(packages ...PackageIdentity) *Descriptor {
	return d.WithPackages(append(append([]PackageIdentity(nil), d.Packages...), packages...)...)
}

// AssembliesForLanguage returns the language-specific assembly names for the
// language, and whether the descriptor carries any. The empty language is the
// language-agnostic default and always reports false.
func (d *Descriptor) AssembliesForLanguage(language string) ([]string, bool) {
	if language == "" {
		return nil, false
	}
	names, ok := d.LanguageAssemblies[language]
	return names, ok && len(names) > 0
}

// Languages returns the set of languages the descriptor has specific
// assemblies for.
func (d *Descriptor) Languages() []string {
	langs := make([]string, 0, len(d.LanguageAssemblies))
	for lang := range d.LanguageAssemblies {
		langs = append(langs, lang)
	}
	return langs
}
