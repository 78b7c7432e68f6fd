package config

// File represents the structure of the refset.yaml configuration file.
type File struct {
	Version    string         `yaml:"version"`
	CacheRoot  string         `yaml:"cacheRoot"`
	Registries []RegistrySpec `yaml:"registries"`
}

// RegistrySpec is one package registry entry. Order in the file is query
// priority order.
type RegistrySpec struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}
