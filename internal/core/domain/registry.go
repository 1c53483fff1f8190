package domain

// RegistryFileInfo is the per-file record in a JSR version metadata document.
// The checksum carries a literal "sha256-" prefix on the wire.
type RegistryFileInfo struct {
	Checksum string `json:"checksum"`
}

// RegistryVersionMeta is the registry's per-version file-list metadata
// document ({scope}/{name}/{version}_meta.json). Manifest maps source file
// paths (leading slash included) to their declared checksums.
type RegistryVersionMeta struct {
	Manifest map[string]RegistryFileInfo `json:"manifest"`
}
