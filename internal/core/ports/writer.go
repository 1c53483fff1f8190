package ports

// ManifestWriter durably persists manifest bytes to a path.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ManifestWriter interface {
	// Write persists data to path atomically, preserving any pre-existing
	// permission bits. A crash mid-write never leaves a truncated file.
	Write(path string, data []byte) error
}
