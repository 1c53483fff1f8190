package resolver

// Exported for white-box tests.
var (
	ParseJSRKey        = parseJSRKey
	ParseNpmKey        = parseNpmKey
	ResolveNpmPackages = resolveNpmPackages
)
