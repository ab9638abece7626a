package locale

import "embed"

//go:embed data/*.yaml
var builtinFS embed.FS

// Builtin returns the adapter for the locale data shipped with the library.
// The bundle always contains DefaultLocale with every category defined.
func Builtin() Adapter {
	return NewFSAdapter(builtinFS, "data")
}
