// Package person generates human names from the active locale's word lists.
//
// A Generator draws uniformly from the first_name and last_name categories
// of a locale registry. It is the name-generation collaborator consumed by
// pkg/internet when a caller does not supply explicit names.
//
//	src := random.New(42)
//	reg, _ := locale.NewRegistry(ctx, locale.Builtin())
//	p := person.New(src, reg)
//	p.FirstName() // "Jeanne"
//
// Output may contain apostrophes and spaces exactly as authored in the
// locale data ("O'Connell", "Jean Paul"); consumers that need identifier-safe
// strings are responsible for stripping them.
package person
