// Package slug converts arbitrary strings into safe identifier form, e.g.
// email local parts and domain labels built from locale word lists.
//
// Make normalizes Unicode (diacritics are folded to their ASCII base via
// golang.org/x/text), lowercases by default, passes ASCII letters and digits
// through, and collapses every other run of characters into a single
// separator. Characters listed in StripChars are removed outright instead of
// becoming separators, and characters listed in Keep pass through unchanged,
// which lets email local parts retain "." and "_".
//
//	slug.Make("Jeanne O'Connell")                       // "jeanne-o-connell"
//	slug.Make("Jeanne O'Connell", slug.StripChars("'")) // "jeanne-oconnell"
//	slug.Make("Jeanne.Doe_42", slug.Keep("._"))         // "jeanne.doe_42"
//
// All functions are pure and safe for concurrent use.
package slug
