package locale

// Definition is one locale's table of category key to candidate word list.
// Lists are ordered and must be non-empty; definitions are treated as
// immutable once loaded into a Registry.
type Definition map[string][]string

// Category keys referenced by the generators. The built-in DefaultLocale
// defines all of them, which is what makes it a total-coverage fallback.
const (
	CategoryFirstName    = "first_name"
	CategoryLastName     = "last_name"
	CategoryAdjective    = "adjective"
	CategoryNoun         = "noun"
	CategoryFreeEmail    = "free_email"
	CategoryExampleEmail = "example_email"
	CategoryDomainSuffix = "domain_suffix"
)

// Categories lists every category key the generators reference.
var Categories = []string{
	CategoryFirstName,
	CategoryLastName,
	CategoryAdjective,
	CategoryNoun,
	CategoryFreeEmail,
	CategoryExampleEmail,
	CategoryDomainSuffix,
}

// DefaultLocale is the code of the built-in total-coverage locale.
const DefaultLocale = "en"
