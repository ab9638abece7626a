package internet

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/fakeit/pkg/locale"
	"github.com/dmitrymomot/fakeit/pkg/random"
	"github.com/dmitrymomot/fakeit/pkg/slug"
)

var userNameSeparators = []string{".", "_"}

// UserName composes a login from first and last name. Empty arguments are
// derived from the Namer. One of three templates is chosen uniformly:
//
//	firstName + two-digit number
//	firstName + separator + lastName
//	firstName + separator + lastName + two-digit number
//
// with the separator drawn from {".", "_"}. Apostrophes and spaces are
// stripped because locale name lists may contain them.
func (g *Generator) UserName(firstName, lastName string) string {
	if firstName == "" {
		firstName = g.names.FirstName()
	}
	if lastName == "" {
		lastName = g.names.LastName()
	}

	var result string
	switch g.rand.Int(2) {
	case 0:
		result = firstName + strconv.Itoa(g.rand.Int(99))
	case 1:
		result = firstName + random.Pick(g.rand, userNameSeparators) + lastName
	default:
		result = firstName + random.Pick(g.rand, userNameSeparators) + lastName + strconv.Itoa(g.rand.Int(99))
	}

	result = strings.ReplaceAll(result, "'", "")
	return strings.ReplaceAll(result, " ", "")
}

// localPart slugs a username into email-local-part form, keeping the
// separator characters the username templates produce.
func localPart(userName string) string {
	return slug.Make(userName, slug.Keep("._-"))
}

// Email composes "local@provider". An empty provider defaults to a uniform
// pick from the free_email category; the local part is the slugified
// UserName output.
func (g *Generator) Email(firstName, lastName, provider string) string {
	if provider == "" {
		provider = g.pick(locale.CategoryFreeEmail)
	}
	return localPart(g.UserName(firstName, lastName)) + "@" + provider
}

// ExampleEmail is the Email pipeline with the provider forced to a uniform
// pick from the example-only domain category, so generated fixtures can
// never collide with a real provider.
func (g *Generator) ExampleEmail(firstName, lastName string) string {
	return g.Email(firstName, lastName, g.pick(locale.CategoryExampleEmail))
}
