package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fakeit"
)

var errUnknownKind = errors.New("unknown kind")

// kinds lists every value kind the generate command supports.
var kinds = []string{
	"avatar",
	"color",
	"domain",
	"domain-word",
	"email",
	"example-email",
	"first-name",
	"http-method",
	"ipv4",
	"ipv6",
	"last-name",
	"mac",
	"name",
	"password",
	"port",
	"protocol",
	"url",
	"username",
	"uuid",
}

func render(f *fakeit.Faker, kind string, length int) (string, error) {
	switch kind {
	case "avatar":
		return f.Internet.Avatar(), nil
	case "color":
		return f.Internet.Color(0, 0, 0), nil
	case "domain":
		return f.Internet.DomainName(), nil
	case "domain-word":
		return f.Internet.DomainWord(), nil
	case "email":
		return f.Internet.Email("", "", ""), nil
	case "example-email":
		return f.Internet.ExampleEmail("", ""), nil
	case "first-name":
		return f.Person.FirstName(), nil
	case "http-method":
		return f.Internet.HTTPMethod(), nil
	case "ipv4":
		return f.Internet.IPv4(), nil
	case "ipv6":
		return f.Internet.IPv6(), nil
	case "last-name":
		return f.Person.LastName(), nil
	case "mac":
		return f.Internet.MAC(":"), nil
	case "name":
		return f.Person.FullName(), nil
	case "password":
		return f.Internet.Password(length, true, nil, ""), nil
	case "port":
		return strconv.Itoa(f.Internet.Port()), nil
	case "protocol":
		return f.Internet.Protocol(), nil
	case "url":
		return f.Internet.URL(), nil
	case "username":
		return f.Internet.UserName("", ""), nil
	case "uuid":
		return f.Internet.UUID(), nil
	default:
		return "", fmt.Errorf("%w: %q (known: %s)", errUnknownKind, kind, strings.Join(kinds, ", "))
	}
}
