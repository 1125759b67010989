/*
Package ident creates identities for tree nodes which do not bring their
own.

Identities need not be cryptographically strong, they only have to make
collisions within a single tree negligibly likely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ident

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Length is the fixed length of generated identities.
const Length = 32

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces fresh identities.
type Generator func() string

// RandomString returns a random string of length n, drawn from an
// alphanumeric alphabet.
func RandomString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for b.Len() < n {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// Random is the default Generator: random alphanumeric strings of Length.
func Random() string {
	return RandomString(Length)
}

// UUID is a Generator using version 4 UUIDs in their 32 character hex form
// (dashes removed).
func UUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
