// Package identity derives canonical identity keys for cabinet items.
//
// Both the reconciliation policy and the duplicate sweeper key records
// through this package, so their notions of "same product" never diverge.
// Keys are NFC-normalized so that visually identical labels produced by
// different firmware revisions compare equal.
package identity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key returns the canonical identity key for a brand/name pair.
//
// Both inputs are trimmed and NFC-normalized. A record without a name has
// no identity (ok is false), regardless of brand. A record with a name but
// no brand is keyed by name alone; this is how brand-less manual entries
// collide with the inventory items they describe.
func Key(brand, name string) (key string, ok bool) {
	brand = canonical(brand)
	name = canonical(name)
	if name == "" {
		return "", false
	}
	if brand == "" {
		return strings.ToLower(name), true
	}
	return strings.ToLower(brand + " " + name), true
}

// NameKey returns the exact-name grouping key for records that carry no
// derivable identity. Same canonicalization as Key, name only.
func NameKey(name string) string {
	return strings.ToLower(canonical(name))
}

func canonical(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
