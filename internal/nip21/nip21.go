// Package nip21 handles nostr: URIs for shareable entities.
package nip21

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme is the URI scheme for Nostr entities.
const Scheme = "nostr"

// ErrInvalidURI is returned when a string is not a nostr: URI.
var ErrInvalidURI = errors.New("invalid nostr URI")

// ToURI wraps a bech32 entity in a nostr: URI. Only public entities should
// be shared this way; secret keys never belong in a URI.
func ToURI(entity string) string {
	return Scheme + ":" + entity
}

// Parse strips the nostr: scheme and returns the bech32 entity.
func Parse(uri string) (string, error) {
	entity, ok := strings.CutPrefix(uri, Scheme+":")
	if !ok || entity == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}
	return entity, nil
}
