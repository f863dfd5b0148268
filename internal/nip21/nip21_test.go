package nip21_test

import (
	"errors"
	"testing"

	"nostrkit/internal/nip21"
)

func TestToURIAndParse(t *testing.T) {
	const entity = "npub1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqsqqqqqq"

	uri := nip21.ToURI(entity)
	if uri != "nostr:"+entity {
		t.Fatalf("ToURI = %q", uri)
	}

	got, err := nip21.Parse(uri)
	if err != nil {
		t.Fatalf("Parse(%q): %v", uri, err)
	}
	if got != entity {
		t.Fatalf("Parse returned %q, want %q", got, entity)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, uri := range []string{"", "nostr:", "http:npub1xyz", "npub1xyz"} {
		if _, err := nip21.Parse(uri); !errors.Is(err, nip21.ErrInvalidURI) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidURI", uri, err)
		}
	}
}
