package keys_test

import (
	"errors"
	"strings"
	"testing"

	"nostrkit/internal/keys"
)

func generated(t *testing.T) keys.Keys {
	t.Helper()
	k, err := keys.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return k
}

func TestParsePublicKey_AllForms(t *testing.T) {
	k := generated(t)
	pk := k.PublicKey()

	npub, err := pk.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	uri, err := pk.NostrURI()
	if err != nil {
		t.Fatalf("NostrURI: %v", err)
	}

	for _, form := range []string{pk.Hex(), npub, uri} {
		parsed, err := keys.ParsePublicKey(form)
		if err != nil {
			t.Fatalf("ParsePublicKey(%q): %v", form, err)
		}
		if !parsed.Equal(pk) {
			t.Fatalf("ParsePublicKey(%q) returned a different key", form)
		}
	}
}

func TestParsePublicKey_Malformed(t *testing.T) {
	k := generated(t)
	nsec, err := k.SecretKey().Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"nsec given", nsec},
		{"bad hex length", "abcd"},
		{"bare scheme", "nostr:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := keys.ParsePublicKey(tc.input); !errors.Is(err, keys.ErrInvalidPublicKey) {
				t.Fatalf("ParsePublicKey(%q) error = %v, want ErrInvalidPublicKey", tc.input, err)
			}
		})
	}
}

func TestPublicKey_Idempotent(t *testing.T) {
	pk := generated(t).PublicKey()

	first, err := pk.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	second, err := pk.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	if first != second {
		t.Fatalf("Bech32 not stable: %q then %q", first, second)
	}
	if pk.Hex() != pk.Hex() || pk.Fingerprint() != pk.Fingerprint() {
		t.Fatal("hex or fingerprint rendering not stable")
	}
}

func TestPublicKey_Renderings(t *testing.T) {
	pk := generated(t).PublicKey()

	npub, err := pk.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	if !strings.HasPrefix(npub, "npub1") {
		t.Fatalf("npub rendering = %q, want npub1 prefix", npub)
	}

	uri, err := pk.NostrURI()
	if err != nil {
		t.Fatalf("NostrURI: %v", err)
	}
	if uri != "nostr:"+npub {
		t.Fatalf("URI = %q, want %q", uri, "nostr:"+npub)
	}

	if got := pk.String(); got != pk.Hex() {
		t.Fatalf("String() = %q, want hex form %q", got, pk.Hex())
	}
	if len(pk.Fingerprint()) != 20 {
		t.Fatalf("fingerprint length = %d, want 20", len(pk.Fingerprint()))
	}
}

func TestSecretKey_StringRedacted(t *testing.T) {
	sk := generated(t).SecretKey()
	if strings.Contains(sk.String(), sk.Hex()) {
		t.Fatal("String() leaks secret key material")
	}
}
