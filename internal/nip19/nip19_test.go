package nip19_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"nostrkit/internal/nip19"
)

func TestRoundTrip(t *testing.T) {
	var raw [nip19.EntityLen]byte
	for i := range raw {
		raw[i] = byte(i)
	}

	for _, tc := range []struct {
		name   string
		encode func([nip19.EntityLen]byte) (string, error)
		prefix string
	}{
		{"secret key", nip19.EncodeSecretKey, nip19.PrefixSecretKey},
		{"public key", nip19.EncodePublicKey, nip19.PrefixPublicKey},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.encode(raw)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !strings.HasPrefix(s, tc.prefix+"1") {
				t.Fatalf("encoded form %q lacks %q prefix", s, tc.prefix+"1")
			}

			prefix, data, err := nip19.Decode(s)
			if err != nil {
				t.Fatalf("Decode(%q): %v", s, err)
			}
			if prefix != tc.prefix {
				t.Fatalf("prefix = %q, want %q", prefix, tc.prefix)
			}
			if !bytes.Equal(data, raw[:]) {
				t.Fatal("payload changed across the round trip")
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	valid, err := nip19.EncodePublicKey([nip19.EntityLen]byte{1})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Replace the last character with one guaranteed to differ so the
	// checksum genuinely breaks.
	flipped := "q"
	if valid[len(valid)-1] == 'q' {
		flipped = "p"
	}

	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no separator", "npubqqqq"},
		{"bad checksum", valid[:len(valid)-1] + flipped},
		{"truncated", valid[:len(valid)-9]},
		{"mixed case", strings.ToUpper(valid[:6]) + valid[6:]},
		{"invalid charset", "npub1" + strings.Repeat("b", 58)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := nip19.Decode(tc.input); !errors.Is(err, nip19.ErrMalformed) {
				t.Fatalf("Decode(%q) error = %v, want ErrMalformed", tc.input, err)
			}
		})
	}
}

func TestDecode_WrongPayloadLength(t *testing.T) {
	// A checksum-valid nsec with a short payload must still be rejected.
	conv, err := bech32.ConvertBits([]byte{1, 2, 3}, 8, 5, true)
	if err != nil {
		t.Fatalf("ConvertBits: %v", err)
	}
	short, err := bech32.Encode(nip19.PrefixSecretKey, conv)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, _, err := nip19.Decode(short); !errors.Is(err, nip19.ErrMalformed) {
		t.Fatalf("Decode(%q) error = %v, want ErrMalformed", short, err)
	}
}
