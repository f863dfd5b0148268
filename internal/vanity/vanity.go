package vanity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"nostrkit/internal/keys"
	"nostrkit/internal/nip19"
)

// charset is the bech32 alphabet vanity prefixes are drawn from.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// ErrBadPrefix is returned when the requested prefix contains characters
// that can never appear in a bech32 string.
var ErrBadPrefix = errors.New("prefix contains characters outside the bech32 alphabet")

// Mine searches for a keypair whose npub begins with "npub1" followed by
// prefix. It runs the given number of workers (NumCPU when workers <= 0)
// until a match is found or ctx is done.
func Mine(ctx context.Context, prefix string, workers int) (keys.Keys, error) {
	prefix = strings.ToLower(prefix)
	for _, r := range prefix {
		if !strings.ContainsRune(charset, r) {
			return keys.Keys{}, fmt.Errorf("%w: %q", ErrBadPrefix, r)
		}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	want := nip19.PrefixPublicKey + "1" + prefix
	found := make(chan keys.Keys, 1)
	failed := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				k, err := keys.Generate()
				if err != nil {
					failed <- err
					return
				}
				npub, err := k.PublicKey().Bech32()
				if err != nil {
					failed <- err
					return
				}
				if strings.HasPrefix(npub, want) {
					select {
					case found <- k:
					default:
					}
					cancel()
					return
				}
			}
		}()
	}

	select {
	case k := <-found:
		return k, nil
	case err := <-failed:
		return keys.Keys{}, err
	case <-ctx.Done():
		// A worker may have delivered a match in the same instant.
		select {
		case k := <-found:
			return k, nil
		default:
		}
		return keys.Keys{}, ctx.Err()
	}
}
