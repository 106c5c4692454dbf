package id

import (
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func decode(t *testing.T, value string) uuid.UUID {
	t.Helper()
	raw, err := encoding.DecodeString(strings.ToUpper(value))
	if err != nil {
		t.Fatalf("decode %q: %v", value, err)
	}
	parsed, err := uuid.FromBytes(raw)
	if err != nil {
		t.Fatalf("uuid from %d bytes: %v", len(raw), err)
	}
	return parsed
}

func TestNewIDIsPathSafe(t *testing.T) {
	t.Parallel()

	value := mustNewID(t)
	if len(value) != 26 {
		t.Fatalf("len = %d, want 26", len(value))
	}
	if strings.Trim(value, "abcdefghijklmnopqrstuvwxyz234567") != "" {
		t.Fatalf("id %q has characters outside lowercase base32", value)
	}
	// Record ids appear as a single /api/members/{id} segment.
	if escaped := url.PathEscape(value); escaped != value {
		t.Fatalf("id %q needs escaping: %q", value, escaped)
	}
}

func TestNewIDWrapsRandomUUID(t *testing.T) {
	t.Parallel()

	parsed := decode(t, mustNewID(t))
	if parsed.Version() != 4 {
		t.Fatalf("version = %d, want 4", parsed.Version())
	}
	if parsed.Variant() != uuid.RFC4122 {
		t.Fatalf("variant = %v, want RFC4122", parsed.Variant())
	}
}

func TestNewIDUniqueAcrossConcurrentSignUps(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 250
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				value, err := NewID()
				if err != nil {
					t.Errorf("NewID() error = %v", err)
					return
				}
				mu.Lock()
				seen[value] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*perWorker {
		t.Fatalf("unique ids = %d, want %d", len(seen), workers*perWorker)
	}
}

func mustNewID(t *testing.T) string {
	t.Helper()
	value, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	return value
}
