package keys

import (
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropy     io.Reader
	entropyOnce sync.Once

	blockKeyGenerator  = DefaultBlockKey
	entityKeyGenerator = DefaultEntityKey
)

// DefaultEntropy returns a reader that generates ULID entropy.
func DefaultEntropy() io.Reader {
	entropyOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))

		entropy = &ulid.LockedMonotonicReader{
			MonotonicReader: ulid.Monotonic(rng, 0),
		}
	})
	return entropy
}

// Block keys are lowercased ULIDs:
//
//	 01an4z07by      79ka1307sr9x4mv3
//	|----------|    |----------------|
//	 Timestamp          Randomness
var blockKeyRe = regexp.MustCompile(`^[0123456789abcdefghjkmnpqrstvwxyz]{26}$`)

// ValidBlockKey checks if the key was produced by DefaultBlockKey.
func ValidBlockKey(key string) bool {
	_, err := ulid.ParseStrict(strings.ToUpper(key))
	return err == nil && blockKeyRe.MatchString(key)
}

// BlockKey returns a new key for a block.
func BlockKey() string {
	return blockKeyGenerator()
}

// EntityKey returns a new key for an entity map entry.
func EntityKey() string {
	return entityKeyGenerator()
}

func DefaultBlockKey() string {
	ts := ulid.Timestamp(time.Now())
	return strings.ToLower(ulid.MustNew(ts, DefaultEntropy()).String())
}

func DefaultEntityKey() string {
	return uuid.NewString()
}

// MockGenerator makes both generators return sequential keys
// with the given prefix. It is meant for tests only.
func MockGenerator(prefix string) {
	var (
		mu      sync.Mutex
		counter int
	)
	next := func() string {
		mu.Lock()
		defer mu.Unlock()
		counter++
		return prefix + "-" + strconv.Itoa(counter)
	}
	blockKeyGenerator = next
	entityKeyGenerator = next
}

func ResetGenerator() {
	blockKeyGenerator = DefaultBlockKey
	entityKeyGenerator = DefaultEntityKey
}
