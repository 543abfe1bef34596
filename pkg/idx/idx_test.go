package idx_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strataworks/societyd/pkg/idx"
)

func TestNewProducesValidULIDs(t *testing.T) {
	t.Parallel()

	id := idx.New()
	require.Len(t, id.String(), 26)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestNewIsUniqueUnderConcurrency(t *testing.T) {
	t.Parallel()

	const n = 1000

	var mu sync.Mutex
	seen := make(map[idx.ID]struct{}, n)

	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := idx.New()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, n)
}
