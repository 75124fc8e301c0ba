package id

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceGeneratorPrefixAndTime(t *testing.T) {
	g := NewReferenceGenerator()
	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	ref := g.NewID()

	require.True(t, strings.HasPrefix(ref, OrderPrefix))
	parsed, err := ulid.Parse(strings.TrimPrefix(ref, OrderPrefix))
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(fixed), parsed.Time())
}

func TestReferenceGeneratorUniqueUnderConcurrency(t *testing.T) {
	g := NewReferenceGenerator()
	fixed := time.Now()
	g.now = func() time.Time { return fixed }

	const n = 500
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref := g.NewID()
			mu.Lock()
			seen[ref] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}

func TestReferenceGeneratorSortable(t *testing.T) {
	g := NewReferenceGenerator()
	first := g.NewID()
	second := g.NewID()
	assert.Less(t, first, second)
}
