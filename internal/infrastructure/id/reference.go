package id

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const OrderPrefix = "order_"

// ReferenceGenerator produces time-ordered merchant references such as
// "order_01JABCDXYZ...". Identifiers minted within the same millisecond stay
// unique and sortable thanks to monotonic entropy.
type ReferenceGenerator struct {
	mu      sync.Mutex
	prefix  string
	entropy io.Reader
	now     func() time.Time
}

func NewReferenceGenerator() *ReferenceGenerator {
	return &ReferenceGenerator{
		prefix:  OrderPrefix,
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ReferenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.prefix + ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
