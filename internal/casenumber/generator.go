// Package casenumber mints human-readable case numbers of the form
// PREFIX/YEAR/NNNNNN. Minting is optimistic: numbers are neither reserved nor
// checked, so callers rely on the store's unique index to reject collisions.
package casenumber

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/JustJay7/court-registry/internal/lifecycle"
)

const (
	FallbackPrefix = "CAS"

	minNumber = 100000
	maxNumber = 999999
)

var prefixes = map[lifecycle.Category]string{
	lifecycle.CMI:        "CTV",
	lifecycle.Criminal:   "CRV",
	lifecycle.Family:     "FAW",
	lifecycle.Commercial: "TCM",
	lifecycle.Civil:      "CIV",
}

var pattern = regexp.MustCompile(`^[A-Z]{3}/\d{4}/[1-9]\d{5}$`)

// Minter produces a case number for a category.
type Minter interface {
	Mint(category string) string
}

// Generator is the default Minter. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

type Option func(*Generator)

// WithClock overrides the clock used for the year component.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSource overrides the random source, mostly for tests.
func WithSource(src rand.Source) Option {
	return func(g *Generator) { g.rnd = rand.New(src) }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Mint(category string) string {
	g.mu.Lock()
	n := minNumber + g.rnd.Intn(maxNumber-minNumber+1)
	g.mu.Unlock()

	return fmt.Sprintf("%s/%d/%06d", Prefix(category), g.now().Year(), n)
}

// Prefix maps a category to its three-letter code.
func Prefix(category string) string {
	if p, ok := prefixes[lifecycle.Category(category)]; ok {
		return p
	}
	return FallbackPrefix
}

// Valid reports whether s has the PREFIX/YEAR/NNNNNN shape.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
