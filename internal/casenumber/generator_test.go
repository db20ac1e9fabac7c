package casenumber

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.March, 14, 9, 30, 0, 0, time.UTC) }
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"CMI", "CTV"},
		{"Criminal", "CRV"},
		{"Family", "FAW"},
		{"Commercial", "TCM"},
		{"Civil", "CIV"},
		{"Tax", "CAS"},
		{"civil", "CAS"},
		{"", "CAS"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, Prefix(tt.category))
		})
	}
}

func TestMintFormat(t *testing.T) {
	g := NewGenerator(WithClock(fixedClock(2025)))

	for _, category := range []string{"Civil", "Criminal", "Family", "Commercial", "CMI", "Tax"} {
		number := g.Mint(category)

		require.True(t, Valid(number), number)
		parts := strings.Split(number, "/")
		require.Len(t, parts, 3)
		assert.Equal(t, Prefix(category), parts[0])
		assert.Equal(t, "2025", parts[1])

		n, err := strconv.Atoi(parts[2])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, minNumber)
		assert.LessOrEqual(t, n, maxNumber)
	}
}

func TestMintUsesCurrentYearByDefault(t *testing.T) {
	number := NewGenerator().Mint("Civil")
	assert.True(t, strings.HasPrefix(number, fmt.Sprintf("CIV/%d/", time.Now().Year())), number)
}

func TestMintIsDeterministicForSource(t *testing.T) {
	a := NewGenerator(WithClock(fixedClock(2024)), WithSource(rand.NewSource(42)))
	b := NewGenerator(WithClock(fixedClock(2024)), WithSource(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Mint("Family"), b.Mint("Family"))
	}
}

func TestMintConcurrent(t *testing.T) {
	g := NewGenerator()

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = g.Mint("Commercial")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, Valid(r), r)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("CIV/2025/123456"))
	assert.False(t, Valid("CIV/2025/12345"))
	assert.False(t, Valid("CIV/2025/012345"))
	assert.False(t, Valid("civ/2025/123456"))
	assert.False(t, Valid("CR/2025/123"))
}
