package registry

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/casenumber"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/pkg/logger"
)

// fixedMinter always returns the same number, forcing collisions.
type fixedMinter struct{ number string }

func (m fixedMinter) Mint(string) string { return m.number }

// sequenceMinter hands out PREFIX/2025/1000NN in order.
type sequenceMinter struct {
	mu   sync.Mutex
	next int
}

func (m *sequenceMinter) Mint(category string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("%s/2025/%06d", casenumber.Prefix(category), 100000+m.next)
}

type fixture struct {
	db       *gorm.DB
	cases    *CaseStore
	hearings *HearingStore
	cache    cache.Cache
}

func newFixture(t *testing.T, minter casenumber.Minter) *fixture {
	t.Helper()

	db, err := database.Initialize(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	c := cache.NewCache(100, time.Minute)
	cases := NewCaseStore(db, minter, c, logger.Nop())
	return &fixture{
		db:       db,
		cases:    cases,
		hearings: NewHearingStore(db, cases, logger.Nop()),
		cache:    c,
	}
}

func smithVsJohnson() CaseInput {
	return CaseInput{
		Title:     "Smith vs Johnson",
		Category:  "Civil",
		Plaintiff: "Smith",
		Defendant: "Johnson",
		Priority:  "High",
		Status:    "Pending",
	}
}

func caseInput(title, category, priority, status string) CaseInput {
	return CaseInput{
		Title:     title,
		Category:  category,
		Priority:  priority,
		Status:    status,
		Plaintiff: "P " + title,
		Defendant: "D " + title,
	}
}

func hearingInput(title, caseID string, start time.Time) HearingInput {
	return HearingInput{
		Title:  title,
		CaseID: caseID,
		Start:  start,
		End:    start.Add(2 * time.Hour),
	}
}

func ctx() context.Context { return context.Background() }
