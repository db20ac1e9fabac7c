// Package registry owns the case and hearing record stores. It enforces the
// creation invariants, assigns identifiers and serves every list through the
// filter engine.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/casenumber"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/internal/filter"
	"github.com/JustJay7/court-registry/internal/lifecycle"
	"github.com/JustJay7/court-registry/pkg/logger"
)

type CaseStore struct {
	db     *gorm.DB
	minter casenumber.Minter
	cache  cache.Cache
	logger *logger.Logger
	now    func() time.Time
}

func NewCaseStore(db *gorm.DB, minter casenumber.Minter, cache cache.Cache, logger *logger.Logger) *CaseStore {
	return &CaseStore{
		db:     db,
		minter: minter,
		cache:  cache,
		logger: logger.With("store", "cases"),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for filed dates.
func (s *CaseStore) WithClock(now func() time.Time) *CaseStore {
	s.now = now
	return s
}

// Create validates the input, mints a case number and inserts the record in a
// single statement. A minted number that already exists is reported as a
// conflict and nothing is written.
func (s *CaseStore) Create(ctx context.Context, in CaseInput) (*database.Case, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	number := s.minter.Mint(in.Category)
	if !casenumber.Valid(number) {
		s.logger.Error("Minted malformed case number", "case_number", number, "category", in.Category)
		return nil, apperr.Store("mint case number", fmt.Errorf("malformed case number %q", number))
	}

	record := &database.Case{
		CaseNumber:  number,
		Title:       in.Title,
		Category:    lifecycle.Category(in.Category),
		Priority:    lifecycle.Priority(in.Priority),
		Status:      lifecycle.CaseStatus(in.Status),
		Plaintiff:   in.Plaintiff,
		Defendant:   in.Defendant,
		FiledDate:   s.now().UTC(),
		NextHearing: in.NextHearing,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		if isDuplicate(err) {
			s.logger.Warn("Case number collision", "case_number", record.CaseNumber)
			return nil, &apperr.ConflictError{Field: "caseNumber", Value: record.CaseNumber}
		}
		s.logger.Error("Failed to create case", "error", err)
		return nil, apperr.Store("create case", err)
	}

	s.logger.Info("Case registered",
		"id", record.ID,
		"case_number", record.CaseNumber,
		"category", record.Category,
	)
	s.cache.Set(record)
	return record, nil
}

func (s *CaseStore) Get(ctx context.Context, id string) (*database.Case, error) {
	if cached, found := s.cache.Get(id); found {
		return cached, nil
	}

	generation := s.cache.Generation()
	var record database.Case
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Entity: "case", ID: id}
		}
		s.logger.Error("Failed to load case", "id", id, "error", err)
		return nil, apperr.Store("get case", err)
	}

	s.cache.SetIfUnchanged(&record, generation)
	return &record, nil
}

// List returns cases newest-filed first, narrowed by the given criteria.
func (s *CaseStore) List(ctx context.Context, criteria ...filter.Criteria) ([]database.Case, error) {
	var cases []database.Case
	err := s.db.WithContext(ctx).
		Order("filed_date DESC").
		Order("created_at DESC").
		Find(&cases).Error
	if err != nil {
		s.logger.Error("Failed to list cases", "error", err)
		return nil, apperr.Store("list cases", err)
	}

	return filter.Apply(cases, criteria...), nil
}

// Update merges the provided fields over the stored record. Concurrent
// updates are last-writer-wins.
func (s *CaseStore) Update(ctx context.Context, id string, upd CaseUpdate) (*database.Case, error) {
	if err := upd.validate(); err != nil {
		return nil, err
	}

	var record database.Case
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}
		applyCaseUpdate(&record, upd)
		// Only an existing row is written; a row deleted since First stays deleted.
		res := tx.Model(&record).Select("*").Omit("id", "created_at").Updates(&record)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Entity: "case", ID: id}
		}
		s.logger.Error("Failed to update case", "id", id, "error", err)
		return nil, apperr.Store("update case", err)
	}

	s.cache.Delete(id)
	s.logger.Info("Case updated", "id", id, "status", record.Status, "priority", record.Priority)
	return &record, nil
}

func applyCaseUpdate(record *database.Case, upd CaseUpdate) {
	if upd.Title != nil {
		record.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Category != nil {
		record.Category = lifecycle.Category(strings.TrimSpace(*upd.Category))
	}
	if upd.Priority != nil {
		record.Priority = lifecycle.Priority(*upd.Priority)
	}
	if upd.Status != nil {
		record.Status = lifecycle.CaseStatus(*upd.Status)
	}
	if upd.Plaintiff != nil {
		record.Plaintiff = strings.TrimSpace(*upd.Plaintiff)
	}
	if upd.Defendant != nil {
		record.Defendant = strings.TrimSpace(*upd.Defendant)
	}
	if upd.NextHearing != nil {
		next := strings.TrimSpace(*upd.NextHearing)
		if next == "" {
			record.NextHearing = nil
		} else {
			record.NextHearing = &next
		}
	}
}

// Delete removes a case. Hearings that reference its number are left as they are.
func (s *CaseStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&database.Case{}, "id = ?", id)
	if res.Error != nil {
		s.logger.Error("Failed to delete case", "id", id, "error", res.Error)
		return apperr.Store("delete case", res.Error)
	}
	s.cache.Delete(id)
	if res.RowsAffected == 0 {
		return &apperr.NotFoundError{Entity: "case", ID: id}
	}

	s.logger.Info("Case deleted", "id", id)
	return nil
}

type Summary struct {
	Total      int                          `json:"total"`
	ByPriority map[lifecycle.Priority]int   `json:"byPriority"`
	ByStatus   map[lifecycle.CaseStatus]int `json:"byStatus"`
	ByView     map[filter.View]int          `json:"byView"`
}

// Summary computes the sidebar and status counts over all cases.
func (s *CaseStore) Summary(ctx context.Context) (*Summary, error) {
	cases, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{
		Total:      len(cases),
		ByPriority: make(map[lifecycle.Priority]int, len(lifecycle.Priorities)),
		ByStatus:   make(map[lifecycle.CaseStatus]int, len(lifecycle.CaseStatuses)),
		ByView:     make(map[filter.View]int, len(filter.Views)),
	}
	for _, p := range lifecycle.Priorities {
		sum.ByPriority[p] = filter.Count(cases, filter.Criteria{Priority: string(p)})
	}
	for _, st := range lifecycle.CaseStatuses {
		sum.ByStatus[st] = filter.Count(cases, filter.Criteria{Status: string(st)})
	}
	for _, v := range filter.Views {
		criteria, _ := filter.ForView(v)
		sum.ByView[v] = filter.Count(cases, criteria)
	}

	return sum, nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
