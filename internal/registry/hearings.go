package registry

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/internal/filter"
	"github.com/JustJay7/court-registry/internal/lifecycle"
	"github.com/JustJay7/court-registry/pkg/logger"
)

// HearingStore owns hearing records. A hearing points at its case only by
// case number; the store never checks that the case exists.
type HearingStore struct {
	db     *gorm.DB
	cases  *CaseStore
	logger *logger.Logger
}

func NewHearingStore(db *gorm.DB, cases *CaseStore, logger *logger.Logger) *HearingStore {
	return &HearingStore{
		db:     db,
		cases:  cases,
		logger: logger.With("store", "hearings"),
	}
}

func (s *HearingStore) Create(ctx context.Context, in HearingInput) (*database.Hearing, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.End.Before(in.Start) {
		s.logger.Warn("Hearing ends before it starts",
			"case_id", in.CaseID,
			"start", in.Start,
			"end", in.End,
		)
	}

	record := &database.Hearing{
		Title:       in.Title,
		CaseID:      database.CaseRef(in.CaseID),
		Start:       in.Start,
		End:         in.End,
		Judge:       in.Judge,
		Parties:     []string(in.Parties),
		CaseType:    in.CaseType,
		Priority:    lifecycle.Priority(in.Priority),
		Status:      lifecycle.HearingStatus(in.Status),
		Courtroom:   in.Courtroom,
		Description: in.Description,
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		s.logger.Error("Failed to create hearing", "case_id", in.CaseID, "error", err)
		return nil, apperr.Store("create hearing", err)
	}

	s.logger.Info("Hearing scheduled",
		"id", record.ID,
		"case_id", record.CaseID,
		"start", record.Start,
	)
	return record, nil
}

// CreateForCase schedules a hearing from an existing case, copying its number
// and filling title, parties and case type from the case where the input
// leaves them blank.
func (s *HearingStore) CreateForCase(ctx context.Context, caseID string, in HearingInput) (*database.Hearing, error) {
	c, err := s.cases.Get(ctx, caseID)
	if err != nil {
		return nil, err
	}

	in.CaseID = c.CaseNumber
	if strings.TrimSpace(in.Title) == "" {
		in.Title = c.Title
	}
	if len(in.Parties) == 0 {
		in.Parties = Parties{c.Plaintiff, c.Defendant}
	}
	if strings.TrimSpace(in.CaseType) == "" {
		in.CaseType = string(c.Category)
	}

	return s.Create(ctx, in)
}

func (s *HearingStore) Get(ctx context.Context, id string) (*database.Hearing, error) {
	var record database.Hearing
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Entity: "hearing", ID: id}
		}
		s.logger.Error("Failed to load hearing", "id", id, "error", err)
		return nil, apperr.Store("get hearing", err)
	}
	return &record, nil
}

// List returns hearings earliest first, narrowed by the given criteria.
func (s *HearingStore) List(ctx context.Context, criteria ...filter.Criteria) ([]database.Hearing, error) {
	var hearings []database.Hearing
	err := s.db.WithContext(ctx).
		Order("start_at ASC").
		Order("created_at ASC").
		Find(&hearings).Error
	if err != nil {
		s.logger.Error("Failed to list hearings", "error", err)
		return nil, apperr.Store("list hearings", err)
	}

	return filter.Apply(hearings, criteria...), nil
}

// ForCase lists the hearings that reference a case number.
func (s *HearingStore) ForCase(ctx context.Context, caseNumber string) ([]database.Hearing, error) {
	var hearings []database.Hearing
	err := s.db.WithContext(ctx).
		Where("case_id = ?", caseNumber).
		Order("start_at ASC").
		Find(&hearings).Error
	if err != nil {
		s.logger.Error("Failed to list hearings for case", "case_id", caseNumber, "error", err)
		return nil, apperr.Store("list hearings for case", err)
	}
	return hearings, nil
}

func (s *HearingStore) Update(ctx context.Context, id string, upd HearingUpdate) (*database.Hearing, error) {
	if err := upd.validate(); err != nil {
		return nil, err
	}

	var record database.Hearing
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "id = ?", id).Error; err != nil {
			return err
		}
		applyHearingUpdate(&record, upd)
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
			return nil, &apperr.NotFoundError{Entity: "hearing", ID: id}
		}
		s.logger.Error("Failed to update hearing", "id", id, "error", err)
		return nil, apperr.Store("update hearing", err)
	}

	s.logger.Info("Hearing updated", "id", id, "status", record.Status)
	return &record, nil
}

func applyHearingUpdate(record *database.Hearing, upd HearingUpdate) {
	if upd.Title != nil {
		record.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Start != nil {
		record.Start = upd.Start.UTC()
	}
	if upd.End != nil {
		record.End = upd.End.UTC()
	}
	if upd.Judge != nil {
		record.Judge = strings.TrimSpace(*upd.Judge)
	}
	if upd.Parties != nil {
		record.Parties = []string(*upd.Parties)
	}
	if upd.CaseType != nil {
		record.CaseType = strings.TrimSpace(*upd.CaseType)
	}
	if upd.Priority != nil {
		record.Priority = lifecycle.Priority(*upd.Priority)
	}
	if upd.Status != nil {
		record.Status = lifecycle.HearingStatus(*upd.Status)
	}
	if upd.Courtroom != nil {
		record.Courtroom = strings.TrimSpace(*upd.Courtroom)
	}
	if upd.Description != nil {
		record.Description = *upd.Description
	}
}

func (s *HearingStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&database.Hearing{}, "id = ?", id)
	if res.Error != nil {
		s.logger.Error("Failed to delete hearing", "id", id, "error", res.Error)
		return apperr.Store("delete hearing", res.Error)
	}
	if res.RowsAffected == 0 {
		return &apperr.NotFoundError{Entity: "hearing", ID: id}
	}

	s.logger.Info("Hearing cancelled", "id", id)
	return nil
}
