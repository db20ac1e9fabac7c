package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/filter"
	"github.com/JustJay7/court-registry/internal/lifecycle"
)

// CaseRef is a soft reference to a case by its case number. Nothing checks
// that the case exists, and deleting the case leaves the reference in place.
type CaseRef string

type Case struct {
	ID          string               `json:"id" gorm:"primaryKey;size:36"`
	CaseNumber  string               `json:"caseNumber" gorm:"size:32;not null;uniqueIndex"`
	Title       string               `json:"title" gorm:"not null"`
	Category    lifecycle.Category   `json:"category" gorm:"size:32;not null"`
	Priority    lifecycle.Priority   `json:"priority" gorm:"size:16;not null"`
	Status      lifecycle.CaseStatus `json:"status" gorm:"size:32;not null"`
	Plaintiff   string               `json:"plaintiff" gorm:"not null"`
	Defendant   string               `json:"defendant" gorm:"not null"`
	FiledDate   time.Time            `json:"filedDate" gorm:"not null"`
	NextHearing *string              `json:"nextHearing"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type Hearing struct {
	ID          string                  `json:"id" gorm:"primaryKey;size:36"`
	Title       string                  `json:"title" gorm:"not null"`
	CaseID      CaseRef                 `json:"caseId" gorm:"size:64;not null;index"`
	Start       time.Time               `json:"start" gorm:"column:start_at;not null"`
	End         time.Time               `json:"end" gorm:"column:end_at;not null"`
	Judge       string                  `json:"judge"`
	Parties     []string                `json:"parties" gorm:"type:text;serializer:json"`
	CaseType    string                  `json:"caseType"`
	Priority    lifecycle.Priority      `json:"priority" gorm:"size:16;not null"`
	Status      lifecycle.HearingStatus `json:"status" gorm:"size:32;not null"`
	Courtroom   string                  `json:"courtroom"`
	Description string                  `json:"description" gorm:"type:text"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Case) TableName() string {
	return "cases"
}

func (Hearing) TableName() string {
	return "hearings"
}

func (User) TableName() string {
	return "users"
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (c Case) FilterFields() filter.Fields {
	return filter.Fields{
		Category: string(c.Category),
		Priority: string(c.Priority),
		Status:   string(c.Status),
		Title:    c.Title,
		Number:   c.CaseNumber,
	}
}

func (h Hearing) FilterFields() filter.Fields {
	return filter.Fields{
		Category: h.CaseType,
		Priority: string(h.Priority),
		Status:   string(h.Status),
		Judge:    h.Judge,
		Title:    h.Title,
		Number:   string(h.CaseID),
	}
}

func (c Case) Style() lifecycle.Style {
	return lifecycle.CaseStyle(c.Priority, c.Status)
}

func (h Hearing) Style() lifecycle.Style {
	return lifecycle.HearingStyle(h.Priority, h.Status)
}
