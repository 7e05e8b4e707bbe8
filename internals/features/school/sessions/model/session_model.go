// file: internals/features/school/sessions/model/session_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicSessionModel: jendela tahun/term akademik.
// Maksimal satu session dengan session_is_current = true (dijaga di controller via transaksi).
type AcademicSessionModel struct {
	SessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:session_id" json:"session_id"`

	SessionName string `gorm:"type:varchar(100);not null;column:session_name" json:"session_name"`
	// Example academic_year: "2025-2026"
	SessionAcademicYear string `gorm:"type:varchar(20);not null;column:session_academic_year" json:"session_academic_year"`

	SessionStartDate time.Time `gorm:"type:date;not null;column:session_start_date" json:"session_start_date"`
	SessionEndDate   time.Time `gorm:"type:date;not null;column:session_end_date" json:"session_end_date"`

	SessionIsCurrent bool `gorm:"not null;default:false;column:session_is_current" json:"session_is_current"`

	SessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:session_created_at" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:session_updated_at" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "sessions" }

func (m *AcademicSessionModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.SessionEndDate.Before(m.SessionStartDate) {
		return errors.New("session_end_date must be >= session_start_date")
	}
	m.SessionName = strings.TrimSpace(m.SessionName)
	m.SessionAcademicYear = strings.TrimSpace(m.SessionAcademicYear)
	return nil
}
