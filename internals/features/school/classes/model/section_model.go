// file: internals/features/school/classes/model/section_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionModel struct {
	SectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_id" json:"section_id"`

	// (class, name) unik
	SectionName    string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_sections_class_name,where:section_deleted_at IS NULL;column:section_name" json:"section_name"`
	SectionClassID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_sections_class_name,where:section_deleted_at IS NULL;column:section_class_id" json:"section_class_id,omitempty"`

	SectionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:section_created_at" json:"section_created_at"`
	SectionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:section_updated_at" json:"section_updated_at"`
	SectionDeletedAt gorm.DeletedAt `gorm:"column:section_deleted_at;index" json:"section_deleted_at,omitempty"`
}

func (SectionModel) TableName() string { return "sections" }

func (m *SectionModel) BeforeSave(tx *gorm.DB) error {
	m.SectionName = strings.ToUpper(strings.TrimSpace(m.SectionName))
	return nil
}
