// file: internals/features/school/classes/model/class_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`

	ClassName string `gorm:"type:varchar(30);not null;column:class_name" json:"class_name"`

	// Level menentukan urutan promosi (total order); level tertinggi = kelas terminal
	ClassLevel int `gorm:"type:integer;not null;uniqueIndex:uq_classes_level,where:class_deleted_at IS NULL;column:class_level" json:"class_level"`

	ClassTeacherInCharge *string `gorm:"type:varchar(100);column:class_teacher_in_charge" json:"class_teacher_in_charge,omitempty"`
	ClassRoomNumber      *string `gorm:"type:varchar(20);column:class_room_number" json:"class_room_number,omitempty"`

	ClassCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.ClassName = strings.TrimSpace(m.ClassName)
	if m.ClassName == "" {
		return errors.New("class_name wajib diisi")
	}
	if m.ClassLevel < 0 {
		return errors.New("class_level tidak boleh negatif")
	}
	return nil
}
