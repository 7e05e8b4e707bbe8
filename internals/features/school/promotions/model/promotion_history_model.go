// file: internals/features/school/promotions/model/promotion_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   ENUM mapping (Postgres: promotion_type)
====================================================== */

type PromotionType string

const (
	PromotionRegular   PromotionType = "Regular"
	PromotionRetained  PromotionType = "Retained"
	PromotionGraduated PromotionType = "Graduated"
)

/* ======================================================
   Model: promotion_histories
   Catatan audit immutable — tidak pernah di-update/di-delete.
====================================================== */

type PromotionHistoryModel struct {
	PromotionHistoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:promotion_history_id" json:"promotion_history_id"`

	PromotionHistoryStudentID uuid.UUID `gorm:"type:uuid;not null;column:promotion_history_student_id;index" json:"promotion_history_student_id"`

	// Snapshot nama siswa saat keputusan: tetap terbaca walau siswa
	// sudah lulus dan barisnya pindah ke alumni.
	PromotionHistoryStudentFirstName string `gorm:"type:varchar(50);not null;column:promotion_history_student_first_name" json:"promotion_history_student_first_name"`
	PromotionHistoryStudentLastName  string `gorm:"type:varchar(50);not null;column:promotion_history_student_last_name" json:"promotion_history_student_last_name"`

	PromotionHistoryOldClassID uuid.UUID  `gorm:"type:uuid;not null;column:promotion_history_old_class_id;index" json:"promotion_history_old_class_id"`
	PromotionHistoryNewClassID *uuid.UUID `gorm:"type:uuid;column:promotion_history_new_class_id;index" json:"promotion_history_new_class_id,omitempty"` // null jika lulus

	PromotionHistoryOldSessionID uuid.UUID  `gorm:"type:uuid;not null;column:promotion_history_old_session_id;index" json:"promotion_history_old_session_id"`
	PromotionHistoryNewSessionID *uuid.UUID `gorm:"type:uuid;column:promotion_history_new_session_id;index" json:"promotion_history_new_session_id,omitempty"`

	PromotionHistoryPromotionDate time.Time     `gorm:"type:date;not null;column:promotion_history_promotion_date" json:"promotion_history_promotion_date"`
	PromotionHistoryAcademicYear  string        `gorm:"type:varchar(20);not null;column:promotion_history_academic_year" json:"promotion_history_academic_year"`
	PromotionHistoryPromotionType PromotionType `gorm:"type:varchar(20);not null;column:promotion_history_promotion_type" json:"promotion_history_promotion_type"`
	PromotionHistoryPromotedBy    string        `gorm:"type:varchar(100);not null;default:'System';column:promotion_history_promoted_by" json:"promotion_history_promoted_by"`

	// Snapshot performa final untuk audit
	PromotionHistoryFinalPercentage *float64 `gorm:"type:numeric(5,2);column:promotion_history_final_percentage" json:"promotion_history_final_percentage,omitempty"`
	PromotionHistoryFinalGrade      *string  `gorm:"type:varchar(5);column:promotion_history_final_grade" json:"promotion_history_final_grade,omitempty"`

	PromotionHistoryIsPromoted  bool `gorm:"not null;default:false;column:promotion_history_is_promoted" json:"promotion_history_is_promoted"`
	PromotionHistoryIsGraduated bool `gorm:"not null;default:false;column:promotion_history_is_graduated" json:"promotion_history_is_graduated"`

	PromotionHistoryNotes   *string `gorm:"type:varchar(500);column:promotion_history_notes" json:"promotion_history_notes,omitempty"`
	PromotionHistoryRemarks *string `gorm:"type:varchar(500);column:promotion_history_remarks" json:"promotion_history_remarks,omitempty"`

	PromotionHistoryCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:promotion_history_created_at" json:"promotion_history_created_at"`
}

func (PromotionHistoryModel) TableName() string { return "promotion_histories" }

func (m *PromotionHistoryModel) Status() string {
	switch {
	case m.PromotionHistoryIsGraduated:
		return "GRADUATED"
	case m.PromotionHistoryIsPromoted:
		return "PROMOTED"
	default:
		return "RETAINED"
	}
}
