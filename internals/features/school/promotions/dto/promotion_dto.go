// file: internals/features/school/promotions/dto/promotion_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	"sekolahku_backend/internals/features/school/promotions/service"
)

/* ===================== REQUESTS ===================== */

// ProcessPromotionRequest: batch eksplisit (daftar siswa + tujuan).
type ProcessPromotionRequest struct {
	StudentIDs      []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	FromClassID     uuid.UUID   `json:"from_class_id" validate:"required"`
	ToClassID       *uuid.UUID  `json:"to_class_id"`
	ToSectionID     *uuid.UUID  `json:"to_section_id"`
	FromSessionID   uuid.UUID   `json:"from_session_id" validate:"required"`
	ToSessionID     uuid.UUID   `json:"to_session_id" validate:"required"`
	PromotionDate   *time.Time  `json:"promotion_date"`
	RegenerateRolls bool        `json:"regenerate_rolls"`
	Notes           *string     `json:"notes" validate:"omitempty,max=500"`
}

func (r *ProcessPromotionRequest) ToServiceRequest() service.PromotionRequest {
	req := service.PromotionRequest{
		StudentIDs:      r.StudentIDs,
		FromClassID:     r.FromClassID,
		ToClassID:       r.ToClassID,
		ToSectionID:     r.ToSectionID,
		FromSessionID:   r.FromSessionID,
		ToSessionID:     r.ToSessionID,
		RegenerateRolls: r.RegenerateRolls,
		Notes:           r.Notes,
	}
	if r.PromotionDate != nil {
		req.PromotionDate = *r.PromotionDate
	}
	return req
}

// PromoteClassRequest: satu kelas utuh; kelas tujuan ditentukan sequencer.
type PromoteClassRequest struct {
	ClassID       uuid.UUID  `json:"class_id" validate:"required"`
	SectionID     *uuid.UUID `json:"section_id"`
	FromSessionID uuid.UUID  `json:"from_session_id" validate:"required"`
	ToSessionID   uuid.UUID  `json:"to_session_id" validate:"required"`
	PromotionDate *time.Time `json:"promotion_date"`
}

/* ===================== RESPONSES ===================== */

type PromotionHistoryResponse struct {
	PromotionHistoryID uuid.UUID `json:"promotion_history_id"`

	StudentID        uuid.UUID `json:"student_id"`
	StudentFirstName string    `json:"student_first_name"`
	StudentLastName  string    `json:"student_last_name"`

	OldClassID   uuid.UUID  `json:"old_class_id"`
	NewClassID   *uuid.UUID `json:"new_class_id,omitempty"`
	OldSessionID uuid.UUID  `json:"old_session_id"`
	NewSessionID *uuid.UUID `json:"new_session_id,omitempty"`

	PromotionDate time.Time `json:"promotion_date"`
	AcademicYear  string    `json:"academic_year"`
	PromotionType string    `json:"promotion_type"`
	Status        string    `json:"status"`
	PromotedBy    string    `json:"promoted_by"`

	FinalPercentage *float64 `json:"final_percentage,omitempty"`
	FinalGrade      *string  `json:"final_grade,omitempty"`

	Notes   *string `json:"notes,omitempty"`
	Remarks *string `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromHistoryModel(m *promoModel.PromotionHistoryModel) PromotionHistoryResponse {
	return PromotionHistoryResponse{
		PromotionHistoryID: m.PromotionHistoryID,
		StudentID:          m.PromotionHistoryStudentID,
		StudentFirstName:   m.PromotionHistoryStudentFirstName,
		StudentLastName:    m.PromotionHistoryStudentLastName,
		OldClassID:         m.PromotionHistoryOldClassID,
		NewClassID:         m.PromotionHistoryNewClassID,
		OldSessionID:       m.PromotionHistoryOldSessionID,
		NewSessionID:       m.PromotionHistoryNewSessionID,
		PromotionDate:      m.PromotionHistoryPromotionDate,
		AcademicYear:       m.PromotionHistoryAcademicYear,
		PromotionType:      string(m.PromotionHistoryPromotionType),
		Status:             m.Status(),
		PromotedBy:         m.PromotionHistoryPromotedBy,
		FinalPercentage:    m.PromotionHistoryFinalPercentage,
		FinalGrade:         m.PromotionHistoryFinalGrade,
		Notes:              m.PromotionHistoryNotes,
		Remarks:            m.PromotionHistoryRemarks,
		CreatedAt:          m.PromotionHistoryCreatedAt,
	}
}

func FromHistoryModels(ms []promoModel.PromotionHistoryModel) []PromotionHistoryResponse {
	out := make([]PromotionHistoryResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromHistoryModel(&ms[i]))
	}
	return out
}
