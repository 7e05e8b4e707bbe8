// file: internals/features/school/sessions/dto/session_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/sessions/model"
)

type CreateSessionRequest struct {
	SessionName         string    `json:"session_name" validate:"required,min=1,max=100"`
	SessionAcademicYear string    `json:"session_academic_year" validate:"required,max=20"`
	SessionStartDate    time.Time `json:"session_start_date" validate:"required"`
	SessionEndDate      time.Time `json:"session_end_date" validate:"required"`
}

func (r *CreateSessionRequest) Normalize() {
	r.SessionName = strings.TrimSpace(r.SessionName)
	r.SessionAcademicYear = strings.TrimSpace(r.SessionAcademicYear)
}

func (r *CreateSessionRequest) ToModel() *model.AcademicSessionModel {
	return &model.AcademicSessionModel{
		SessionName:         r.SessionName,
		SessionAcademicYear: r.SessionAcademicYear,
		SessionStartDate:    r.SessionStartDate,
		SessionEndDate:      r.SessionEndDate,
	}
}

type UpdateSessionRequest struct {
	SessionName         *string    `json:"session_name" validate:"omitempty,min=1,max=100"`
	SessionAcademicYear *string    `json:"session_academic_year" validate:"omitempty,max=20"`
	SessionStartDate    *time.Time `json:"session_start_date"`
	SessionEndDate      *time.Time `json:"session_end_date"`
}

func (r *UpdateSessionRequest) ApplyUpdates(m *model.AcademicSessionModel) {
	if r.SessionName != nil {
		m.SessionName = *r.SessionName
	}
	if r.SessionAcademicYear != nil {
		m.SessionAcademicYear = *r.SessionAcademicYear
	}
	if r.SessionStartDate != nil {
		m.SessionStartDate = *r.SessionStartDate
	}
	if r.SessionEndDate != nil {
		m.SessionEndDate = *r.SessionEndDate
	}
}

type SessionResponse struct {
	SessionID           uuid.UUID `json:"session_id"`
	SessionName         string    `json:"session_name"`
	SessionAcademicYear string    `json:"session_academic_year"`
	SessionStartDate    time.Time `json:"session_start_date"`
	SessionEndDate      time.Time `json:"session_end_date"`
	SessionIsCurrent    bool      `json:"session_is_current"`
	SessionCreatedAt    time.Time `json:"session_created_at"`
	SessionUpdatedAt    time.Time `json:"session_updated_at"`
}

func FromModel(m *model.AcademicSessionModel) SessionResponse {
	return SessionResponse{
		SessionID:           m.SessionID,
		SessionName:         m.SessionName,
		SessionAcademicYear: m.SessionAcademicYear,
		SessionStartDate:    m.SessionStartDate,
		SessionEndDate:      m.SessionEndDate,
		SessionIsCurrent:    m.SessionIsCurrent,
		SessionCreatedAt:    m.SessionCreatedAt,
		SessionUpdatedAt:    m.SessionUpdatedAt,
	}
}

func FromModels(ms []model.AcademicSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
