// file: internals/features/school/exams/dto/exam_result_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/exams/model"
	"sekolahku_backend/internals/features/school/exams/service"
)

type CreateExamResultRequest struct {
	ExamResultStudentID uuid.UUID `json:"exam_result_student_id" validate:"required"`
	ExamResultClassID   uuid.UUID `json:"exam_result_class_id" validate:"required"`
	ExamResultSessionID uuid.UUID `json:"exam_result_session_id" validate:"required"`

	ExamResultTerm         string `json:"exam_result_term" validate:"required,max=50"`
	ExamResultAcademicYear string `json:"exam_result_academic_year" validate:"required,max=20"`

	ExamResultPercentage float64    `json:"exam_result_percentage" validate:"gte=0,lte=100"`
	ExamResultCompleted  bool       `json:"exam_result_completed"`
	ExamResultExamDate   *time.Time `json:"exam_result_exam_date"`

	ExamResultRemarks     *string `json:"exam_result_remarks" validate:"omitempty,max=500"`
	ExamResultConductedBy *string `json:"exam_result_conducted_by" validate:"omitempty,max=100"`
}

func (r *CreateExamResultRequest) Normalize() {
	r.ExamResultTerm = strings.TrimSpace(r.ExamResultTerm)
	r.ExamResultAcademicYear = strings.TrimSpace(r.ExamResultAcademicYear)
}

// ToModel: grade dan flag lulus DITURUNKAN dari persentase, bukan dari
// input klien.
func (r *CreateExamResultRequest) ToModel() *model.ExamResultModel {
	date := time.Now()
	if r.ExamResultExamDate != nil {
		date = *r.ExamResultExamDate
	}
	return &model.ExamResultModel{
		ExamResultStudentID:    r.ExamResultStudentID,
		ExamResultClassID:      r.ExamResultClassID,
		ExamResultSessionID:    r.ExamResultSessionID,
		ExamResultTerm:         r.ExamResultTerm,
		ExamResultAcademicYear: r.ExamResultAcademicYear,
		ExamResultPercentage:   r.ExamResultPercentage,
		ExamResultGrade:        service.GradeFor(r.ExamResultPercentage),
		ExamResultIsPassed:     service.IsPassing(r.ExamResultPercentage),
		ExamResultCompleted:    r.ExamResultCompleted,
		ExamResultExamDate:     date,
		ExamResultRemarks:      r.ExamResultRemarks,
		ExamResultConductedBy:  r.ExamResultConductedBy,
	}
}

type UpdateExamResultRequest struct {
	ExamResultPercentage  *float64   `json:"exam_result_percentage" validate:"omitempty,gte=0,lte=100"`
	ExamResultCompleted   *bool      `json:"exam_result_completed"`
	ExamResultExamDate    *time.Time `json:"exam_result_exam_date"`
	ExamResultRemarks     *string    `json:"exam_result_remarks" validate:"omitempty,max=500"`
	ExamResultConductedBy *string    `json:"exam_result_conducted_by" validate:"omitempty,max=100"`
}

func (r *UpdateExamResultRequest) ApplyUpdates(m *model.ExamResultModel) {
	if r.ExamResultPercentage != nil {
		m.ExamResultPercentage = *r.ExamResultPercentage
		m.ExamResultGrade = service.GradeFor(*r.ExamResultPercentage)
		m.ExamResultIsPassed = service.IsPassing(*r.ExamResultPercentage)
	}
	if r.ExamResultCompleted != nil {
		m.ExamResultCompleted = *r.ExamResultCompleted
	}
	if r.ExamResultExamDate != nil {
		m.ExamResultExamDate = *r.ExamResultExamDate
	}
	if r.ExamResultRemarks != nil {
		m.ExamResultRemarks = r.ExamResultRemarks
	}
	if r.ExamResultConductedBy != nil {
		m.ExamResultConductedBy = r.ExamResultConductedBy
	}
}

type ExamResultResponse struct {
	ExamResultID uuid.UUID `json:"exam_result_id"`

	ExamResultStudentID uuid.UUID `json:"exam_result_student_id"`
	ExamResultClassID   uuid.UUID `json:"exam_result_class_id"`
	ExamResultSessionID uuid.UUID `json:"exam_result_session_id"`

	ExamResultTerm         string `json:"exam_result_term"`
	ExamResultAcademicYear string `json:"exam_result_academic_year"`

	ExamResultPercentage float64 `json:"exam_result_percentage"`
	ExamResultGrade      string  `json:"exam_result_grade"`
	ExamResultIsPassed   bool    `json:"exam_result_is_passed"`
	ExamResultCompleted  bool    `json:"exam_result_completed"`

	ExamResultExamDate    time.Time `json:"exam_result_exam_date"`
	ExamResultRemarks     *string   `json:"exam_result_remarks,omitempty"`
	ExamResultConductedBy *string   `json:"exam_result_conducted_by,omitempty"`

	ExamResultCreatedAt time.Time `json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time `json:"exam_result_updated_at"`
}

func FromModel(m *model.ExamResultModel) ExamResultResponse {
	return ExamResultResponse{
		ExamResultID:           m.ExamResultID,
		ExamResultStudentID:    m.ExamResultStudentID,
		ExamResultClassID:      m.ExamResultClassID,
		ExamResultSessionID:    m.ExamResultSessionID,
		ExamResultTerm:         m.ExamResultTerm,
		ExamResultAcademicYear: m.ExamResultAcademicYear,
		ExamResultPercentage:   m.ExamResultPercentage,
		ExamResultGrade:        m.ExamResultGrade,
		ExamResultIsPassed:     m.ExamResultIsPassed,
		ExamResultCompleted:    m.ExamResultCompleted,
		ExamResultExamDate:     m.ExamResultExamDate,
		ExamResultRemarks:      m.ExamResultRemarks,
		ExamResultConductedBy:  m.ExamResultConductedBy,
		ExamResultCreatedAt:    m.ExamResultCreatedAt,
		ExamResultUpdatedAt:    m.ExamResultUpdatedAt,
	}
}

func FromModels(ms []model.ExamResultModel) []ExamResultResponse {
	out := make([]ExamResultResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
