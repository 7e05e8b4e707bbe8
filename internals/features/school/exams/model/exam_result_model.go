// file: internals/features/school/exams/model/exam_result_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExamResultModel: hasil ujian satu siswa untuk satu (session, term).
// Dibuat saat hasil direkam; engine promosi hanya membaca, tidak pernah mengubah.
type ExamResultModel struct {
	ExamResultID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_result_id" json:"exam_result_id"`

	ExamResultStudentID uuid.UUID `gorm:"type:uuid;not null;column:exam_result_student_id;index;uniqueIndex:uq_exam_results_student_term_year" json:"exam_result_student_id"`
	// Kelas siswa pada saat ujian
	ExamResultClassID   uuid.UUID `gorm:"type:uuid;not null;column:exam_result_class_id;index" json:"exam_result_class_id"`
	ExamResultSessionID uuid.UUID `gorm:"type:uuid;not null;column:exam_result_session_id;index" json:"exam_result_session_id"`

	// Midterm, Final, dst.
	ExamResultTerm         string `gorm:"type:varchar(50);not null;column:exam_result_term;uniqueIndex:uq_exam_results_student_term_year" json:"exam_result_term"`
	ExamResultAcademicYear string `gorm:"type:varchar(20);not null;column:exam_result_academic_year;uniqueIndex:uq_exam_results_student_term_year" json:"exam_result_academic_year"`

	ExamResultPercentage float64 `gorm:"type:numeric(5,2);not null;check:exam_result_percentage >= 0 AND exam_result_percentage <= 100;column:exam_result_percentage" json:"exam_result_percentage"`
	ExamResultGrade      string  `gorm:"type:varchar(5);not null;column:exam_result_grade" json:"exam_result_grade"`
	ExamResultIsPassed   bool    `gorm:"not null;default:false;column:exam_result_is_passed" json:"exam_result_is_passed"`
	ExamResultCompleted  bool    `gorm:"not null;default:false;column:exam_result_completed" json:"exam_result_completed"`

	ExamResultExamDate time.Time `gorm:"type:date;not null;column:exam_result_exam_date" json:"exam_result_exam_date"`

	ExamResultRemarks     *string `gorm:"type:varchar(500);column:exam_result_remarks" json:"exam_result_remarks,omitempty"`
	ExamResultConductedBy *string `gorm:"type:varchar(100);column:exam_result_conducted_by" json:"exam_result_conducted_by,omitempty"`

	ExamResultCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:exam_result_created_at" json:"exam_result_created_at"`
	ExamResultUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:exam_result_updated_at" json:"exam_result_updated_at"`
}

func (ExamResultModel) TableName() string { return "exam_results" }

func (m *ExamResultModel) Validate() error {
	m.ExamResultTerm = strings.TrimSpace(m.ExamResultTerm)
	m.ExamResultAcademicYear = strings.TrimSpace(m.ExamResultAcademicYear)
	if m.ExamResultTerm == "" {
		return errors.New("exam_result_term wajib diisi")
	}
	if m.ExamResultPercentage < 0 || m.ExamResultPercentage > 100 {
		return errors.New("exam_result_percentage harus 0..100")
	}
	return nil
}
