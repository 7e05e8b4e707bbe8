// file: internals/features/school/alumni/dto/alumni_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	promoModel "sekolahku_backend/internals/features/school/promotions/model"
)

// UpdateAlumniRequest: hanya field pasca-kelulusan yang boleh diubah.
// Snapshot kelulusan immutable.
type UpdateAlumniRequest struct {
	AlumniCurrentOccupation *string         `json:"alumni_current_occupation" validate:"omitempty,max=100"`
	AlumniCurrentEmployer   *string         `json:"alumni_current_employer" validate:"omitempty,max=100"`
	AlumniHigherEducation   *string         `json:"alumni_higher_education" validate:"omitempty,max=100"`
	AlumniCurrentEmail      *string         `json:"alumni_current_email" validate:"omitempty,email,max=100"`
	AlumniCurrentPhone      *string         `json:"alumni_current_phone" validate:"omitempty,max=20"`
	AlumniCurrentAddress    *string         `json:"alumni_current_address" validate:"omitempty,max=200"`
	AlumniExtraInfo         *datatypes.JSON `json:"alumni_extra_info"`
}

func (r *UpdateAlumniRequest) ApplyUpdates(m *promoModel.AlumniModel) {
	if r.AlumniCurrentOccupation != nil {
		m.AlumniCurrentOccupation = r.AlumniCurrentOccupation
	}
	if r.AlumniCurrentEmployer != nil {
		m.AlumniCurrentEmployer = r.AlumniCurrentEmployer
	}
	if r.AlumniHigherEducation != nil {
		m.AlumniHigherEducation = r.AlumniHigherEducation
	}
	if r.AlumniCurrentEmail != nil {
		m.AlumniCurrentEmail = r.AlumniCurrentEmail
	}
	if r.AlumniCurrentPhone != nil {
		m.AlumniCurrentPhone = r.AlumniCurrentPhone
	}
	if r.AlumniCurrentAddress != nil {
		m.AlumniCurrentAddress = r.AlumniCurrentAddress
	}
	if r.AlumniExtraInfo != nil {
		m.AlumniExtraInfo = *r.AlumniExtraInfo
	}
}

type AlumniResponse struct {
	AlumniID                uuid.UUID `json:"alumni_id"`
	AlumniOriginalStudentID uuid.UUID `json:"alumni_original_student_id"`

	AlumniFirstName   string    `json:"alumni_first_name"`
	AlumniLastName    string    `json:"alumni_last_name"`
	AlumniGender      string    `json:"alumni_gender"`
	AlumniDateOfBirth time.Time `json:"alumni_date_of_birth"`
	AlumniRollNumber  string    `json:"alumni_roll_number"`
	AlumniEmail       string    `json:"alumni_email"`

	AlumniGraduatedFromClassID uuid.UUID `json:"alumni_graduated_from_class_id"`
	AlumniGraduationDate       time.Time `json:"alumni_graduation_date"`
	AlumniAcademicYear         string    `json:"alumni_academic_year"`
	AlumniFinalPercentage      *float64  `json:"alumni_final_percentage,omitempty"`
	AlumniFinalGrade           *string   `json:"alumni_final_grade,omitempty"`
	AlumniGraduationStatus     string    `json:"alumni_graduation_status"`

	AlumniCurrentOccupation *string        `json:"alumni_current_occupation,omitempty"`
	AlumniCurrentEmployer   *string        `json:"alumni_current_employer,omitempty"`
	AlumniHigherEducation   *string        `json:"alumni_higher_education,omitempty"`
	AlumniCurrentEmail      *string        `json:"alumni_current_email,omitempty"`
	AlumniCurrentPhone      *string        `json:"alumni_current_phone,omitempty"`
	AlumniCurrentAddress    *string        `json:"alumni_current_address,omitempty"`
	AlumniExtraInfo         datatypes.JSON `json:"alumni_extra_info,omitempty"`

	AlumniCreatedAt time.Time `json:"alumni_created_at"`
	AlumniUpdatedAt time.Time `json:"alumni_updated_at"`
}

func FromModel(m *promoModel.AlumniModel) AlumniResponse {
	return AlumniResponse{
		AlumniID:                   m.AlumniID,
		AlumniOriginalStudentID:    m.AlumniOriginalStudentID,
		AlumniFirstName:            m.AlumniFirstName,
		AlumniLastName:             m.AlumniLastName,
		AlumniGender:               m.AlumniGender,
		AlumniDateOfBirth:          m.AlumniDateOfBirth,
		AlumniRollNumber:           m.AlumniRollNumber,
		AlumniEmail:                m.AlumniEmail,
		AlumniGraduatedFromClassID: m.AlumniGraduatedFromClassID,
		AlumniGraduationDate:       m.AlumniGraduationDate,
		AlumniAcademicYear:         m.AlumniAcademicYear,
		AlumniFinalPercentage:      m.AlumniFinalPercentage,
		AlumniFinalGrade:           m.AlumniFinalGrade,
		AlumniGraduationStatus:     string(m.AlumniGraduationStatus),
		AlumniCurrentOccupation:    m.AlumniCurrentOccupation,
		AlumniCurrentEmployer:      m.AlumniCurrentEmployer,
		AlumniHigherEducation:      m.AlumniHigherEducation,
		AlumniCurrentEmail:         m.AlumniCurrentEmail,
		AlumniCurrentPhone:         m.AlumniCurrentPhone,
		AlumniCurrentAddress:       m.AlumniCurrentAddress,
		AlumniExtraInfo:            m.AlumniExtraInfo,
		AlumniCreatedAt:            m.AlumniCreatedAt,
		AlumniUpdatedAt:            m.AlumniUpdatedAt,
	}
}

func FromModels(ms []promoModel.AlumniModel) []AlumniResponse {
	out := make([]AlumniResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
