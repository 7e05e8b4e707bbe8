// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/students/model"
)

/* ===================== REQUESTS ===================== */

type CreateStudentRequest struct {
	StudentFirstName   string    `json:"student_first_name" validate:"required,min=1,max=50"`
	StudentLastName    string    `json:"student_last_name" validate:"required,min=1,max=50"`
	StudentGender      string    `json:"student_gender" validate:"required,oneof=M F"`
	StudentDateOfBirth time.Time `json:"student_date_of_birth" validate:"required"`

	StudentRollNumber      string `json:"student_roll_number" validate:"required,max=20"`
	StudentAdmissionNumber string `json:"student_admission_number" validate:"required,max=20"`

	StudentClassID   uuid.UUID  `json:"student_class_id" validate:"required"`
	StudentSectionID *uuid.UUID `json:"student_section_id"`
	StudentSessionID uuid.UUID  `json:"student_session_id" validate:"required"`

	StudentEmail           string  `json:"student_email" validate:"required,email,max=100"`
	StudentPhoneNumber     *string `json:"student_phone_number" validate:"omitempty,max=20"`
	StudentAddress         *string `json:"student_address" validate:"omitempty,max=200"`
	StudentCity            *string `json:"student_city" validate:"omitempty,max=50"`
	StudentCountry         *string `json:"student_country" validate:"omitempty,max=50"`
	StudentGuardianName    *string `json:"student_guardian_name" validate:"omitempty,max=100"`
	StudentGuardianContact *string `json:"student_guardian_contact" validate:"omitempty,max=20"`

	StudentEnrollmentDate *time.Time `json:"student_enrollment_date"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	r.StudentRollNumber = strings.TrimSpace(r.StudentRollNumber)
	r.StudentAdmissionNumber = strings.TrimSpace(r.StudentAdmissionNumber)
	r.StudentEmail = strings.ToLower(strings.TrimSpace(r.StudentEmail))
}

func (r *CreateStudentRequest) ToModel() *model.StudentModel {
	enrolled := time.Now()
	if r.StudentEnrollmentDate != nil {
		enrolled = *r.StudentEnrollmentDate
	}
	return &model.StudentModel{
		StudentFirstName:       r.StudentFirstName,
		StudentLastName:        r.StudentLastName,
		StudentGender:          r.StudentGender,
		StudentDateOfBirth:     r.StudentDateOfBirth,
		StudentRollNumber:      r.StudentRollNumber,
		StudentAdmissionNumber: r.StudentAdmissionNumber,
		StudentClassID:         r.StudentClassID,
		StudentSectionID:       r.StudentSectionID,
		StudentSessionID:       r.StudentSessionID,
		StudentIsActive:        true,
		StudentEmail:           r.StudentEmail,
		StudentPhoneNumber:     r.StudentPhoneNumber,
		StudentAddress:         r.StudentAddress,
		StudentCity:            r.StudentCity,
		StudentCountry:         r.StudentCountry,
		StudentGuardianName:    r.StudentGuardianName,
		StudentGuardianContact: r.StudentGuardianContact,
		StudentEnrollmentDate:  enrolled,
	}
}

// UpdateStudentRequest: partial update (PATCH). Pointer = field dikirim.
type UpdateStudentRequest struct {
	StudentFirstName   *string    `json:"student_first_name" validate:"omitempty,min=1,max=50"`
	StudentLastName    *string    `json:"student_last_name" validate:"omitempty,min=1,max=50"`
	StudentGender      *string    `json:"student_gender" validate:"omitempty,oneof=M F"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth"`

	StudentRollNumber *string `json:"student_roll_number" validate:"omitempty,max=20"`

	StudentClassID   *uuid.UUID `json:"student_class_id"`
	StudentSectionID *uuid.UUID `json:"student_section_id"`
	StudentSessionID *uuid.UUID `json:"student_session_id"`
	StudentIsActive  *bool      `json:"student_is_active"`

	StudentEmail           *string `json:"student_email" validate:"omitempty,email,max=100"`
	StudentPhoneNumber     *string `json:"student_phone_number" validate:"omitempty,max=20"`
	StudentAddress         *string `json:"student_address" validate:"omitempty,max=200"`
	StudentCity            *string `json:"student_city" validate:"omitempty,max=50"`
	StudentCountry         *string `json:"student_country" validate:"omitempty,max=50"`
	StudentGuardianName    *string `json:"student_guardian_name" validate:"omitempty,max=100"`
	StudentGuardianContact *string `json:"student_guardian_contact" validate:"omitempty,max=20"`
}

func (r *UpdateStudentRequest) ApplyUpdates(m *model.StudentModel) {
	if r.StudentFirstName != nil {
		m.StudentFirstName = *r.StudentFirstName
	}
	if r.StudentLastName != nil {
		m.StudentLastName = *r.StudentLastName
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = *r.StudentDateOfBirth
	}
	if r.StudentRollNumber != nil {
		m.StudentRollNumber = *r.StudentRollNumber
	}
	if r.StudentClassID != nil {
		m.StudentClassID = *r.StudentClassID
	}
	if r.StudentSectionID != nil {
		m.StudentSectionID = r.StudentSectionID
	}
	if r.StudentSessionID != nil {
		m.StudentSessionID = *r.StudentSessionID
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
	if r.StudentEmail != nil {
		m.StudentEmail = *r.StudentEmail
	}
	if r.StudentPhoneNumber != nil {
		m.StudentPhoneNumber = r.StudentPhoneNumber
	}
	if r.StudentAddress != nil {
		m.StudentAddress = r.StudentAddress
	}
	if r.StudentCity != nil {
		m.StudentCity = r.StudentCity
	}
	if r.StudentCountry != nil {
		m.StudentCountry = r.StudentCountry
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianContact != nil {
		m.StudentGuardianContact = r.StudentGuardianContact
	}
}

/* ===================== RESPONSES ===================== */

type StudentResponse struct {
	StudentID uuid.UUID `json:"student_id"`

	StudentFirstName   string    `json:"student_first_name"`
	StudentLastName    string    `json:"student_last_name"`
	StudentFullName    string    `json:"student_full_name"`
	StudentGender      string    `json:"student_gender"`
	StudentDateOfBirth time.Time `json:"student_date_of_birth"`

	StudentRollNumber      string `json:"student_roll_number"`
	StudentAdmissionNumber string `json:"student_admission_number"`

	StudentClassID   uuid.UUID  `json:"student_class_id"`
	StudentSectionID *uuid.UUID `json:"student_section_id,omitempty"`
	StudentSessionID uuid.UUID  `json:"student_session_id"`
	StudentIsActive  bool       `json:"student_is_active"`

	StudentEmail           string  `json:"student_email"`
	StudentPhoneNumber     *string `json:"student_phone_number,omitempty"`
	StudentAddress         *string `json:"student_address,omitempty"`
	StudentCity            *string `json:"student_city,omitempty"`
	StudentCountry         *string `json:"student_country,omitempty"`
	StudentGuardianName    *string `json:"student_guardian_name,omitempty"`
	StudentGuardianContact *string `json:"student_guardian_contact,omitempty"`

	StudentEnrollmentDate time.Time `json:"student_enrollment_date"`
	StudentCreatedAt      time.Time `json:"student_created_at"`
	StudentUpdatedAt      time.Time `json:"student_updated_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:              m.StudentID,
		StudentFirstName:       m.StudentFirstName,
		StudentLastName:        m.StudentLastName,
		StudentFullName:        m.FullName(),
		StudentGender:          m.StudentGender,
		StudentDateOfBirth:     m.StudentDateOfBirth,
		StudentRollNumber:      m.StudentRollNumber,
		StudentAdmissionNumber: m.StudentAdmissionNumber,
		StudentClassID:         m.StudentClassID,
		StudentSectionID:       m.StudentSectionID,
		StudentSessionID:       m.StudentSessionID,
		StudentIsActive:        m.StudentIsActive,
		StudentEmail:           m.StudentEmail,
		StudentPhoneNumber:     m.StudentPhoneNumber,
		StudentAddress:         m.StudentAddress,
		StudentCity:            m.StudentCity,
		StudentCountry:         m.StudentCountry,
		StudentGuardianName:    m.StudentGuardianName,
		StudentGuardianContact: m.StudentGuardianContact,
		StudentEnrollmentDate:  m.StudentEnrollmentDate,
		StudentCreatedAt:       m.StudentCreatedAt,
		StudentUpdatedAt:       m.StudentUpdatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
