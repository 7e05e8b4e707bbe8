// file: internals/features/school/students/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// ============ Identitas pribadi ============
	StudentFirstName   string    `gorm:"type:varchar(50);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName    string    `gorm:"type:varchar(50);not null;column:student_last_name" json:"student_last_name"`
	StudentGender      string    `gorm:"type:varchar(10);not null;column:student_gender" json:"student_gender"`
	StudentDateOfBirth time.Time `gorm:"type:date;not null;column:student_date_of_birth" json:"student_date_of_birth"`

	// ============ Identitas akademik ============
	// Roll number unik di antara siswa aktif (partial unique index di DB)
	StudentRollNumber      string `gorm:"type:varchar(20);not null;column:student_roll_number;uniqueIndex:uq_students_roll_number,where:student_deleted_at IS NULL" json:"student_roll_number"`
	StudentAdmissionNumber string `gorm:"type:varchar(20);not null;column:student_admission_number" json:"student_admission_number"`

	// Penempatan saat ini: tepat satu class/section/session per siswa
	StudentClassID   uuid.UUID  `gorm:"type:uuid;not null;column:student_class_id;index" json:"student_class_id"`
	StudentSectionID *uuid.UUID `gorm:"type:uuid;column:student_section_id;index" json:"student_section_id,omitempty"`
	StudentSessionID uuid.UUID  `gorm:"type:uuid;not null;column:student_session_id;index" json:"student_session_id"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	// ============ Kontak & wali ============
	StudentEmail           string  `gorm:"type:varchar(100);not null;column:student_email" json:"student_email"`
	StudentPhoneNumber     *string `gorm:"type:varchar(20);column:student_phone_number" json:"student_phone_number,omitempty"`
	StudentAddress         *string `gorm:"type:varchar(200);column:student_address" json:"student_address,omitempty"`
	StudentCity            *string `gorm:"type:varchar(50);column:student_city" json:"student_city,omitempty"`
	StudentCountry         *string `gorm:"type:varchar(50);column:student_country" json:"student_country,omitempty"`
	StudentGuardianName    *string `gorm:"type:varchar(100);column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentGuardianContact *string `gorm:"type:varchar(20);column:student_guardian_contact" json:"student_guardian_contact,omitempty"`

	StudentEnrollmentDate time.Time `gorm:"type:date;not null;column:student_enrollment_date" json:"student_enrollment_date"`

	// ============ Audit / Soft delete ============
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) FullName() string {
	return strings.TrimSpace(m.StudentFirstName + " " + m.StudentLastName)
}

// ============ Hooks: normalisasi ringan ============
func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFirstName = strings.TrimSpace(m.StudentFirstName)
	m.StudentLastName = strings.TrimSpace(m.StudentLastName)
	m.StudentRollNumber = strings.TrimSpace(m.StudentRollNumber)
	m.StudentEmail = strings.ToLower(strings.TrimSpace(m.StudentEmail))
	return nil
}
