// file: internals/features/school/promotions/model/alumni_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   ENUM mapping (graduation_status)
====================================================== */

type GraduationStatus string

const (
	GraduationRegular GraduationStatus = "Regular"
	GraduationMerit   GraduationStatus = "Merit"
	GraduationHonor   GraduationStatus = "Honor"
)

// GraduationStatusFor: tier dari persentase final (≥90 Honor, ≥75 Merit)
func GraduationStatusFor(percentage float64) GraduationStatus {
	switch {
	case percentage >= 90:
		return GraduationHonor
	case percentage >= 75:
		return GraduationMerit
	default:
		return GraduationRegular
	}
}

/* ======================================================
   Model: alumni
   Snapshot permanen siswa yang lulus; satu baris per
   alumni_original_student_id. Baris Student dihapus saat lulus —
   kepemilikan record pindah ke koleksi ini.
====================================================== */

type AlumniModel struct {
	AlumniID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:alumni_id" json:"alumni_id"`

	AlumniOriginalStudentID uuid.UUID `gorm:"type:uuid;not null;unique;column:alumni_original_student_id" json:"alumni_original_student_id"`

	// ============ Salinan data pribadi saat lulus ============
	AlumniFirstName   string    `gorm:"type:varchar(50);not null;column:alumni_first_name" json:"alumni_first_name"`
	AlumniLastName    string    `gorm:"type:varchar(50);not null;column:alumni_last_name" json:"alumni_last_name"`
	AlumniGender      string    `gorm:"type:varchar(10);not null;column:alumni_gender" json:"alumni_gender"`
	AlumniDateOfBirth time.Time `gorm:"type:date;not null;column:alumni_date_of_birth" json:"alumni_date_of_birth"`
	AlumniRollNumber  string    `gorm:"type:varchar(20);not null;column:alumni_roll_number" json:"alumni_roll_number"`

	AlumniEmail           string  `gorm:"type:varchar(100);not null;column:alumni_email" json:"alumni_email"`
	AlumniPhoneNumber     *string `gorm:"type:varchar(20);column:alumni_phone_number" json:"alumni_phone_number,omitempty"`
	AlumniAddress         *string `gorm:"type:varchar(200);column:alumni_address" json:"alumni_address,omitempty"`
	AlumniCity            *string `gorm:"type:varchar(50);column:alumni_city" json:"alumni_city,omitempty"`
	AlumniCountry         *string `gorm:"type:varchar(50);column:alumni_country" json:"alumni_country,omitempty"`
	AlumniGuardianName    *string `gorm:"type:varchar(100);column:alumni_guardian_name" json:"alumni_guardian_name,omitempty"`
	AlumniGuardianContact *string `gorm:"type:varchar(20);column:alumni_guardian_contact" json:"alumni_guardian_contact,omitempty"`

	// ============ Informasi kelulusan ============
	AlumniGraduatedFromClassID uuid.UUID        `gorm:"type:uuid;not null;column:alumni_graduated_from_class_id;index" json:"alumni_graduated_from_class_id"`
	AlumniGraduationDate       time.Time        `gorm:"type:date;not null;column:alumni_graduation_date" json:"alumni_graduation_date"`
	AlumniAcademicYear         string           `gorm:"type:varchar(20);not null;column:alumni_academic_year" json:"alumni_academic_year"`
	AlumniFinalPercentage      *float64         `gorm:"type:numeric(5,2);column:alumni_final_percentage" json:"alumni_final_percentage,omitempty"`
	AlumniFinalGrade           *string          `gorm:"type:varchar(5);column:alumni_final_grade" json:"alumni_final_grade,omitempty"`
	AlumniGraduationStatus     GraduationStatus `gorm:"type:varchar(20);not null;default:'Regular';column:alumni_graduation_status" json:"alumni_graduation_status"`

	// ============ Pasca-kelulusan (diisi manual) ============
	AlumniCurrentOccupation *string `gorm:"type:varchar(100);column:alumni_current_occupation" json:"alumni_current_occupation,omitempty"`
	AlumniCurrentEmployer   *string `gorm:"type:varchar(100);column:alumni_current_employer" json:"alumni_current_employer,omitempty"`
	AlumniHigherEducation   *string `gorm:"type:varchar(100);column:alumni_higher_education" json:"alumni_higher_education,omitempty"`
	AlumniCurrentEmail      *string `gorm:"type:varchar(100);column:alumni_current_email" json:"alumni_current_email,omitempty"`
	AlumniCurrentPhone      *string `gorm:"type:varchar(20);column:alumni_current_phone" json:"alumni_current_phone,omitempty"`
	AlumniCurrentAddress    *string `gorm:"type:varchar(200);column:alumni_current_address" json:"alumni_current_address,omitempty"`

	// JSONB extra info (fleksibel, mis. media sosial, prestasi)
	AlumniExtraInfo datatypes.JSON `gorm:"type:jsonb;column:alumni_extra_info" json:"alumni_extra_info,omitempty"`

	AlumniEnrollmentDate *time.Time `gorm:"type:date;column:alumni_enrollment_date" json:"alumni_enrollment_date,omitempty"`

	AlumniCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:alumni_created_at" json:"alumni_created_at"`
	AlumniUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:alumni_updated_at" json:"alumni_updated_at"`
}

func (AlumniModel) TableName() string { return "alumni" }
