// file: internals/features/school/promotions/service/store.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	examModel "sekolahku_backend/internals/features/school/exams/model"
	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// Sentinel errors — taksonomi error engine promosi.
var (
	// ErrValidation: request cacat (id tidak resolvable, daftar siswa kosong).
	// Dilaporkan sebelum/di awal eksekusi, batch-fatal.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: record referensi tidak ada saat eksekusi.
	ErrNotFound = errors.New("record not found")
	// ErrConflict: pelanggaran unique constraint (roll number / alumni ganda).
	ErrConflict = errors.New("conflict")
)

// HistoryFilter: semua filter opsional dan konjungtif (AND).
// Class/Session cocok pada sisi lama ATAU baru; rentang tanggal inklusif,
// granularitas tanggal (jam diabaikan).
type HistoryFilter struct {
	StudentID *uuid.UUID
	ClassID   *uuid.UUID
	SessionID *uuid.UUID
	FromDate  *time.Time
	ToDate    *time.Time
}

// Store: kontrak roster store yang dikonsumsi engine promosi.
// Implementasi produksi di atas GORM; implementasi in-memory dipakai test.
// Interface supaya gampang di-mock.
type Store interface {
	// students
	FindStudent(id uuid.UUID) (*studentModel.StudentModel, error)
	StudentsInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]studentModel.StudentModel, error)
	RollNumbersInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]string, error)
	SaveStudent(s *studentModel.StudentModel) error
	DeleteStudent(id uuid.UUID) error

	// classes & sessions
	FindClass(id uuid.UUID) (*classModel.ClassModel, error)
	// NextClassAbove: kelas dengan level terkecil yang > level diberikan;
	// (nil, nil) jika tidak ada (level diberikan adalah maksimum).
	NextClassAbove(level int) (*classModel.ClassModel, error)
	FindSession(id uuid.UUID) (*sessionModel.AcademicSessionModel, error)

	// exam results (read-only bagi engine)
	ExamResultsBySession(studentID, sessionID uuid.UUID) ([]examModel.ExamResultModel, error)
	CountStudentsWithCompletedExam(studentIDs []uuid.UUID, academicYear, term string) (int64, error)

	// history & alumni
	HasPromotionFromSession(studentID, oldSessionID uuid.UUID) (bool, error)
	CreatePromotionHistory(h *promoModel.PromotionHistoryModel) error
	CreateAlumni(a *promoModel.AlumniModel) error
	QueryPromotionHistory(f HistoryFilter) ([]promoModel.PromotionHistoryModel, error)

	// Transaction: seluruh batch commit/rollback atomik.
	Transaction(fn func(tx Store) error) error
}
