// file: internals/features/school/promotions/service/gorm_store.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	examModel "sekolahku_backend/internals/features/school/exams/model"
	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case helper.IsDuplicateKey(err):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

/* ============================================
   Students
============================================ */

func (s *gormStore) FindStudent(id uuid.UUID) (*studentModel.StudentModel, error) {
	var st studentModel.StudentModel
	if err := s.db.First(&st, "student_id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &st, nil
}

func (s *gormStore) StudentsInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]studentModel.StudentModel, error) {
	q := s.db.Where("student_class_id = ? AND student_is_active = TRUE", classID)
	if sectionID != nil {
		q = q.Where("student_section_id = ?", *sectionID)
	}
	var out []studentModel.StudentModel
	if err := q.Order("student_roll_number ASC").Find(&out).Error; err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (s *gormStore) RollNumbersInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]string, error) {
	q := s.db.Model(&studentModel.StudentModel{}).
		Where("student_class_id = ? AND student_is_active = TRUE", classID)
	if sectionID != nil {
		q = q.Where("student_section_id = ?", *sectionID)
	}
	var rolls []string
	if err := q.Pluck("student_roll_number", &rolls).Error; err != nil {
		return nil, translateErr(err)
	}
	return rolls, nil
}

func (s *gormStore) SaveStudent(st *studentModel.StudentModel) error {
	return translateErr(s.db.Save(st).Error)
}

func (s *gormStore) DeleteStudent(id uuid.UUID) error {
	return translateErr(s.db.Delete(&studentModel.StudentModel{}, "student_id = ?", id).Error)
}

/* ============================================
   Classes & sessions
============================================ */

func (s *gormStore) FindClass(id uuid.UUID) (*classModel.ClassModel, error) {
	var cls classModel.ClassModel
	if err := s.db.First(&cls, "class_id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &cls, nil
}

func (s *gormStore) NextClassAbove(level int) (*classModel.ClassModel, error) {
	var cls classModel.ClassModel
	err := s.db.Where("class_level > ?", level).
		Order("class_level ASC").
		First(&cls).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // level tertinggi: tidak ada kelas berikutnya
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &cls, nil
}

func (s *gormStore) FindSession(id uuid.UUID) (*sessionModel.AcademicSessionModel, error) {
	var ses sessionModel.AcademicSessionModel
	if err := s.db.First(&ses, "session_id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &ses, nil
}

/* ============================================
   Exam results
============================================ */

func (s *gormStore) ExamResultsBySession(studentID, sessionID uuid.UUID) ([]examModel.ExamResultModel, error) {
	var out []examModel.ExamResultModel
	err := s.db.
		Where("exam_result_student_id = ? AND exam_result_session_id = ?", studentID, sessionID).
		Order("exam_result_exam_date ASC").
		Find(&out).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

func (s *gormStore) CountStudentsWithCompletedExam(studentIDs []uuid.UUID, academicYear, term string) (int64, error) {
	if len(studentIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := s.db.Model(&examModel.ExamResultModel{}).
		Where("exam_result_student_id IN ?", studentIDs).
		Where("exam_result_academic_year = ? AND exam_result_term = ?", academicYear, term).
		Where("exam_result_completed = TRUE").
		Distinct("exam_result_student_id").
		Count(&cnt).Error
	if err != nil {
		return 0, translateErr(err)
	}
	return cnt, nil
}

/* ============================================
   History & alumni
============================================ */

func (s *gormStore) HasPromotionFromSession(studentID, oldSessionID uuid.UUID) (bool, error) {
	var cnt int64
	err := s.db.Model(&promoModel.PromotionHistoryModel{}).
		Where("promotion_history_student_id = ? AND promotion_history_old_session_id = ?", studentID, oldSessionID).
		Count(&cnt).Error
	if err != nil {
		return false, translateErr(err)
	}
	return cnt > 0, nil
}

func (s *gormStore) CreatePromotionHistory(h *promoModel.PromotionHistoryModel) error {
	return translateErr(s.db.Create(h).Error)
}

func (s *gormStore) CreateAlumni(a *promoModel.AlumniModel) error {
	return translateErr(s.db.Create(a).Error)
}

func (s *gormStore) QueryPromotionHistory(f HistoryFilter) ([]promoModel.PromotionHistoryModel, error) {
	q := s.db.Model(&promoModel.PromotionHistoryModel{})

	if f.StudentID != nil {
		q = q.Where("promotion_history_student_id = ?", *f.StudentID)
	}
	if f.ClassID != nil {
		q = q.Where("promotion_history_old_class_id = ? OR promotion_history_new_class_id = ?", *f.ClassID, *f.ClassID)
	}
	if f.SessionID != nil {
		q = q.Where("promotion_history_old_session_id = ? OR promotion_history_new_session_id = ?", *f.SessionID, *f.SessionID)
	}
	// Rentang tanggal inklusif dua sisi, granularitas tanggal
	if f.FromDate != nil {
		q = q.Where("promotion_history_promotion_date >= ?", dateOnly(*f.FromDate))
	}
	if f.ToDate != nil {
		q = q.Where("promotion_history_promotion_date <= ?", dateOnly(*f.ToDate))
	}

	var out []promoModel.PromotionHistoryModel
	err := q.Order("promotion_history_promotion_date DESC").
		Order("promotion_history_student_last_name ASC").
		Order("promotion_history_student_first_name ASC").
		Find(&out).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return out, nil
}

/* ============================================
   Transaction
============================================ */

func (s *gormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(txdb *gorm.DB) error {
		return fn(&gormStore{db: txdb})
	})
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
