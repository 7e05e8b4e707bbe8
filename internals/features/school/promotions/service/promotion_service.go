// file: internals/features/school/promotions/service/promotion_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* ======================================================
   Input / output
====================================================== */

// PromotionRequest: satu batch promosi. ToClassID opsional; kalau nil,
// kelas tujuan ditentukan sequencer per siswa.
type PromotionRequest struct {
	StudentIDs      []uuid.UUID
	FromClassID     uuid.UUID
	ToClassID       *uuid.UUID
	ToSectionID     *uuid.UUID
	FromSessionID   uuid.UUID
	ToSessionID     uuid.UUID
	PromotionDate   time.Time
	RegenerateRolls bool
	Notes           *string
}

type PromotionResult struct {
	Success        bool     `json:"success"`
	TotalStudents  int      `json:"total_students"`
	PromotedCount  int      `json:"promoted_count"`
	GraduatedCount int      `json:"graduated_count"`
	RetainedCount  int      `json:"retained_count"`
	SkippedCount   int      `json:"skipped_count"`
	Messages       []string `json:"messages"`
}

// StudentPromotionInfo: baris preview kohort sebelum dieksekusi.
type StudentPromotionInfo struct {
	Student         studentModel.StudentModel `json:"student"`
	Evaluation      Evaluation                `json:"evaluation"`
	AlreadyPromoted bool                      `json:"already_promoted"`
	WillGraduate    bool                      `json:"will_graduate"`
}

/* ======================================================
   Service
   Interface supaya gampang di-mock.
====================================================== */

type PromotionService interface {
	// ProcessPromotion: jalankan batch dalam SATU transaksi.
	// Error apa pun di tengah batch membatalkan seluruh batch.
	ProcessPromotion(req PromotionRequest, promotedBy string) (*PromotionResult, error)

	// PromoteClass: promosi seluruh kelas (kelas tujuan per siswa
	// ditentukan sequencer).
	PromoteClass(classID uuid.UUID, sectionID *uuid.UUID, fromSessionID, toSessionID uuid.UUID, promotionDate time.Time, promotedBy string) (*PromotionResult, error)

	// CanPromoteClass: advisory — true kalau SEMUA siswa aktif di kelas
	// sudah punya hasil ujian completed untuk (tahun, term) tsb.
	CanPromoteClass(classID uuid.UUID, academicYear, term string) bool

	// StudentsForPromotion: preview kohort + evaluasi kelayakan.
	StudentsForPromotion(classID uuid.UUID, sectionID *uuid.UUID, sessionID uuid.UUID) ([]StudentPromotionInfo, error)

	QueryHistory(f HistoryFilter) ([]promoModel.PromotionHistoryModel, error)
}

type promotionService struct {
	store Store
}

func NewPromotionService(store Store) PromotionService {
	return &promotionService{store: store}
}

/* ======================================================
   Batch orchestration
====================================================== */

func (s *promotionService) ProcessPromotion(req PromotionRequest, promotedBy string) (*PromotionResult, error) {
	if len(req.StudentIDs) == 0 {
		return nil, fmt.Errorf("%w: daftar siswa kosong", ErrValidation)
	}
	if promotedBy == "" {
		promotedBy = "System"
	}
	if req.PromotionDate.IsZero() {
		req.PromotionDate = time.Now()
	}

	res := &PromotionResult{TotalStudents: len(req.StudentIDs)}

	err := s.store.Transaction(func(tx Store) error {
		// Validasi referensi di awal; id yang tidak resolvable = batch-fatal.
		fromSession, err := tx.FindSession(req.FromSessionID)
		if err != nil {
			return fmt.Errorf("%w: session asal tidak ditemukan", ErrValidation)
		}
		if _, err := tx.FindSession(req.ToSessionID); err != nil {
			return fmt.Errorf("%w: session tujuan tidak ditemukan", ErrValidation)
		}
		if _, err := tx.FindClass(req.FromClassID); err != nil {
			return fmt.Errorf("%w: kelas asal tidak ditemukan", ErrValidation)
		}
		if req.ToClassID != nil {
			if _, err := tx.FindClass(*req.ToClassID); err != nil {
				return fmt.Errorf("%w: kelas tujuan tidak ditemukan", ErrValidation)
			}
		}

		evaluator := NewEligibilityEvaluator(tx)
		sequencer := NewClassSequencer(tx)
		allocator := NewRollNumberAllocator(tx)
		academicYear := fromSession.SessionAcademicYear

		for _, studentID := range req.StudentIDs {
			student, err := tx.FindStudent(studentID)
			if errors.Is(err, ErrNotFound) {
				// Siswa hilang di tengah jalan: lewati dengan peringatan,
				// sisa batch tetap jalan.
				res.SkippedCount++
				res.Messages = append(res.Messages, fmt.Sprintf("siswa %s tidak ditemukan, dilewati", studentID))
				log.Printf("[PROMOTION] ⚠️ siswa %s tidak ditemukan, dilewati", studentID)
				continue
			}
			if err != nil {
				return err
			}

			// Idempoten: siswa yang sudah punya riwayat dari session asal
			// tidak diproses ulang.
			done, err := tx.HasPromotionFromSession(studentID, req.FromSessionID)
			if err != nil {
				return err
			}
			if done {
				res.SkippedCount++
				res.Messages = append(res.Messages, fmt.Sprintf("%s sudah diproses untuk session ini, dilewati", student.FullName()))
				continue
			}

			ev, err := evaluator.Evaluate(studentID, req.FromSessionID)
			if err != nil {
				return err
			}

			terminal, err := sequencer.IsTerminal(student.StudentClassID)
			if err != nil {
				return err
			}

			switch {
			case terminal:
				// Kelas terminal: selalu lulus, apa pun nilainya.
				if err := s.graduateStudent(tx, student, ev, req, academicYear, promotedBy); err != nil {
					return err
				}
				res.GraduatedCount++
				res.Messages = append(res.Messages, fmt.Sprintf("%s lulus (%s)", student.FullName(), promoModel.GraduationStatusFor(ev.Percentage)))

			case ev.HasResults && ev.Passed:
				target := req.ToClassID
				if target == nil {
					next, err := sequencer.NextClass(student.StudentClassID)
					if err != nil {
						return err
					}
					if next == nil {
						// Defensif: level maksimum tanpa flag terminal tidak
						// mungkin lewat cabang di atas, tapi jaga-jaga.
						return fmt.Errorf("%w: kelas lanjutan tidak ditemukan", ErrValidation)
					}
					target = &next.ClassID
				}
				if err := s.promoteStudent(tx, allocator, student, ev, req, *target, academicYear, promotedBy); err != nil {
					return err
				}
				res.PromotedCount++
				res.Messages = append(res.Messages, fmt.Sprintf("%s naik kelas", student.FullName()))

			default:
				if err := s.retainStudent(tx, student, ev, req, academicYear, promotedBy); err != nil {
					return err
				}
				res.RetainedCount++
				reason := "tidak lulus semua mapel"
				if !ev.HasResults {
					reason = "belum ada hasil ujian"
				}
				res.Messages = append(res.Messages, fmt.Sprintf("%s tinggal kelas (%s)", student.FullName(), reason))
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("[PROMOTION] ❌ batch dibatalkan: %v", err)
		return &PromotionResult{
			Success:       false,
			TotalStudents: len(req.StudentIDs),
			Messages:      []string{err.Error()},
		}, err
	}

	res.Success = true
	if res.GraduatedCount > 0 {
		res.Messages = append(res.Messages, fmt.Sprintf("Selamat! %d siswa dinyatakan lulus 🎓", res.GraduatedCount))
	}
	log.Printf("[PROMOTION] ✅ batch selesai: %d naik, %d lulus, %d tinggal, %d dilewati",
		res.PromotedCount, res.GraduatedCount, res.RetainedCount, res.SkippedCount)
	return res, nil
}

func (s *promotionService) PromoteClass(classID uuid.UUID, sectionID *uuid.UUID, fromSessionID, toSessionID uuid.UUID, promotionDate time.Time, promotedBy string) (*PromotionResult, error) {
	students, err := s.store.StudentsInClass(classID, sectionID)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("%w: tidak ada siswa aktif di kelas tsb", ErrValidation)
	}

	ids := make([]uuid.UUID, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentID)
	}
	return s.ProcessPromotion(PromotionRequest{
		StudentIDs:      ids,
		FromClassID:     classID,
		FromSessionID:   fromSessionID,
		ToSessionID:     toSessionID,
		PromotionDate:   promotionDate,
		RegenerateRolls: true,
	}, promotedBy)
}

func (s *promotionService) CanPromoteClass(classID uuid.UUID, academicYear, term string) bool {
	students, err := s.store.StudentsInClass(classID, nil)
	if err != nil {
		log.Printf("[PROMOTION] can-promote err: %v", err)
		return false
	}
	if len(students) == 0 {
		return false
	}
	ids := make([]uuid.UUID, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.StudentID)
	}
	completed, err := s.store.CountStudentsWithCompletedExam(ids, academicYear, term)
	if err != nil {
		log.Printf("[PROMOTION] can-promote err: %v", err)
		return false
	}
	return completed == int64(len(students))
}

func (s *promotionService) StudentsForPromotion(classID uuid.UUID, sectionID *uuid.UUID, sessionID uuid.UUID) ([]StudentPromotionInfo, error) {
	students, err := s.store.StudentsInClass(classID, sectionID)
	if err != nil {
		return nil, err
	}
	evaluator := NewEligibilityEvaluator(s.store)
	sequencer := NewClassSequencer(s.store)

	terminal, err := sequencer.IsTerminal(classID)
	if err != nil {
		return nil, err
	}

	infos := make([]StudentPromotionInfo, 0, len(students))
	for _, st := range students {
		ev, err := evaluator.Evaluate(st.StudentID, sessionID)
		if err != nil {
			return nil, err
		}
		done, err := s.store.HasPromotionFromSession(st.StudentID, sessionID)
		if err != nil {
			return nil, err
		}
		infos = append(infos, StudentPromotionInfo{
			Student:         st,
			Evaluation:      ev,
			AlreadyPromoted: done,
			WillGraduate:    terminal,
		})
	}
	return infos, nil
}

func (s *promotionService) QueryHistory(f HistoryFilter) ([]promoModel.PromotionHistoryModel, error) {
	return s.store.QueryPromotionHistory(f)
}

/* ======================================================
   Per-student outcomes (dipanggil di dalam transaksi)
====================================================== */

func (s *promotionService) promoteStudent(tx Store, allocator *RollNumberAllocator, student *studentModel.StudentModel, ev Evaluation, req PromotionRequest, targetClassID uuid.UUID, academicYear, promotedBy string) error {
	oldClassID := student.StudentClassID

	student.StudentClassID = targetClassID
	// Tanpa section tujuan eksplisit, penempatan section di kelas baru manual.
	student.StudentSectionID = req.ToSectionID
	student.StudentSessionID = req.ToSessionID

	if req.RegenerateRolls {
		roll, err := allocator.Allocate(targetClassID, req.ToSectionID)
		if err != nil {
			return err
		}
		student.StudentRollNumber = roll
	}

	if err := tx.SaveStudent(student); err != nil {
		return err
	}

	return tx.CreatePromotionHistory(&promoModel.PromotionHistoryModel{
		PromotionHistoryStudentID:        student.StudentID,
		PromotionHistoryStudentFirstName: student.StudentFirstName,
		PromotionHistoryStudentLastName:  student.StudentLastName,
		PromotionHistoryOldClassID:       oldClassID,
		PromotionHistoryNewClassID:       &targetClassID,
		PromotionHistoryOldSessionID:     req.FromSessionID,
		PromotionHistoryNewSessionID:     &req.ToSessionID,
		PromotionHistoryPromotionDate:    req.PromotionDate,
		PromotionHistoryAcademicYear:     academicYear,
		PromotionHistoryPromotionType:    promoModel.PromotionRegular,
		PromotionHistoryPromotedBy:       promotedBy,
		PromotionHistoryFinalPercentage:  &ev.Percentage,
		PromotionHistoryFinalGrade:       &ev.Grade,
		PromotionHistoryIsPromoted:       true,
		PromotionHistoryNotes:            req.Notes,
	})
}

func (s *promotionService) retainStudent(tx Store, student *studentModel.StudentModel, ev Evaluation, req PromotionRequest, academicYear, promotedBy string) error {
	// Siswa tidak disentuh; kelas & session baru = lama (mengulang).
	oldClassID := student.StudentClassID
	h := &promoModel.PromotionHistoryModel{
		PromotionHistoryStudentID:        student.StudentID,
		PromotionHistoryStudentFirstName: student.StudentFirstName,
		PromotionHistoryStudentLastName:  student.StudentLastName,
		PromotionHistoryOldClassID:       oldClassID,
		PromotionHistoryNewClassID:       &oldClassID,
		PromotionHistoryOldSessionID:     req.FromSessionID,
		PromotionHistoryNewSessionID:     &req.FromSessionID,
		PromotionHistoryPromotionDate:    req.PromotionDate,
		PromotionHistoryAcademicYear:     academicYear,
		PromotionHistoryPromotionType:    promoModel.PromotionRetained,
		PromotionHistoryPromotedBy:       promotedBy,
		PromotionHistoryNotes:            req.Notes,
	}
	if ev.HasResults {
		h.PromotionHistoryFinalPercentage = &ev.Percentage
		h.PromotionHistoryFinalGrade = &ev.Grade
	}
	return tx.CreatePromotionHistory(h)
}

func (s *promotionService) graduateStudent(tx Store, student *studentModel.StudentModel, ev Evaluation, req PromotionRequest, academicYear, promotedBy string) error {
	a := &promoModel.AlumniModel{
		AlumniOriginalStudentID: student.StudentID,
		AlumniFirstName:         student.StudentFirstName,
		AlumniLastName:          student.StudentLastName,
		AlumniGender:            student.StudentGender,
		AlumniDateOfBirth:       student.StudentDateOfBirth,
		AlumniRollNumber:        student.StudentRollNumber,
		AlumniEmail:             student.StudentEmail,
		AlumniPhoneNumber:       student.StudentPhoneNumber,
		AlumniAddress:           student.StudentAddress,
		AlumniCity:              student.StudentCity,
		AlumniCountry:           student.StudentCountry,
		AlumniGuardianName:      student.StudentGuardianName,
		AlumniGuardianContact:   student.StudentGuardianContact,

		AlumniGraduatedFromClassID: student.StudentClassID,
		AlumniGraduationDate:       req.PromotionDate,
		AlumniAcademicYear:         academicYear,
		AlumniGraduationStatus:     promoModel.GraduationStatusFor(ev.Percentage),
		AlumniEnrollmentDate:       &student.StudentEnrollmentDate,
	}
	if ev.HasResults {
		a.AlumniFinalPercentage = &ev.Percentage
		a.AlumniFinalGrade = &ev.Grade
	}
	if err := tx.CreateAlumni(a); err != nil {
		return err
	}

	h := &promoModel.PromotionHistoryModel{
		PromotionHistoryStudentID:        student.StudentID,
		PromotionHistoryStudentFirstName: student.StudentFirstName,
		PromotionHistoryStudentLastName:  student.StudentLastName,
		PromotionHistoryOldClassID:       student.StudentClassID,
		PromotionHistoryNewClassID:       nil, // lulus: tidak ada kelas tujuan
		PromotionHistoryOldSessionID:     req.FromSessionID,
		PromotionHistoryNewSessionID:     nil,
		PromotionHistoryPromotionDate:    req.PromotionDate,
		PromotionHistoryAcademicYear:     academicYear,
		PromotionHistoryPromotionType:    promoModel.PromotionGraduated,
		PromotionHistoryPromotedBy:       promotedBy,
		PromotionHistoryIsGraduated:      true,
		PromotionHistoryNotes:            req.Notes,
	}
	if ev.HasResults {
		h.PromotionHistoryFinalPercentage = &ev.Percentage
		h.PromotionHistoryFinalGrade = &ev.Grade
	}
	if err := tx.CreatePromotionHistory(h); err != nil {
		return err
	}

	// Kepemilikan record pindah ke alumni; baris siswa dihapus.
	return tx.DeleteStudent(student.StudentID)
}
