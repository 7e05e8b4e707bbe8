// file: internals/features/school/promotions/service/promotion_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	examModel "sekolahku_backend/internals/features/school/exams/model"
	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

/* ===== fixtures ===== */

type fixture struct {
	store     *inmemStore
	svc       PromotionService
	class1    uuid.UUID // level 1
	class2    uuid.UUID // level 2
	classTop  uuid.UUID // level 10 (terminal)
	oldSesID  uuid.UUID
	newSesID  uuid.UUID
	oldYear   string
	examDate  time.Time
	promoDate time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newInmemStore()
	c1 := st.addClass("Class 1", 1)
	c2 := st.addClass("Class 2", 2)
	top := st.addClass("Class 10", 10)
	oldSes := st.addSession("2024/2025", "2024-2025", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), true)
	newSes := st.addSession("2025/2026", "2025-2026", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), false)
	return &fixture{
		store:     st,
		svc:       NewPromotionService(st),
		class1:    c1.ClassID,
		class2:    c2.ClassID,
		classTop:  top.ClassID,
		oldSesID:  oldSes.SessionID,
		newSesID:  newSes.SessionID,
		oldYear:   oldSes.SessionAcademicYear,
		examDate:  time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		promoDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) seedStudent(first, last, roll string, classID uuid.UUID) studentModel.StudentModel {
	return f.store.addStudent(studentModel.StudentModel{
		StudentFirstName:      first,
		StudentLastName:       last,
		StudentGender:         "F",
		StudentDateOfBirth:    time.Date(2012, 3, 1, 0, 0, 0, 0, time.UTC),
		StudentRollNumber:     roll,
		StudentClassID:        classID,
		StudentSessionID:      f.oldSesID,
		StudentIsActive:       true,
		StudentEmail:          first + "@sekolah.test",
		StudentEnrollmentDate: time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC),
	})
}

func (f *fixture) seedExam(studentID uuid.UUID, pct float64, passed bool, date time.Time) {
	grade := "F"
	switch {
	case pct >= 90:
		grade = "A+"
	case pct >= 80:
		grade = "A"
	case pct >= 70:
		grade = "B"
	case pct >= 60:
		grade = "C"
	case pct >= 40:
		grade = "D"
	}
	f.store.addExam(examModel.ExamResultModel{
		ExamResultStudentID:    studentID,
		ExamResultClassID:      f.class1,
		ExamResultSessionID:    f.oldSesID,
		ExamResultTerm:         "Final",
		ExamResultAcademicYear: f.oldYear,
		ExamResultPercentage:   pct,
		ExamResultGrade:        grade,
		ExamResultIsPassed:     passed,
		ExamResultCompleted:    true,
		ExamResultExamDate:     date,
	})
}

func (f *fixture) request(ids ...uuid.UUID) PromotionRequest {
	return PromotionRequest{
		StudentIDs:      ids,
		FromClassID:     f.class1,
		FromSessionID:   f.oldSesID,
		ToSessionID:     f.newSesID,
		PromotionDate:   f.promoDate,
		RegenerateRolls: true,
	}
}

/* ===== eligibility ===== */

func TestEligibility_NoResultsFailsClosed(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Aisyah", "Putri", "001", f.class1)

	ev, err := NewEligibilityEvaluator(f.store).Evaluate(st.StudentID, f.oldSesID)
	require.NoError(t, err)
	assert.False(t, ev.HasResults)
	assert.False(t, ev.Passed)
}

func TestEligibility_OneFailedSubjectBlocks(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Budi", "Santoso", "002", f.class1)
	f.seedExam(st.StudentID, 85, true, f.examDate)
	f.seedExam(st.StudentID, 30, false, f.examDate.AddDate(0, 0, 1))

	ev, err := NewEligibilityEvaluator(f.store).Evaluate(st.StudentID, f.oldSesID)
	require.NoError(t, err)
	assert.True(t, ev.HasResults)
	assert.False(t, ev.Passed)
}

func TestEligibility_SnapshotFromLatestExam(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Citra", "Dewi", "003", f.class1)
	f.seedExam(st.StudentID, 60, true, f.examDate)
	f.seedExam(st.StudentID, 92, true, f.examDate.AddDate(0, 0, 7)) // terbaru

	ev, err := NewEligibilityEvaluator(f.store).Evaluate(st.StudentID, f.oldSesID)
	require.NoError(t, err)
	assert.True(t, ev.Passed)
	assert.Equal(t, 92.0, ev.Percentage)
	assert.Equal(t, "A+", ev.Grade)
}

/* ===== sequencer ===== */

func TestSequencer_NextByLevelAndTerminal(t *testing.T) {
	f := newFixture(t)
	seq := NewClassSequencer(f.store)

	next, err := seq.NextClass(f.class1)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, f.class2, next.ClassID)

	terminal, err := seq.IsTerminal(f.classTop)
	require.NoError(t, err)
	assert.True(t, terminal)

	terminal, err = seq.IsTerminal(f.class1)
	require.NoError(t, err)
	assert.False(t, terminal)
}

/* ===== roll allocator ===== */

func TestRollAllocator_MaxNumericPlusOne(t *testing.T) {
	f := newFixture(t)
	f.seedStudent("A", "A", "007", f.class2)
	f.seedStudent("B", "B", "012", f.class2)
	f.seedStudent("C", "C", "LEGACY-3", f.class2) // non-numerik diabaikan

	roll, err := NewRollNumberAllocator(f.store).Allocate(f.class2, nil)
	require.NoError(t, err)
	assert.Equal(t, "013", roll)
}

func TestRollAllocator_EmptyClassStartsAtOne(t *testing.T) {
	f := newFixture(t)
	roll, err := NewRollNumberAllocator(f.store).Allocate(f.class2, nil)
	require.NoError(t, err)
	assert.Equal(t, "001", roll)
}

func TestRollAllocator_UnknownClass(t *testing.T) {
	f := newFixture(t)
	_, err := NewRollNumberAllocator(f.store).Allocate(uuid.New(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

/* ===== engine: outcomes ===== */

func TestProcessPromotion_PromotesPassingStudent(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Dina", "Rahma", "004", f.class1)
	f.seedExam(st.StudentID, 88, true, f.examDate)

	res, err := f.svc.ProcessPromotion(f.request(st.StudentID), "Kepala Sekolah")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.PromotedCount)

	moved, err := f.store.FindStudent(st.StudentID)
	require.NoError(t, err)
	assert.Equal(t, f.class2, moved.StudentClassID)
	assert.Equal(t, f.newSesID, moved.StudentSessionID)
	assert.Equal(t, "001", moved.StudentRollNumber)

	hist, err := f.svc.QueryHistory(HistoryFilter{StudentID: &st.StudentID})
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, promoModel.PromotionRegular, hist[0].PromotionHistoryPromotionType)
	assert.True(t, hist[0].PromotionHistoryIsPromoted)
	assert.Equal(t, "Kepala Sekolah", hist[0].PromotionHistoryPromotedBy)
	require.NotNil(t, hist[0].PromotionHistoryFinalPercentage)
	assert.Equal(t, 88.0, *hist[0].PromotionHistoryFinalPercentage)
}

func TestProcessPromotion_RetainsFailingStudentUntouched(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Eko", "Wijaya", "005", f.class1)
	f.seedExam(st.StudentID, 35, false, f.examDate)

	res, err := f.svc.ProcessPromotion(f.request(st.StudentID), "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.RetainedCount)

	same, err := f.store.FindStudent(st.StudentID)
	require.NoError(t, err)
	assert.Equal(t, f.class1, same.StudentClassID)
	assert.Equal(t, f.oldSesID, same.StudentSessionID)
	assert.Equal(t, "005", same.StudentRollNumber)

	hist, err := f.svc.QueryHistory(HistoryFilter{StudentID: &st.StudentID})
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, promoModel.PromotionRetained, hist[0].PromotionHistoryPromotionType)
	require.NotNil(t, hist[0].PromotionHistoryNewClassID)
	assert.Equal(t, f.class1, *hist[0].PromotionHistoryNewClassID)
	assert.Equal(t, "System", hist[0].PromotionHistoryPromotedBy)
}

func TestProcessPromotion_NoResultsMeansRetained(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Fajar", "Nugroho", "006", f.class1)

	res, err := f.svc.ProcessPromotion(f.request(st.StudentID), "System")
	require.NoError(t, err)
	assert.Equal(t, 1, res.RetainedCount)
	assert.Equal(t, 0, res.PromotedCount)
}

func TestProcessPromotion_TerminalClassAlwaysGraduates(t *testing.T) {
	f := newFixture(t)
	pass := f.seedStudent("Gita", "Lestari", "010", f.classTop)
	fail := f.seedStudent("Hadi", "Pratama", "011", f.classTop)
	f.seedExam(pass.StudentID, 95, true, f.examDate)
	f.seedExam(fail.StudentID, 20, false, f.examDate)

	req := f.request(pass.StudentID, fail.StudentID)
	req.FromClassID = f.classTop
	res, err := f.svc.ProcessPromotion(req, "System")
	require.NoError(t, err)
	assert.Equal(t, 2, res.GraduatedCount)

	// Baris siswa terhapus, record pindah ke alumni.
	_, err = f.store.FindStudent(pass.StudentID)
	assert.ErrorIs(t, err, ErrNotFound)

	a, ok := f.store.st.alumni[pass.StudentID]
	require.True(t, ok)
	assert.Equal(t, promoModel.GraduationHonor, a.AlumniGraduationStatus)
	require.NotNil(t, a.AlumniFinalPercentage)
	assert.Equal(t, 95.0, *a.AlumniFinalPercentage)

	b, ok := f.store.st.alumni[fail.StudentID]
	require.True(t, ok)
	assert.Equal(t, promoModel.GraduationRegular, b.AlumniGraduationStatus)

	hist, err := f.svc.QueryHistory(HistoryFilter{StudentID: &pass.StudentID})
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, promoModel.PromotionGraduated, hist[0].PromotionHistoryPromotionType)
	assert.Nil(t, hist[0].PromotionHistoryNewClassID)
	assert.Nil(t, hist[0].PromotionHistoryNewSessionID)
}

func TestProcessPromotion_RollNumbersSequentialWithinBatch(t *testing.T) {
	f := newFixture(t)
	f.seedStudent("X", "X", "042", f.class2) // penghuni kelas tujuan
	s1 := f.seedStudent("Indah", "Sari", "001", f.class1)
	s2 := f.seedStudent("Joko", "Susilo", "002", f.class1)
	f.seedExam(s1.StudentID, 70, true, f.examDate)
	f.seedExam(s2.StudentID, 75, true, f.examDate.Add(time.Hour))

	res, err := f.svc.ProcessPromotion(f.request(s1.StudentID, s2.StudentID), "System")
	require.NoError(t, err)
	assert.Equal(t, 2, res.PromotedCount)

	m1, _ := f.store.FindStudent(s1.StudentID)
	m2, _ := f.store.FindStudent(s2.StudentID)
	assert.Equal(t, "043", m1.StudentRollNumber)
	assert.Equal(t, "044", m2.StudentRollNumber)
}

/* ===== engine: batch semantics ===== */

func TestProcessPromotion_MixedCohort(t *testing.T) {
	f := newFixture(t)
	pass := f.seedStudent("Kartika", "Ayu", "001", f.class1)
	fail := f.seedStudent("Lukman", "Hakim", "002", f.class1)
	none := f.seedStudent("Mega", "Wati", "003", f.class1)
	f.seedExam(pass.StudentID, 80, true, f.examDate)
	f.seedExam(fail.StudentID, 30, false, f.examDate)

	res, err := f.svc.ProcessPromotion(f.request(pass.StudentID, fail.StudentID, none.StudentID), "System")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 3, res.TotalStudents)
	assert.Equal(t, 1, res.PromotedCount)
	assert.Equal(t, 2, res.RetainedCount)
	assert.Equal(t, 0, res.GraduatedCount)
}

func TestProcessPromotion_MissingStudentSkippedWithWarning(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Nina", "Kurnia", "001", f.class1)
	f.seedExam(st.StudentID, 80, true, f.examDate)
	ghost := uuid.New()

	res, err := f.svc.ProcessPromotion(f.request(ghost, st.StudentID), "System")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.SkippedCount)
	assert.Equal(t, 1, res.PromotedCount)
}

func TestProcessPromotion_UnknownTargetSessionIsBatchFatal(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Oki", "Setiawan", "001", f.class1)
	f.seedExam(st.StudentID, 80, true, f.examDate)

	req := f.request(st.StudentID)
	req.ToSessionID = uuid.New()
	res, err := f.svc.ProcessPromotion(req, "System")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.False(t, res.Success)

	// Tidak ada efek samping.
	same, ferr := f.store.FindStudent(st.StudentID)
	require.NoError(t, ferr)
	assert.Equal(t, f.class1, same.StudentClassID)
	hist, _ := f.svc.QueryHistory(HistoryFilter{})
	assert.Empty(t, hist)
}

func TestProcessPromotion_EmptyStudentList(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ProcessPromotion(f.request(), "System")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProcessPromotion_FaultRollsBackWholeBatch(t *testing.T) {
	f := newFixture(t)
	ok1 := f.seedStudent("Putri", "Amalia", "001", f.classTop)
	dup := f.seedStudent("Qori", "Rahman", "002", f.classTop)
	f.seedExam(ok1.StudentID, 85, true, f.examDate)
	f.seedExam(dup.StudentID, 85, true, f.examDate)

	// Alumni dengan original_student_id yang sama sudah ada: siswa kedua
	// akan memicu conflict di tengah batch.
	f.store.st.alumni[dup.StudentID] = promoModel.AlumniModel{
		AlumniID:                uuid.New(),
		AlumniOriginalStudentID: dup.StudentID,
	}

	req := f.request(ok1.StudentID, dup.StudentID)
	req.FromClassID = f.classTop
	res, err := f.svc.ProcessPromotion(req, "System")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, res.Success)

	// Siswa pertama yang sempat "lulus" harus kembali utuh.
	back, ferr := f.store.FindStudent(ok1.StudentID)
	require.NoError(t, ferr)
	assert.Equal(t, f.classTop, back.StudentClassID)
	_, ok := f.store.st.alumni[ok1.StudentID]
	assert.False(t, ok)
	hist, _ := f.svc.QueryHistory(HistoryFilter{})
	assert.Empty(t, hist)
}

func TestProcessPromotion_SecondRunIsNoOp(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Rina", "Maulida", "001", f.class1)
	f.seedExam(st.StudentID, 80, true, f.examDate)

	res1, err := f.svc.ProcessPromotion(f.request(st.StudentID), "System")
	require.NoError(t, err)
	assert.Equal(t, 1, res1.PromotedCount)

	res2, err := f.svc.ProcessPromotion(f.request(st.StudentID), "System")
	require.NoError(t, err)
	assert.Equal(t, 0, res2.PromotedCount)
	assert.Equal(t, 1, res2.SkippedCount)

	hist, err := f.svc.QueryHistory(HistoryFilter{StudentID: &st.StudentID})
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

/* ===== can-promote & cohort run ===== */

func TestCanPromoteClass(t *testing.T) {
	f := newFixture(t)
	s1 := f.seedStudent("Sari", "Indah", "001", f.class1)
	s2 := f.seedStudent("Tono", "Budi", "002", f.class1)
	f.seedExam(s1.StudentID, 80, true, f.examDate)

	assert.False(t, f.svc.CanPromoteClass(f.class1, f.oldYear, "Final"))

	f.seedExam(s2.StudentID, 50, true, f.examDate)
	assert.True(t, f.svc.CanPromoteClass(f.class1, f.oldYear, "Final"))

	// Kelas tanpa siswa tidak bisa dipromosikan.
	assert.False(t, f.svc.CanPromoteClass(f.class2, f.oldYear, "Final"))
}

func TestPromoteClass_WholeCohort(t *testing.T) {
	f := newFixture(t)
	s1 := f.seedStudent("Umar", "Said", "001", f.class1)
	s2 := f.seedStudent("Vina", "Anggraini", "002", f.class1)
	f.seedExam(s1.StudentID, 80, true, f.examDate)
	f.seedExam(s2.StudentID, 20, false, f.examDate)

	res, err := f.svc.PromoteClass(f.class1, nil, f.oldSesID, f.newSesID, f.promoDate, "System")
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalStudents)
	assert.Equal(t, 1, res.PromotedCount)
	assert.Equal(t, 1, res.RetainedCount)
}

func TestPromoteClass_EmptyClass(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.PromoteClass(f.class2, nil, f.oldSesID, f.newSesID, f.promoDate, "System")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProcessPromotion_TargetSectionPlacement(t *testing.T) {
	f := newFixture(t)
	sectionID := uuid.New()
	occupant := f.seedStudent("Wulan", "Safitri", "005", f.class2)
	occupant.StudentSectionID = &sectionID
	f.store.st.students[occupant.StudentID] = occupant

	st := f.seedStudent("Yusuf", "Hamzah", "001", f.class1)
	f.seedExam(st.StudentID, 80, true, f.examDate)

	req := f.request(st.StudentID)
	req.ToSectionID = &sectionID
	res, err := f.svc.ProcessPromotion(req, "System")
	require.NoError(t, err)
	assert.Equal(t, 1, res.PromotedCount)

	moved, err := f.store.FindStudent(st.StudentID)
	require.NoError(t, err)
	require.NotNil(t, moved.StudentSectionID)
	assert.Equal(t, sectionID, *moved.StudentSectionID)
	// Alokasi roll di-scope ke section tujuan: 005 sudah terpakai di sana.
	assert.Equal(t, "006", moved.StudentRollNumber)
}

func TestProcessPromotion_MeritTierGraduation(t *testing.T) {
	f := newFixture(t)
	st := f.seedStudent("Zahra", "Annisa", "012", f.classTop)
	f.seedExam(st.StudentID, 85, true, f.examDate)

	req := f.request(st.StudentID)
	req.FromClassID = f.classTop
	res, err := f.svc.ProcessPromotion(req, "System")
	require.NoError(t, err)
	assert.Equal(t, 1, res.GraduatedCount)

	a, ok := f.store.st.alumni[st.StudentID]
	require.True(t, ok)
	assert.Equal(t, promoModel.GraduationMerit, a.AlumniGraduationStatus)
	require.NotNil(t, a.AlumniFinalPercentage)
	assert.Equal(t, 85.0, *a.AlumniFinalPercentage)
	require.NotNil(t, a.AlumniFinalGrade)
	assert.Equal(t, "A", *a.AlumniFinalGrade)
}
