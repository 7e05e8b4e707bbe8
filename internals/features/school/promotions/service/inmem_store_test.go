// file: internals/features/school/promotions/service/inmem_store_test.go
package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	examModel "sekolahku_backend/internals/features/school/exams/model"
	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
)

// inmemStore: implementasi Store di memori untuk test suite.
// Transaction bekerja di atas salinan state; commit = tukar state,
// error = buang salinan. Dengan itu atomisitas batch benar-benar teruji.
type inmemStore struct {
	mu sync.Mutex
	st *inmemState
}

type inmemState struct {
	students  map[uuid.UUID]studentModel.StudentModel
	classes   map[uuid.UUID]classModel.ClassModel
	sessions  map[uuid.UUID]sessionModel.AcademicSessionModel
	exams     []examModel.ExamResultModel
	histories []promoModel.PromotionHistoryModel
	alumni    map[uuid.UUID]promoModel.AlumniModel // key: original student id
}

func newInmemStore() *inmemStore {
	return &inmemStore{st: &inmemState{
		students: map[uuid.UUID]studentModel.StudentModel{},
		classes:  map[uuid.UUID]classModel.ClassModel{},
		sessions: map[uuid.UUID]sessionModel.AcademicSessionModel{},
		alumni:   map[uuid.UUID]promoModel.AlumniModel{},
	}}
}

func (s *inmemState) clone() *inmemState {
	c := &inmemState{
		students: make(map[uuid.UUID]studentModel.StudentModel, len(s.students)),
		classes:  make(map[uuid.UUID]classModel.ClassModel, len(s.classes)),
		sessions: make(map[uuid.UUID]sessionModel.AcademicSessionModel, len(s.sessions)),
		alumni:   make(map[uuid.UUID]promoModel.AlumniModel, len(s.alumni)),
	}
	for k, v := range s.students {
		c.students[k] = v
	}
	for k, v := range s.classes {
		c.classes[k] = v
	}
	for k, v := range s.sessions {
		c.sessions[k] = v
	}
	for k, v := range s.alumni {
		c.alumni[k] = v
	}
	c.exams = append([]examModel.ExamResultModel(nil), s.exams...)
	c.histories = append([]promoModel.PromotionHistoryModel(nil), s.histories...)
	return c
}

/* ===== seeding helpers ===== */

func (s *inmemStore) addStudent(st studentModel.StudentModel) studentModel.StudentModel {
	if st.StudentID == uuid.Nil {
		st.StudentID = uuid.New()
	}
	if !st.StudentIsActive {
		st.StudentIsActive = true
	}
	s.st.students[st.StudentID] = st
	return st
}

func (s *inmemStore) addClass(name string, level int) classModel.ClassModel {
	c := classModel.ClassModel{ClassID: uuid.New(), ClassName: name, ClassLevel: level}
	s.st.classes[c.ClassID] = c
	return c
}

func (s *inmemStore) addSession(name, year string, start time.Time, current bool) sessionModel.AcademicSessionModel {
	se := sessionModel.AcademicSessionModel{
		SessionID:           uuid.New(),
		SessionName:         name,
		SessionAcademicYear: year,
		SessionStartDate:    start,
		SessionEndDate:      start.AddDate(1, 0, 0),
		SessionIsCurrent:    current,
	}
	s.st.sessions[se.SessionID] = se
	return se
}

func (s *inmemStore) addExam(r examModel.ExamResultModel) {
	if r.ExamResultID == uuid.Nil {
		r.ExamResultID = uuid.New()
	}
	s.st.exams = append(s.st.exams, r)
}

/* ===== Store implementation ===== */

func (s *inmemStore) FindStudent(id uuid.UUID) (*studentModel.StudentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.st.students[id]
	if !ok || !st.StudentIsActive {
		return nil, ErrNotFound
	}
	cp := st
	return &cp, nil
}

func (s *inmemStore) StudentsInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]studentModel.StudentModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []studentModel.StudentModel
	for _, st := range s.st.students {
		if !st.StudentIsActive || st.StudentClassID != classID {
			continue
		}
		if sectionID != nil && (st.StudentSectionID == nil || *st.StudentSectionID != *sectionID) {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentRollNumber < out[j].StudentRollNumber
	})
	return out, nil
}

func (s *inmemStore) RollNumbersInClass(classID uuid.UUID, sectionID *uuid.UUID) ([]string, error) {
	students, err := s.StudentsInClass(classID, sectionID)
	if err != nil {
		return nil, err
	}
	rolls := make([]string, 0, len(students))
	for _, st := range students {
		rolls = append(rolls, st.StudentRollNumber)
	}
	return rolls, nil
}

func (s *inmemStore) SaveStudent(st *studentModel.StudentModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.st.students {
		if other.StudentID != st.StudentID && other.StudentIsActive &&
			strings.EqualFold(other.StudentRollNumber, st.StudentRollNumber) &&
			other.StudentClassID == st.StudentClassID {
			return ErrConflict
		}
	}
	s.st.students[st.StudentID] = *st
	return nil
}

func (s *inmemStore) DeleteStudent(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.students[id]; !ok {
		return ErrNotFound
	}
	delete(s.st.students, id)
	return nil
}

func (s *inmemStore) FindClass(id uuid.UUID) (*classModel.ClassModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.st.classes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (s *inmemStore) NextClassAbove(level int) (*classModel.ClassModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *classModel.ClassModel
	for _, c := range s.st.classes {
		if c.ClassLevel <= level {
			continue
		}
		if best == nil || c.ClassLevel < best.ClassLevel {
			cp := c
			best = &cp
		}
	}
	return best, nil
}

func (s *inmemStore) FindSession(id uuid.UUID) (*sessionModel.AcademicSessionModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	se, ok := s.st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := se
	return &cp, nil
}

func (s *inmemStore) ExamResultsBySession(studentID, sessionID uuid.UUID) ([]examModel.ExamResultModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []examModel.ExamResultModel
	for _, r := range s.st.exams {
		if r.ExamResultStudentID == studentID && r.ExamResultSessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *inmemStore) CountStudentsWithCompletedExam(studentIDs []uuid.UUID, academicYear, term string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[uuid.UUID]bool{}
	for _, id := range studentIDs {
		want[id] = true
	}
	seen := map[uuid.UUID]bool{}
	for _, r := range s.st.exams {
		if want[r.ExamResultStudentID] && r.ExamResultCompleted &&
			r.ExamResultAcademicYear == academicYear && r.ExamResultTerm == term {
			seen[r.ExamResultStudentID] = true
		}
	}
	return int64(len(seen)), nil
}

func (s *inmemStore) HasPromotionFromSession(studentID, oldSessionID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.st.histories {
		if h.PromotionHistoryStudentID == studentID && h.PromotionHistoryOldSessionID == oldSessionID {
			return true, nil
		}
	}
	return false, nil
}

func (s *inmemStore) CreatePromotionHistory(h *promoModel.PromotionHistoryModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.PromotionHistoryID == uuid.Nil {
		h.PromotionHistoryID = uuid.New()
	}
	h.PromotionHistoryCreatedAt = time.Now()
	s.st.histories = append(s.st.histories, *h)
	return nil
}

func (s *inmemStore) CreateAlumni(a *promoModel.AlumniModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.st.alumni[a.AlumniOriginalStudentID]; dup {
		return ErrConflict
	}
	if a.AlumniID == uuid.Nil {
		a.AlumniID = uuid.New()
	}
	s.st.alumni[a.AlumniOriginalStudentID] = *a
	return nil
}

func (s *inmemStore) QueryPromotionHistory(f HistoryFilter) ([]promoModel.PromotionHistoryModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []promoModel.PromotionHistoryModel
	for _, h := range s.st.histories {
		if f.StudentID != nil && h.PromotionHistoryStudentID != *f.StudentID {
			continue
		}
		if f.ClassID != nil {
			if h.PromotionHistoryOldClassID != *f.ClassID &&
				(h.PromotionHistoryNewClassID == nil || *h.PromotionHistoryNewClassID != *f.ClassID) {
				continue
			}
		}
		if f.SessionID != nil {
			if h.PromotionHistoryOldSessionID != *f.SessionID &&
				(h.PromotionHistoryNewSessionID == nil || *h.PromotionHistoryNewSessionID != *f.SessionID) {
				continue
			}
		}
		d := truncateDay(h.PromotionHistoryPromotionDate)
		if f.FromDate != nil && d.Before(truncateDay(*f.FromDate)) {
			continue
		}
		if f.ToDate != nil && d.After(truncateDay(*f.ToDate)) {
			continue
		}
		out = append(out, h)
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := truncateDay(out[i].PromotionHistoryPromotionDate), truncateDay(out[j].PromotionHistoryPromotionDate)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		if out[i].PromotionHistoryStudentLastName != out[j].PromotionHistoryStudentLastName {
			return out[i].PromotionHistoryStudentLastName < out[j].PromotionHistoryStudentLastName
		}
		return out[i].PromotionHistoryStudentFirstName < out[j].PromotionHistoryStudentFirstName
	})
	return out, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *inmemStore) Transaction(fn func(tx Store) error) error {
	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	tx := &inmemStore{st: snapshot}
	if err := fn(tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = tx.st
	s.mu.Unlock()
	return nil
}
