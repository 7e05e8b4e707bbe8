// file: internals/features/school/promotions/service/eligibility.go
package service

import (
	"github.com/google/uuid"
)

// Evaluation: hasil evaluasi kelayakan satu siswa pada satu session.
type Evaluation struct {
	HasResults bool    `json:"has_results"`
	Passed     bool    `json:"passed"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

type EligibilityEvaluator struct {
	store Store
}

func NewEligibilityEvaluator(store Store) *EligibilityEvaluator {
	return &EligibilityEvaluator{store: store}
}

// Evaluate: baca semua hasil ujian siswa pada session tsb.
// Fail closed: tanpa baris hasil → HasResults=false, tidak layak naik.
// Passed hanya jika SEMUA baris is_passed (satu mapel gagal memblokir promosi).
// Snapshot persentase/grade diambil dari baris dengan tanggal ujian terbaru.
func (e *EligibilityEvaluator) Evaluate(studentID, sessionID uuid.UUID) (Evaluation, error) {
	rows, err := e.store.ExamResultsBySession(studentID, sessionID)
	if err != nil {
		return Evaluation{}, err
	}
	if len(rows) == 0 {
		return Evaluation{}, nil
	}

	ev := Evaluation{HasResults: true, Passed: true}
	latest := rows[0]
	for _, r := range rows {
		if !r.ExamResultIsPassed {
			ev.Passed = false
		}
		if !r.ExamResultExamDate.Before(latest.ExamResultExamDate) {
			latest = r
		}
	}
	ev.Percentage = latest.ExamResultPercentage
	ev.Grade = latest.ExamResultGrade
	return ev, nil
}
