// file: internals/features/school/promotions/service/history_query_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	promoModel "sekolahku_backend/internals/features/school/promotions/model"
)

func seedHistory(st *inmemStore, first, last string, classID, sessionID uuid.UUID, date time.Time) uuid.UUID {
	id := uuid.New()
	newClass := classID
	newSession := sessionID
	_ = st.CreatePromotionHistory(&promoModel.PromotionHistoryModel{
		PromotionHistoryStudentID:        id,
		PromotionHistoryStudentFirstName: first,
		PromotionHistoryStudentLastName:  last,
		PromotionHistoryOldClassID:       classID,
		PromotionHistoryNewClassID:       &newClass,
		PromotionHistoryOldSessionID:     sessionID,
		PromotionHistoryNewSessionID:     &newSession,
		PromotionHistoryPromotionDate:    date,
		PromotionHistoryAcademicYear:     "2024-2025",
		PromotionHistoryPromotionType:    promoModel.PromotionRegular,
		PromotionHistoryPromotedBy:       "System",
		PromotionHistoryIsPromoted:       true,
	})
	return id
}

func TestHistoryQuery_OrderingDateDescThenName(t *testing.T) {
	st := newInmemStore()
	classID, sessionID := uuid.New(), uuid.New()
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	seedHistory(st, "Zul", "Karnain", classID, sessionID, d1)
	seedHistory(st, "Bela", "Anggita", classID, sessionID, d2)
	seedHistory(st, "Adi", "Anggita", classID, sessionID, d2)

	rows, err := st.QueryPromotionHistory(HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Tanggal terbaru dulu; pada tanggal sama urut nama belakang lalu depan.
	assert.Equal(t, "Adi", rows[0].PromotionHistoryStudentFirstName)
	assert.Equal(t, "Bela", rows[1].PromotionHistoryStudentFirstName)
	assert.Equal(t, "Zul", rows[2].PromotionHistoryStudentFirstName)
}

func TestHistoryQuery_ConjunctiveFilters(t *testing.T) {
	st := newInmemStore()
	classA, classB := uuid.New(), uuid.New()
	sesA, sesB := uuid.New(), uuid.New()
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	idA := seedHistory(st, "Andi", "Saputra", classA, sesA, d)
	seedHistory(st, "Bima", "Saputra", classB, sesA, d)
	seedHistory(st, "Cahya", "Saputra", classA, sesB, d)

	rows, err := st.QueryPromotionHistory(HistoryFilter{ClassID: &classA, SessionID: &sesA})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, idA, rows[0].PromotionHistoryStudentID)
}

func TestHistoryQuery_DateRangeInclusive(t *testing.T) {
	st := newInmemStore()
	classID, sessionID := uuid.New(), uuid.New()
	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	seedHistory(st, "A", "A", classID, sessionID, from.AddDate(0, 0, -1)) // sebelum rentang
	seedHistory(st, "B", "B", classID, sessionID, from)                   // tepat batas bawah
	// Jam di hari batas atas tetap masuk (granularitas tanggal).
	seedHistory(st, "C", "C", classID, sessionID, to.Add(23*time.Hour))
	seedHistory(st, "D", "D", classID, sessionID, to.AddDate(0, 0, 1)) // setelah rentang

	rows, err := st.QueryPromotionHistory(HistoryFilter{FromDate: &from, ToDate: &to})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestHistoryQuery_ClassMatchesOldOrNewSide(t *testing.T) {
	st := newInmemStore()
	oldClass, newClass := uuid.New(), uuid.New()
	sessionID := uuid.New()
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	nc := newClass
	ns := sessionID
	_ = st.CreatePromotionHistory(&promoModel.PromotionHistoryModel{
		PromotionHistoryStudentID:        uuid.New(),
		PromotionHistoryStudentFirstName: "Eka",
		PromotionHistoryStudentLastName:  "Yuliana",
		PromotionHistoryOldClassID:       oldClass,
		PromotionHistoryNewClassID:       &nc,
		PromotionHistoryOldSessionID:     sessionID,
		PromotionHistoryNewSessionID:     &ns,
		PromotionHistoryPromotionDate:    d,
		PromotionHistoryAcademicYear:     "2024-2025",
		PromotionHistoryPromotionType:    promoModel.PromotionRegular,
		PromotionHistoryPromotedBy:       "System",
		PromotionHistoryIsPromoted:       true,
	})

	bySide := func(id uuid.UUID) int {
		rows, err := st.QueryPromotionHistory(HistoryFilter{ClassID: &id})
		require.NoError(t, err)
		return len(rows)
	}
	assert.Equal(t, 1, bySide(oldClass))
	assert.Equal(t, 1, bySide(newClass))
	assert.Equal(t, 0, bySide(uuid.New()))
}
