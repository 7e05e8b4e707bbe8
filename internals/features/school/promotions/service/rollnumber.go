// file: internals/features/school/promotions/service/rollnumber.go
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// RollNumberAllocator: nomor urut bebas-tabrakan untuk siswa yang masuk
// ke satu (class, section). Harus dijalankan di dalam transaksi promosi
// supaya alokasi batch melihat tulisan siswa sebelumnya.
type RollNumberAllocator struct {
	store Store
}

func NewRollNumberAllocator(store Store) *RollNumberAllocator {
	return &RollNumberAllocator{store: store}
}

// Allocate: max(roll numerik yang ada) + 1, zero-padded 3 digit ("007").
// Roll lama non-numerik diabaikan (data legacy tidak meracuni batch).
func (a *RollNumberAllocator) Allocate(classID uuid.UUID, sectionID *uuid.UUID) (string, error) {
	if _, err := a.store.FindClass(classID); err != nil {
		return "", fmt.Errorf("%w: kelas tujuan tidak ditemukan", ErrValidation)
	}

	rolls, err := a.store.RollNumbersInClass(classID, sectionID)
	if err != nil {
		return "", err
	}

	max := 0
	for _, r := range rolls {
		n, err := strconv.Atoi(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%03d", max+1), nil
}
