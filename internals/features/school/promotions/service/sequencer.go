// file: internals/features/school/promotions/service/sequencer.go
package service

import (
	"github.com/google/uuid"

	classModel "sekolahku_backend/internals/features/school/classes/model"
)

// ClassSequencer: urutan promosi ditentukan oleh class_level numerik
// (bukan rantai nama kelas). Kelas dengan level maksimum = kelas terminal.
type ClassSequencer struct {
	store Store
}

func NewClassSequencer(store Store) *ClassSequencer {
	return &ClassSequencer{store: store}
}

// NextClass: kelas dengan level terkecil yang strictly > level kelas saat
// ini; (nil, nil) kalau kelas saat ini sudah level tertinggi.
func (s *ClassSequencer) NextClass(classID uuid.UUID) (*classModel.ClassModel, error) {
	cls, err := s.store.FindClass(classID)
	if err != nil {
		return nil, err
	}
	return s.store.NextClassAbove(cls.ClassLevel)
}

// IsTerminal: true jika tidak ada kelas dengan level lebih tinggi.
func (s *ClassSequencer) IsTerminal(classID uuid.UUID) (bool, error) {
	next, err := s.NextClass(classID)
	if err != nil {
		return false, err
	}
	return next == nil, nil
}
