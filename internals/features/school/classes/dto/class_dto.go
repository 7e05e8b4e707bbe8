// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"sekolahku_backend/internals/features/school/classes/model"
)

/* ===================== CLASS ===================== */

type CreateClassRequest struct {
	ClassName            string  `json:"class_name" validate:"required,min=1,max=30"`
	ClassLevel           int     `json:"class_level" validate:"gte=0"`
	ClassTeacherInCharge *string `json:"class_teacher_in_charge" validate:"omitempty,max=100"`
	ClassRoomNumber      *string `json:"class_room_number" validate:"omitempty,max=20"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:            r.ClassName,
		ClassLevel:           r.ClassLevel,
		ClassTeacherInCharge: r.ClassTeacherInCharge,
		ClassRoomNumber:      r.ClassRoomNumber,
	}
}

type UpdateClassRequest struct {
	ClassName            *string `json:"class_name" validate:"omitempty,min=1,max=30"`
	ClassLevel           *int    `json:"class_level" validate:"omitempty,gte=0"`
	ClassTeacherInCharge *string `json:"class_teacher_in_charge" validate:"omitempty,max=100"`
	ClassRoomNumber      *string `json:"class_room_number" validate:"omitempty,max=20"`
}

func (r *UpdateClassRequest) ApplyUpdates(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassLevel != nil {
		m.ClassLevel = *r.ClassLevel
	}
	if r.ClassTeacherInCharge != nil {
		m.ClassTeacherInCharge = r.ClassTeacherInCharge
	}
	if r.ClassRoomNumber != nil {
		m.ClassRoomNumber = r.ClassRoomNumber
	}
}

type ClassResponse struct {
	ClassID              uuid.UUID `json:"class_id"`
	ClassName            string    `json:"class_name"`
	ClassLevel           int       `json:"class_level"`
	ClassTeacherInCharge *string   `json:"class_teacher_in_charge,omitempty"`
	ClassRoomNumber      *string   `json:"class_room_number,omitempty"`
	ClassCreatedAt       time.Time `json:"class_created_at"`
	ClassUpdatedAt       time.Time `json:"class_updated_at"`
}

func FromClassModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:              m.ClassID,
		ClassName:            m.ClassName,
		ClassLevel:           m.ClassLevel,
		ClassTeacherInCharge: m.ClassTeacherInCharge,
		ClassRoomNumber:      m.ClassRoomNumber,
		ClassCreatedAt:       m.ClassCreatedAt,
		ClassUpdatedAt:       m.ClassUpdatedAt,
	}
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromClassModel(&ms[i]))
	}
	return out
}

/* ===================== SECTION ===================== */

type CreateSectionRequest struct {
	SectionName    string     `json:"section_name" validate:"required,min=1,max=50"`
	SectionClassID *uuid.UUID `json:"section_class_id"`
}

func (r *CreateSectionRequest) ToModel() *model.SectionModel {
	return &model.SectionModel{
		SectionName:    strings.TrimSpace(r.SectionName),
		SectionClassID: r.SectionClassID,
	}
}

type SectionResponse struct {
	SectionID      uuid.UUID  `json:"section_id"`
	SectionName    string     `json:"section_name"`
	SectionClassID *uuid.UUID `json:"section_class_id,omitempty"`
	SectionCreatedAt time.Time `json:"section_created_at"`
}

func FromSectionModel(m *model.SectionModel) SectionResponse {
	return SectionResponse{
		SectionID:        m.SectionID,
		SectionName:      m.SectionName,
		SectionClassID:   m.SectionClassID,
		SectionCreatedAt: m.SectionCreatedAt,
	}
}

func FromSectionModels(ms []model.SectionModel) []SectionResponse {
	out := make([]SectionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromSectionModel(&ms[i]))
	}
	return out
}
