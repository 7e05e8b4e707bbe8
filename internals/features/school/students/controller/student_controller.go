// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	promoService "sekolahku_backend/internals/features/school/promotions/service"
	"sekolahku_backend/internals/features/school/students/dto"
	"sekolahku_backend/internals/features/school/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validator: v}
}

/* ===================== LIST ===================== */

// GetStudents: list + paging + filter (class_id, section_id, session_id, is_active, q).
func (ctl *StudentController) GetStudents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.StudentModel{})
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id bukan UUID valid")
		}
		q = q.Where("student_class_id = ?", id)
	}
	if raw := c.Query("section_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id bukan UUID valid")
		}
		q = q.Where("student_section_id = ?", id)
	}
	if raw := c.Query("session_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "session_id bukan UUID valid")
		}
		q = q.Where("student_session_id = ?", id)
	}
	if raw := c.Query("is_active"); raw != "" {
		q = q.Where("student_is_active = ?", raw == "true")
	}
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_roll_number ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_last_name ASC, student_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ===================== DETAIL ===================== */

func (ctl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

/* ===================== CREATE ===================== */

func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Roll number sudah dipakai siswa aktif lain")
		}
		log.Printf("[STUDENT] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.FromModel(m))
}

/* ===================== UPDATE ===================== */

func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.StudentModel
	if err := ctl.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Roll number sudah dipakai siswa aktif lain")
		}
		log.Printf("[STUDENT] update err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(&m))
}

/* ===================== DELETE ===================== */

func (ctl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa berhasil dihapus", fiber.Map{"student_id": id})
}

/* ===================== ROLL PREVIEW ===================== */

// PreviewRollNumber: roll number berikut untuk (class, section) tanpa menulis apa pun.
func (ctl *StudentController) PreviewRollNumber(c *fiber.Ctx) error {
	raw := c.Query("class_id")
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id wajib diisi")
	}
	classID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id bukan UUID valid")
	}
	var sectionID *uuid.UUID
	if raw := c.Query("section_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "section_id bukan UUID valid")
		}
		sectionID = &id
	}

	store := promoService.NewGormStore(ctl.DB)
	roll, err := promoService.NewRollNumberAllocator(store).Allocate(classID, sectionID)
	if err != nil {
		if errors.Is(err, promoService.ErrValidation) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung roll number")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"next_roll_number": roll})
}
