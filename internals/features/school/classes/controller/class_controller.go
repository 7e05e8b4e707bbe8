// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/classes/dto"
	"sekolahku_backend/internals/features/school/classes/model"
	promoService "sekolahku_backend/internals/features/school/promotions/service"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB, v *validator.Validate) *ClassController {
	return &ClassController{DB: db, Validator: v}
}

// GetClasses: semua kelas, urut level (urutan promosi).
func (ctl *ClassController) GetClasses(c *fiber.Ctx) error {
	var rows []model.ClassModel
	if err := ctl.DB.Order("class_level ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModels(rows))
}

func (ctl *ClassController) GetClassByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	return helper.JsonOK(c, "OK", dto.FromClassModel(&m))
}

// GetNextClass: kelas lanjutan menurut level; data=null kalau terminal.
func (ctl *ClassController) GetNextClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	seq := promoService.NewClassSequencer(promoService.NewGormStore(ctl.DB))
	next, err := seq.NextClass(id)
	if err != nil {
		if errors.Is(err, promoService.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari kelas lanjutan")
	}
	if next == nil {
		return helper.JsonOK(c, "Kelas terminal", nil)
	}
	return helper.JsonOK(c, "OK", dto.FromClassModel(next))
}

func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Level kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromClassModel(m))
}

func (ctl *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.ClassModel
	if err := ctl.DB.First(&m, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Level kelas sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}
	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.FromClassModel(&m))
}

func (ctl *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	// Kelas yang masih dihuni siswa aktif tidak boleh dihapus.
	var occupied int64
	if err := ctl.DB.Table("students").
		Where("student_class_id = ? AND student_is_active = TRUE AND student_deleted_at IS NULL", id).
		Count(&occupied).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penghuni kelas")
	}
	if occupied > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kelas masih memiliki siswa aktif")
	}

	res := ctl.DB.Delete(&model.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"class_id": id})
}

/* ===================== SECTIONS ===================== */

func (ctl *ClassController) GetSections(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.SectionModel{})
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id bukan UUID valid")
		}
		q = q.Where("section_class_id = ?", id)
	}
	var rows []model.SectionModel
	if err := q.Order("section_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}
	return helper.JsonOK(c, "OK", dto.FromSectionModels(rows))
}

func (ctl *ClassController) CreateSection(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama section sudah dipakai di kelas tsb")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat section")
	}
	return helper.JsonCreated(c, "Section berhasil dibuat", dto.FromSectionModel(m))
}

func (ctl *ClassController) DeleteSection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Delete(&model.SectionModel{}, "section_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Section tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Section berhasil dihapus", fiber.Map{"section_id": id})
}
