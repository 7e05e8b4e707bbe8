// file: internals/features/school/alumni/controller/alumni_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/alumni/dto"
	promoModel "sekolahku_backend/internals/features/school/promotions/model"
	helper "sekolahku_backend/internals/helpers"
)

// Alumni hanya dibuat oleh engine promosi: surface ini baca + update
// field pasca-kelulusan saja, tanpa create dan tanpa delete.
type AlumniController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAlumniController(db *gorm.DB, v *validator.Validate) *AlumniController {
	return &AlumniController{DB: db, Validator: v}
}

// GetAlumni: list + paging + filter (academic_year, graduation_status, class_id, q).
func (ctl *AlumniController) GetAlumni(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&promoModel.AlumniModel{})
	if year := c.Query("academic_year"); year != "" {
		q = q.Where("alumni_academic_year = ?", year)
	}
	if status := c.Query("graduation_status"); status != "" {
		q = q.Where("alumni_graduation_status = ?", status)
	}
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id bukan UUID valid")
		}
		q = q.Where("alumni_graduated_from_class_id = ?", id)
	}
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("alumni_first_name ILIKE ? OR alumni_last_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung alumni")
	}

	var rows []promoModel.AlumniModel
	if err := q.
		Order("alumni_graduation_date DESC, alumni_last_name ASC, alumni_first_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alumni")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *AlumniController) GetAlumniByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m promoModel.AlumniModel
	if err := ctl.DB.First(&m, "alumni_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alumni")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

func (ctl *AlumniController) UpdateAlumni(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAlumniRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m promoModel.AlumniModel
	if err := ctl.DB.First(&m, "alumni_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumni tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alumni")
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui alumni")
	}
	return helper.JsonUpdated(c, "Alumni berhasil diperbarui", dto.FromModel(&m))
}
