// file: internals/features/school/exams/controller/exam_result_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/exams/dto"
	"sekolahku_backend/internals/features/school/exams/model"
	helper "sekolahku_backend/internals/helpers"
)

type ExamResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamResultController(db *gorm.DB, v *validator.Validate) *ExamResultController {
	return &ExamResultController{DB: db, Validator: v}
}

// GetExamResults: list + paging + filter (student_id, class_id, session_id, term, academic_year).
func (ctl *ExamResultController) GetExamResults(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ExamResultModel{})
	for param, column := range map[string]string{
		"student_id": "exam_result_student_id",
		"class_id":   "exam_result_class_id",
		"session_id": "exam_result_session_id",
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, param+" bukan UUID valid")
			}
			q = q.Where(column+" = ?", id)
		}
	}
	if term := c.Query("term"); term != "" {
		q = q.Where("exam_result_term = ?", term)
	}
	if year := c.Query("academic_year"); year != "" {
		q = q.Where("exam_result_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung hasil ujian")
	}

	var rows []model.ExamResultModel
	if err := q.
		Order("exam_result_exam_date DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil ujian")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

func (ctl *ExamResultController) GetExamResultByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.ExamResultModel
	if err := ctl.DB.First(&m, "exam_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hasil ujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil ujian")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

func (ctl *ExamResultController) CreateExamResult(c *fiber.Ctx) error {
	var req dto.CreateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	m := req.ToModel()
	if err := m.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Hasil ujian untuk (siswa, term, tahun) tsb sudah ada")
		}
		log.Printf("[EXAM] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil ujian")
	}
	return helper.JsonCreated(c, "Hasil ujian tersimpan", dto.FromModel(m))
}

func (ctl *ExamResultController) UpdateExamResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateExamResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.ExamResultModel
	if err := ctl.DB.First(&m, "exam_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Hasil ujian tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil hasil ujian")
	}

	req.ApplyUpdates(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui hasil ujian")
	}
	return helper.JsonUpdated(c, "Hasil ujian diperbarui", dto.FromModel(&m))
}

func (ctl *ExamResultController) DeleteExamResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Delete(&model.ExamResultModel{}, "exam_result_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus hasil ujian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Hasil ujian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Hasil ujian dihapus", fiber.Map{"exam_result_id": id})
}
