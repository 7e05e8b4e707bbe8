// file: internals/features/school/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/sessions/dto"
	"sekolahku_backend/internals/features/school/sessions/model"
	helper "sekolahku_backend/internals/helpers"
)

type SessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSessionController(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validator: v}
}

func (ctl *SessionController) GetSessions(c *fiber.Ctx) error {
	var rows []model.AcademicSessionModel
	if err := ctl.DB.Order("session_start_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sessions")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GetCurrentSession: session berjalan; 404 kalau belum ada yang aktif.
func (ctl *SessionController) GetCurrentSession(c *fiber.Ctx) error {
	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "session_is_current = TRUE").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada session berjalan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil session")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

func (ctl *SessionController) GetSessionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil session")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&m))
}

func (ctl *SessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if req.SessionEndDate.Before(req.SessionStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_end_date harus >= session_start_date")
	}

	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		log.Printf("[SESSION] create err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat session")
	}
	return helper.JsonCreated(c, "Session berhasil dibuat", dto.FromModel(m))
}

func (ctl *SessionController) UpdateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.AcademicSessionModel
	if err := ctl.DB.First(&m, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil session")
	}

	req.ApplyUpdates(&m)
	if m.SessionEndDate.Before(m.SessionStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_end_date harus >= session_start_date")
	}
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui session")
	}
	return helper.JsonUpdated(c, "Session berhasil diperbarui", dto.FromModel(&m))
}

// ActivateSession: jadikan session berjalan; flag session lain dimatikan
// dalam satu transaksi supaya maksimal satu yang aktif.
func (ctl *SessionController) ActivateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.AcademicSessionModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "session_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AcademicSessionModel{}).
			Where("session_is_current = TRUE AND session_id <> ?", id).
			Update("session_is_current", false).Error; err != nil {
			return err
		}
		m.SessionIsCurrent = true
		return tx.Save(&m).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		log.Printf("[SESSION] activate err: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengaktifkan session")
	}
	return helper.JsonUpdated(c, "Session diaktifkan", dto.FromModel(&m))
}

func (ctl *SessionController) DeleteSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.AcademicSessionModel{}, "session_id = ? AND session_is_current = FALSE", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus session")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan atau sedang berjalan")
	}
	return helper.JsonDeleted(c, "Session berhasil dihapus", fiber.Map{"session_id": id})
}
