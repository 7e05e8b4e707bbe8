// file: internals/features/school/promotions/controller/promotion_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/features/school/promotions/dto"
	"sekolahku_backend/internals/features/school/promotions/service"
	sessionModel "sekolahku_backend/internals/features/school/sessions/model"
	helper "sekolahku_backend/internals/helpers"
	middleware "sekolahku_backend/internals/middlewares/auth"
)

type PromotionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   service.PromotionService
}

func NewPromotionController(db *gorm.DB, v *validator.Validate) *PromotionController {
	return &PromotionController{
		DB:        db,
		Validator: v,
		Service:   service.NewPromotionService(service.NewGormStore(db)),
	}
}

/* ===================== QUERY PARSING ===================== */

func parseUUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" bukan UUID valid")
	}
	return &id, nil
}

func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" harus format YYYY-MM-DD")
	}
	return &t, nil
}

/* ===================== HANDLERS ===================== */

// GetOptions: data untuk form promosi — daftar session/kelas/section,
// default session tujuan (session pertama yang mulai setelah session
// berjalan) dan default tanggal promosi (hari ini).
func (ctl *PromotionController) GetOptions(c *fiber.Ctx) error {
	var sessions []sessionModel.AcademicSessionModel
	if err := ctl.DB.Order("session_start_date ASC").Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sessions")
	}
	var classes []classModel.ClassModel
	if err := ctl.DB.Order("class_level ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}
	var sections []classModel.SectionModel
	if err := ctl.DB.Order("section_name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil section")
	}

	var current *sessionModel.AcademicSessionModel
	var defaultNext *sessionModel.AcademicSessionModel
	for i := range sessions {
		if sessions[i].SessionIsCurrent {
			current = &sessions[i]
			break
		}
	}
	if current != nil {
		for i := range sessions {
			if sessions[i].SessionStartDate.After(current.SessionStartDate) {
				defaultNext = &sessions[i]
				break
			}
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"sessions":               sessions,
		"classes":                classes,
		"sections":               sections,
		"current_session":        current,
		"default_next_session":   defaultNext,
		"default_promotion_date": time.Now().Format("2006-01-02"),
	})
}

// GetStudentsForPromotion: preview kohort + evaluasi kelayakan per siswa.
// Query: class_id (wajib), session_id (wajib), section_id (opsional).
func (ctl *PromotionController) GetStudentsForPromotion(c *fiber.Ctx) error {
	classID, err := parseUUIDQuery(c, "class_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	sessionID, err := parseUUIDQuery(c, "session_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if classID == nil || sessionID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id dan session_id wajib diisi")
	}
	sectionID, err := parseUUIDQuery(c, "section_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	infos, err := ctl.Service.StudentsForPromotion(*classID, sectionID, *sessionID)
	if err != nil {
		return translateServiceErr(c, err)
	}
	return helper.JsonOK(c, "OK", infos)
}

// CanPromote: advisory gate sebelum menjalankan promosi kelas.
// Query: class_id, academic_year, term.
func (ctl *PromotionController) CanPromote(c *fiber.Ctx) error {
	classID, err := parseUUIDQuery(c, "class_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	year := c.Query("academic_year")
	term := c.Query("term")
	if classID == nil || year == "" || term == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id, academic_year, dan term wajib diisi")
	}
	ok := ctl.Service.CanPromoteClass(*classID, year, term)
	return helper.JsonOK(c, "OK", fiber.Map{"can_promote": ok})
}

// ProcessPromotion: eksekusi batch promosi (daftar siswa eksplisit).
func (ctl *PromotionController) ProcessPromotion(c *fiber.Ctx) error {
	var req dto.ProcessPromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	res, err := ctl.Service.ProcessPromotion(req.ToServiceRequest(), middleware.ActorName(c))
	if err != nil {
		return translateServiceErrWithResult(c, err, res)
	}
	return helper.JsonOK(c, "Promosi selesai", res)
}

// PromoteClass: eksekusi promosi seluruh kelas.
func (ctl *PromotionController) PromoteClass(c *fiber.Ctx) error {
	var req dto.PromoteClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	date := time.Now()
	if req.PromotionDate != nil {
		date = *req.PromotionDate
	}
	res, err := ctl.Service.PromoteClass(req.ClassID, req.SectionID, req.FromSessionID, req.ToSessionID, date, middleware.ActorName(c))
	if err != nil {
		return translateServiceErrWithResult(c, err, res)
	}
	return helper.JsonOK(c, "Promosi kelas selesai", res)
}

// GetHistory: riwayat promosi dengan filter konjungtif.
// Query: student_id, class_id, session_id, from_date, to_date (semua opsional).
func (ctl *PromotionController) GetHistory(c *fiber.Ctx) error {
	var f service.HistoryFilter
	var err error
	if f.StudentID, err = parseUUIDQuery(c, "student_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if f.ClassID, err = parseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if f.SessionID, err = parseUUIDQuery(c, "session_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if f.FromDate, err = parseDateQuery(c, "from_date"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if f.ToDate, err = parseDateQuery(c, "to_date"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := ctl.Service.QueryHistory(f)
	if err != nil {
		return translateServiceErr(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromHistoryModels(rows))
}

/* ===================== ERROR TRANSLATION ===================== */

func translateServiceErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

// translateServiceErrWithResult: batch gagal tetap mengembalikan result
// (success=false + pesan) supaya klien tahu batch di-rollback utuh.
func translateServiceErrWithResult(c *fiber.Ctx, err error, res *service.PromotionResult) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = fiber.StatusConflict
	}
	if res == nil {
		return helper.JsonError(c, status, err.Error())
	}
	return helper.JsonErrorWithData(c, status, err.Error(), res)
}
