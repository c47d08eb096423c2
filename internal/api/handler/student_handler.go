package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robinmutlu/robinboard/internal/dto"
	"github.com/robinmutlu/robinboard/internal/service"
	"github.com/robinmutlu/robinboard/pkg/response"
)

// StudentHandler öğrenci ve doğum günü uçları.
type StudentHandler struct {
	student service.StudentService
	logger  *zap.Logger
}

// NewStudentHandler StudentHandler örneği oluşturur.
func NewStudentHandler(student service.StudentService, logger *zap.Logger) *StudentHandler {
	return &StudentHandler{student: student, logger: logger}
}

// List GET /api/v1/admin/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.student.List(c.Request.Context())
	if err != nil {
		h.logger.Error("öğrenci listesi okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, students)
}

// Create POST /api/v1/admin/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Ad, sınıf ve doğum tarihi gerekli")
		return
	}

	student, err := h.student.Create(c.Request.Context(), req)
	if errors.Is(err, service.ErrBadBirthDate) {
		response.BadRequest(c, 40010, "Doğum tarihi GG-AA biçiminde olmalı")
		return
	}
	if err != nil {
		h.logger.Error("öğrenci eklenemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Created(c, student)
}

// Delete DELETE /api/v1/admin/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, 40000, "Geçersiz kayıt numarası")
		return
	}

	err = h.student.Delete(c.Request.Context(), uint(id))
	if errors.Is(err, service.ErrStudentNotFound) {
		response.NotFound(c, 40410, "Öğrenci bulunamadı")
		return
	}
	if err != nil {
		h.logger.Error("öğrenci silinemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// DeleteAll DELETE /api/v1/admin/students — dönem sonu temizliği.
func (h *StudentHandler) DeleteAll(c *gin.Context) {
	if err := h.student.DeleteAll(c.Request.Context()); err != nil {
		h.logger.Error("öğrenci kayıtları silinemedi", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Import POST /api/v1/admin/students/import — xlsx liste yükleme.
func (h *StudentHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40000, "Dosya gerekli")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, 40000, "Dosya açılamadı")
		return
	}
	defer file.Close()

	count, err := h.student.ImportXLSX(c.Request.Context(), file)
	if err != nil {
		h.logger.Error("içe aktarma başarısız", zap.Error(err))
		response.BadRequest(c, 40011, "Dosya xlsx biçiminde okunamadı")
		return
	}
	response.OK(c, gin.H{"imported": count})
}

// Export GET /api/v1/admin/students/export — xlsx liste indirme.
func (h *StudentHandler) Export(c *gin.Context) {
	data, err := h.student.ExportXLSX(c.Request.Context())
	if err != nil {
		h.logger.Error("dışa aktarma başarısız", zap.Error(err))
		response.InternalError(c)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ogrenciler.xlsx"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Birthdays GET /api/v1/birthdays — günün doğum günleri (public).
func (h *StudentHandler) Birthdays(c *gin.Context) {
	entries, err := h.student.TodaysBirthdays(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("doğum günleri okunamadı", zap.Error(err))
		response.InternalError(c)
		return
	}
	response.OK(c, entries)
}
