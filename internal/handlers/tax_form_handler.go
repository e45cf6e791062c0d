package handlers

import (
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"accverse/internal/models"
	"accverse/internal/pdf"
	"accverse/internal/services"
)

type TaxFormHandler struct {
	formService services.TaxFormService
	userService services.UserService
	summaries   pdf.SummaryGenerator
	uploadsDir  string
}

func NewTaxFormHandler(formService services.TaxFormService, userService services.UserService, summaries pdf.SummaryGenerator, uploadsDir string) *TaxFormHandler {
	return &TaxFormHandler{
		formService: formService,
		userService: userService,
		summaries:   summaries,
		uploadsDir:  filepath.Clean(uploadsDir),
	}
}

// @Summary      Tax forms for a user
// @Tags         TaxForms
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  path  int  true  "User ID"
// @Success      200  {array}  models.TaxForm
// @Router       /tax-forms/user/{user_id} [get]
func (h *TaxFormHandler) GetUserForms(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if !mayAccessUser(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	forms, err := h.formService.FormsForUser(userID)
	if err != nil {
		log.Printf("[tax-forms][by-user] query failed userID=%d: err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tax forms"})
		return
	}
	if forms == nil {
		forms = []*models.TaxForm{}
	}
	c.JSON(http.StatusOK, forms)
}

// @Summary      Tax forms of one type for a user
// @Tags         TaxForms
// @Produce      json
// @Security     BearerAuth
// @Router       /tax-forms/user/{user_id}/type/{form_type} [get]
func (h *TaxFormHandler) GetUserFormsByType(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}
	if !mayAccessUser(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	forms, err := h.formService.FormsForUserByType(userID, c.Param("form_type"))
	if err != nil {
		log.Printf("[tax-forms][by-type] query failed userID=%d: err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tax forms"})
		return
	}
	if forms == nil {
		forms = []*models.TaxForm{}
	}
	c.JSON(http.StatusOK, forms)
}

// @Summary      Tax form by id
// @Tags         TaxForms
// @Produce      json
// @Security     BearerAuth
// @Router       /tax-forms/{form_id} [get]
func (h *TaxFormHandler) GetForm(c *gin.Context) {
	form, err := h.formService.FormByID(c.Param("form_id"))
	if err != nil {
		log.Printf("[tax-forms][get] query failed formID=%s: err=%v", c.Param("form_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tax form"})
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tax form not found"})
		return
	}
	if !mayAccessUser(c, form.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// @Summary      All tax forms of one type (admin)
// @Tags         TaxForms
// @Produce      json
// @Security     BearerAuth
// @Router       /tax-forms/type/{form_type} [get]
func (h *TaxFormHandler) GetAllFormsByType(c *gin.Context) {
	forms, err := h.formService.FormsByType(c.Param("form_type"))
	if err != nil {
		log.Printf("[tax-forms][all-by-type] query failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tax forms"})
		return
	}
	if forms == nil {
		forms = []*models.TaxForm{}
	}
	c.JSON(http.StatusOK, forms)
}

// @Summary      File metadata for a form
// @Tags         TaxFormFiles
// @Produce      json
// @Security     BearerAuth
// @Router       /tax-form-files/{form_id} [get]
func (h *TaxFormHandler) GetFilesForForm(c *gin.Context) {
	files, err := h.formService.FilesForForm(c.Param("form_id"))
	if err != nil {
		log.Printf("[files][list] query failed formID=%s: err=%v", c.Param("form_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}
	c.JSON(http.StatusOK, files)
}

// @Summary      Single named file of a form, payload included
// @Tags         TaxFormFiles
// @Produce      json
// @Security     BearerAuth
// @Router       /tax-form-files/{form_id}/file/{file_name} [get]
func (h *TaxFormHandler) GetFileInForm(c *gin.Context) {
	file, err := h.formService.FileInForm(c.Param("form_id"), c.Param("file_name"))
	if err != nil {
		log.Printf("[files][find] query failed formID=%s: err=%v", c.Param("form_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	if file == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file_blob": file.FileBlob,
		"file_type": file.FileType,
		"file_name": file.FileName,
	})
}

// @Summary      Binary attachment by id
// @Tags         TaxFormFiles
// @Produce      octet-stream
// @Security     BearerAuth
// @Router       /tax-form-files/blob/{file_id} [get]
func (h *TaxFormHandler) GetFileBlob(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file id"})
		return
	}
	file, err := h.formService.FileBlob(fileID)
	if err != nil {
		log.Printf("[files][blob] query failed fileID=%d: err=%v", fileID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}
	if file == nil || len(file.Blob) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	contentType := file.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `inline; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, contentType, file.Blob)
}

// ServeUpload streams a file from the uploads directory. The wildcard path is
// normalized and must stay inside the root.
func (h *TaxFormHandler) ServeUpload(c *gin.Context) {
	rel := strings.ReplaceAll(c.Param("filepath"), "\\", "/")
	full := filepath.Join(h.uploadsDir, filepath.Clean("/"+rel))
	if !strings.HasPrefix(full, h.uploadsDir+string(filepath.Separator)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	c.File(full)
}

// @Summary      One-page PDF summary of a form (admin)
// @Tags         TaxForms
// @Produce      application/pdf
// @Security     BearerAuth
// @Router       /tax-forms/{form_id}/summary.pdf [get]
func (h *TaxFormHandler) GetFormSummaryPDF(c *gin.Context) {
	form, err := h.formService.FormByID(c.Param("form_id"))
	if err != nil {
		log.Printf("[tax-forms][summary] query failed formID=%s: err=%v", c.Param("form_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tax form"})
		return
	}
	if form == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tax form not found"})
		return
	}

	clientName := ""
	if owner, err := h.userService.GetUserByID(form.UserID); err == nil && owner != nil {
		clientName = owner.Name
	}

	data, err := h.summaries.FormSummary(pdf.FormSummaryData{Form: form, ClientName: clientName})
	if err != nil {
		log.Printf("[tax-forms][summary] render failed formID=%s: err=%v", form.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render summary"})
		return
	}
	c.Header("Content-Disposition", `inline; filename="form_`+form.ID+`_summary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
