package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accverse/internal/middleware"
	"accverse/internal/models"
)

type fakeTaxFormService struct {
	formsByUser map[int][]*models.TaxForm
	formsByID   map[string]*models.TaxForm
	files       map[string][]models.TaxFormFileInfo
	blobs       map[int]*models.TaxFormFile
}

func (s *fakeTaxFormService) FormsForUser(userID int) ([]*models.TaxForm, error) {
	return s.formsByUser[userID], nil
}

func (s *fakeTaxFormService) FormsForUserByType(userID int, formType string) ([]*models.TaxForm, error) {
	var out []*models.TaxForm
	for _, f := range s.formsByUser[userID] {
		if f.FormType == formType {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *fakeTaxFormService) FormsByType(formType string) ([]*models.TaxForm, error) {
	var out []*models.TaxForm
	for _, forms := range s.formsByUser {
		for _, f := range forms {
			if f.FormType == formType {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

func (s *fakeTaxFormService) FormByID(formID string) (*models.TaxForm, error) {
	return s.formsByID[formID], nil
}

func (s *fakeTaxFormService) FilesForForm(formID string) ([]models.TaxFormFileInfo, error) {
	return s.files[formID], nil
}

func (s *fakeTaxFormService) FileInForm(formID, fileName string) (*models.TaxFormFileInfo, error) {
	for _, f := range s.files[formID] {
		if f.FileName == fileName {
			return &f, nil
		}
	}
	return nil, nil
}

func (s *fakeTaxFormService) FileBlob(fileID int) (*models.TaxFormFile, error) {
	return s.blobs[fileID], nil
}

// injects an identity the way the auth middleware would
func asIdentity(userID int, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
		c.Next()
	}
}

func newTaxFormTestRouter(svc *fakeTaxFormService, userID int, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTaxFormHandler(svc, nil, nil, "/tmp/uploads")

	r := gin.New()
	api := r.Group("/api", asIdentity(userID, role))
	api.GET("/tax-forms/user/:user_id", h.GetUserForms)
	api.GET("/tax-forms/user/:user_id/type/:form_type", h.GetUserFormsByType)
	api.GET("/tax-forms/:form_id", h.GetForm)
	api.GET("/tax-form-files/:form_id/file/:file_name", h.GetFileInForm)
	api.GET("/tax-form-files/blob/:file_id", h.GetFileBlob)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedForms() *fakeTaxFormService {
	form := &models.TaxForm{ID: "f-100", UserID: 7, FormType: "individual", Status: "submitted"}
	other := &models.TaxForm{ID: "f-200", UserID: 8, FormType: "business", Status: "draft"}
	return &fakeTaxFormService{
		formsByUser: map[int][]*models.TaxForm{
			7: {form},
			8: {other},
		},
		formsByID: map[string]*models.TaxForm{"f-100": form, "f-200": other},
		files: map[string][]models.TaxFormFileInfo{
			"f-100": {{FileName: "w2.pdf", FileType: "application/pdf", FileBlob: "YmxvYg"}},
		},
		blobs: map[int]*models.TaxFormFile{
			5: {ID: 5, TaxFormID: "f-100", FileName: "w2.pdf", FileType: "application/pdf", Blob: []byte("%PDF-1.4")},
		},
	}
}

func TestGetUserFormsOwnedByClient(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 7, "client")

	w := get(r, "/api/tax-forms/user/7")
	require.Equal(t, http.StatusOK, w.Code)

	var forms []models.TaxForm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &forms))
	require.Len(t, forms, 1)
	assert.Equal(t, "f-100", forms[0].ID)
}

func TestGetUserFormsCrossClientDenied(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 7, "client")

	w := get(r, "/api/tax-forms/user/8")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Access denied"}`, w.Body.String())
}

func TestGetUserFormsAdminSeesAnyUser(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 1, "admin")

	w := get(r, "/api/tax-forms/user/8")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFormOwnershipAppliesToFetchedForm(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 7, "client")

	// own form
	w := get(r, "/api/tax-forms/f-100")
	assert.Equal(t, http.StatusOK, w.Code)

	// someone else's form
	w = get(r, "/api/tax-forms/f-200")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetFormNotFound(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 1, "admin")

	w := get(r, "/api/tax-forms/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Tax form not found"}`, w.Body.String())
}

func TestGetUserFormsEmptyListNotNull(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 9, "admin")

	w := get(r, "/api/tax-forms/user/9")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetFileInForm(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 1, "admin")

	w := get(r, "/api/tax-form-files/f-100/file/w2.pdf")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "w2.pdf", body["file_name"])
	assert.Equal(t, "application/pdf", body["file_type"])
	assert.Equal(t, "YmxvYg", body["file_blob"])

	w = get(r, "/api/tax-form-files/f-100/file/nope.pdf")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"File not found"}`, w.Body.String())
}

func TestGetFileBlobServesBinary(t *testing.T) {
	r := newTaxFormTestRouter(seedForms(), 1, "admin")

	w := get(r, "/api/tax-form-files/blob/5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="w2.pdf"`)
	assert.Equal(t, "%PDF-1.4", w.Body.String())

	w = get(r, "/api/tax-form-files/blob/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
