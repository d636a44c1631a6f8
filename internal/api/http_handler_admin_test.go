package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/store"
)

func adminRequest(t *testing.T, method, url string, payload any, token string) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(b)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return res
}

func TestHTTPHandler_Admin_RequiresToken(t *testing.T) {
	mockCategories := new(MockCategoryStorer)
	server := setupTestServer(t, Deps{Categories: mockCategories})

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"wrong token", "not-the-token"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := adminRequest(t, http.MethodGet, server.URL+"/api/admin/categories", nil, tc.token)
			defer res.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
	mockCategories.AssertNotCalled(t, "ListCategories", mock.Anything, mock.Anything)
}

func TestHTTPHandler_AdminCreateCategory_Success(t *testing.T) {
	mockCategories := new(MockCategoryStorer)
	server := setupTestServer(t, Deps{Categories: mockCategories})

	input := CategoryInput{
		Translations: map[string]domain.CategoryText{
			"ru": {Name: "Насосы"},
			"kk": {Name: "Сорғылар"},
		},
	}
	expected := &domain.Category{
		ID:           1,
		Slug:         "nasosy",
		Translations: i18n.Table[domain.CategoryText](input.Translations),
	}

	mockCategories.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Slug == "" && c.Translations["ru"].Name == "Насосы"
	})).Return(expected, nil).Once()

	res := adminRequest(t, http.MethodPost, server.URL+"/api/admin/categories", input, testAdminToken)
	defer res.Body.Close()

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var created domain.Category
	require.NoError(t, json.NewDecoder(res.Body).Decode(&created))
	assert.Equal(t, "nasosy", created.Slug)

	mockCategories.AssertExpectations(t)
}

func TestHTTPHandler_AdminCreateCategory_UnknownLanguage(t *testing.T) {
	mockCategories := new(MockCategoryStorer)
	server := setupTestServer(t, Deps{Categories: mockCategories})

	input := CategoryInput{
		Translations: map[string]domain.CategoryText{
			"de": {Name: "Pumpen"},
		},
	}
	res := adminRequest(t, http.MethodPost, server.URL+"/api/admin/categories", input, testAdminToken)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockCategories.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestHTTPHandler_AdminCreateCategory_NameExists(t *testing.T) {
	mockCategories := new(MockCategoryStorer)
	server := setupTestServer(t, Deps{Categories: mockCategories})

	input := CategoryInput{
		Translations: map[string]domain.CategoryText{"ru": {Name: "Насосы"}},
	}
	mockCategories.On("CreateCategory", mock.Anything, mock.AnythingOfType("*domain.Category")).
		Return(nil, store.ErrCategoryNameExists).Once()

	res := adminRequest(t, http.MethodPost, server.URL+"/api/admin/categories", input, testAdminToken)
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errResp))
	assert.Equal(t, store.ErrCategoryNameExists.Error(), errResp.Error)

	mockCategories.AssertExpectations(t)
}

func TestHTTPHandler_AdminSetProductsActive(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	mockProducts.On("SetProductsActive", mock.Anything, []int64{1, 2, 3}, false).
		Return(int64(3), nil).Once()

	res := adminRequest(t, http.MethodPost, server.URL+"/api/admin/products/bulk-active",
		BulkActiveInput{IDs: []int64{1, 2, 3}, Active: false}, testAdminToken)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var result BulkActiveResult
	require.NoError(t, json.NewDecoder(res.Body).Decode(&result))
	assert.Equal(t, int64(3), result.Updated)

	mockProducts.AssertExpectations(t)
}

func TestHTTPHandler_AdminSetProductsActive_EmptyIDs(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	res := adminRequest(t, http.MethodPost, server.URL+"/api/admin/products/bulk-active",
		BulkActiveInput{IDs: nil, Active: true}, testAdminToken)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockProducts.AssertNotCalled(t, "SetProductsActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTPHandler_AdminDeleteCategory_InUse(t *testing.T) {
	mockCategories := new(MockCategoryStorer)
	server := setupTestServer(t, Deps{Categories: mockCategories})

	mockCategories.On("DeleteCategory", mock.Anything, int64(4)).
		Return(store.ErrCategoryInUse).Once()

	res := adminRequest(t, http.MethodDelete, server.URL+"/api/admin/categories/4", nil, testAdminToken)
	defer res.Body.Close()

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	mockCategories.AssertExpectations(t)
}

func TestHTTPHandler_AdminListContactRequests_TopicFilter(t *testing.T) {
	mockContacts := new(MockContactStorer)
	server := setupTestServer(t, Deps{Contacts: mockContacts})

	requests := []domain.ContactRequest{{ID: 1, Name: "Иван", Phone: "+7", Message: "x", Consent: true}}
	mockContacts.On("ListContactRequests", mock.Anything, mock.MatchedBy(func(p store.ListContactRequestsParams) bool {
		return p.TopicID != nil && *p.TopicID == 3 && p.Limit == 20 && p.Offset == 0
	})).Return(requests, 1, nil).Once()

	res := adminRequest(t, http.MethodGet, server.URL+"/api/admin/contact-requests?topic_id=3", nil, testAdminToken)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var response struct {
		Data       []domain.ContactRequest `json:"data"`
		Pagination PaginationInfo          `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, 1, response.Pagination.TotalItems)

	mockContacts.AssertExpectations(t)
}
