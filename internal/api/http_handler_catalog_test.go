package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
	"catalog-site-service/internal/store"
)

func testProduct(id int64, name string) domain.Product {
	return domain.Product{
		ID:         id,
		Slug:       fmt.Sprintf("product-%d", id),
		Price:      decimal.NewFromInt(1000 + id),
		IsActive:   true,
		CategoryID: 1,
		Translations: i18n.Table[domain.ProductText]{
			"ru": {Name: name},
		},
		CreatedAt: time.Now(),
	}
}

func TestHTTPHandler_ListCatalogProducts_PaginationEnvelope(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	pageItems := make([]domain.Product, 0, 12)
	for i := int64(13); i <= 24; i++ {
		pageItems = append(pageItems, testProduct(i, fmt.Sprintf("Насос %d", i)))
	}

	mockProducts.On("ListProducts", mock.Anything, mock.MatchedBy(func(p store.ListProductsParams) bool {
		return p.ActiveOnly && p.Limit == 12 && p.Offset == 12 && p.Lang == "ru"
	})).Return(pageItems, 25, nil).Once()

	res, err := http.Get(server.URL + "/api/catalog/products?page=2")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var response struct {
		Data       []ProductView  `json:"data"`
		Pagination PaginationInfo `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&response))

	assert.Len(t, response.Data, 12)
	assert.Equal(t, 2, response.Pagination.Page)
	assert.Equal(t, 12, response.Pagination.Limit)
	assert.Equal(t, 25, response.Pagination.TotalItems)
	assert.Equal(t, 3, response.Pagination.TotalPages)

	mockProducts.AssertExpectations(t)
}

func TestHTTPHandler_ListCatalogProducts_Filters(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	mockProducts.On("ListProducts", mock.Anything, mock.MatchedBy(func(p store.ListProductsParams) bool {
		return p.CategorySlug != nil && *p.CategorySlug == "nasosy" &&
			p.SearchQuery != nil && *p.SearchQuery == "газ" &&
			p.FeaturedOnly &&
			p.SortBy == "price" && p.SortOrder == "desc"
	})).Return([]domain.Product{}, 0, nil).Once()

	res, err := http.Get(server.URL + "/api/catalog/products?category=nasosy&q=%D0%B3%D0%B0%D0%B7&is_featured=true&ordering=-price")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	mockProducts.AssertExpectations(t)
}

func TestHTTPHandler_ListCatalogProducts_InvalidPriceRange(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	res, err := http.Get(server.URL + "/api/catalog/products?price_gte=500&price_lte=100")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockProducts.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
}

func TestHTTPHandler_ListCatalogProducts_InvalidOrdering(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	res, err := http.Get(server.URL + "/api/catalog/products?ordering=name")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	mockProducts.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
}

func TestHTTPHandler_GetCatalogProduct_Found_LangFallback(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	product := testProduct(5, "Газовый котёл")
	mockProducts.On("GetProductBySlug", mock.Anything, "product-5", true).Return(&product, nil).Once()

	// requested language has no translation, the default one fills in
	res, err := http.Get(server.URL + "/api/catalog/products/product-5?lang=en")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var view ProductView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&view))
	assert.Equal(t, "Газовый котёл", view.Name)
	assert.Equal(t, "product-5", view.Slug)

	mockProducts.AssertExpectations(t)
}

func TestHTTPHandler_GetCatalogProduct_NotFound(t *testing.T) {
	mockProducts := new(MockProductStorer)
	server := setupTestServer(t, Deps{Products: mockProducts})

	mockProducts.On("GetProductBySlug", mock.Anything, "missing", true).
		Return(nil, store.ErrProductNotFound).Once()

	res, err := http.Get(server.URL + "/api/catalog/products/missing")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errResp))
	assert.Equal(t, store.ErrProductNotFound.Error(), errResp.Error)

	mockProducts.AssertExpectations(t)
}
