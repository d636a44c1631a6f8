package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-site-service/internal/domain"
	"catalog-site-service/internal/i18n"
)

func testMetric(id int64, name, value string) domain.Metric {
	return domain.Metric{
		ID:       id,
		Ordering: int(id),
		IsActive: true,
		Translations: i18n.Table[domain.MetricText]{
			"ru": {Name: name, Value: value},
		},
	}
}

func TestHTTPHandler_ListAboutMetrics_LimitPassedToStore(t *testing.T) {
	mockContent := new(MockContentStorer)
	server := setupTestServer(t, Deps{Content: mockContent})

	mockContent.On("ListMetrics", mock.Anything, true, 3).Return([]domain.Metric{
		testMetric(1, "Проектов", "120"),
		testMetric(2, "Лет на рынке", "15"),
		testMetric(3, "Клиентов", "300"),
	}, nil).Once()

	res, err := http.Get(server.URL + "/api/about/metrics?limit=3")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var views []MetricView
	require.NoError(t, json.NewDecoder(res.Body).Decode(&views))
	assert.Len(t, views, 3)
	assert.Equal(t, "Проектов", views[0].Name)

	mockContent.AssertExpectations(t)
}

func TestHTTPHandler_ListAboutMetrics_DefaultUnlimited(t *testing.T) {
	mockContent := new(MockContentStorer)
	server := setupTestServer(t, Deps{Content: mockContent})

	mockContent.On("ListMetrics", mock.Anything, true, 0).Return([]domain.Metric{
		testMetric(1, "Проектов", "120"),
	}, nil).Once()

	res, err := http.Get(server.URL + "/api/about/metrics")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	mockContent.AssertExpectations(t)
}

func TestHTTPHandler_ListAboutMetrics_InvalidLimit(t *testing.T) {
	mockContent := new(MockContentStorer)
	server := setupTestServer(t, Deps{Content: mockContent})

	for _, limit := range []string{"abc", "0", "-5"} {
		res, err := http.Get(server.URL + "/api/about/metrics?limit=" + limit)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "limit %q must be rejected", limit)
	}

	mockContent.AssertNotCalled(t, "ListMetrics", mock.Anything, mock.Anything, mock.Anything)
}
