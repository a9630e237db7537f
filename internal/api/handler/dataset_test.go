package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/price-analytics-api/infrastructure/datasource/mocks"
	"github.com/vfg2006/price-analytics-api/internal/domain"
	"github.com/vfg2006/price-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetDatasetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockLoader(ctrl)

	t.Run("Deve retornar o estado do cache com status 200", func(t *testing.T) {
		mockLoader.EXPECT().Status().Return(&domain.DatasetStatus{
			Generation: "abc123",
			LoadedAt:   time.Now(),
			PriceRows:  10,
			SalesRows:  5,
			Quality:    domain.DataQuality{NullPrices: 2},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil)
		w := httptest.NewRecorder()

		GetDatasetStatus(mockLoader).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var status domain.DatasetStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "abc123", status.Generation)
		assert.Equal(t, 10, status.PriceRows)
		assert.Equal(t, 2, status.Quality.NullPrices)
	})

	t.Run("Falha de carga vira resposta padronizada com diagnóstico", func(t *testing.T) {
		loadErr := datasource.NewLoadError(
			datasource.ErrMissingColumn,
			"price",
			"data/price_all.csv",
			map[string][]string{"price": {"month", "CAI"}},
		)
		mockLoader.EXPECT().Status().Return(nil, loadErr)

		r := httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil)
		w := httptest.NewRecorder()

		GetDatasetStatus(mockLoader).ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrDataLoad, apiErr.Code)

		details, ok := apiErr.Details.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "price", details["source"])
		assert.Equal(t, "data/price_all.csv", details["path"])
	})

	t.Run("Erro genérico vira erro interno", func(t *testing.T) {
		mockLoader.EXPECT().Status().Return(nil, assert.AnError)

		r := httptest.NewRequest(http.MethodGet, "/v1/dataset/status", nil)
		w := httptest.NewRecorder()

		GetDatasetStatus(mockLoader).ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	})
}

func TestReloadDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockLoader(ctrl)

	t.Run("Deve recarregar e retornar o novo estado", func(t *testing.T) {
		mockLoader.EXPECT().Reload().Return(&domain.Dataset{
			Generation: "def456",
			LoadedAt:   time.Now(),
			Price:      []domain.PriceRecord{{Month: "202401", ProductID: "100"}},
			Sales:      []domain.SalesRecord{{Month: "202401", ProductID: "100"}},
		}, nil)

		r := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
		w := httptest.NewRecorder()

		ReloadDataset(mockLoader).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		var status domain.DatasetStatus
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "def456", status.Generation)
		assert.Equal(t, 1, status.PriceRows)
		assert.Equal(t, 1, status.SalesRows)
	})

	t.Run("Falha na recarga vira resposta padronizada", func(t *testing.T) {
		mockLoader.EXPECT().Reload().Return(nil, datasource.NewLoadError(
			datasource.ErrEmptySource, "sales", "data/sales_all.csv", nil,
		))

		r := httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil)
		w := httptest.NewRecorder()

		ReloadDataset(mockLoader).ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrDataLoad, apiErr.Code)
	})
}
