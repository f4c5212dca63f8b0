package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitpath/fitpath/internal/catalog"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *mux.Router {
	h := catalog.NewHandler(catalog.Default())
	router := mux.NewRouter()
	router.HandleFunc("/catalog/categories", h.HandleCategories).Methods("GET")
	router.HandleFunc("/catalog/categories/{id}", h.HandleCategory).Methods("GET")
	router.HandleFunc("/catalog/movement-tests", h.HandleMovementTests).Methods("GET")
	router.HandleFunc("/catalog/movement-tests/{id}", h.HandleMovementTest).Methods("GET")
	router.HandleFunc("/catalog/progressions", h.HandleProgressionTemplates).Methods("GET")
	router.HandleFunc("/catalog/progressions/{id}", h.HandleProgressionTemplate).Methods("GET")
	return router
}

func TestHandler_Categories(t *testing.T) {
	router := newCatalogRouter()

	req, err := http.NewRequest("GET", "/catalog/categories", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var categories []catalog.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &categories))
	assert.Len(t, categories, 6)
	assert.Equal(t, catalog.CategoryUpperBody, categories[0].ID)

	// second request comes from the cache and must be identical
	rr2 := httptest.NewRecorder()
	router.ServeHTTP(rr2, req)
	require.Equal(t, http.StatusOK, rr2.Code)
	assert.Equal(t, rr.Body.String(), rr2.Body.String())
}

func TestHandler_CategoryByID(t *testing.T) {
	router := newCatalogRouter()

	req, err := http.NewRequest("GET", "/catalog/categories/"+catalog.CategoryCore, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var category catalog.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &category))
	assert.Equal(t, catalog.CategoryCore, category.ID)
	assert.NotEmpty(t, category.Questions)
}

func TestHandler_NotFound(t *testing.T) {
	router := newCatalogRouter()

	for _, path := range []string{
		"/catalog/categories/nope",
		"/catalog/movement-tests/nope",
		"/catalog/progressions/nope",
	} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestHandler_MovementTestsAndProgressions(t *testing.T) {
	router := newCatalogRouter()

	req, err := http.NewRequest("GET", "/catalog/movement-tests", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var tests []catalog.MovementTest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tests))
	assert.Len(t, tests, 7)

	req, err = http.NewRequest("GET", "/catalog/progressions/"+catalog.ProgressionPushup, nil)
	require.NoError(t, err)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var template catalog.ProgressionTemplate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &template))
	assert.Equal(t, catalog.ProgressionPushup, template.ID)
	assert.Len(t, template.Levels, 7)
}
