package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitpath/fitpath/internal/telemetry/tracing"
	"github.com/fitpath/fitpath/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const catalogCacheExpireSeconds = 60 * 60

// Handler serves the reference data. The catalog is immutable at
// runtime, so marshaled responses are cached aggressively.
type Handler struct {
	catalog *InMemory
	cache   *freecache.Cache
}

func NewHandler(catalog *InMemory) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		catalog: catalog,
		cache:   freecache.NewCache(10 * megabyte),
	}
}

func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.categories")
	defer span.End()

	h.writeCached(w, "categories", func() (any, error) {
		return h.catalog.Categories(), nil
	})
}

func (h *Handler) HandleCategory(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.category")
	defer span.End()

	id := mux.Vars(r)["id"]
	h.writeCached(w, "category::"+id, func() (any, error) {
		return h.catalog.Category(id)
	})
}

func (h *Handler) HandleMovementTests(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.movementtests")
	defer span.End()

	h.writeCached(w, "movement-tests", func() (any, error) {
		return h.catalog.MovementTests(), nil
	})
}

func (h *Handler) HandleMovementTest(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.movementtest")
	defer span.End()

	id := mux.Vars(r)["id"]
	h.writeCached(w, "movement-test::"+id, func() (any, error) {
		return h.catalog.MovementTest(id)
	})
}

func (h *Handler) HandleProgressionTemplates(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.progressions")
	defer span.End()

	h.writeCached(w, "progression-templates", func() (any, error) {
		return h.catalog.ProgressionTemplates(), nil
	})
}

func (h *Handler) HandleProgressionTemplate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.progression")
	defer span.End()

	id := mux.Vars(r)["id"]
	h.writeCached(w, "progression-template::"+id, func() (any, error) {
		return h.catalog.ProgressionTemplate(id)
	})
}

func (h *Handler) writeCached(w http.ResponseWriter, cacheKey string, lookup func() (any, error)) {
	if cached, err := h.cache.Get([]byte(cacheKey)); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	entry, err := lookup()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "catalog entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("catalog lookup [%s]: %s", cacheKey, err)
		http.Error(w, "catalog lookup failed", http.StatusInternalServerError)
		return
	}

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("failed to marshal catalog entry [%s]: %s", cacheKey, err)
		http.Error(w, "catalog lookup failed", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set([]byte(cacheKey), entryJson, catalogCacheExpireSeconds); err != nil {
		log.Warnf("failed to cache catalog entry [%s]: %s", cacheKey, err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, entryJson)
}
