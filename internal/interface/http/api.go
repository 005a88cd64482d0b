package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/MiniShopTech/MiniShop/internal/infra/observability"
	"github.com/MiniShopTech/MiniShop/internal/pkg/apperr"
	categoryuc "github.com/MiniShopTech/MiniShop/internal/usecase/category"
	productuc "github.com/MiniShopTech/MiniShop/internal/usecase/product"
)

const maxBodyBytes = 1 << 20

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidBody = errors.New("invalid request body")
)

type API struct {
	categorySvc *categoryuc.Service
	productSvc  *productuc.Service
	validator   *validator.Validate
	logger      *slog.Logger
	metrics     *observability.Metrics
	health      func(ctx context.Context) error
	opts        Options
}

type Options struct {
	RequestTimeout     time.Duration
	RateLimitPerMinute int
	Production         bool
}

type Dependencies struct {
	CategoryService *categoryuc.Service
	ProductService  *productuc.Service
	Logger          *slog.Logger
	Metrics         *observability.Metrics
	// HealthCheck reports store reachability; nil means always healthy.
	HealthCheck func(ctx context.Context) error
	Options     Options
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &API{
		categorySvc: deps.CategoryService,
		productSvc:  deps.ProductService,
		validator:   validate,
		logger:      logger,
		metrics:     deps.Metrics,
		health:      deps.HealthCheck,
		opts:        deps.Options,
	}
}

func (a *API) Router() chi.Router {
	timeout := 30 * time.Second
	if a.opts.RequestTimeout > 0 {
		timeout = a.opts.RequestTimeout
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(a.secureHeaders())
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}
	if a.opts.RateLimitPerMinute > 0 {
		r.Use(a.rateLimit(a.opts.RateLimitPerMinute))
	}
	r.Use(chimw.Timeout(timeout))
	r.Use(requireJSON)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "", "method not allowed")
	})

	r.Get("/health", a.handleHealth)
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(rr chi.Router) {
			rr.Get("/", a.handleListCategories)
			rr.Post("/", a.handleCreateCategory)
			rr.Post("/search", a.handleSearchCategories)
			rr.Get("/{id}", a.handleGetCategory)
			rr.Put("/{id}", a.handleUpdateCategory)
			rr.Delete("/{id}", a.handleDeleteCategory)
		})

		r.Route("/products", func(rr chi.Router) {
			rr.Get("/", a.handleListProducts)
			rr.Post("/", a.handleCreateProduct)
			rr.Post("/search", a.handleSearchProducts)
			rr.Get("/{id}", a.handleGetProduct)
			rr.Put("/{id}", a.handleUpdateProduct)
			rr.Delete("/{id}", a.handleDeleteProduct)
		})
	})

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.health != nil {
		if err := a.health(r.Context()); err != nil {
			a.logger.Error("health check failed", slog.Any("error", err))
			respondError(w, http.StatusServiceUnavailable, apperr.KindStore.String(), apperr.Message(apperr.Wrap(apperr.KindStore, "health", err)))
			return
		}
	}
	respondOK(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// decodeAndValidate reads a JSON body into dst. An empty body leaves dst
// untouched when allowEmpty is set.
func (a *API) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return fmt.Errorf("%w: %w", errInvalidBody, err)
		}
	}
	return a.validator.Struct(dst)
}

// envelope is the body of every API response. Data is present only on success.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondOK(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: msg})
}

func respondError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, envelope{Success: false, Message: msg, Kind: kind})
}

// handleRequestError answers a body or path that could not be read.
func (a *API) handleRequestError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondError(w, http.StatusUnprocessableEntity, apperr.KindValidation.String(), validationMessage(verrs))
		return
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "", "request body too large")
		return
	}
	respondError(w, http.StatusBadRequest, "", err.Error())
}

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		a.logger.Warn("request aborted", slog.String("path", r.URL.Path), slog.Any("error", err))
		respondError(w, http.StatusServiceUnavailable, kind.String(), "request timed out")
	case kind == apperr.KindNotFound:
		a.logger.Debug("not found", slog.String("path", r.URL.Path), slog.Any("error", err))
		respondError(w, http.StatusNotFound, kind.String(), apperr.Message(err))
	case kind == apperr.KindValidation:
		a.logger.Debug("validation failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		respondError(w, http.StatusUnprocessableEntity, kind.String(), apperr.Message(err))
	default:
		a.logger.Error("store failure",
			slog.String("path", r.URL.Path),
			slog.String("request_id", chimw.GetReqID(r.Context())),
			slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, apperr.KindStore.String(), apperr.Message(err))
	}
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

func parseIDParam(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
