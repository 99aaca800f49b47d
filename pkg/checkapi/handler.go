package checkapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/numvalid/pkg/environment"
	"github.com/dmitrymomot/numvalid/pkg/httpserver"
	"github.com/dmitrymomot/numvalid/pkg/logger"
	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
	"github.com/dmitrymomot/numvalid/pkg/profile"
	"github.com/dmitrymomot/numvalid/pkg/requestid"
	"github.com/dmitrymomot/numvalid/pkg/validator"
)

// Config controls request limits.
type Config struct {
	MaxBatch     int   `env:"CHECK_MAX_BATCH" envDefault:"1000"`
	MaxBodyBytes int64 `env:"CHECK_MAX_BODY_BYTES" envDefault:"1048576"`
}

// CheckRequest is the body of POST /profiles/{name}/check.
type CheckRequest struct {
	Values []string `json:"values"`
}

// AdHocRequest is the body of POST /check.
type AdHocRequest struct {
	Precision    int      `json:"precision"`
	Scale        int      `json:"scale"`
	OnlyPositive bool     `json:"only_positive"`
	Values       []string `json:"values"`
}

// Result is the verdict for one value.
type Result struct {
	Value  string `json:"value"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// CheckResponse is the data of a successful check.
type CheckResponse struct {
	Profile string   `json:"profile,omitempty"`
	Valid   int      `json:"valid"`
	Invalid int      `json:"invalid"`
	Results []Result `json:"results"`
}

type api struct {
	cfg      Config
	profiles *profile.Registry
	log      *slog.Logger
}

// Router builds the HTTP handler. A nil registry falls back to profile.Default().
func Router(cfg Config, profiles *profile.Registry, log *slog.Logger, env environment.Environment) chi.Router {
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 1000
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if profiles == nil {
		profiles = profile.Default()
	}
	if log == nil {
		log = logger.Noop()
	}

	a := &api{cfg: cfg, profiles: profiles, log: log.With(logger.Component("checkapi"))}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(env))

	r.Get("/health", httpserver.HealthCheckHandler(a.log))
	r.Get("/profiles", a.wrap(a.listProfiles))
	r.Post("/profiles/{name}/check", a.wrap(a.checkProfile))
	r.Post("/check", a.wrap(a.checkAdHoc))

	return r
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) (int, any, error)

func (a *api) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, data, err := h(w, r)
		body := Response{Code: "ok", Data: data}
		if err != nil {
			status, body = errorResponse(err)
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			a.log.Log(r.Context(), level, "request failed",
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				logger.Error(err),
			)
		}
		if werr := writeJSON(w, status, body); werr != nil {
			a.log.ErrorContext(r.Context(), "failed to write response", logger.Error(werr))
		}
	}
}

func (a *api) listProfiles(_ http.ResponseWriter, _ *http.Request) (int, any, error) {
	return http.StatusOK, a.profiles.All(), nil
}

func (a *api) checkProfile(w http.ResponseWriter, r *http.Request) (int, any, error) {
	name := chi.URLParam(r, "name")
	p, err := a.profiles.Get(name)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return 0, nil, fmt.Errorf("%w: profile %q", ErrNotFound, name)
		}
		return 0, nil, err
	}

	var req CheckRequest
	if err := bindJSON(w, r, a.cfg.MaxBodyBytes, &req); err != nil {
		return 0, nil, err
	}
	if err := validator.Apply(a.batchRules(req.Values)...); err != nil {
		return 0, nil, err
	}

	resp := check(p.Validator(), req.Values)
	resp.Profile = p.Name
	a.log.InfoContext(r.Context(), "batch checked",
		logger.Profile(p.Name),
		logger.Count(len(req.Values)),
		logger.Invalid(resp.Invalid),
	)
	return http.StatusOK, resp, nil
}

func (a *api) checkAdHoc(w http.ResponseWriter, r *http.Request) (int, any, error) {
	var req AdHocRequest
	if err := bindJSON(w, r, a.cfg.MaxBodyBytes, &req); err != nil {
		return 0, nil, err
	}

	rules := append(validator.DecimalConfig(req.Precision, req.Scale), a.batchRules(req.Values)...)
	if err := validator.Apply(rules...); err != nil {
		return 0, nil, err
	}

	v, err := numvalidator.New(req.Precision, req.Scale, req.OnlyPositive)
	if err != nil {
		return 0, nil, err
	}

	resp := check(v, req.Values)
	a.log.InfoContext(r.Context(), "batch checked",
		logger.Constraints(req.Precision, req.Scale, req.OnlyPositive),
		logger.Count(len(req.Values)),
		logger.Invalid(resp.Invalid),
	)
	return http.StatusOK, resp, nil
}

func (a *api) batchRules(values []string) []validator.Rule {
	return []validator.Rule{
		validator.MinNum("values", len(values), 1),
		validator.MaxNum("values", len(values), a.cfg.MaxBatch),
	}
}

func check(v *numvalidator.Validator, values []string) CheckResponse {
	resp := CheckResponse{Results: make([]Result, 0, len(values))}
	for _, value := range values {
		reason := v.Inspect(value)
		resp.Results = append(resp.Results, Result{
			Value:  value,
			Valid:  reason.Valid(),
			Reason: reason.String(),
		})
		if reason.Valid() {
			resp.Valid++
		} else {
			resp.Invalid++
		}
	}
	return resp
}
