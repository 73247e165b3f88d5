package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/validate"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/export"
)

// scaleListResponse is the body of GET /api/v1/scales.
type scaleListResponse struct {
	Catalog []string          `json:"catalog"`
	Custom  []string          `json:"custom,omitempty"`
	Aliases map[string]string `json:"aliases"`
}

// generateRequest is the body of POST /api/v1/generate. Exactly one of
// Name or Definition must be set.
type generateRequest struct {
	Name       string            `json:"name,omitempty"`
	Definition *scale.Definition `json:"definition,omitempty"`
	Length     float64           `json:"length,omitempty"`
	Circular   bool              `json:"circular,omitempty"`
	Algorithm  string            `json:"algorithm,omitempty"`
	Multiplier int               `json:"multiplier,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListScales(w http.ResponseWriter, r *http.Request) {
	resp := scaleListResponse{
		Catalog: catalog.Names(),
		Aliases: catalog.Aliases(),
	}
	if s.opts.Store != nil {
		custom, err := s.opts.Store.List(r.Context())
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		sort.Strings(custom)
		resp.Custom = custom
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetScale(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	def, ok := catalog.Lookup(name, s.opts.DefaultLength)
	if !ok && s.opts.Store != nil {
		stored, err := s.opts.Store.Get(r.Context(), name)
		if err == nil {
			def, ok = stored, true
		} else if errors.GetCode(err) != errors.ErrCodeUnknownScale {
			s.writeError(w, r, err)
			return
		}
	}
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", name))
		return
	}
	s.generateAndWrite(w, r, def, tick.Options{Algorithm: s.defaultAlgorithm()})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if (req.Name == "") == (req.Definition == nil) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidFormat,
			"exactly one of name or definition must be set"))
		return
	}

	length := req.Length
	if length <= 0 {
		length = s.opts.DefaultLength
	}

	var def *scale.Definition
	if req.Name != "" {
		var ok bool
		if req.Circular {
			def, ok = catalog.LookupCircular(req.Name, length)
		} else {
			def, ok = catalog.Lookup(req.Name, length)
		}
		if !ok {
			s.writeError(w, r, errors.New(errors.ErrCodeUnknownScale, "unknown scale %q", req.Name))
			return
		}
	} else {
		def = req.Definition
		if def.Layout.Extent() <= 0 {
			if req.Circular {
				def.Layout = scale.Circular(length)
			} else {
				def.Layout = scale.Linear(length)
			}
		}
		if errs := validate.Scale(def); len(errs) > 0 {
			s.writeError(w, r, errs[0])
			return
		}
	}

	alg := s.defaultAlgorithm()
	if req.Algorithm != "" {
		parsed, err := tick.ParseAlgorithm(req.Algorithm)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		alg = parsed
	}
	s.generateAndWrite(w, r, def, tick.Options{Algorithm: alg, PrecisionMultiplier: req.Multiplier})
}

// generateAndWrite serves the export document for def, consulting the
// cache first.
func (s *Server) generateAndWrite(w http.ResponseWriter, r *http.Request, def *scale.Definition, opts tick.Options) {
	key := s.opts.Keyer.ScaleKey(def, opts)
	if data, hit, err := s.opts.Cache.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	} else if err != nil {
		s.opts.Logger.Warn("cache get failed", "key", key, "err", err)
	}

	gen := tick.Generate(def, opts)

	var buf bytes.Buffer
	if err := export.WriteJSON(&gen, &buf); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.opts.Cache.Set(r.Context(), key, buf.Bytes(), s.opts.CacheTTL); err != nil {
		s.opts.Logger.Warn("cache set failed", "key", key, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) defaultAlgorithm() tick.Algorithm {
	alg, err := tick.ParseAlgorithm(s.opts.DefaultAlgorithm)
	if err != nil {
		return tick.AlgorithmModulo
	}
	return alg
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps engine error codes onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeUnknownScale, errors.ErrCodeUnknownAssembly:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRange, errors.ErrCodeInvalidFunction,
		errors.ErrCodeEmptySubsections, errors.ErrCodeOverlappingSubsections, errors.ErrCodeRoundTrip,
		errors.ErrCodeInvalidLayout, errors.ErrCodeIncompleteDefinition, errors.ErrCodeInvalidRule,
		errors.ErrCodeUnknownAlgorithm:
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.opts.Logger.Error("request failed", "path", r.URL.Path, "err", err)
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
