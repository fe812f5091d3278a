package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/sash/pkg/buildinfo"
	"github.com/matzehuels/sash/pkg/observability"
	"github.com/matzehuels/sash/pkg/pipeline"
)

// contentTypes maps output formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz",
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleLayout runs the pipeline over the posted manifest and responds with
// the single requested artifact.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.decodeOptions(w, r)
	if err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		s.error(w, r, status, err)
		return
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.error(w, r, http.StatusBadRequest, err)
		return
	}
	if len(opts.Formats) != 1 {
		s.error(w, r, http.StatusBadRequest,
			fmt.Errorf("exactly one format per request, got %v", opts.Formats))
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.error(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// decodeOptions builds pipeline options from the request. A JSON body is an
// options envelope carrying the manifest in "source"; any other body is the
// manifest itself. Query parameters override envelope fields.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return opts, err
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(body, &opts); err != nil {
			return opts, fmt.Errorf("decode request: %w", err)
		}
	} else {
		opts.Source = string(body)
	}

	// The server never reads scenes from its own filesystem.
	if opts.Path != "" {
		return opts, fmt.Errorf("path is not allowed over HTTP, inline the manifest in source")
	}

	q := r.URL.Query()
	if v := q.Get("format"); v != "" {
		opts.Formats = []string{v}
	}
	if v := q.Get("target"); v != "" {
		opts.Target = v
	}
	if opts.Width, err = queryInt(q, "width", opts.Width); err != nil {
		return opts, err
	}
	if opts.Height, err = queryInt(q, "height", opts.Height); err != nil {
		return opts, err
	}
	opts.Labels = opts.Labels || q.Has("labels")
	opts.Detailed = opts.Detailed || q.Has("detailed")
	opts.FlushCache = opts.FlushCache || q.Has("flush")

	return opts, nil
}

func queryInt(q url.Values, key string, fallback int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

// error reports the failure to the server hooks, logs it, and writes the
// JSON error body.
func (s *Server) error(w http.ResponseWriter, r *http.Request, status int, err error) {
	observability.Server().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
