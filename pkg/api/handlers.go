package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/verstamp/verstamp/pkg/codec"
	"github.com/verstamp/verstamp/pkg/registry"
)

// decode request bodies are tiny; anything past this is not a stamp.
const maxDecodeBody = 4096

// StampRegistry defines the registry operations the server needs
type StampRegistry interface {
	Publish(*codec.VersionRecord) (ksuid.KSUID, error)
	Latest(product string) (*codec.VersionRecord, error)
	History(product string, limit int) ([]registry.StampEntry, error)
	Delete(product string) error
}

// Server holds the API server state
type Server struct {
	registry StampRegistry
	codec    *codec.VersionCodec
	config   ServerConfig
	metrics  *Metrics
}

// NewServer creates a new API server
func NewServer(reg StampRegistry, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		registry: reg,
		codec:    codec.NewVersionCodec(),
		config:   config,
		metrics:  metrics,
	}
}

// handleHealth reports service health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handlePublish encodes the requested fields into a stamp and publishes it as
// the product's latest version
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	product, err := url.QueryUnescape(chi.URLParam(r, "product"))
	if err != nil || product == "" {
		sendError(w, "Product is required", http.StatusBadRequest)
		return
	}

	var req StampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	channel, err := channelFromRequest(req.Channel)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec := &codec.VersionRecord{
		Product:   product,
		Major:     req.Major,
		Minor:     req.Minor,
		Patch:     req.Patch,
		Build:     req.Build,
		Channel:   channel,
		Metadata:  req.Metadata,
		CommitRef: req.Commit,
		Timestamp: req.Timestamp,
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = uint64(time.Now().Unix())
	}

	id, err := s.registry.Publish(rec)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordRegistryOperation("publish", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to publish stamp: %v", err), http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordRegistryOperation("publish", true, time.Since(start))
	}
	sendSuccess(w, newStampResponse(rec, id, hex.EncodeToString(s.codec.Encode(rec))))
}

// handleLatest returns the product's most recently published stamp
func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	product, err := url.QueryUnescape(chi.URLParam(r, "product"))
	if err != nil || product == "" {
		sendError(w, "Product is required", http.StatusBadRequest)
		return
	}

	rec, err := s.registry.Latest(product)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, registry.ErrNotFound) {
			status = http.StatusNotFound
		}
		if s.metrics != nil {
			s.metrics.RecordRegistryOperation("latest", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to fetch stamp: %v", err), status)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordRegistryOperation("latest", true, time.Since(start))
	}
	sendSuccess(w, newStampResponse(rec, ksuid.Nil, hex.EncodeToString(s.codec.Encode(rec))))
}

// handleHistory returns the product's publication history, newest first
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	product, err := url.QueryUnescape(chi.URLParam(r, "product"))
	if err != nil || product == "" {
		sendError(w, "Product is required", http.StatusBadRequest)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			sendError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
	}

	entries, err := s.registry.History(product, limit)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordRegistryOperation("history", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to fetch history: %v", err), http.StatusInternalServerError)
		return
	}

	responses := make([]StampResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, newStampResponse(e.Record, e.ID, hex.EncodeToString(s.codec.Encode(e.Record))))
	}

	if s.metrics != nil {
		s.metrics.RecordRegistryOperation("history", true, time.Since(start))
	}
	sendSuccess(w, responses)
}

// handleDelete removes a product's stamps
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	product, err := url.QueryUnescape(chi.URLParam(r, "product"))
	if err != nil || product == "" {
		sendError(w, "Product is required", http.StatusBadRequest)
		return
	}

	if err := s.registry.Delete(product); err != nil {
		if s.metrics != nil {
			s.metrics.RecordRegistryOperation("delete", false, time.Since(start))
		}
		sendError(w, fmt.Sprintf("Failed to delete stamps: %v", err), http.StatusInternalServerError)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordRegistryOperation("delete", true, time.Since(start))
	}
	sendSuccess(w, map[string]string{"message": "Stamps deleted successfully"})
}

// handleDecode decodes a raw stamp supplied in the request body. The body is
// the 64 wire bytes, or their hex encoding when sent as text/plain.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDecodeBody))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	data := body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		data, err = hex.DecodeString(strings.TrimSpace(string(body)))
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordDecode(false)
			}
			sendError(w, "Invalid hex in request body", http.StatusBadRequest)
			return
		}
	}

	rec, err := s.codec.Decode(data)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordDecode(false)
		}
		status := http.StatusBadRequest
		if errors.Is(err, codec.ErrUnsupportedFormatVersion) {
			status = http.StatusUnprocessableEntity
		}
		sendError(w, err.Error(), status)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordDecode(true)
	}
	sendSuccess(w, newStampResponse(rec, ksuid.Nil, hex.EncodeToString(data)))
}

// channelFromRequest maps the request's channel field to a Channel. Known
// names and tags are resolved; an unrecognized single character passes
// through raw, matching the wire format's forward compatibility.
func channelFromRequest(s string) (codec.Channel, error) {
	if s == "" {
		return 0, errors.New("Channel is required")
	}
	if c, ok := codec.ParseChannel(s); ok {
		return c, nil
	}
	if len(s) == 1 {
		return codec.Channel(s[0]), nil
	}
	return 0, fmt.Errorf("Unknown channel %q", s)
}
