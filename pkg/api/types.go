package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/verstamp/verstamp/pkg/codec"
)

// APIResponse is the envelope every endpoint answers with: either Data on
// success or Error with a non-2xx status.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func sendSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func sendError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, APIResponse{Success: false, Error: message})
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// StampRequest is the JSON body for publishing a stamp. The product comes
// from the URL, the timestamp defaults to the server's current time.
type StampRequest struct {
	Major     uint16 `json:"major"`
	Minor     uint16 `json:"minor"`
	Patch     uint16 `json:"patch"`
	Build     uint16 `json:"build"`
	Channel   string `json:"channel"`
	Metadata  string `json:"metadata,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Timestamp uint64 `json:"timestamp,omitempty"`
}

// StampResponse is the JSON rendering of a decoded stamp.
type StampResponse struct {
	ID          string `json:"id,omitempty"`
	Product     string `json:"product"`
	Major       uint16 `json:"major"`
	Minor       uint16 `json:"minor"`
	Patch       uint16 `json:"patch"`
	Build       uint16 `json:"build"`
	Channel     string `json:"channel"`
	ChannelName string `json:"channel_name"`
	Metadata    string `json:"metadata,omitempty"`
	Commit      string `json:"commit,omitempty"`
	Timestamp   uint64 `json:"timestamp"`
	BuildTime   string `json:"build_time"`
	Display     string `json:"display"`
	Stamp       string `json:"stamp"` // hex of the 64-byte wire form
}

// newStampResponse renders a record (and optionally its publication id and
// wire form) for API responses.
func newStampResponse(rec *codec.VersionRecord, id ksuid.KSUID, stampHex string) StampResponse {
	resp := StampResponse{
		Product:     rec.Product,
		Major:       rec.Major,
		Minor:       rec.Minor,
		Patch:       rec.Patch,
		Build:       rec.Build,
		Channel:     string(rune(rec.Channel)),
		ChannelName: rec.Channel.Name(),
		Metadata:    rec.Metadata,
		Commit:      rec.CommitRef,
		Timestamp:   rec.Timestamp,
		BuildTime:   rec.BuildTime().Format(time.RFC3339),
		Display:     rec.String(),
		Stamp:       stampHex,
	}
	if id != ksuid.Nil {
		resp.ID = id.String()
	}
	return resp
}
