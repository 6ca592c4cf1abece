package webui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/search"
	"github.com/ironsheep/name-list-tools/internal/viewer"
)

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// SearchRequest is the body of POST /api/search.
type SearchRequest struct {
	Name string `json:"name"`
}

// SearchResponse is returned by a successful POST /api/search.
type SearchResponse struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type pageData struct {
	Title    string
	Snapshot viewer.Snapshot
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := pageData{Title: "Extracted Names", Snapshot: s.app.Snapshot()}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.Snapshot())
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	s.app.SetQuery(req.Query)
	s.jsonResponse(w, http.StatusOK, s.app.Snapshot())
}

func (s *Server) handleClear(w http.ResponseWriter, _ *http.Request) {
	s.app.ClearQuery()
	s.jsonResponse(w, http.StatusOK, s.app.Snapshot())
}

func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	// A missing file is reported through the snapshot message.
	if err := s.app.Load(); err != nil && !errors.Is(err, csvstore.ErrNotFound) {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.app.Snapshot())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	// A started search runs to completion even if the client goes away.
	text, err := s.app.Search(context.WithoutCancel(r.Context()), req.Name)
	if err != nil {
		s.errorResponse(w, searchStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, SearchResponse{Name: req.Name, Text: text})
}

// searchStatus maps a viewer search error to an HTTP status code.
func searchStatus(err error) int {
	var sessionErr *search.AutomationSessionError
	switch {
	case errors.Is(err, viewer.ErrSearchInProgress):
		return http.StatusConflict
	case errors.Is(err, viewer.ErrUnknownName):
		return http.StatusNotFound
	case errors.As(err, &sessionErr):
		return http.StatusBadGateway
	case errors.Is(err, search.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleEvents streams a "state" event with the current snapshot, then one
// per change. Slow clients only see the latest snapshot.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := newSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	id := uuid.NewString()
	logger := s.logger.With(zap.String("client", id))
	logger.Debug("event stream opened")
	defer logger.Debug("event stream closed")

	updates := make(chan viewer.Snapshot, 1)
	unsubscribe := s.app.Subscribe(func(snap viewer.Snapshot) {
		for {
			select {
			case updates <- snap:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	if err := sse.WriteEvent("state", s.app.Snapshot()); err != nil {
		return
	}

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap := <-updates:
			if err := sse.WriteEvent("state", snap); err != nil {
				logger.Debug("write event", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := sse.WriteComment("ping"); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode JSON response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
