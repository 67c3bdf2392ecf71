package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/go-chi/chi/v5"
)

type itemRequest struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Deadline    string   `json:"deadline"`
}

type listResponse struct {
	Items []item.Item `json:"items"`
}

type addResponse struct {
	ID int64 `json:"id"`
}

type updateResponse struct {
	Updated bool `json:"updated"`
}

type removeResponse struct {
	Removed bool `json:"removed"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []item.Item{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.items.Create(r.Context(), item.CreateRequest{
		Description: req.Description,
		Tags:        req.Tags,
		Deadline:    req.Deadline,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addResponse{ID: created.ID})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err := s.items.Update(r.Context(), item.UpdateRequest{
		ID:          req.ID,
		Description: req.Description,
		Tags:        req.Tags,
		Deadline:    req.Deadline,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{Updated: true})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.items.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removeResponse{Removed: true})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := s.items.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
