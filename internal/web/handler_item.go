package web

import (
	"net/http"
	"strconv"
	"strings"

	"lendledger/internal/domain"
)

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID     string `json:"owner_id"`
		Category    string `json:"category"`
		Name        string `json:"name"`
		Description string `json:"description"`
		CostPerDay  int    `json:"cost_per_day"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "item name is required"})
		return
	}
	if req.CostPerDay < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "cost per day must not be negative"})
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := s.service.CreateItem(req.OwnerID, category, req.Name, req.Description, req.CostPerDay)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, renderItem(item))
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, renderItems(s.service.ListItems()))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.service.GetItem(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderItem(item))
}

// handleUpdateItem edits an item. Fields absent from the body are left
// unchanged, matching the engine's optional-field semantics.
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		CostPerDay  *int    `json:"cost_per_day"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}
	if req.CostPerDay != nil && *req.CostPerDay < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "cost per day must not be negative"})
		return
	}

	item, err := s.service.UpdateItem(r.PathValue("id"), req.Name, req.Description, req.CostPerDay)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderItem(item))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteItem(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleItemAvailability(w http.ResponseWriter, r *http.Request) {
	start, err := strconv.Atoi(r.URL.Query().Get("start"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "start must be an integer day"})
		return
	}
	end, err := strconv.Atoi(r.URL.Query().Get("end"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "end must be an integer day"})
		return
	}

	available, err := s.service.IsItemAvailable(r.PathValue("id"), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (s *Server) handleListItemContracts(w http.ResponseWriter, r *http.Request) {
	views, err := s.service.ListItemContracts(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderContracts(views))
}
