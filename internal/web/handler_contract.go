package web

import "net/http"

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BorrowerID string `json:"borrower_id"`
		ItemID     string `json:"item_id"`
		StartDay   int    `json:"start_day"`
		EndDay     int    `json:"end_day"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}

	view, err := s.service.CreateContract(req.BorrowerID, req.ItemID, req.StartDay, req.EndDay)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, renderContract(view))
}

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, renderContracts(s.service.ListContracts()))
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.GetContract(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderContract(view))
}
