package web

import "net/http"

type timeJSON struct {
	CurrentDay int `json:"current_day"`
}

func (s *Server) handleGetTime(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, timeJSON{CurrentDay: s.service.CurrentDay()})
}

func (s *Server) handleAdvanceTime(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Days int `json:"days"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}

	day, err := s.service.AdvanceDays(req.Days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, timeJSON{CurrentDay: day})
}
