package web

import (
	"net/http"
	"strings"
)

type memberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: "name, email and phone are required"})
		return
	}

	member, err := s.service.CreateMember(req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, renderMember(member))
}

// handleListMembers lists all members, or looks one up when an email or
// phone query parameter is present.
func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		member, err := s.service.GetMemberByEmail(email)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, renderMember(member))
		return
	}
	if phone := r.URL.Query().Get("phone"); phone != "" {
		member, err := s.service.GetMemberByPhone(phone)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, renderMember(member))
		return
	}
	writeJSON(w, http.StatusOK, renderMembers(s.service.ListMembers()))
}

func (s *Server) handleGetMember(w http.ResponseWriter, r *http.Request) {
	member, err := s.service.GetMember(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderMember(member))
}

func (s *Server) handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}

	member, err := s.service.UpdateMember(r.PathValue("id"), req.Name, req.Email, req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderMember(member))
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteMember(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetCredits(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Credits int `json:"credits"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Detail: err.Error()})
		return
	}

	member, err := s.service.SetCredits(r.PathValue("id"), req.Credits)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderMember(member))
}

func (s *Server) handleListOwnedItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.ListOwnedItems(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, renderItems(items))
}
