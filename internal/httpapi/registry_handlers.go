package httpapi

import (
	"encoding/json"
	"net/http"
)

type labelColorRequest struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	categories, err := s.registry.ListCategories(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "listCategories"), err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "createCategory")
	user := currentUser(r.Context())

	var req labelColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	category, err := s.registry.CreateCategory(r.Context(), user.ID, req.Label, req.Color)
	if err != nil {
		writeError(w, logEntry, err)
		return
	}
	logEntry.WithField("category_id", category.ID).Info("category created")
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "updateCategory")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	var req labelColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	category, err := s.registry.UpdateCategory(r.Context(), user.ID, id, req.Label, req.Color)
	if err != nil {
		writeError(w, logEntry.WithField("category_id", id), err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "deleteCategory")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	if err := s.registry.DeleteCategory(r.Context(), user.ID, id); err != nil {
		writeError(w, logEntry.WithField("category_id", id), err)
		return
	}
	logEntry.WithField("category_id", id).Info("category deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listImportanceLevels(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	levels, err := s.registry.ListImportanceLevels(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "listImportanceLevels"), err)
		return
	}
	writeJSON(w, http.StatusOK, levels)
}

func (s *Server) createImportanceLevel(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "createImportanceLevel")
	user := currentUser(r.Context())

	var req labelColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	level, err := s.registry.CreateImportanceLevel(r.Context(), user.ID, req.Label, req.Color)
	if err != nil {
		writeError(w, logEntry, err)
		return
	}
	logEntry.WithField("importance_id", level.ID).Info("importance level created")
	writeJSON(w, http.StatusCreated, level)
}

func (s *Server) updateImportanceLevel(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "updateImportanceLevel")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	var req labelColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	level, err := s.registry.UpdateImportanceLevel(r.Context(), user.ID, id, req.Label, req.Color)
	if err != nil {
		writeError(w, logEntry.WithField("importance_id", id), err)
		return
	}
	writeJSON(w, http.StatusOK, level)
}

func (s *Server) deleteImportanceLevel(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "deleteImportanceLevel")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	if err := s.registry.DeleteImportanceLevel(r.Context(), user.ID, id); err != nil {
		writeError(w, logEntry.WithField("importance_id", id), err)
		return
	}
	logEntry.WithField("importance_id", id).Info("importance level deleted")
	w.WriteHeader(http.StatusNoContent)
}
