package httpapi

import (
	"encoding/json"
	"net/http"
)

type createDefaultTaskRequest struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	EstimatedTime int    `json:"estimatedTime"`
}

type defaultTaskStatusRequest struct {
	DefaultTaskID string `json:"defaultTaskId"`
	Date          string `json:"date"`
	Completed     bool   `json:"completed"`
}

func (s *Server) listDefaultTasks(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	templates, err := s.defaults.ListTemplates(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "listDefaultTasks"), err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (s *Server) createDefaultTask(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "createDefaultTask")
	user := currentUser(r.Context())

	var req createDefaultTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	template, err := s.defaults.CreateTemplate(r.Context(), user.ID, req.Title, req.Category, req.EstimatedTime)
	if err != nil {
		writeError(w, logEntry, err)
		return
	}
	logEntry.WithField("default_task_id", template.ID).Info("default task created")
	writeJSON(w, http.StatusCreated, template)
}

func (s *Server) deleteDefaultTask(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "deleteDefaultTask")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	if err := s.defaults.DeleteTemplate(r.Context(), user.ID, id); err != nil {
		writeError(w, logEntry.WithField("default_task_id", id), err)
		return
	}
	logEntry.WithField("default_task_id", id).Info("default task deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setDefaultTaskStatus(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "setDefaultTaskStatus")
	user := currentUser(r.Context())

	var req defaultTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	status, err := s.defaults.SetStatus(r.Context(), user.ID, req.DefaultTaskID, req.Date, req.Completed)
	if err != nil {
		writeError(w, logEntry, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
