package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jacoagency/productivity/internal/service"
)

type createTaskRequest struct {
	Title      string     `json:"title"`
	DueDate    *time.Time `json:"dueDate"`
	Folder     string     `json:"folder"`
	FolderDate string     `json:"folderDate"`
	Category   *string    `json:"category"`
	Importance *string    `json:"importance"`
}

type updateTaskRequest struct {
	Title      *string    `json:"title,omitempty"`
	Completed  *bool      `json:"completed,omitempty"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	Folder     *string    `json:"folder,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Importance *string    `json:"importance,omitempty"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	tasks, err := s.sync.ListTasks(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "listTasks"), err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "createTask")
	user := currentUser(r.Context())

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	task, err := s.sync.CreateTask(r.Context(), user.ID, service.TaskInput{
		Title:      req.Title,
		DueDate:    req.DueDate,
		Folder:     req.Folder,
		FolderDate: req.FolderDate,
		Category:   req.Category,
		Importance: req.Importance,
	})
	if err != nil {
		writeError(w, logEntry, err)
		return
	}

	logEntry.WithField("task_id", task.ID).Info("task created")
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "updateTask")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	task, err := s.sync.UpdateTask(r.Context(), user.ID, id, service.TaskPatch{
		Title:      req.Title,
		Completed:  req.Completed,
		DueDate:    req.DueDate,
		Folder:     req.Folder,
		Category:   req.Category,
		Importance: req.Importance,
	})
	if err != nil {
		writeError(w, logEntry.WithField("task_id", id), err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "deleteTask")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	if err := s.sync.DeleteTask(r.Context(), user.ID, id); err != nil {
		writeError(w, logEntry.WithField("task_id", id), err)
		return
	}
	logEntry.WithField("task_id", id).Info("task deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) taskFolders(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	tasks, err := s.sync.ListTasks(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "taskFolders"), err)
		return
	}
	writeJSON(w, http.StatusOK, service.OrganizeFolders(tasks, time.Now()))
}

func (s *Server) todayTasks(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	tasks, err := s.defaults.TodayTasks(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "todayTasks"), err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

type archiveResponse struct {
	Archived int64 `json:"archived"`
}

func (s *Server) archiveTasks(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "archiveTasks")
	user := currentUser(r.Context())

	moved, err := s.sync.ArchiveOldMonths(r.Context(), user.ID)
	if err != nil {
		writeError(w, logEntry, err)
		return
	}
	logEntry.WithField("archived", moved).Info("old month folders archived")
	writeJSON(w, http.StatusOK, archiveResponse{Archived: moved})
}
