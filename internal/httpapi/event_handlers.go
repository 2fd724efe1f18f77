package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jacoagency/productivity/internal/service"
)

type createEventRequest struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Description string    `json:"desc"`
	Category    *string   `json:"category"`
	Importance  *string   `json:"importance"`
	Color       string    `json:"color"`
	IsTaskEvent bool      `json:"isTaskEvent"`
}

type updateEventRequest struct {
	Title       *string    `json:"title,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	AllDay      *bool      `json:"allDay,omitempty"`
	Description *string    `json:"desc,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Importance  *string    `json:"importance,omitempty"`
	Color       *string    `json:"color,omitempty"`
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	events, err := s.sync.ListEvents(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "listEvents"), err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "createEvent")
	user := currentUser(r.Context())

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	event, err := s.sync.CreateEvent(r.Context(), user.ID, service.EventInput{
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
		Description: req.Description,
		Category:    req.Category,
		Importance:  req.Importance,
		Color:       req.Color,
		IsTaskEvent: req.IsTaskEvent,
	})
	if err != nil {
		writeError(w, logEntry, err)
		return
	}

	logEntry.WithField("event_id", event.ID).Info("event created")
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "updateEvent")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	event, err := s.sync.UpdateEvent(r.Context(), user.ID, id, service.EventPatch{
		Title:       req.Title,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
		Description: req.Description,
		Category:    req.Category,
		Importance:  req.Importance,
		Color:       req.Color,
	})
	if err != nil {
		writeError(w, logEntry.WithField("event_id", id), err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	logEntry := s.requestLog(r, "deleteEvent")
	user := currentUser(r.Context())
	id := r.PathValue("id")

	if err := s.sync.DeleteEvent(r.Context(), user.ID, id); err != nil {
		writeError(w, logEntry.WithField("event_id", id), err)
		return
	}
	logEntry.WithField("event_id", id).Info("event deleted")
	w.WriteHeader(http.StatusNoContent)
}
