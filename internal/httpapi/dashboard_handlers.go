package httpapi

import "net/http"

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	snapshot, err := s.stats.Snapshot(r.Context(), user.ID)
	if err != nil {
		writeError(w, s.requestLog(r, "dashboardStats"), err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
