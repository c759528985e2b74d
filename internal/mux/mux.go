package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"truco-server/pkg/history"
	"truco-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version     string
	pitBoss     *room.PitBoss
	switchboard *room.Switchboard

	// matches is nil when no database is configured
	matches history.Reader
}

// NewMux returns a new HTTP mux
// The pit boss must already be on shift.
func NewMux(version string, pitBoss *room.PitBoss, switchboard *room.Switchboard, matches history.Reader) *Mux {
	this := &Mux{
		Router:      gmux.NewRouter(),
		version:     version,
		pitBoss:     pitBoss,
		switchboard: switchboard,
		matches:     matches,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
	r.Methods(http.MethodGet).Path("/match").Handler(this.getMatch())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := m.pitBoss.ListRooms()
		if err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, err)
			return
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func (m *Mux) getMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.matches == nil {
			writeJSONError(w, http.StatusNotFound, errNoHistory)
			return
		}

		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		matches, err := m.matches.Recent(r.Context(), start, rows)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, matches)
	}
}
