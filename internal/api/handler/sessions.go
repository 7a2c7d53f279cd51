package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/usecases/browsing"
	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
	"github.com/luciobotteri/refezionify-web/pkg/log"
)

type SessionResponse struct {
	ID    string           `json:"id"`
	State domain.ViewState `json:"state"`
}

func CreateSession(store browsing.SessionStore, weatherGrace time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, state, err := store.Create(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("handler: erro ao criar sessão")
			writeInternalError(w, "Erro ao criar sessão")
			return
		}

		if wantsWait(r) {
			state, _ = session.Controller.Settle(r.Context(), weatherGrace)
		}

		writeJSON(w, http.StatusCreated, SessionResponse{ID: session.ID, State: state})
	})
}

func GetSession(store browsing.SessionStore, weatherGrace time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := store.Get(id)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrSessionNotFound)
			return
		}

		state := session.Controller.State()
		if wantsWait(r) {
			state, _ = session.Controller.Settle(r.Context(), weatherGrace)
		}

		writeJSON(w, http.StatusOK, SessionResponse{ID: session.ID, State: state})
	})
}

func AdvanceSession(store browsing.SessionStore, weatherGrace time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")

		direction, err := domain.ParseDirection(params.ByName("direction"))
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrInvalidDirection)
			return
		}

		state, err := store.Advance(id, direction)
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrSessionNotFound)
			return
		}

		if wantsWait(r) {
			session, err := store.Get(id)
			if err == nil {
				state, _ = session.Controller.Settle(r.Context(), weatherGrace)
			}
		}

		writeJSON(w, http.StatusOK, SessionResponse{ID: id, State: state})
	})
}
