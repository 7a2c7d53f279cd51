package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func wantsWait(r *http.Request) bool {
	switch r.URL.Query().Get("wait") {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeInternalError(w http.ResponseWriter, message string) {
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
