package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		_, err := w.Write([]byte("ok " + time.Now().Format(time.RFC3339)))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
