package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MiddlewareRequisicao registra método, rota, status e duração de cada
// requisição.
func MiddlewareRequisicao(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info("requisição",
				zap.String("metodo", r.Method),
				zap.String("rota", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duracao", time.Since(inicio)),
			)
		})
	}
}
