package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-validation-gate/gate"
	"github.com/MKhiriev/go-validation-gate/internal/logger"
)

// withValidation puts g in front of the route. Input that passes g reaches
// next with the original request; rejected input is answered with 422 and
// next is never called.
func (h *Handler) withValidation(g *gate.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			req, err := newGateRequest(w, r, h.limits)
			if err != nil {
				log.Err(err).Str("func", "*Handler.withValidation").Msg("failed to extract request input")
				writeError(w, r, err)
				return
			}

			_, err = g.Process(r.Context(), req, gate.HandlerFunc(func(context.Context, gate.Request) (gate.Response, error) {
				next.ServeHTTP(w, r)
				return nil, nil
			}))
			if err != nil {
				writeError(w, r, err)
			}
		})
	}
}
