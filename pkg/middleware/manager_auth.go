package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"oficinareserva/pkg/logger"
)

// ManagerPasswordHeader carries the shared manager secret on gated routes.
const ManagerPasswordHeader = "X-Manager-Password"

// ManagerGate wraps a single route with the shared-password check used for
// manager-only actions. Authorization happens here, before the reservation
// engine is reached; the engine itself never sees credentials.
func ManagerGate(password string, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			supplied := r.Header.Get(ManagerPasswordHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(password)) != 1 {
				log.Warn("Manager authorization failed",
					"request_id", requestIDFrom(r),
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Manager password is incorrect"}`))
				return
			}

			next(w, r, ps)
		}
	}
}
