package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"oficinareserva/internal/catalog"
	"oficinareserva/internal/reservations/service"
	httputil "oficinareserva/pkg/http"
	"oficinareserva/pkg/logger"
	"oficinareserva/pkg/middleware"
	"oficinareserva/pkg/model"
	"oficinareserva/pkg/timeslot"
)

type ReservationHandler struct {
	service     service.ReservationService
	catalog     *catalog.Catalog
	managerGate func(httprouter.Handle) httprouter.Handle
	log         *logger.Logger
}

func NewReservationHandler(service service.ReservationService, cat *catalog.Catalog, managerPassword string, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:     service,
		catalog:     cat,
		managerGate: middleware.ManagerGate(managerPassword, log),
		log:         log,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reservation model.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &reservation); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, reservation); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReservationHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reservations); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "ID parameter is required",
		}); err != nil {
			h.log.Error("failed to write bad request response", "handler", "Cancel", "operation", "WriteJSON", "error", err)
		}
		return
	}

	if err := h.service.Cancel(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReservationHandler) GetEquipments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.catalog.List()); err != nil {
		h.log.Error("failed to write success response", "handler", "GetEquipments", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) GetUsageReport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	// The current month is the default reporting window.
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	if startDate == "" && endDate == "" {
		now := time.Now()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		startDate = firstOfMonth.Format(timeslot.DateLayout)
		endDate = firstOfMonth.AddDate(0, 1, -1).Format(timeslot.DateLayout)
	}

	report, err := h.service.UsageReport(r.Context(), startDate, endDate)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetUsageReport", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "GetUsageReport", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/equipments", h.GetEquipments)
	router.POST("/api/v1/reservations", h.Create)
	router.GET("/api/v1/reservations", h.GetAll)
	router.DELETE("/api/v1/reservations/id/:id", h.managerGate(h.Cancel))
	router.GET("/api/v1/reports/usage", h.GetUsageReport)
}
