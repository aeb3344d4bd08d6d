package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficinareserva/internal/catalog"
	apperrors "oficinareserva/pkg/errors"
	"oficinareserva/pkg/logger"
	"oficinareserva/pkg/middleware"
	"oficinareserva/pkg/model"
)

type mockReservationService struct {
	createFunc      func(ctx context.Context, r *model.Reservation) error
	listFunc        func(ctx context.Context) ([]*model.Reservation, error)
	cancelFunc      func(ctx context.Context, id string) error
	usageReportFunc func(ctx context.Context, startDate, endDate string) (*model.UsageReport, error)
}

func (m *mockReservationService) Create(ctx context.Context, r *model.Reservation) error {
	return m.createFunc(ctx, r)
}

func (m *mockReservationService) List(ctx context.Context) ([]*model.Reservation, error) {
	return m.listFunc(ctx)
}

func (m *mockReservationService) Cancel(ctx context.Context, id string) error {
	return m.cancelFunc(ctx, id)
}

func (m *mockReservationService) UsageReport(ctx context.Context, startDate, endDate string) (*model.UsageReport, error) {
	return m.usageReportFunc(ctx, startDate, endDate)
}

const testManagerPassword = "secret-1234"

func newTestRouter(svc *mockReservationService) *httprouter.Router {
	log := logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
	h := NewReservationHandler(svc, catalog.New(catalog.DefaultEquipment()), testManagerPassword, log)
	router := httprouter.New()
	h.RegisterRoutes(router)
	return router
}

func TestCreateReservation(t *testing.T) {
	svc := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			r.ID = "res-1"
			r.EquipmentName = "Plataforma Pantográfica 1"
			return nil
		},
	}
	router := newTestRouter(svc)

	body := `{"equipmentId":"eq-1","date":"2100-03-10","startTime":"09:00","endTime":"11:00","userName":"Maria Souza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data model.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "res-1", resp.Data.ID)
	assert.Equal(t, "Plataforma Pantográfica 1", resp.Data.EquipmentName)
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	svc := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			t.Fatal("service must not be reached on a malformed body")
			return nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservation_Conflict(t *testing.T) {
	svc := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			return apperrors.Conflict("This equipment is already reserved from 09:00 to 11:00 on 2100-03-10")
		},
	}
	router := newTestRouter(svc)

	body := `{"equipmentId":"eq-1","date":"2100-03-10","startTime":"10:00","endTime":"12:00","userName":"Maria Souza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already reserved")
}

func TestCreateReservation_ValidationError(t *testing.T) {
	svc := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			return apperrors.Validation("reservations cannot be made for past dates", nil)
		},
	}
	router := newTestRouter(svc)

	body := `{"equipmentId":"eq-1","date":"2020-01-01","startTime":"09:00","endTime":"10:00","userName":"Maria Souza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListReservations(t *testing.T) {
	svc := &mockReservationService{
		listFunc: func(ctx context.Context) ([]*model.Reservation, error) {
			return []*model.Reservation{
				{ID: "res-1", EquipmentID: "eq-1", Date: "2100-03-10", StartTime: "09:00", EndTime: "10:00"},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []model.Reservation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "res-1", resp.Data[0].ID)
}

func TestListReservations_EmptyIsJSONArray(t *testing.T) {
	svc := &mockReservationService{
		listFunc: func(ctx context.Context) ([]*model.Reservation, error) {
			return []*model.Reservation{}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestGetEquipments(t *testing.T) {
	router := newTestRouter(&mockReservationService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipments", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []model.Equipment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "eq-1", resp.Data[0].ID)
}

func TestCancelReservation(t *testing.T) {
	var cancelledID string
	svc := &mockReservationService{
		cancelFunc: func(ctx context.Context, id string) error {
			cancelledID = id
			return nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/id/res-1", nil)
	req.Header.Set(middleware.ManagerPasswordHeader, testManagerPassword)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "res-1", cancelledID)
}

func TestCancelReservation_WrongPassword(t *testing.T) {
	svc := &mockReservationService{
		cancelFunc: func(ctx context.Context, id string) error {
			t.Fatal("service must not be reached without manager authorization")
			return nil
		},
	}
	router := newTestRouter(svc)

	for _, password := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/id/res-1", nil)
		if password != "" {
			req.Header.Set(middleware.ManagerPasswordHeader, password)
		}
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Manager password is incorrect")
	}
}

func TestGetUsageReport(t *testing.T) {
	var gotStart, gotEnd string
	svc := &mockReservationService{
		usageReportFunc: func(ctx context.Context, startDate, endDate string) (*model.UsageReport, error) {
			gotStart, gotEnd = startDate, endDate
			return &model.UsageReport{
				StartDate: startDate,
				EndDate:   endDate,
				Total:     2,
				Items: []model.EquipmentUsage{
					{EquipmentID: "eq-1", EquipmentName: "Plataforma Pantográfica 1", Count: 2},
				},
			}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/usage?start_date=2100-03-01&end_date=2100-03-31", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2100-03-01", gotStart)
	assert.Equal(t, "2100-03-31", gotEnd)

	var resp struct {
		Data model.UsageReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Total)
}

func TestGetUsageReport_DefaultsToCurrentMonth(t *testing.T) {
	var gotStart, gotEnd string
	svc := &mockReservationService{
		usageReportFunc: func(ctx context.Context, startDate, endDate string) (*model.UsageReport, error) {
			gotStart, gotEnd = startDate, endDate
			return &model.UsageReport{StartDate: startDate, EndDate: endDate, Items: []model.EquipmentUsage{}}, nil
		},
	}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/usage", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Regexp(t, `^\d{4}-\d{2}-01$`, gotStart)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, gotEnd)
	assert.Less(t, gotStart, gotEnd)
}
