package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/opsdesk-backend/internal/domain"
	"github.com/heartmarshall/opsdesk-backend/internal/service/device"
)

type deviceService interface {
	ListDevices(ctx context.Context, input device.ListDevicesInput) ([]domain.Device, error)
	GetBundle(ctx context.Context, deviceID uuid.UUID) (*domain.DeviceBundle, error)
	CreateDevice(ctx context.Context, input device.CreateDeviceInput) (*domain.Device, error)
	UpdateDevice(ctx context.Context, input device.UpdateDeviceInput) (*domain.Device, error)
	Burn(ctx context.Context, deviceID uuid.UUID) (*domain.BurnResult, error)
	PreviewBatch(ctx context.Context, deviceID uuid.UUID) (device.Resolution, error)
}

// DeviceHandler serves device endpoints.
type DeviceHandler struct {
	svc deviceService
	log *slog.Logger
}

// NewDeviceHandler creates a DeviceHandler.
func NewDeviceHandler(svc deviceService, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{svc: svc, log: logger.With("handler", "device")}
}

// List handles GET /devices?manager_id=&search=&limit=&offset=.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	managerID, ok := queryUUID(w, r, "manager_id")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	devices, err := h.svc.ListDevices(r.Context(), device.ListDevicesInput{
		ManagerID: managerID,
		Search:    r.URL.Query().Get("search"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

// Get handles GET /devices/{id}: the live bundle and archived batches.
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	bundle, err := h.svc.GetBundle(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

// Create handles POST /devices/create.
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req device.CreateDeviceInput
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.svc.CreateDevice(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// Update handles POST /devices/update.
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req device.UpdateDeviceInput
	if !decodeBody(w, r, &req) {
		return
	}
	d, err := h.svc.UpdateDevice(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Burn handles POST /devices/{id}/burn.
func (h *DeviceHandler) Burn(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Burn(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Batch handles GET /devices/{id}/batch: the batch id the next asset would get.
func (h *DeviceHandler) Batch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	res, err := h.svc.PreviewBatch(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
