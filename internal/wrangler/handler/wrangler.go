package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/winthrop-intelligence/phone-wrangler/internal/wrangler/service"
	httputil "github.com/winthrop-intelligence/phone-wrangler/pkg/http"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/logger"
	"github.com/winthrop-intelligence/phone-wrangler/pkg/model"
)

type WranglerHandler struct {
	service service.WranglerService
	log     *logger.Logger
}

func NewWranglerHandler(service service.WranglerService, log *logger.Logger) *WranglerHandler {
	return &WranglerHandler{
		service: service,
		log:     log,
	}
}

func (h *WranglerHandler) Parse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ParseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Parse", err)
		return
	}

	view, err := h.service.Parse(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Parse", err)
		return
	}

	h.writeSuccess(w, "Parse", view)
}

func (h *WranglerHandler) Format(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FormatRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Format", err)
		return
	}

	resp, err := h.service.Format(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Format", err)
		return
	}

	h.writeSuccess(w, "Format", resp)
}

func (h *WranglerHandler) Compare(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CompareRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Compare", err)
		return
	}

	resp, err := h.service.Compare(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Compare", err)
		return
	}

	h.writeSuccess(w, "Compare", resp)
}

func (h *WranglerHandler) Pack(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PackRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Pack", err)
		return
	}

	resp, err := h.service.Pack(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Pack", err)
		return
	}

	h.writeSuccess(w, "Pack", resp)
}

func (h *WranglerHandler) Presets(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "Presets", h.service.Presets(r.Context()))
}

func (h *WranglerHandler) GetDefaultAreaCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.writeSuccess(w, "GetDefaultAreaCode", h.service.DefaultAreaCode(r.Context()))
}

func (h *WranglerHandler) SetDefaultAreaCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.DefaultAreaCodeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "SetDefaultAreaCode", err)
		return
	}

	resp, err := h.service.SetDefaultAreaCode(r.Context(), &req)
	if err != nil {
		h.writeError(w, "SetDefaultAreaCode", err)
		return
	}

	h.writeSuccess(w, "SetDefaultAreaCode", resp)
}

func (h *WranglerHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *WranglerHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}
