package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/cricsight-io/cricsight/internal/usecase"
)

type refreshCacheRequest struct {
	Functions []string `json:"functions" validate:"omitempty,dive,required"`
}

type refreshCacheResponse struct {
	Cleared []string `json:"cleared"`
}

func (h *Handler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshCache")
	defer span.End()

	var req refreshCacheRequest
	if r.Body != nil && r.ContentLength != 0 {
		decoder := sonic.ConfigDefault.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
			return
		}
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	cleared, err := h.cacheService.Refresh(ctx, req.Functions)
	if err != nil {
		h.logger.WarnContext(ctx, "cache refresh failed", "functions", req.Functions, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, refreshCacheResponse{Cleared: cleared})
}
