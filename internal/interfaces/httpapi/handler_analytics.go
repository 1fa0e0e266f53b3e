package httpapi

import (
	"net/http"

	"github.com/cricsight-io/cricsight/internal/domain/record"
)

type resultTableDTO struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
	Total   int      `json:"total"`
}

func resultTableToDTO(table record.ResultTable) resultTableDTO {
	rows := table.Rows
	if rows == nil {
		rows = [][]any{}
	}
	return resultTableDTO{
		Columns: table.Columns,
		Rows:    rows,
		Total:   table.RowCount(),
	}
}

func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListQueries")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.analyticsService.ListQueries(ctx))
}

func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunQuery")
	defer span.End()

	name := r.PathValue("name")
	result, err := h.analyticsService.RunQuery(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "run query failed", "query", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultTableToDTO(result))
}

func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDataset")
	defer span.End()

	limit, err := parseOptionalLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.analyticsService.DatasetTable(ctx, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get dataset failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultTableToDTO(result))
}

func (h *Handler) GetDatasetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatasetSummary")
	defer span.End()

	summary, err := h.analyticsService.DatasetSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dataset summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
