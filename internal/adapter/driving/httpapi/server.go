// Package httpapi exposes the computed projections as read-only JSON for
// chart front-ends.
package httpapi

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type metricsResponse struct {
	Title   string                   `json:"title"`
	Periods []types.PeriodReportView `json:"periods"`
}

// Handler serves a report set computed once at start up. It holds no mutable
// state, so a single Handler can be shared by every connection.
type Handler struct {
	title    string
	periods  []types.PeriodReportView
	byPeriod map[string]types.PeriodReportView
	series   []entity.SeriesPoint
}

// NewHandler builds the handler from precomputed reports and series.
func NewHandler(title string, reports []entity.PeriodReport, series []entity.SeriesPoint) *Handler {
	views := types.NewPeriodReportViews(reports)
	byPeriod := make(map[string]types.PeriodReportView, len(views))
	for _, v := range views {
		byPeriod[v.Period] = v
	}
	if series == nil {
		series = []entity.SeriesPoint{}
	}
	return &Handler{
		title:    title,
		periods:  views,
		byPeriod: byPeriod,
		series:   series,
	}
}

// Handle is the fasthttp.RequestHandler for the API.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, fasthttp.MethodGet)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	path := strings.TrimSuffix(string(ctx.Path()), "/")
	switch {
	case path == "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/metrics":
		writeJSON(ctx, fasthttp.StatusOK, metricsResponse{Title: h.title, Periods: h.periods})
	case path == "/series":
		writeJSON(ctx, fasthttp.StatusOK, h.series)
	case strings.HasPrefix(path, "/metrics/"):
		period := strings.TrimPrefix(path, "/metrics/")
		view, ok := h.byPeriod[period]
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, types.ErrPeriodNotFound.Error()+": "+period)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, view)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// Serve blocks serving h on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, h *Handler) error {
	server := &fasthttp.Server{
		Handler: h.Handle,
		Name:    "projection-dashboard",
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Shutdown()
	}
}
