package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vovakirdan/borderwalk/internal/area"
	"github.com/vovakirdan/borderwalk/internal/border"
	"github.com/vovakirdan/borderwalk/internal/grid"
	"github.com/vovakirdan/borderwalk/internal/registry"
	"github.com/vovakirdan/borderwalk/internal/storage"
)

// Cell is a grid cell in JSON form.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func cellOf(c grid.Coord) Cell {
	return Cell{X: c.X, Y: c.Y}
}

func cellsOf(coords []grid.Coord) []Cell {
	cells := make([]Cell, len(coords))
	for i, c := range coords {
		cells[i] = cellOf(c)
	}
	return cells
}

// AreaSummary is one entry of the area list.
type AreaSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AreaDetail describes a single area.
type AreaDetail struct {
	ID     string   `json:"id"`
	Name   string   `json:"name,omitempty"`
	Rows   []string `json:"rows,omitempty"`
	Cells  []Cell   `json:"cells,omitempty"`
	Start  *Cell    `json:"start,omitempty"`
	Origin Cell     `json:"origin"` // Top-left of the bounding box
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Size   int      `json:"size"` // Number of inside cells
	Ring   int      `json:"ring"` // Number of distinct outside cells touching the area
}

// Lap is a traced border.
type Lap struct {
	Area  string `json:"area"`
	Start Cell   `json:"start"`
	Count int    `json:"count"`
	Cells []Cell `json:"cells"`
}

// TraceSummary is a saved lap without its cells.
type TraceSummary struct {
	ID        int64     `json:"id"`
	Area      string    `json:"area"`
	Start     Cell      `json:"start"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// TraceDetail is a saved lap with its cells in walk order.
type TraceDetail struct {
	TraceSummary
	Cells []Cell `json:"cells"`
}

func summaryOf(tr storage.Trace) TraceSummary {
	return TraceSummary{
		ID:        tr.ID,
		Area:      tr.AreaID,
		Start:     cellOf(tr.Start),
		Count:     tr.CellCount,
		CreatedAt: tr.CreatedAt,
	}
}

// lapRequest is a resolved /areas/{id}/... request.
type lapRequest struct {
	shape    area.Shape
	region   area.Region
	start    grid.Coord
	distinct bool
}

// statusError carries the HTTP status a request error should be answered with.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

func withStatus(status int, err error) error {
	return &statusError{status: status, err: err}
}

// parseLapRequest resolves the area and the start cell. The start comes from
// the x and y query parameters when both are given, else from the shape.
// A start outside the area is rejected; an interior start is accepted and
// gives an empty lap.
func parseLapRequest(r *http.Request) (lapRequest, error) {
	id := mux.Vars(r)["id"]
	shape, err := registry.Create(id)
	if err != nil {
		return lapRequest{}, withStatus(http.StatusNotFound, err)
	}

	req := lapRequest{shape: shape, region: shape.Region()}
	q := r.URL.Query()

	xs, ys := q.Get("x"), q.Get("y")
	switch {
	case xs == "" && ys == "":
		req.start, err = shape.StartCell()
		if err != nil {
			return lapRequest{}, withStatus(http.StatusUnprocessableEntity, err)
		}
	case xs == "" || ys == "":
		return lapRequest{}, withStatus(http.StatusBadRequest, errors.New("api: x and y must be given together"))
	default:
		x, xErr := strconv.Atoi(xs)
		y, yErr := strconv.Atoi(ys)
		if err := errors.Join(xErr, yErr); err != nil {
			return lapRequest{}, withStatus(http.StatusBadRequest, fmt.Errorf("api: invalid start: %w", err))
		}
		req.start = grid.C(x, y)
	}
	if !req.region.Contains(req.start.X, req.start.Y) {
		return lapRequest{}, withStatus(http.StatusUnprocessableEntity, fmt.Errorf("api: start %v is outside area %q", req.start, id))
	}

	if d := q.Get("distinct"); d != "" {
		req.distinct, err = strconv.ParseBool(d)
		if err != nil {
			return lapRequest{}, withStatus(http.StatusBadRequest, fmt.Errorf("api: invalid distinct: %w", err))
		}
	}
	return req, nil
}

// walk runs one lap, aborting with the context error once ctx is done.
func walk(ctx context.Context, req lapRequest, visit func(c grid.Coord) error) error {
	var visitErr error
	emit := border.VisitFunc(func(x, y int) {
		if visitErr == nil {
			visitErr = visit(grid.C(x, y))
		}
	})
	if req.distinct {
		emit = border.Distinct(emit)
	}

	return border.Walk(req.region.Contains, req.start, func(x, y int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		emit(x, y)
		return visitErr
	})
}

// traceContext bounds a single lap by the configured trace timeout.
func (s *Server) traceContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.config.TraceTimeout > 0 {
		return context.WithTimeout(parent, s.config.TraceTimeout)
	}
	return context.WithCancel(parent)
}

// collect traces the requested lap into memory.
func (s *Server) collect(r *http.Request, req lapRequest) ([]grid.Coord, error) {
	ctx, cancel := s.traceContext(r.Context())
	defer cancel()

	var cells []grid.Coord
	err := walk(ctx, req, func(c grid.Coord) error {
		cells = append(cells, c)
		return nil
	})
	if err != nil {
		return nil, withStatus(http.StatusServiceUnavailable, fmt.Errorf("api: lap aborted: %w", err))
	}
	return cells, nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var se *statusError
	if errors.As(err, &se) {
		status = se.status
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	s.errorResponse(w, r, status, err)
}

func (s *Server) handleAreas(w http.ResponseWriter, r *http.Request) {
	infos := registry.List()
	items := make([]AreaSummary, len(infos))
	for i, info := range infos {
		items[i] = AreaSummary{ID: info.ID, Title: info.Title}
	}
	s.jsonResponse(w, r, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (s *Server) handleArea(w http.ResponseWriter, r *http.Request) {
	shape, err := registry.Create(mux.Vars(r)["id"])
	if err != nil {
		s.fail(w, r, withStatus(http.StatusNotFound, err))
		return
	}

	region := shape.Region()
	bounds := region.Bounds()
	item := AreaDetail{
		ID:     shape.ID,
		Name:   shape.Name,
		Rows:   shape.Rows,
		Origin: Cell{X: bounds.X, Y: bounds.Y},
		Width:  bounds.W,
		Height: bounds.H,
		Size:   region.Count(),
		Ring:   len(border.Ring(region.Contains, region.Coords())),
	}
	if len(shape.Cells) > 0 {
		item.Cells = cellsOf(shape.Cells)
	}
	if start, err := shape.StartCell(); err == nil {
		c := cellOf(start)
		item.Start = &c
	}
	s.jsonResponse(w, r, http.StatusOK, map[string]interface{}{
		"item": item,
	})
}

func (s *Server) handleBorder(w http.ResponseWriter, r *http.Request) {
	req, err := parseLapRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cells, err := s.collect(r, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, Lap{
		Area:  req.shape.ID,
		Start: cellOf(req.start),
		Count: len(cells),
		Cells: cellsOf(cells),
	})
}

func (s *Server) handleSaveTrace(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, withStatus(http.StatusServiceUnavailable, errors.New("api: no database configured")))
		return
	}
	req, err := parseLapRequest(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cells, err := s.collect(r, req)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	id, err := s.store.SaveTrace(storage.Trace{AreaID: req.shape.ID, Start: req.start, Cells: cells})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.logger.Info("lap saved", "id", id, "area", req.shape.ID, "cells", len(cells))
	s.jsonResponse(w, r, http.StatusCreated, map[string]interface{}{
		"id":    id,
		"count": len(cells),
	})
}

func (s *Server) handleTraces(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, withStatus(http.StatusServiceUnavailable, errors.New("api: no database configured")))
		return
	}

	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			s.fail(w, r, withStatus(http.StatusBadRequest, fmt.Errorf("api: invalid limit %q", l)))
			return
		}
		limit = n
	}

	traces, err := s.store.RecentTraces(r.URL.Query().Get("area"), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	items := make([]TraceSummary, len(traces))
	for i, tr := range traces {
		items[i] = summaryOf(tr)
	}
	s.jsonResponse(w, r, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, withStatus(http.StatusServiceUnavailable, errors.New("api: no database configured")))
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.fail(w, r, withStatus(http.StatusNotFound, err))
		return
	}
	tr, err := s.store.TraceByID(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if tr == nil {
		s.fail(w, r, withStatus(http.StatusNotFound, fmt.Errorf("api: no lap #%d", id)))
		return
	}

	s.jsonResponse(w, r, http.StatusOK, map[string]interface{}{
		"item": TraceDetail{TraceSummary: summaryOf(*tr), Cells: cellsOf(tr.Cells)},
	})
}
