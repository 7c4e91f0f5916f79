package api

import (
	"context"
	"errors"
	"net/http"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/vovakirdan/borderwalk/internal/grid"
)

// Event is one websocket message of a streamed lap: a cell, then a final
// message with Done set (or Error when the lap could not be walked).
type Event struct {
	Cell  *Cell  `json:"cell,omitempty"`
	Done  bool   `json:"done,omitempty"`
	Count int    `json:"count,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) makeWSHandler(
	handler func(context.Context, *http.Request, *websocket.Conn) error,
) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			s.logger.Warn("websocket accept failed", "path", r.URL.Path, "error", err)
			return
		}
		s.logger.Debug("websocket connect", "path", r.URL.Path, "remote", r.RemoteAddr)
		defer s.logger.Debug("websocket disconnect", "remote", r.RemoteAddr)
		defer c.Close(websocket.StatusInternalError, "")

		if err := handler(r.Context(), r, c); err != nil {
			s.logger.Warn("websocket stream failed", "path", r.URL.Path, "error", err)
			return
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// streamTrace sends every reported cell of a lap as its own message.
func (s *Server) streamTrace(ctx context.Context, r *http.Request, c *websocket.Conn) error {
	req, err := parseLapRequest(r)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status < http.StatusInternalServerError {
			// Client error: report it in-band and close normally.
			return wsjson.Write(ctx, c, Event{Error: err.Error()})
		}
		return err
	}

	ctx, cancel := s.traceContext(ctx)
	defer cancel()

	count := 0
	err = walk(ctx, req, func(p grid.Coord) error {
		cell := cellOf(p)
		count++
		return wsjson.Write(ctx, c, Event{Cell: &cell})
	})
	if err != nil {
		return err
	}
	return wsjson.Write(ctx, c, Event{Done: true, Count: count})
}
