package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/pb"
	"github.com/jrissiusp/SnakeGameMultiplayer/rules"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

const (
	defaultGameLimit  = 50
	defaultFrameLimit = 100
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // spectators can connect from any page
	},
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if err == controller.ErrNotFound {
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func (s *Server) listGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := queryInt(r, "limit", defaultGameLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return
	}

	games, err := s.store.ListGames(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &pb.ListGamesResponse{Games: games})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	game, err := s.store.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := &pb.StatusResponse{Game: game}
	frames, err := s.store.ListGameFrames(r.Context(), id, 1, -1)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(frames) > 0 {
		resp.LastFrame = frames[0]
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) frames(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	limit, err := queryInt(r, "limit", defaultFrameLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid offset"})
		return
	}

	frames, err := s.store.ListGameFrames(r.Context(), ps.ByName("id"), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, &pb.ListGameFramesResponse{Frames: frames, Count: len(frames)})
}

// socket streams every recorded frame of a game, oldest first, and closes
// once the game stopped running and all of its frames were sent.
func (s *Server) socket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := s.store.GetGame(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Drain the read side so close frames from the client are noticed.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	logger := log.WithFields(log.Fields{"GameID": id, "Remote": r.RemoteAddr})
	logger.Debug("spectator connected")

	offset := 0
	for {
		// Status first: the runner records the final frame before it marks
		// the game finished.
		game, err := s.store.GetGame(ctx, id)
		if err != nil {
			logger.WithError(err).Error("unable to load game")
			return
		}

		frames, err := s.store.ListGameFrames(ctx, id, defaultFrameLimit, offset)
		if err != nil {
			logger.WithError(err).Error("unable to list frames")
			return
		}
		for _, f := range frames {
			if err := conn.WriteJSON(f); err != nil {
				logger.WithError(err).Debug("spectator went away")
				return
			}
		}
		offset += len(frames)

		if len(frames) == 0 && game.Status != string(rules.GameStatusRunning) {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, game.Status)
			if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
				logger.WithError(err).Debug("unable to send close")
			}
			return
		}
		if len(frames) > 0 {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.poll):
		}
	}
}
