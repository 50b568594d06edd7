package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bilingo/internal/content"
	"github.com/ziadkadry99/bilingo/internal/langctl"
)

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type  string `json:"type"` // "toggle", "apply", "search" or "clear"
	Lang  string `json:"lang,omitempty"`
	Query string `json:"query,omitempty"`
}

// liveResponse is the outgoing WebSocket message format.
type liveResponse struct {
	Type      string             `json:"type"` // "state" or "error"
	SessionID string             `json:"session_id"`
	State     *langctl.PageState `json:"state,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// liveSession is one connected page. Writes are serialized; language
// changes run concurrently so a newer toggle supersedes an older one.
type liveSession struct {
	id     string
	conn   *websocket.Conn
	ctl    *langctl.Controller
	page   *langctl.Page
	logger *zap.Logger

	writeMu sync.Mutex
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	variant, err := s.variantParam(q.Get("variant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := s.logger.With(zap.String("session", id), zap.String("variant", string(variant)))
	page := &langctl.Page{}
	sess := &liveSession{
		id:   id,
		conn: conn,
		page: page,
		ctl: langctl.New(s.loader, variant, page,
			langctl.WithLogger(logger),
			langctl.WithQuery(q.Get("q")),
			langctl.WithLinkBase(linkBase)),
		logger: logger,
	}
	logger.Debug("live session opened")

	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if lang, ok := content.ParseLanguage(q.Get("lang")); ok {
		sess.publish(sess.ctl.Apply(ctx, lang))
	} else {
		sess.publish(sess.ctl.Init(ctx))
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", zap.Error(err))
			}
			logger.Debug("live session closed")
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sess.sendError("invalid message format")
			continue
		}

		switch req.Type {
		case "toggle":
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess.publish(sess.ctl.Toggle(ctx))
			}()
		case "apply":
			lang, ok := content.ParseLanguage(req.Lang)
			if !ok {
				sess.sendError(fmt.Sprintf("unsupported language %q", req.Lang))
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				sess.publish(sess.ctl.Apply(ctx, lang))
			}()
		case "search", "clear":
			if !variant.Searchable() {
				sess.sendError("search is only available for " + string(content.VariantTools))
				continue
			}
			if req.Type == "clear" {
				sess.publish(sess.ctl.ClearSearch())
			} else {
				sess.publish(sess.ctl.Search(req.Query))
			}
		default:
			sess.sendError("unknown message type: " + req.Type)
		}
	}
}

// variantParam resolves the ?variant value against the enabled variants.
func (s *Server) variantParam(raw string) (content.Variant, error) {
	if raw == "" {
		return s.cfg.Variants[0], nil
	}
	v, err := content.ParseVariant(raw)
	if err != nil {
		return "", err
	}
	if !s.enabled(v) {
		return "", fmt.Errorf("variant %q is not enabled", v)
	}
	return v, nil
}

// publish pushes the current page state after a controller operation.
// Superseded language changes publish nothing; the newer one will.
func (ls *liveSession) publish(err error) {
	if errors.Is(err, langctl.ErrStale) {
		return
	}
	if err != nil {
		ls.logger.Warn("live update failed", zap.Error(err))
	}
	state := ls.page.State()
	ls.send(liveResponse{Type: "state", SessionID: ls.id, State: &state})
}

func (ls *liveSession) sendError(message string) {
	ls.send(liveResponse{Type: "error", SessionID: ls.id, Error: message})
}

func (ls *liveSession) send(resp liveResponse) {
	ls.writeMu.Lock()
	defer ls.writeMu.Unlock()
	if err := ls.conn.WriteJSON(resp); err != nil {
		ls.logger.Debug("websocket write", zap.Error(err))
	}
}
