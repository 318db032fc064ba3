package preview

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

const writeWait = 10 * time.Second

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", errors.New("E060").Wrap(err))
		return
	}
	conn.SetReadLimit(s.config.MaxMessageSize)

	s.track(conn, true)
	defer func() {
		s.track(conn, false)
		conn.Close()
	}()

	groups := s.groups(s.config.HideScrollSync)
	if err := s.sendToolbar(conn, groups); err != nil {
		s.logger.Error("initial toolbar send failed", "error", err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		msg, err := DecodeMessage(data)
		if err != nil {
			s.countMessage("invalid")
			s.logger.Warn("bad preview message", "error", err)
			if err := s.send(conn, errorUpdate(err)); err != nil {
				return
			}
			continue
		}
		s.countMessage(msg.Type)

		next, err := apply(groups, msg)
		if err != nil {
			s.logger.Warn("preview message rejected", "type", msg.Type, "error", err)
			if err := s.send(conn, errorUpdate(err)); err != nil {
				return
			}
			continue
		}
		groups = next
		if err := s.sendToolbar(conn, groups); err != nil {
			s.logger.Error("toolbar send failed", "error", err)
			return
		}
	}
}

func (s *Server) track(conn *websocket.Conn, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
	} else {
		delete(s.conns, conn)
	}
}

func (s *Server) countMessage(typ string) {
	if s.recorder != nil {
		s.recorder.WebSocketMessage(typ)
	}
}

func (s *Server) sendToolbar(conn *websocket.Conn, groups []toolbar.Group) error {
	html, err := s.toolbarHTML(groups)
	if err != nil {
		return err
	}
	return s.send(conn, Update{Type: TypeToolbar, HTML: html, Groups: groups})
}

func (s *Server) send(conn *websocket.Conn, u Update) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(u)
}

const liveScript = `(function () {
  var root = document.getElementById("toolbar-root");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "toolbar") {
      root.innerHTML = msg.html;
    } else if (msg.type === "error") {
      console.warn(msg.code, msg.message);
    }
  };
  window.editorPreview = {
    scrollSync: function (hidden) { ws.send(JSON.stringify({type: "scrollSync", hidden: hidden})); },
    state: function (states) { ws.send(JSON.stringify({type: "state", states: states})); },
    active: function (item, on) { ws.send(JSON.stringify({type: "active", item: item, active: on})); }
  };
})();`
