package app

import (
	"encoding/json"
	"sync"
	"time"

	"gamerflow_service/internal/livechat/domain"
	"gamerflow_service/pkg/logger"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

type connWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newConnWriter(conn *websocket.Conn) *connWriter {
	return &connWriter{conn: conn}
}

// send - 發送 JSON 給前端
func (w *connWriter) send(resp domain.WSResponse) {
	b, err := json.Marshal(resp)
	if err != nil {
		logger.Log.Error("marshal ws response failed", zap.Error(err))
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		logger.Log.Warn("write message error", zap.Error(err))
	}
}

func (w *connWriter) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(time.Second))
}
