package app

import (
	"context"
	"encoding/json"
	"time"

	"gamerflow_service/internal/livechat/domain"
	"gamerflow_service/pkg/logger"
	"gamerflow_service/pkg/middlewares"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// PingInterval server 主動 ping 的間隔
const PingInterval = time.Minute

// LiveWebsocketHandler 直播聊天室 websocket
type LiveWebsocketHandler struct {
	liveUC LiveChatUseCase
}

// NewLiveWebsocketHandler create LiveWebsocketHandler
func NewLiveWebsocketHandler(liveUC LiveChatUseCase) *LiveWebsocketHandler {
	return &LiveWebsocketHandler{liveUC: liveUC}
}

// HandleConnection 是 WebSocket 連線的進入點
func (h *LiveWebsocketHandler) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	videoID := conn.Params("videoId")
	profileID, _ := conn.Locals(middlewares.TokenProfileID).(string)

	ticker := time.NewTicker(PingInterval)
	ctxClose, cancel := context.WithCancel(ctx)

	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
		logger.Log.Info("live websocket close", zap.String("video", videoID), zap.String("profile", profileID))
	}()

	//server發出ping之後client連線正常會回pong
	conn.SetPongHandler(func(appData string) error {
		logger.Log.Debug("received pong", zap.String("profile", profileID))
		return nil
	})

	// 寫入需要互斥, 訂閱與讀取迴圈在不同 goroutine
	writer := newConnWriter(conn)

	err := h.liveUC.Join(ctxClose, videoID, func(msg domain.LiveMessage) {
		writer.send(notifyResponse(msg))
	})
	if err != nil {
		writer.send(domain.WSResponse{Action: "error", Success: false, Error: err.Error()})
		closeWebSocketConnection(conn, websocket.ClosePolicyViolation, err.Error())
		return
	}
	logger.Log.Info("live websocket open", zap.String("video", videoID), zap.String("profile", profileID))

	// 定期發送 Ping
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := writer.ping(); err != nil {
					logger.Log.Warn("ping failed", zap.String("profile", profileID), zap.Error(err))
					return
				}
			case <-ctxClose.Done():
				return
			}
		}
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Log.Debug("connection closed", zap.Error(err))
			} else {
				//直接斷線 1006
				logger.Log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		if mt != websocket.TextMessage {
			writer.send(errorResponse("unsupported message type"))
			continue
		}

		var req domain.WSRequest
		if err := json.Unmarshal(message, &req); err != nil {
			writer.send(errorResponse("invalid json"))
			continue
		}
		writer.send(h.Exec(ctxClose, videoID, profileID, req))
	}
}

// Exec 處理一個 text request
func (h *LiveWebsocketHandler) Exec(ctx context.Context, videoID, profileID string, req domain.WSRequest) domain.WSResponse {
	resp := domain.WSResponse{Action: req.Action, Success: false, Payload: map[string]interface{}{}}

	switch domain.Action(req.Action) {
	case domain.SendMessage:
		msg, err := h.liveUC.Send(ctx, videoID, profileID, req.Content)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Success = true
			resp.Payload["message_id"] = msg.ID
		}

	case domain.Analyze:
		out := h.liveUC.Analyze(ctx, videoID)
		resp.Success = !out.Failed
		resp.Payload["analysis"] = out.Payload
		if out.Failed {
			resp.Error = out.Reason
		}

	case domain.History:
		resp.Success = true
		resp.Payload["messages"] = h.liveUC.History(videoID)

	default:
		return errorResponse("unknown action")
	}

	if resp.Error != "" {
		logger.Log.Warn("live websocket action failed", zap.String("profile", profileID), zap.String("action", req.Action), zap.String("err", resp.Error))
	}
	return resp
}

func notifyResponse(msg domain.LiveMessage) domain.WSResponse {
	return domain.WSResponse{
		Action:  string(domain.NotifyMessage),
		Success: true,
		Payload: map[string]interface{}{
			"message_id": msg.ID,
			"sender_id":  msg.SenderID,
			"message":    msg.Content,
			"timestamp":  msg.Timestamp,
		},
	}
}

func errorResponse(errorMsg string) domain.WSResponse {
	return domain.WSResponse{
		Action:  "error",
		Success: false,
		Payload: map[string]interface{}{
			"error": errorMsg,
		},
	}
}

func closeWebSocketConnection(conn *websocket.Conn, code int, reason string) {
	if err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason)); err != nil {
		logger.Log.Warn("send close message failed", zap.Error(err))
	}
}
