package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	deliverycontext "prepmap/internal/delivery/context"
	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"
	"prepmap/internal/mapcore/session"
	"prepmap/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxInboundSize = 4 << 10
	outboundBuffer = 256
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	MapUC   usecase.MapUsecase
	Logger  *slog.Logger
	Metrics *metrics.Collector `optional:"true"`
}

// SessionHandler runs interactive map sessions over websockets.
type SessionHandler struct {
	mapUC    usecase.MapUsecase
	logger   *slog.Logger
	metrics  *metrics.Collector
	upgrader websocket.Upgrader
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		mapUC:   params.MapUC,
		logger:  params.Logger,
		metrics: params.Metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Connect upgrades the request and serves one session until either side closes.
func (h *SessionHandler) Connect(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// the upgrader has already answered the request
		return nil
	}
	defer conn.Close()

	logger := deliverycontext.LoggerOrDefault(c.Request().Context(), h.logger)
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request().Context()))
	defer cancel()

	out := make(chan session.Message, outboundBuffer)
	send := func(m session.Message) {
		select {
		case out <- m:
		default:
			logger.Warn("Session client too slow, closing")
			cancel()
		}
	}

	sess, err := h.mapUC.NewSession(ctx, send)
	if err != nil {
		h.reject(conn, logger, err)

		return nil
	}

	h.metrics.SessionOpened()
	defer h.metrics.SessionClosed()
	logger.Info("Session opened")

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sess.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		h.writePump(ctx, cancel, conn, out)
	}()

	h.readPump(ctx, conn, sess, logger)
	cancel()
	wg.Wait()
	logger.Info("Session closed")

	return nil
}

// readPump forwards client messages to the session loop.
func (h *SessionHandler) readPump(ctx context.Context, conn *websocket.Conn, sess *session.Session, logger *slog.Logger) {
	conn.SetReadLimit(maxInboundSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var in session.Inbound
		if err := conn.ReadJSON(&in); err != nil {
			if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Session read failed", slog.Any("error", err))
			}

			return
		}
		if !sess.Dispatch(in) {
			return
		}
	}
}

// writePump is the only writer of data frames on conn.
func (h *SessionHandler) writePump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out <-chan session.Message) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			// unblock the reader
			_ = conn.SetReadDeadline(time.Now())

			return
		case m := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(m); err != nil {
				cancel()
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				cancel()
			}
		}
	}
}

// reject tells the client why no session could be created and closes.
func (h *SessionHandler) reject(conn *websocket.Conn, logger *slog.Logger, err error) {
	msg := session.Message{Type: session.OutError, Error: err.Error()}
	closeCode := websocket.CloseInternalServerErr
	if errors.Is(err, domainerrors.ErrMapUnavailable) {
		msg = session.Message{Type: session.OutMapUnavailable, Error: domainerrors.ErrMapUnavailable.Message()}
		closeCode = websocket.CloseTryAgainLater
	}
	logger.Error("Session rejected", slog.Any("error", err))

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteJSON(msg)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(closeCode, msg.Type),
		time.Now().Add(writeWait))
}
