package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domainerrors "prepmap/internal/domain/errors"
	"prepmap/internal/errors"
	"prepmap/internal/mapcore/region"
	"prepmap/internal/mapcore/scene"
	"prepmap/internal/mapcore/session"
	"prepmap/internal/mapcore/svgpath"
	"prepmap/internal/mapcore/viewport"
	mockUsecase "prepmap/internal/mocks/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startSessionServer(t *testing.T, mapUC *mockUsecase.MockMapUsecase) *websocket.Conn {
	t.Helper()

	e := echo.New()
	h := NewSessionHandler(SessionHandlerParams{MapUC: mapUC, Logger: discardLogger()})
	e.GET("/api/session", h.Connect)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/session"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) session.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var m session.Message
	require.NoError(t, conn.ReadJSON(&m))

	return m
}

func sessionGraph(t *testing.T) *scene.Graph {
	t.Helper()

	idx, err := region.Build(
		[]region.Source{{PathID: "region-6", Path: svgpath.New("M0 0H10V10H0Z")}},
		region.IdentityTable{Keyed: []region.Identity{{PathID: "region-6", ID: "EASTERN", Name: "Eastern"}}},
	)
	require.NoError(t, err)

	return scene.Build(idx, 100, 100)
}

func TestSessionHandler_MapUnavailable(t *testing.T) {
	mapUC := mockUsecase.NewMockMapUsecase(t)
	mapUC.EXPECT().NewSession(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrMapUnavailable))

	conn := startSessionServer(t, mapUC)

	m := readMessage(t, conn)
	assert.Equal(t, session.OutMapUnavailable, m.Type)

	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseTryAgainLater, closeErr.Code)
}

func TestSessionHandler_Roundtrip(t *testing.T) {
	g := sessionGraph(t)
	mapUC := mockUsecase.NewMockMapUsecase(t)
	mapUC.EXPECT().NewSession(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, send func(session.Message)) (*session.Session, error) {
			return session.New(ctx, session.Deps{
				Graph:    g,
				Viewport: viewport.Config{Padding: 0.5},
				Logger:   discardLogger(),
			}, send), nil
		})

	conn := startSessionServer(t, mapUC)

	ready := readMessage(t, conn)
	assert.Equal(t, session.OutReady, ready.Type)
	require.NotNil(t, ready.Bound)
	assert.Equal(t, g.Full(), *ready.Bound)

	require.NoError(t, conn.WriteJSON(session.Inbound{Type: session.InSelect, RegionID: "ATLANTIS"}))
	m := readMessage(t, conn)
	assert.Equal(t, session.OutError, m.Type)
	assert.Equal(t, "ATLANTIS", m.RegionID)

	// dismiss snaps the viewport back to the full map before confirming
	require.NoError(t, conn.WriteJSON(session.Inbound{Type: session.InDismiss}))
	m = readMessage(t, conn)
	assert.Equal(t, session.OutViewport, m.Type)
	require.NotNil(t, m.Viewport)
	assert.Equal(t, g.Full(), m.Viewport.Rect)
	m = readMessage(t, conn)
	assert.Equal(t, session.OutDismissed, m.Type)
}
