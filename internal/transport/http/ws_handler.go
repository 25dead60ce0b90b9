package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomtalk/roomtalk-server/internal/core"
	"github.com/roomtalk/roomtalk-server/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to a core session.
type WSHandler struct {
	dir     *core.Directory
	emitter *RoomEmitter
	filter  core.ContentFilter
	log     *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(dir *core.Directory, emitter *RoomEmitter, filter core.ContentFilter, logger *zerolog.Logger) *WSHandler {
	return &WSHandler{dir: dir, emitter: emitter, filter: filter, log: logger}
}

// Handle serves one WebSocket connection for its full lifetime.
func (h *WSHandler) Handle(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	client := newClientConn(uuid.NewString())
	h.emitter.Register(client)
	sess := core.NewSession(client.id, h.dir, h.emitter, h.filter, h.log)
	h.log.Info().Str("client_id", client.id).Msg("new websocket connection")

	defer func() {
		// Drop first so the departure fan-out skips this connection.
		h.emitter.Drop(client.id)
		sess.Disconnect()
	}()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, client, sess)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, client)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("client_id", client.id).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *clientConn, sess *core.Session) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		ack, acked, err := h.dispatch(sess, inbound)
		if err != nil {
			h.log.Warn().Err(err).Str("client_id", client.id).Str("type", inbound.Type).Msg("malformed inbound event")
			return err
		}
		if !acked {
			continue
		}

		// Acks share the events channel so the write loop stays the only
		// writer on the socket. Unlike fan-out frames they are never
		// dropped; the send blocks until the queue drains.
		select {
		case client.events <- ack:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *clientConn) error {
	for {
		select {
		case frame := <-client.events:
			if err := wsjson.Write(ctx, conn, frame); err != nil {
				h.log.Error().Err(err).Str("client_id", client.id).Msg("write ws frame")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// dispatch routes one inbound event and returns the ack frame to send. A
// false acked return means the event completes without acknowledgment; a
// non-nil error means the stream is unusable and the connection must close.
func (h *WSHandler) dispatch(sess *core.Session, inbound proto.Inbound) (proto.Outbound, bool, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var data proto.JoinData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, false, err
		}
		return ackFrame(inbound.ID, sess.Join(data.Username, data.Room)), true, nil

	case proto.InboundTypeSendMessage:
		var data proto.SendMessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, false, err
		}
		err := sess.SendMessage(data.Text)
		if errors.Is(err, core.ErrNoAck) {
			return proto.Outbound{}, false, nil
		}
		return ackFrame(inbound.ID, err), true, nil

	case proto.InboundTypeSendLocation:
		var data proto.SendLocationData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return proto.Outbound{}, false, err
		}
		err := sess.SendLocation(data.Latitude, data.Longitude)
		if errors.Is(err, core.ErrNoAck) {
			return proto.Outbound{}, false, nil
		}
		return ackFrame(inbound.ID, err), true, nil

	default:
		return ackFrame(inbound.ID, &core.Error{Code: core.ErrCodeProtocol, Message: "unknown event type"}), true, nil
	}
}
