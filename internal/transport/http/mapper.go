package http

import (
	"errors"

	"github.com/samber/lo"

	"github.com/roomtalk/roomtalk-server/internal/core"
	"github.com/roomtalk/roomtalk-server/internal/proto"
)

// outboundFrame converts a core payload into the wire frame for the given
// event name. Timestamps go out as Unix milliseconds, which is what the
// bundled web client renders.
func outboundFrame(event string, payload any) (proto.Outbound, bool) {
	switch p := payload.(type) {
	case core.Envelope:
		if p.Kind == core.KindLocation {
			return proto.Outbound{
				Type:  proto.OutboundTypeEvent,
				Event: event,
				Data: proto.LocationMessage{
					Username:  p.Sender,
					URL:       p.Body,
					CreatedAt: p.CreatedAt.UnixMilli(),
				},
			}, true
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: event,
			Data: proto.ChatMessage{
				Username:  p.Sender,
				Text:      p.Body,
				CreatedAt: p.CreatedAt.UnixMilli(),
			},
		}, true
	case core.Roster:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: event,
			Data: proto.RoomData{
				Room: p.Room,
				Users: lo.Map(p.Users, func(m core.RoomMember, _ int) proto.RoomUser {
					return proto.RoomUser{Username: m.Username}
				}),
			},
		}, true
	default:
		return proto.Outbound{}, false
	}
}

// ackFrame builds the acknowledgment for an inbound event, carrying the
// domain error if the handler rejected it.
func ackFrame(id int64, err error) proto.Outbound {
	out := proto.Outbound{Type: proto.OutboundTypeAck, ID: id}
	if err == nil {
		return out
	}

	var coreErr *core.Error
	if errors.As(err, &coreErr) {
		out.Error = &proto.Error{Code: coreErr.Code, Msg: coreErr.Message}
	} else {
		out.Error = &proto.Error{Code: core.ErrCodeProtocol, Msg: err.Error()}
	}
	return out
}
