// Package service maps connections to seats. It owns the connected-client
// registry, dispatches requests into the session, and fans session events
// back out to the sockets.
package service

import (
	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"

	"github.com/hearts-online/server/consts"
	"github.com/hearts-online/server/game"
	"github.com/hearts-online/server/log"
	"github.com/hearts-online/server/model"
	"github.com/hearts-online/server/network"
	"github.com/hearts-online/server/protocol"
)

var (
	clients = hashmap.New() // client id -> *Client, every open connection
	seated  = hashmap.New() // player id -> *Client, joined connections only
)

type Client struct {
	ID       string
	PlayerID string
	conn     network.Conn
}

type Service struct {
	session *game.Session
}

func New(opts game.Options) *Service {
	s := &Service{}
	s.session = game.NewSession(opts, game.NewRand(), game.NewTimerScheduler(), sink{})
	return s
}

// Handle drives one connection until it drops. A dropped connection that
// held a seat resets the session.
func (s *Service) Handle(conn network.Conn) {
	client := &Client{ID: uuid.NewString(), conn: conn}
	clients.Set(client.ID, client)
	log.Infof("client %s connected\n", client.ID)
	defer s.offline(client)
	for {
		data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		req, err := protocol.Decode(data)
		if err != nil {
			s.write(client, protocol.Err(err))
			continue
		}
		s.write(client, s.dispatch(client, req))
	}
}

func (s *Service) dispatch(client *Client, req *protocol.Request) protocol.Response {
	switch req.Action {
	case protocol.ActionJoin:
		if client.PlayerID != "" {
			if _, ok := seated.Get(client.PlayerID); ok {
				return protocol.Err(consts.ErrorsAlreadySeated)
			}
			// the seat was swept by a session reset
			client.PlayerID = ""
		}
		// register the route first so the private hand of an immediately
		// starting round reaches this connection
		playerID := uuid.NewString()
		seated.Set(playerID, client)
		if err := s.session.Join(playerID, req.Name); err != nil {
			seated.Del(playerID)
			return protocol.Err(err)
		}
		client.PlayerID = playerID
		log.Infof("client %s seated as %s (%s)\n", client.ID, req.Name, playerID)
		return protocol.Suc(playerID)
	case protocol.ActionPlay:
		if client.PlayerID == "" {
			return protocol.Err(consts.ErrorsNotYourTurn)
		}
		card, err := game.ParseCard(req.Card)
		if err != nil {
			return protocol.Err(err)
		}
		if err := s.session.PlayCard(client.PlayerID, card); err != nil {
			return protocol.Err(err)
		}
		return protocol.Suc("")
	}
	return protocol.Err(consts.ErrorsRequestInvalid)
}

func (s *Service) offline(client *Client) {
	clients.Del(client.ID)
	_ = client.conn.Close()
	if client.PlayerID != "" {
		seated.Del(client.PlayerID)
		s.session.Remove(client.PlayerID)
	}
	log.Infof("client %s disconnected\n", client.ID)
}

func (s *Service) write(client *Client, resp protocol.Response) {
	data, err := protocol.Encode(resp)
	if err != nil {
		log.Error(err)
		return
	}
	if err := client.conn.WriteMessage(data); err != nil {
		log.Error(err)
	}
}

// sink fans session events out to the registry. The session emits while
// holding its own lock; writes here never call back into it.
type sink struct{}

func (sink) Broadcast(event game.Event) {
	if _, ok := event.(game.SessionReset); ok {
		// sweep the seat routes before observers hear about the reset, so a
		// prompt rejoin cannot race the sweep
		unseatAll()
	}
	data, err := protocol.Encode(protocol.Message{Event: event.EventName(), Data: model.Payload(event)})
	if err != nil {
		log.Error(err)
		return
	}
	clients.Foreach(func(e *hashmap.Entry) {
		_ = e.Value().(*Client).conn.WriteMessage(data)
	})
}

// unseatAll drops every seat route after a hard reset. Surviving connections
// keep a stale PlayerID until their next join request, which re-checks the
// registry and takes a fresh seat.
func unseatAll() {
	keys := make([]interface{}, 0, consts.Seats)
	seated.Foreach(func(e *hashmap.Entry) {
		keys = append(keys, e.Key())
	})
	for _, k := range keys {
		seated.Del(k)
	}
}

func (sink) Unicast(playerID string, event game.Event) {
	v, ok := seated.Get(playerID)
	if !ok {
		return
	}
	data, err := protocol.Encode(protocol.Message{Event: event.EventName(), Data: model.Payload(event)})
	if err != nil {
		log.Error(err)
		return
	}
	_ = v.(*Client).conn.WriteMessage(data)
}
