package protocol

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/hearts-online/server/consts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ActionJoin = "join"
	ActionPlay = "play"
)

// Request is one client action, answered synchronously with a Response.
type Request struct {
	Action string `json:"action"`
	Name   string `json:"name,omitempty"`
	Card   string `json:"card,omitempty"`
}

type Response struct {
	Success  bool   `json:"success"`
	PlayerID string `json:"playerId,omitempty"`
	Code     int    `json:"code,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Message is a server-pushed event envelope.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
}

func Suc(playerID string) Response {
	return Response{Success: true, PlayerID: playerID}
}

func Err(err error) Response {
	resp := Response{Error: err.Error()}
	if e, ok := err.(consts.Error); ok {
		resp.Code = e.Code
	}
	return resp
}

func Decode(data []byte) (*Request, error) {
	req := &Request{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, consts.ErrorsRequestInvalid
	}
	return req, nil
}

func Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
