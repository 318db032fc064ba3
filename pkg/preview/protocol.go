package preview

import (
	"encoding/json"

	"github.com/vango-dev/editorui/internal/errors"
	"github.com/vango-dev/editorui/pkg/toolbar"
)

// Message types.
const (
	TypeToolbar    = "toolbar"
	TypeScrollSync = "scrollSync"
	TypeState      = "state"
	TypeActive     = "active"
	TypeError      = "error"
)

// Message is a client to server message.
type Message struct {
	Type   string          `json:"type"`
	Hidden bool            `json:"hidden,omitempty"`
	States map[string]bool `json:"states,omitempty"`
	Item   string          `json:"item,omitempty"`
	Active bool            `json:"active,omitempty"`
}

// Update is a server to client message.
type Update struct {
	Type    string          `json:"type"`
	HTML    string          `json:"html,omitempty"`
	Groups  []toolbar.Group `json:"groups,omitempty"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DecodeMessage decodes a client message.
func DecodeMessage(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, errors.New("E061").Wrap(err)
	}
	if msg.Type == "" {
		return Message{}, errors.New("E061").WithDetail("missing message type")
	}
	return msg, nil
}

// apply returns groups updated by msg. The input is never modified.
func apply(groups []toolbar.Group, msg Message) ([]toolbar.Group, error) {
	switch msg.Type {
	case TypeScrollSync:
		return toolbar.Retoggle(groups, msg.Hidden), nil
	case TypeState:
		return toolbar.ApplyState(groups, msg.States), nil
	case TypeActive:
		if msg.Item == "" {
			return nil, errors.New("E061").WithDetail("active message without item")
		}
		return toolbar.SetActive(groups, msg.Item, msg.Active), nil
	}
	return nil, errors.New("E062").WithDetail("type " + msg.Type)
}

// errorUpdate converts err to an error message for the client.
func errorUpdate(err error) Update {
	ue := errors.FromError(err, "E061")
	return Update{Type: TypeError, Code: ue.Code, Message: ue.Message}
}
