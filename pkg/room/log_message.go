package room

import (
	"strings"

	"truco-server/pkg/protocol"
)

const logMessageLimit = 25

// addLogMessages appends to the room's log feed and sends the feed to the room
// Note: this must only be called from within the run loop
func (r *Room) addLogMessages(messages ...*protocol.LogMessage) {
	m := append(r.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	r.logMessages = m
	r.broadcast(&protocol.Response{Key: protocol.KeyLogs, Data: m})
}

// LogMessages returns the room's log feed with seat placeholders replaced by names
func (r *Room) LogMessages() []string {
	lines := make([]string, len(r.logMessages))
	for i, lm := range r.logMessages {
		msg := lm.Message
		for _, seat := range lm.Seats {
			name := "?"
			if occ := r.seats[seat]; occ != nil {
				name = occ.Name
			}

			msg = strings.Replace(msg, "{}", name, 1)
		}

		lines[i] = msg
	}

	return lines
}
