package handlers

import (
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/game"
)

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

var commandNargs = map[string]int{
	"g": 0, // get
	"e": 3, // enter row col value
	"x": 2, // erase row col
	"r": 0, // resign
}

func parseInts(words []string) ([]int, error) {
	ints := make([]int, len(words))
	for i, w := range words {
		n, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		ints[i] = n
	}
	return ints, nil
}

// executeCommand applies one text command to the session state. "g" is
// a no-op that only triggers the session reply.
func executeCommand(state *game.State, c string) error {
	parts := strings.Split(strings.TrimSpace(c), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "e":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		if args[2] < 1 || args[2] > 9 {
			return game.ErrInvalidDigit
		}
		return state.Enter(args[0], args[1], uint8(args[2]))
	case "x":
		args, err := parseInts(parts[1:])
		if err != nil {
			return err
		}
		return state.Erase(args[0], args[1])
	case "r":
		state.Forfeit()
		return nil
	}
	return nil
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("unable to read message", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		for _, cmd := range iterBySep(strings.TrimSpace(string(message)), "\n") {
			if err := executeCommand(state, cmd); err != nil {
				g.logger.Debug("rejected command", "command", cmd, "error", err)
				if err := c.WriteJSON(wrapError(err)); err != nil {
					g.logger.Error("unable to write json", slog.Any("error", err))
					return
				}
				continue
			}
			if state.Over() {
				break
			}
		}

		if err := g.updateSession(r.Context(), session, state); err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			return
		}

		if err := c.WriteJSON(NewGameSessionDTO(
			session.GameSessionID, session.StartedAt, session.EndedAt, state,
		)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
	}
}
