package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"truco-server/pkg/deck"
	"truco-server/pkg/protocol"
	"truco-server/pkg/room"
	"truco-server/pkg/truco"
)

type playView struct {
	Seat int       `json:"seat"`
	Card deck.Card `json:"card"`
}

type dealtView struct {
	Seat     int         `json:"seat"`
	Cards    []deck.Card `json:"cards"`
	TurnCard deck.Card   `json:"turnCard"`
	Trump    deck.Rank   `json:"trump"`
	Blind    bool        `json:"blind"`
}

type turnView struct {
	Seat     int  `json:"seat"`
	YourTurn bool `json:"yourTurn"`
}

type infoView struct {
	Team     int      `json:"team"`
	Names    []string `json:"names"`
	Score    [2]int   `json:"score"`
	Sets     [2]int   `json:"sets"`
	Stake    int      `json:"stake"`
	CanRaise bool     `json:"canRaise"`
}

type raiseView struct {
	Value         int    `json:"value"`
	RequesterName string `json:"requesterName"`
}

type elevenView struct {
	Cards   []deck.Card `json:"cards"`
	Partner bool        `json:"partner"`
}

type trickView struct {
	Trick       int        `json:"trick"`
	Outcome     string     `json:"outcome"`
	WinningSeat int        `json:"winningSeat"`
	Plays       []playView `json:"plays"`
}

type handEndView struct {
	Winner int    `json:"winner"`
	Points int    `json:"points"`
	Void   bool   `json:"void"`
	Score  [2]int `json:"score"`
}

type setEndView struct {
	Won  bool   `json:"won"`
	Sets [2]int `json:"sets"`
}

type matchEndView struct {
	Won    bool   `json:"won"`
	Sets   [2]int `json:"sets"`
	Reason string `json:"reason"`
}

// view renders the match for the console player and asks for decisions
type view struct {
	pitBoss    *room.PitBoss
	roomID     string
	occupantID string

	seat  int
	hand  deck.Hand
	blind bool
	info  infoView
}

func newView(pitBoss *room.PitBoss, roomID, occupantID string) *view {
	return &view{
		pitBoss:    pitBoss,
		roomID:     roomID,
		occupantID: occupantID,
	}
}

func decode(res *protocol.Response, v interface{}) bool {
	b, err := json.Marshal(res.Data)
	if err == nil {
		err = json.Unmarshal(b, v)
	}

	if err != nil {
		logrus.WithError(err).WithField("key", res.Key).Error("could not decode event")
		return false
	}

	return true
}

func (v *view) name(seat int) string {
	if seat >= 0 && seat < len(v.info.Names) {
		return v.info.Names[seat]
	}

	return fmt.Sprintf("seat %d", seat)
}

func (v *view) cardLabel(card deck.Card) string {
	if v.blind {
		return "??"
	}

	return card.String()
}

// handle renders the event and returns true once the match is over
func (v *view) handle(res *protocol.Response) bool {
	switch res.Key {
	case protocol.KeyHandDealt:
		var dealt dealtView
		if decode(res, &dealt) {
			v.seat = dealt.Seat
			v.hand = dealt.Cards
			v.blind = dealt.Blind
			pterm.DefaultSection.Printfln("New hand, the turn card is %s", dealt.TurnCard)
			if dealt.Blind {
				pterm.Warning.Println("Iron hand: everyone plays blind")
			}
		}
	case protocol.KeyGameInfo:
		decode(res, &v.info)
	case protocol.KeyTurn:
		var turn turnView
		if decode(res, &turn) && turn.YourTurn {
			return v.takeTurn()
		}
	case protocol.KeyRaiseRequested:
		var raise raiseView
		if decode(res, &raise) {
			return v.answerRaise(raise)
		}
	case protocol.KeyRaiseAnswered:
		var answer struct {
			Seat     int    `json:"seat"`
			Response string `json:"response"`
			Stake    int    `json:"stake"`
		}
		if decode(res, &answer) && answer.Seat != v.seat {
			pterm.Info.Printfln("%s answered %s", pterm.LightCyan(v.name(answer.Seat)), answer.Response)
		}
	case protocol.KeyElevenDecision:
		var eleven elevenView
		if decode(res, &eleven) {
			return v.decideEleven(eleven)
		}
	case protocol.KeyTrickResult:
		var trick trickView
		if decode(res, &trick) {
			v.showTrick(trick)
		}
	case protocol.KeyHandEnd:
		var end handEndView
		if decode(res, &end) {
			if end.Void {
				pterm.Info.Println("Every trick tied, nobody scores")
			} else {
				pterm.Info.Printfln("team%d scored %d", end.Winner, end.Points)
			}
			pterm.Info.Printfln("Score %d x %d", end.Score[0], end.Score[1])
		}
	case protocol.KeySetEnd:
		var end setEndView
		if decode(res, &end) {
			if end.Won {
				pterm.Success.Printfln("Your team won the set, sets %d x %d", end.Sets[0], end.Sets[1])
			} else {
				pterm.Error.Printfln("Your team lost the set, sets %d x %d", end.Sets[0], end.Sets[1])
			}
		}
	case protocol.KeyMatchEnd:
		var end matchEndView
		if decode(res, &end) {
			if end.Won {
				pterm.Success.Printfln("You won the match (%s)", end.Reason)
			} else {
				pterm.Error.Printfln("You lost the match (%s)", end.Reason)
			}
		}
		return true
	case protocol.KeyMessage:
		pterm.Info.Println(res.Value)
	}

	return false
}

func (v *view) showTrick(trick trickView) {
	plays := make([]string, len(trick.Plays))
	for i, play := range trick.Plays {
		plays[i] = fmt.Sprintf("%s %s", v.name(play.Seat), play.Card)
	}

	box := pterm.DefaultBox.WithTitle(fmt.Sprintf("Trick %d", trick.Trick)).WithTitleTopCenter()
	result := "tied"
	if trick.WinningSeat >= 0 {
		result = fmt.Sprintf("%s takes it", pterm.LightCyan(v.name(trick.WinningSeat)))
	}

	box.Println(strings.Join(plays, "\n") + "\n\n" + result)
}

// takeTurn asks the player to play a card, raise or leave
func (v *view) takeTurn() bool {
	const leave = "Leave the match"

	for {
		options := make([]string, 0, len(v.hand)+2)
		cards := make(map[string]deck.Card)
		for i, card := range v.hand {
			option := fmt.Sprintf("%d. %s", i+1, v.cardLabel(card))
			options = append(options, option)
			cards[option] = card
		}

		raise := ""
		if next, ok := truco.NextStake(v.info.Stake); ok && v.info.CanRaise {
			raise = fmt.Sprintf("Ask for %d", next)
			options = append(options, raise)
		}
		options = append(options, leave)

		pterm.Info.Printfln("Score %d x %d, the hand is worth %d", v.info.Score[0], v.info.Score[1], v.info.Stake)
		choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Your turn").WithOptions(options).Show()

		var err error
		switch choice {
		case leave:
			_ = v.pitBoss.LeaveRoom(v.occupantID)
			return true
		case raise:
			err = v.pitBoss.RequestRaise(v.roomID, v.occupantID, 0)
		default:
			card := cards[choice]
			if err = v.pitBoss.PlayCard(v.roomID, v.occupantID, card); err == nil {
				v.hand.Discard(card)
			}
		}

		if err == nil {
			return false
		}

		pterm.Error.Println(err)
		if err == room.ErrMatchOver || err == room.ErrRoomNotFound {
			return true
		}
	}
}

func (v *view) answerRaise(raise raiseView) bool {
	const accept, run = "Accept", "Run"

	pterm.Warning.Printfln("%s asks for %d", raise.RequesterName, raise.Value)
	options := []string{accept, run}
	counter := ""
	if next, ok := truco.NextStake(raise.Value); ok {
		counter = fmt.Sprintf("Ask for %d", next)
		options = append(options, counter)
	}

	for {
		choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Your answer").WithOptions(options).Show()

		response := truco.RaiseAccept
		switch choice {
		case run:
			response = truco.RaiseRun
		case counter:
			response = truco.RaiseRaise
		}

		err := v.pitBoss.RespondRaise(v.roomID, v.occupantID, response, 0)
		if err == nil {
			return false
		}

		pterm.Error.Println(err)
		if err == room.ErrMatchOver || err == room.ErrRoomNotFound {
			return true
		}
	}
}

func (v *view) decideEleven(eleven elevenView) bool {
	const playIt, run = "Play for 3", "Run"

	whose := "Your cards"
	if eleven.Partner {
		whose = "Your partner's cards"
	}

	labels := make([]string, len(eleven.Cards))
	for i, card := range eleven.Cards {
		labels[i] = card.String()
	}

	pterm.Warning.Printfln("Eleven hand. %s: %s", whose, strings.Join(labels, " "))
	choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Play the hand?").WithOptions([]string{playIt, run}).Show()

	response := truco.ElevenPlay
	if choice == run {
		response = truco.ElevenRun
	}

	if err := v.pitBoss.RespondEleven(v.roomID, v.occupantID, response); err != nil {
		pterm.Error.Println(err)
	}

	return false
}
