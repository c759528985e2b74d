package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"truco-server/internal/config"
	"truco-server/pkg/db"
	"truco-server/pkg/history"
	"truco-server/pkg/room"
)

const (
	roomID     = "console"
	occupantID = "console"
)

var command = flag.String("c", "play", "specifies the command (play, history)")
var seats = flag.Int("seats", 2, "seats at the table (2 or 4)")
var name = flag.String("name", "", "your name at the table")

func main() {
	flag.Parse()

	switch *command {
	case "play":
		if err := play(); err != nil {
			logrus.WithError(err).Fatal("could not play")
		}
	case "history":
		if err := showHistory(); err != nil {
			logrus.WithError(err).Fatal("could not list matches")
		}
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func play() error {
	playerName := *name
	if playerName == "" {
		playerName, _ = pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").Show()
		pterm.Println()
	}

	cfg := config.Instance()
	// nobody is sweeping a terminal player for thinking too long
	cfg.Timing.IdleTimeout = time.Hour * 24

	events := newNotifier(occupantID)
	pitBoss := room.NewPitBoss(events, cfg)
	pitBoss.StartShift()
	defer pitBoss.EndShift()

	if err := pitBoss.CreateBotRoom(roomID, *seats, room.NewOccupant(occupantID, playerName)); err != nil {
		return err
	}

	pterm.Info.Printfln("Seated at a %d seat table against bots", *seats)

	v := newView(pitBoss, roomID, occupantID)
	for res := range events.events {
		if done := v.handle(res); done {
			return nil
		}
	}

	return nil
}

func showHistory() error {
	dbh, err := db.Open(config.Instance().PGDSN)
	if err != nil {
		return err
	}
	defer dbh.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	matches, err := history.NewPostgres(dbh).Recent(ctx, 0, 20)
	if err != nil {
		return err
	}

	data := pterm.TableData{{"ID", "Room", "Players", "Winner", "Sets", "Reason", "Ended"}}
	for _, m := range matches {
		data = append(data, []string{
			strconv.FormatInt(m.ID, 10),
			m.RoomID,
			fmt.Sprintf("%v", m.Names()),
			fmt.Sprintf("team%d", m.WinnerTeam),
			fmt.Sprintf("%d-%d", m.Sets[0], m.Sets[1]),
			m.Reason,
			m.EndedAt.Format(time.RFC822),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
