package main

import (
	"context"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/primus/go/internal/colorpool"
	"github.com/mcdev12/primus/go/internal/selection"
	"github.com/mcdev12/primus/go/internal/selection/publisher"
)

// tui_sim drives a coordinator from the keyboard so the selection flow can
// be watched without a touch surface.
func main() {
	logFile, err := os.CreateTemp("", "primus-tui-*.log")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create log file")
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := publisher.NewDispatcher(publisher.LogPublisher{}, 0)
	go dispatcher.Start(ctx)

	coordinator, err := selection.New(colorpool.DefaultPalette(), clockwork.NewRealClock(), selection.Options{
		Rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
		Notifier: dispatcher,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create coordinator")
	}

	p := tea.NewProgram(newModel(coordinator, selection.DefaultTickInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("tui exited")
	}
}
