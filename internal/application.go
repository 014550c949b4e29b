package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

// RunApp - plays one game over the given input and output.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	textConsole := console.New(logger, in, out)

	humanMark, err := textConsole.ChooseMark()
	if err != nil {
		return fmt.Errorf("could not choose mark: %w", err)
	}

	log.Debug("mark chosen", "mark", humanMark.String(), "seed", conf.Seed)

	bot := service.NewBotService(logger, service.NewRandSource(conf.Seed))
	gameController := tictactoe.NewGameController(logger, humanMark, bot, textConsole)

	result, err := gameController.Play()
	if err != nil {
		return fmt.Errorf("game %s aborted: %w", gameController.ID(), err)
	}

	log.Info("game over", "session", gameController.ID(), "state", result.State.String(), "moves", result.Moves)

	return nil
}
