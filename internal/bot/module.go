package bot

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/avdeyev/studydesk/internal/config"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// Module wires the Telegram adapter into the fx container.
var Module = fx.Provide(newBot)

type botParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Wizard *wizard.Wizard
	Facade Facade
	Logger *slog.Logger
}

func newBot(p botParams) *Bot {
	return New(p.Ctx, p.Config.BotToken, p.Config.BotPollTimeout, p.Wizard, p.Facade, p.Logger)
}
