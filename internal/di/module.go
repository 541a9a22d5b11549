package di

import (
	"go.uber.org/fx"

	"github.com/avdeyev/studydesk/internal/app"
	"github.com/avdeyev/studydesk/internal/bot"
	"github.com/avdeyev/studydesk/internal/catalog"
	"github.com/avdeyev/studydesk/internal/config"
	"github.com/avdeyev/studydesk/internal/logger"
	"github.com/avdeyev/studydesk/internal/pkg/auth"
	"github.com/avdeyev/studydesk/internal/server/http/handlers"
	"github.com/avdeyev/studydesk/internal/server/http/router"
	"github.com/avdeyev/studydesk/internal/storage/postgres"
	"github.com/avdeyev/studydesk/internal/usecase"
	"github.com/avdeyev/studydesk/internal/wizard"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		catalog.Module,
		wizard.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.Facade) handlers.Facade { return f }),
		fx.Provide(func(f *app.Facade) bot.Facade { return f }),
		router.Module,
		bot.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
