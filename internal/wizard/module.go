package wizard

import (
	"go.uber.org/fx"

	"github.com/avdeyev/studydesk/internal/catalog"
)

// Module wires the shared session store and wizard into the fx container.
var Module = fx.Options(
	fx.Provide(func() SessionStore { return NewMemorySessions() }),
	fx.Provide(func(c *catalog.Catalog) Catalog { return c }),
	fx.Provide(New),
)
