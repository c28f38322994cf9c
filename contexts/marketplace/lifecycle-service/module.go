package lifecycleservice

import (
	"log/slog"

	httpadapter "canje/contexts/marketplace/lifecycle-service/adapters/http"
	"canje/contexts/marketplace/lifecycle-service/adapters/memory"
	"canje/contexts/marketplace/lifecycle-service/application/commands"
	"canje/contexts/marketplace/lifecycle-service/application/queries"
	"canje/contexts/marketplace/lifecycle-service/domain/entities"
	"canje/contexts/marketplace/lifecycle-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Outbox     ports.OutboxWriter
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger

	// ReleaseSlotOnCancel frees a consumed slot when a confirmed
	// application is cancelled. Defaults to keeping it consumed.
	ReleaseSlotOnCancel bool

	// Window defaults applied to new campaigns that do not choose their
	// own; zero falls through to the entity defaults.
	DefaultURLWindowDays     int
	DefaultMetricsWindowDays int
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Repository:               deps.Repository,
		Clock:                    deps.Clock,
		IDGen:                    deps.IDGen,
		Logger:                   deps.Logger,
		DefaultURLWindowDays:     deps.DefaultURLWindowDays,
		DefaultMetricsWindowDays: deps.DefaultMetricsWindowDays,
	}
	apply := commands.ApplyUseCase{
		Repository: deps.Repository,
		Outbox:     deps.Outbox,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	transition := commands.TransitionApplicationUseCase{
		Repository:          deps.Repository,
		Outbox:              deps.Outbox,
		Clock:               deps.Clock,
		IDGen:               deps.IDGen,
		Logger:              deps.Logger,
		ReleaseSlotOnCancel: deps.ReleaseSlotOnCancel,
	}
	submitPost := commands.SubmitPostUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	review := commands.ReviewDeliverableUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	submitMetrics := commands.SubmitMetricsUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	reset := commands.ResetDeliverableUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	rate := commands.RateDeliverableUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:        createCampaign,
			Apply:                 apply,
			TransitionApplication: transition,
			SubmitPost:            submitPost,
			ReviewDeliverable:     review,
			SubmitMetrics:         submitMetrics,
			ResetDeliverable:      reset,
			RateDeliverable:       rate,
			Queries:               queryUseCase,
			Logger:                deps.Logger,
		},
	}
}

func NewInMemoryModule(campaigns []entities.Campaign, logger *slog.Logger) Module {
	store := memory.NewStore(campaigns)
	module := NewModule(Dependencies{
		Repository: store,
		Outbox:     store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
