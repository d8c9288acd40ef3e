package components

import (
	"context"
	"fmt"

	"canteen-reservation/internal/infra/db"
	"canteen-reservation/internal/infra/memstore"
	"canteen-reservation/internal/infra/readstore"
	"canteen-reservation/internal/infra/redisledger"
	"canteen-reservation/internal/infra/repository"
	"canteen-reservation/internal/infra/uow"
	"canteen-reservation/internal/pkg/clock"
	"canteen-reservation/internal/pkg/config"
	"canteen-reservation/internal/usecase/queries"
	"canteen-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Persistence bundles the storage ports of one configured driver.
type Persistence struct {
	UoW              shared.UnitOfWork
	CanteenRepo      shared.CanteenRepository
	StudentRepo      shared.StudentRepository
	Canteens         shared.CanteenDirectory
	Students         shared.StudentDirectory
	ReservationReads queries.ReservationReadStore
	Occupancy        queries.OccupancyReader
}

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		clock.NewRealClock,
		NewPersistence,
		func(p *Persistence) shared.UnitOfWork { return p.UoW },
		func(p *Persistence) shared.CanteenRepository { return p.CanteenRepo },
		func(p *Persistence) shared.StudentRepository { return p.StudentRepo },
		func(p *Persistence) shared.CanteenDirectory { return p.Canteens },
		func(p *Persistence) shared.StudentDirectory { return p.Students },
		func(p *Persistence) queries.ReservationReadStore { return p.ReservationReads },
		func(p *Persistence) queries.OccupancyReader { return p.Occupancy },
	),
)

// NewPersistence selects the backing per STORE_DRIVER and LEDGER_DRIVER.
func NewPersistence(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*Persistence, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return newPostgresPersistence(lc, cfg)
	case "memory":
		return newMemoryPersistence(clk), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newPostgresPersistence(lc fx.Lifecycle, cfg config.Config) (*Persistence, error) {
	if err := cfg.DB.Validate(); err != nil {
		return nil, err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	p := &Persistence{
		CanteenRepo:      repository.NewCanteenRepository(pool),
		StudentRepo:      repository.NewStudentRepository(pool),
		Canteens:         readstore.NewCanteenReadStore(pool),
		Students:         readstore.NewStudentReadStore(pool),
		ReservationReads: readstore.NewReservationReadStore(pool),
	}

	if cfg.Store.LedgerDriver == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		ledger := redisledger.NewLedger(client)
		p.UoW = uow.NewPostgresUoWWithLedger(pool, ledger)
		p.Occupancy = ledger
	} else {
		p.UoW = uow.NewPostgresUoW(pool)
		p.Occupancy = readstore.NewOccupancyReadStore(pool)
	}
	return p, nil
}

// The memory driver keeps its ledger in the store; LEDGER_DRIVER is ignored.
func newMemoryPersistence(clk clock.Clock) *Persistence {
	store := memstore.New(clk)
	canteens := memstore.NewCanteenStore(store)
	students := memstore.NewStudentStore(store)

	return &Persistence{
		UoW:              store,
		CanteenRepo:      canteens,
		StudentRepo:      students,
		Canteens:         canteens,
		Students:         students,
		ReservationReads: memstore.NewReservationViews(store),
		Occupancy:        store,
	}
}
