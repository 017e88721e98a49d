package events

import (
	"context"
	"fmt"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=events_test

type eventAdder interface {
	Add(ctx context.Context, event Event) (*Event, error)
}

// Repo appends events to the gymstats_event table. Events are never updated.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	if event.Data == nil {
		event.Data = map[string]string{}
	}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO gymstats_event (type, user_id, data, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		event.Type.String(),
		event.UserID,
		event.Data,
		event.Timestamp,
	).Scan(&event.ID); err != nil {
		return nil, fmt.Errorf("insert %s event: %w", event.Type, err)
	}

	return &event, nil
}

// PersistListener stores every event it receives.
func PersistListener(repo eventAdder) Listener {
	return func(ctx context.Context, event Event) error {
		if _, err := repo.Add(ctx, event); err != nil {
			return fmt.Errorf("persist event: %w", err)
		}
		return nil
	}
}
