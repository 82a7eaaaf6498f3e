package cooldown_bench

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CustomItemEffects_Go/internal/cooldown"
	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
)

// Compare runs with: go test -bench=. -count=10 ./benchmarks/cooldown | benchstat -

func actors(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func benchmarkStore(b *testing.B, store cooldown.Store) {
	tr := cooldown.NewTracker("bench", time.Minute, cooldown.WithStore(store))
	ids := actors(1024)
	for _, id := range ids {
		tr.ApplyCooldown(id)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.IsOnCooldown(ids[i%len(ids)])
	}
}

func BenchmarkIsOnCooldown_MemoryStore(b *testing.B) {
	benchmarkStore(b, cooldown.NewMemoryStore())
}

func BenchmarkIsOnCooldown_LRUStore(b *testing.B) {
	benchmarkStore(b, cooldown.NewLRUStore(4096, time.Minute))
}

func BenchmarkEnforceCooldown_Parallel(b *testing.B) {
	tr := cooldown.NewTracker("bench", 0)
	ctx := context.Background()
	noop := func() error { return nil }

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		id := uuid.New()
		for pb.Next() {
			_ = tr.EnforceCooldown(ctx, id, noop)
		}
	})
}

type benchActor uuid.UUID

func (a benchActor) UniqueID() uuid.UUID { return uuid.UUID(a) }
func (a benchActor) Name() string        { return "bench" }

func BenchmarkCustomItemOnUse(b *testing.B) {
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	b.Cleanup(func() { slog.SetDefault(prev) })

	ci := item.MustNew(item.Definition{
		DisplayName: "&6Fireblade",
		Material:    domain.MaterialDiamondSword,
	}, item.AbilityFunc(func(context.Context, domain.Actor, domain.Actor) error { return nil }))
	ctx := context.Background()
	actor := benchActor(uuid.New())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ci.OnUse(ctx, actor, nil)
	}
}
