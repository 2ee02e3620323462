package events

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitDeliversToSubscriber(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var received *Event
	_ = bus.Subscribe(PlanCreated, func(e *Event) {
		received = e
	})

	bus.Emit(PlanCreated, "planning", &PlanCreatedData{
		PlanID:           "abc-123",
		EquityPercentage: 70,
		DebtPercentage:   30,
		FundCount:        4,
	})

	require.NotNil(t, received)
	assert.Equal(t, PlanCreated, received.Type)
	assert.Equal(t, "planning", received.Module)
	assert.False(t, received.Timestamp.IsZero())

	data, ok := received.Data.(*PlanCreatedData)
	require.True(t, ok)
	assert.Equal(t, "abc-123", data.PlanID)
	assert.Equal(t, 70.0, data.EquityPercentage)
}

func TestBus_EmitOnlyMatchingType(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var created, deleted int
	_ = bus.Subscribe(PlanCreated, func(e *Event) { created++ })
	_ = bus.Subscribe(PlanDeleted, func(e *Event) { deleted++ })

	bus.Emit(PlanCreated, "planning", &PlanCreatedData{PlanID: "x"})
	bus.Emit(PlanCreated, "planning", &PlanCreatedData{PlanID: "y"})

	assert.Equal(t, 2, created)
	assert.Equal(t, 0, deleted)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var calls int
	unsubscribe := bus.Subscribe(PlanExpired, func(e *Event) { calls++ })

	bus.Emit(PlanExpired, "planning", &PlanExpiredData{Count: 1})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, bus.SubscriberCount(PlanExpired))

	unsubscribe()
	assert.Equal(t, 0, bus.SubscriberCount(PlanExpired))

	bus.Emit(PlanExpired, "planning", &PlanExpiredData{Count: 2})
	assert.Equal(t, 1, calls)
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var first, second bool
	_ = bus.Subscribe(RebalanceAnalyzed, func(e *Event) { first = true })
	_ = bus.Subscribe(RebalanceAnalyzed, func(e *Event) { second = true })

	bus.Emit(RebalanceAnalyzed, "rebalancing", &RebalanceAnalyzedData{FundsAnalyzed: 3})

	assert.True(t, first)
	assert.True(t, second)
}

func TestBus_EmitWithNoSubscribers(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	assert.NotPanics(t, func() {
		bus.Emit(ToolLaunched, "tools", &ToolLaunchedData{Name: "sip_calculator", PID: 42})
	})
}

func TestBus_ConcurrentEmitAndSubscribe(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	var mu sync.Mutex
	received := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsub := bus.Subscribe(PlanCreated, func(e *Event) {
				mu.Lock()
				received++
				mu.Unlock()
			})
			defer unsub()
		}()
		go func() {
			defer wg.Done()
			bus.Emit(PlanCreated, "planning", &PlanCreatedData{PlanID: "concurrent"})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, received, 0)
}
