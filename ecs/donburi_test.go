package ecs

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phanxgames/picsel"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []picsel.Event
	PlotEventType.Subscribe(world, func(w donburi.World, e picsel.Event) {
		received = append(received, e)
	})

	id := uuid.New()
	sink.EmitEvent(picsel.Event{
		Type:   picsel.EventPick,
		Item:   picsel.ItemRef{Source: id, Index: 3},
		Screen: picsel.Vec2{X: 100, Y: 200},
	})
	sink.EmitEvent(picsel.Event{Type: picsel.EventApply, Strategy: "Hilbert curve plot"})

	// Events are queued; process them.
	PlotEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != picsel.EventPick || e0.Item.Source != id || e0.Item.Index != 3 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Screen.X != 100 || e0.Screen.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.Screen.X, e0.Screen.Y)
	}
	if e1 := received[1]; e1.Type != picsel.EventApply || e1.Strategy != "Hilbert curve plot" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_PlotterApply(t *testing.T) {
	world := donburi.NewWorld()
	var types []picsel.EventType
	PlotEventType.Subscribe(world, func(w donburi.World, e picsel.Event) {
		types = append(types, e.Type)
	})

	p := picsel.NewPlotter(picsel.DefaultConfig(), nil, nil)
	p.SetEventSink(NewDonburiSink(world))
	// Apply before the first reload is a no-op and emits nothing.
	p.Apply(p.Strategies[1])
	PlotEventType.ProcessEvents(world)
	if len(types) != 0 {
		t.Fatalf("events before reload = %v, want none", types)
	}

	if _, err := p.Reload(context.Background(), picsel.NewSelection()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	p.Apply(p.Strategies[1])
	PlotEventType.ProcessEvents(world)
	want := []picsel.EventType{picsel.EventReload, picsel.EventApply}
	if len(types) != len(want) || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("events = %v, want %v", types, want)
	}
}
