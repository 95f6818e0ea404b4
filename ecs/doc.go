// Package ecs provides ECS adapters for picsel's plotter events.
//
// The adapter is [NewDonburiSink], which publishes plotter events (picks,
// layout transitions, reloads) into a [Donburi] world as typed events.
// Subscribe to [PlotEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.Plotter().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
