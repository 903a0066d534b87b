package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes an event to the frontend. It defaults to a no-op so unit
// tests and headless code paths can run without a wails runtime; main swaps
// in the runtime emitter at startup.
var Emit = func(ctx context.Context, name string, payload any) {}

// Logf is debug-level relay tracing, same indirection as Emit.
var Logf = func(ctx context.Context, format string, args ...any) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		runtime.EventsEmit(ctx, name, payload)

		if notice, ok := payload.(Notice); ok {
			logRuntimeNotice(ctx, notice)
		}
	}
	Logf = runtime.LogDebugf
}

func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = f
}
