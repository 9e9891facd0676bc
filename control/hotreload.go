// control/hotreload.go
// Reload hook list shared by config stores.

package control

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-mem/internal/logutil"
)

// ReloadHooks is an ordered list of listeners. The zero value is ready to use.
type ReloadHooks struct {
	mu    sync.Mutex
	hooks []func()
}

// Register adds a listener.
func (rh *ReloadHooks) Register(fn func()) {
	rh.mu.Lock()
	rh.hooks = append(rh.hooks, fn)
	rh.mu.Unlock()
}

// Len reports how many listeners are registered.
func (rh *ReloadHooks) Len() int {
	rh.mu.Lock()
	defer rh.mu.Unlock()
	return len(rh.hooks)
}

// Trigger runs every listener synchronously in registration order.
// A panicking listener is logged and does not stop the others.
func (rh *ReloadHooks) Trigger() {
	rh.mu.Lock()
	hooks := append([]func(){}, rh.hooks...)
	rh.mu.Unlock()
	for i, fn := range hooks {
		runHook(i, fn)
	}
}

func runHook(i int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logutil.Named("control").Error("reload hook panicked",
				zap.Int("hook", i), zap.String("panic", fmt.Sprint(r)))
		}
	}()
	fn()
}
