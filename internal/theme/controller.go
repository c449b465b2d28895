package theme

import (
	"context"
	"log"
	"sync"

	"github.com/joestump/recrutas/internal/metrics"
)

// Controller owns the active preference for one page mount. It starts
// unready with a Light placeholder, becomes ready exactly once in Resolve,
// and from then on keeps the root classes and the store in step with every
// change.
type Controller struct {
	store  Store
	signal SystemSignal
	root   *ClassList

	once   sync.Once
	mu     sync.Mutex
	pref   Theme
	source Source
	ready  bool
}

// NewController creates an unready controller. A nil root gets a fresh
// ClassList.
func NewController(store Store, signal SystemSignal, root *ClassList) *Controller {
	if root == nil {
		root = NewClassList()
	}
	return &Controller{
		store:  store,
		signal: signal,
		root:   root,
		pref:   Light,
		source: SourceFallback,
	}
}

// Resolve determines the initial preference: a persisted record wins,
// otherwise the system signal decides, otherwise Light. It marks the
// controller ready and applies the result. Only the first call does any
// work; later calls return the current preference.
func (c *Controller) Resolve(ctx context.Context) Theme {
	c.once.Do(func() {
		pref, source := c.lookup(ctx)

		c.mu.Lock()
		c.pref, c.source = pref, source
		c.ready = true
		c.mu.Unlock()

		metrics.ResolutionsTotal.WithLabelValues(string(source)).Inc()
		c.apply(ctx)
	})
	return c.Preference()
}

func (c *Controller) lookup(ctx context.Context) (Theme, Source) {
	if c.store != nil {
		t, ok, err := c.store.Get(ctx)
		switch {
		case err != nil:
			metrics.PreferenceErrorsTotal.WithLabelValues("get").Inc()
			log.Printf("theme: read stored preference: %v (falling back to system)", err)
		case ok:
			return t, SourceStored
		}
	}

	if c.signal == nil {
		return Light, SourceFallback
	}
	dark, err := c.signal.PrefersDark(ctx)
	if err != nil {
		return Light, SourceFallback
	}
	if dark {
		return Dark, SourceSystem
	}
	return Light, SourceSystem
}

// Toggle flips the preference and applies it. It does nothing until the
// controller is ready.
func (c *Controller) Toggle(ctx context.Context) Theme {
	c.mu.Lock()
	if !c.ready {
		pref := c.pref
		c.mu.Unlock()
		return pref
	}
	c.pref = c.pref.Opposite()
	c.source = SourceUser
	pref := c.pref
	c.mu.Unlock()

	metrics.TogglesTotal.WithLabelValues(string(pref)).Inc()
	c.apply(ctx)
	return pref
}

// Set replaces the preference with an explicit choice. Like Toggle it has no
// effect before Resolve. Anything but Light or Dark is rejected with
// ErrInvalidTheme and leaves the controller unchanged.
func (c *Controller) Set(ctx context.Context, t Theme) (Theme, error) {
	if !t.Valid() {
		return c.Preference(), ErrInvalidTheme
	}
	c.mu.Lock()
	if !c.ready {
		pref := c.pref
		c.mu.Unlock()
		return pref, nil
	}
	c.pref = t
	c.source = SourceUser
	c.mu.Unlock()

	c.apply(ctx)
	return t, nil
}

// apply writes the current preference through to the root classes and the
// store. A Light fallback chosen only because nothing was known is not
// persisted, so a later visit that can read the system signal still honors
// it. Store failures are logged; the root classes are still updated.
func (c *Controller) apply(ctx context.Context) {
	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return
	}
	pref, source := c.pref, c.source
	c.root.Set(pref)
	c.mu.Unlock()

	if c.store == nil || source == SourceFallback {
		return
	}
	if err := c.store.Set(ctx, pref); err != nil {
		metrics.PreferenceErrorsTotal.WithLabelValues("set").Inc()
		log.Printf("theme: persist preference %q: %v", pref, err)
	}
}

// Ready reports whether Resolve has completed.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Preference returns the active theme. Before Resolve this is the Light
// placeholder and must not be rendered.
func (c *Controller) Preference() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pref
}

// Source reports where the active preference came from.
func (c *Controller) Source() Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Fallback reports whether the active preference is the unpersisted Light
// default. Pages rendered in this state let the browser settle the theme from
// its own color-scheme media query.
func (c *Controller) Fallback() bool { return c.Source() == SourceFallback }

// Root returns the root element classes maintained by the controller.
func (c *Controller) Root() *ClassList { return c.root }
