package router

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Change describes a back stack mutation reported to listeners.
type Change struct {
	Op   string // "start", "navigate", "pop" or "popTo"
	From *Entry // Previous top entry, nil on start
	To   Entry  // New top entry
}

// DestinationListener is called after every change of the visible entry.
type DestinationListener func(change Change)

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for navigation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Router owns the route table and the back stack.
//
// Routes are registered first, then Start pushes the start route. After that
// the route table is read-only and the stack always holds at least one entry.
// All methods are safe for concurrent use; listeners run after the lock is released.
type Router struct {
	mu         sync.Mutex
	routes     map[string]*Route
	order      []string
	stack      *Stack
	started    bool
	listeners  []DestinationListener
	generation atomic.Uint64
	logger     *slog.Logger
}

// New creates a new Router.
func New(opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]*Route),
		stack:  NewStack(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a route to the route table. fn must not be nil.
func (r *Router) Register(pattern string, fn RenderFunc) error {
	route, err := ParseRoute(pattern)
	if err != nil {
		return newRouteError("register", pattern, err)
	}
	if fn == nil {
		return newRouteError("register", pattern, ErrNilRender)
	}
	route.render = fn

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return newRouteError("register", pattern, ErrAlreadyStarted)
	}
	if _, exists := r.routes[pattern]; exists {
		return newRouteError("register", pattern, ErrDuplicateRoute)
	}

	r.routes[pattern] = route
	r.order = append(r.order, pattern)
	return nil
}

// OnDestinationChanged adds a listener for changes of the visible entry.
func (r *Router) OnDestinationChanged(fn DestinationListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Start pushes the start route with no parameters. It must be called exactly once.
func (r *Router) Start(pattern string) error {
	r.mu.Lock()

	if r.started {
		r.mu.Unlock()
		return newRouteError("start", pattern, ErrAlreadyStarted)
	}
	route, ok := r.routes[pattern]
	if !ok {
		r.mu.Unlock()
		return newRouteError("start", pattern, ErrUnknownRoute)
	}

	entry := r.push(route, route.resolve(nil))
	r.started = true
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.notify(listeners, Change{Op: "start", To: entry})
	return nil
}

// Navigate pushes a new entry for pattern with the given parameters.
// Absent or blank slot values resolve to EmptyValue.
func (r *Router) Navigate(pattern string, params Params) error {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		return newRouteError("navigate", pattern, ErrNotStarted)
	}
	route, ok := r.routes[pattern]
	if !ok {
		r.mu.Unlock()
		return newRouteError("navigate", pattern, ErrUnknownRoute)
	}

	from := r.stack.Peek().clone()
	entry := r.push(route, route.resolve(params))
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.notify(listeners, Change{Op: "navigate", From: &from, To: entry})
	return nil
}

// NavigateTo resolves a concrete path such as "SecondScreen/hi" against the
// registered patterns and pushes the match. Literal-only routes win over
// routes with slots; otherwise registration order decides.
func (r *Router) NavigateTo(path string) error {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		return newRouteError("navigate", path, ErrNotStarted)
	}

	route, params, ok := r.match(path)
	if !ok {
		r.mu.Unlock()
		return newRouteError("navigate", path, ErrUnknownRoute)
	}

	from := r.stack.Peek().clone()
	entry := r.push(route, params)
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.notify(listeners, Change{Op: "navigate", From: &from, To: entry})
	return nil
}

// Pop removes the top entry. The start entry is never popped: popping a
// single-entry stack fails with ErrEmptyStack.
func (r *Router) Pop() error {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		return newRouteError("pop", "", ErrNotStarted)
	}
	if r.stack.Len() <= 1 {
		r.mu.Unlock()
		return newRouteError("pop", "", ErrEmptyStack)
	}

	from := r.stack.Pop().clone()
	to := r.stack.Peek().clone()
	depth := r.stack.Len()
	r.generation.Inc()
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.logger.Debug("Popped back stack", "from", from.Path, "to", to.Path, "depth", depth)
	r.notify(listeners, Change{Op: "pop", From: &from, To: to})
	return nil
}

// PopTo truncates the stack down to the nearest entry whose pattern is
// target. With inclusive the target entry is removed as well.
//
// It reports whether anything was popped. A target not on the stack is a
// no-op. Removing every entry fails with ErrEmptyStack and leaves the stack unchanged.
func (r *Router) PopTo(target string, inclusive bool) (bool, error) {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		return false, newRouteError("popTo", target, ErrNotStarted)
	}

	idx := r.stack.LastIndexOf(target)
	if idx < 0 {
		r.mu.Unlock()
		r.logger.Debug("Pop target not on back stack", "target", target)
		return false, nil
	}

	keep := idx + 1
	if inclusive {
		keep = idx
	}
	if keep == 0 {
		r.mu.Unlock()
		return false, newRouteError("popTo", target, ErrEmptyStack)
	}
	if keep == r.stack.Len() {
		r.mu.Unlock()
		return false, nil
	}

	from := r.stack.Peek().clone()
	r.stack.Truncate(keep)
	to := r.stack.Peek().clone()
	r.generation.Inc()
	listeners := r.snapshotListeners()
	r.mu.Unlock()

	r.logger.Debug("Popped back stack to route", "target", target, "inclusive", inclusive, "to", to.Path)
	r.notify(listeners, Change{Op: "popTo", From: &from, To: to})
	return true, nil
}

// Current returns a copy of the visible entry.
func (r *Router) Current() (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return Entry{}, newRouteError("current", "", ErrNotStarted)
	}
	return r.stack.Peek().clone(), nil
}

// Render invokes the render callback of the visible entry with its parameters.
func (r *Router) Render() (any, error) {
	r.mu.Lock()

	if !r.started {
		r.mu.Unlock()
		return nil, newRouteError("render", "", ErrNotStarted)
	}
	top := r.stack.Peek()
	route := r.routes[top.Pattern]
	params := top.Params.Clone()
	r.mu.Unlock()

	return route.render(params), nil
}

// SetResume stores frontend state on the visible entry. It is handed back
// through Entry.Resume when the entry becomes visible again.
func (r *Router) SetResume(state any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return newRouteError("setResume", "", ErrNotStarted)
	}
	r.stack.Peek().Resume = state
	return nil
}

// Entries returns copies of the back stack entries, bottom first.
func (r *Router) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Entries()
}

// Depth returns the number of entries on the back stack.
func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Len()
}

// Started reports whether Start has been called.
func (r *Router) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// Generation increases with every back stack mutation.
func (r *Router) Generation() uint64 {
	return r.generation.Load()
}

// Routes returns the registered routes sorted by pattern.
func (r *Router) Routes() []*Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Route, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].pattern < out[j].pattern
	})
	return out
}

// match must be called with mu held.
func (r *Router) match(path string) (*Route, Params, bool) {
	if route, ok := r.routes[path]; ok && len(route.slots) == 0 {
		return route, Params{}, true
	}
	for _, pattern := range r.order {
		route := r.routes[pattern]
		if params, ok := route.match(path); ok {
			return route, params, true
		}
	}
	return nil, nil, false
}

// push must be called with mu held.
func (r *Router) push(route *Route, params Params) Entry {
	entry := Entry{
		ID:      uuid.NewString(),
		Pattern: route.pattern,
		Path:    route.path(params),
		Params:  params,
	}
	r.stack.Push(entry)
	r.generation.Inc()

	r.logger.Debug("Pushed back stack entry", "route", entry.Pattern, "path", entry.Path, "depth", r.stack.Len())
	return entry.clone()
}

// snapshotListeners must be called with mu held.
func (r *Router) snapshotListeners() []DestinationListener {
	out := make([]DestinationListener, len(r.listeners))
	copy(out, r.listeners)
	return out
}

func (r *Router) notify(listeners []DestinationListener, change Change) {
	for _, fn := range listeners {
		fn(change)
	}
}
