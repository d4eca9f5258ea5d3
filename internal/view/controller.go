package view

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/zhouzirui/z-blog/backend/internal/client"
)

// Controller drives the view machine. It is safe for concurrent use; a
// response that arrives after a newer Dispatch is dropped.
type Controller struct {
	src Source

	mu        sync.Mutex
	state     State
	cancel    context.CancelFunc
	listeners []func(State)

	startOnce sync.Once
}

// NewController returns a controller in the Initial state.
func NewController(src Source) *Controller {
	return &Controller{src: src}
}

// Subscribe registers fn to receive every state change, including loading states.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start performs the initial list load. Only the first call has any effect.
func (c *Controller) Start(ctx context.Context) State {
	started := false
	var s State
	c.startOnce.Do(func() {
		started = true
		s = c.Dispatch(ctx, NavigateToList{})
	})
	if !started {
		return c.State()
	}
	return s
}

// Dispatch applies action and blocks until its fetch has finished. The
// returned State is the controller's state afterwards, which may belong to a
// newer action if this one was superseded.
func (c *Controller) Dispatch(ctx context.Context, action Action) State {
	if c.State().Active == Initial {
		if _, ok := action.(NavigateToList); !ok {
			log.Printf("[view] ignoring %T before the first list load", action)
			return c.State()
		}
	}

	switch a := action.(type) {
	case NavigateToList:
		return c.showList(ctx)
	case NavigateToDetail:
		return c.showDetail(ctx, a.Identifier)
	default:
		log.Printf("[view] unknown action %T", action)
		return c.State()
	}
}

func (c *Controller) showList(ctx context.Context) State {
	gen, fetchCtx := c.begin(ctx, func(s *State) {
		s.Active = ListView
		s.List = ListPane{Placeholder: LoadingPosts}
		s.Detail = DetailPane{}
	})

	summaries, err := c.src.ListPosts(fetchCtx)

	return c.finish(gen, func(s *State) {
		if err != nil {
			log.Printf("[view] error fetching blog list: %v", err)
			s.List = ListPane{Error: fmt.Sprintf(listErrorFormat, err)}
			return
		}
		if len(summaries) == 0 {
			s.List = ListPane{Placeholder: NoPosts}
			return
		}
		rows := make([]Row, 0, len(summaries))
		for _, summary := range summaries {
			rows = append(rows, RowFor(summary))
		}
		s.List = ListPane{Rows: rows}
	})
}

func (c *Controller) showDetail(ctx context.Context, identifier string) State {
	gen, fetchCtx := c.begin(ctx, func(s *State) {
		s.Active = DetailView
		s.List.Error = ""
		s.Detail = DetailPane{Placeholder: LoadingDetail}
	})

	if identifier == "" {
		return c.finish(gen, func(s *State) {
			s.Detail = DetailPane{Error: NoIdentifier}
		})
	}

	found, err := c.src.GetPost(fetchCtx, identifier)

	return c.finish(gen, func(s *State) {
		if err != nil {
			log.Printf("[view] error fetching blog detail for identifier %q: %v", identifier, err)
			reason := err.Error()
			if errors.Is(err, client.ErrPostNotFound) {
				reason = PostNotFound
			}
			s.Detail = DetailPane{Error: fmt.Sprintf(detailErrorFormat, reason)}
			return
		}
		s.Detail = DetailPane{Article: ArticleFor(found)}
	})
}

// begin starts a new generation: the previous in-flight fetch is cancelled
// and the optimistic transition is published.
func (c *Controller) begin(ctx context.Context, mutate func(*State)) (uint64, context.Context) {
	fetchCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.state.Generation++
	gen := c.state.Generation
	mutate(&c.state)
	snapshot, listeners := c.state.clone(), c.listeners
	c.mu.Unlock()

	notify(listeners, snapshot)
	return gen, fetchCtx
}

// finish applies mutate only if gen is still the current generation.
func (c *Controller) finish(gen uint64, mutate func(*State)) State {
	c.mu.Lock()
	if gen != c.state.Generation {
		snapshot := c.state.clone()
		c.mu.Unlock()
		log.Printf("[view] dropping stale response for generation %d (current %d)", gen, snapshot.Generation)
		return snapshot
	}
	mutate(&c.state)
	c.cancel()
	c.cancel = nil
	snapshot, listeners := c.state.clone(), c.listeners
	c.mu.Unlock()

	notify(listeners, snapshot)
	return snapshot
}

func notify(listeners []func(State), s State) {
	for _, fn := range listeners {
		fn(s.clone())
	}
}
