package jobs

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/quiverapp/quiver/api/internal/model"
)

// CheckStore is the bookmark access the link checker needs
type CheckStore interface {
	ListDue(ctx context.Context, before time.Time) ([]*model.Bookmark, error)
	RecordCheck(ctx context.Context, id string, status model.LinkStatus, statusCode int) error
	Get(ctx context.Context, id string) (*model.Bookmark, error)
}

// LinkChecker periodically verifies that bookmarked URLs are still
// reachable, and serves on-demand checks enqueued by the API. Results are
// recorded on the bookmark's link check fields.
type LinkChecker struct {
	store    CheckStore
	client   *http.Client
	interval time.Duration

	queue   chan string
	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewLinkChecker creates a link checker. interval is the full-sweep period,
// timeout bounds each outbound request.
func NewLinkChecker(store CheckStore, interval, timeout time.Duration) *LinkChecker {
	if interval == 0 {
		interval = 6 * time.Hour
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &LinkChecker{
		store:    store,
		client:   &http.Client{Timeout: timeout},
		interval: interval,
		queue:    make(chan string, 256),
		stopCh:   make(chan struct{}),
	}
}

// Start begins the checker loop
func (c *LinkChecker) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	c.wg.Add(1)
	go c.run()
	slog.Info("link checker started", slog.Duration("interval", c.interval))
}

// Stop gracefully stops the checker loop
func (c *LinkChecker) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	close(c.stopCh)
	c.wg.Wait()
	slog.Info("link checker stopped")
}

// Enqueue requests an on-demand check of a single bookmark. It never
// blocks; when the queue is full the bookmark is left to the next sweep.
func (c *LinkChecker) Enqueue(id string) {
	select {
	case c.queue <- id:
	default:
		slog.Warn("link check queue full, deferring to sweep", slog.String("bookmark_id", id))
	}
}

func (c *LinkChecker) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case id := <-c.queue:
			c.checkOne(id)
		case <-ticker.C:
			c.sweep()
		case <-c.stopCh:
			return
		}
	}
}

// sweep checks every bookmark not verified within the sweep interval
func (c *LinkChecker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	due, err := c.store.ListDue(ctx, time.Now().Add(-c.interval))
	if err != nil {
		slog.Error("link check sweep failed", slog.String("error", err.Error()))
		return
	}

	for _, b := range due {
		select {
		case <-c.stopCh:
			return
		default:
		}
		c.check(ctx, b.ID, b.URL)
	}
}

func (c *LinkChecker) checkOne(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	b, err := c.store.Get(ctx, id)
	if err != nil {
		slog.Error("link check lookup failed", slog.String("bookmark_id", id), slog.String("error", err.Error()))
		return
	}
	c.check(ctx, b.ID, b.URL)
}

// check performs a HEAD request and records the outcome. Anything below 400
// counts as reachable; request errors and 4xx/5xx mark the link broken.
func (c *LinkChecker) check(ctx context.Context, id, url string) {
	status := model.LinkStatusOK
	code := 0

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		status = model.LinkStatusBroken
	} else {
		resp, err := c.client.Do(req)
		if err != nil {
			status = model.LinkStatusBroken
		} else {
			_ = resp.Body.Close()
			code = resp.StatusCode
			if resp.StatusCode >= 400 {
				status = model.LinkStatusBroken
			}
		}
	}

	if err := c.store.RecordCheck(ctx, id, status, code); err != nil {
		slog.Error("link check record failed", slog.String("bookmark_id", id), slog.String("error", err.Error()))
	}
}
