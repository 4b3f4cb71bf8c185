package resume2pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RendererPool owns the single shared browser process and its isolated
// browsing context. Pages leased via AcquirePage must be returned with
// ReleasePage. Despite the name this is a single-instance cache, not a
// multi-instance pool: concurrent callers get independent pages but share
// one process, accepting process-level serialization for resource economy.
//
// Lifecycle: the browser is created lazily on first acquisition, torn down
// after the idle timeout elapses with no lease outstanding, and recreated
// transparently on the next acquisition. Shutdown is terminal.
type RendererPool struct {
	policy      NetworkPolicy
	idleTimeout time.Duration
	logger      *slog.Logger

	mu         sync.Mutex
	browser    *rod.Browser
	browserCtx *rod.Browser // incognito context scoped to this pool
	lnch       *launcher.Launcher
	idleTimer  *time.Timer
	leases     int
	closed     bool
}

// PoolOption configures a RendererPool.
type PoolOption func(*RendererPool)

// WithPoolIdleTimeout sets the idle teardown period. Zero disables idle
// teardown entirely.
func WithPoolIdleTimeout(d time.Duration) PoolOption {
	return func(p *RendererPool) {
		p.idleTimeout = d
	}
}

// WithPoolNetworkPolicy overrides the network policy applied to every page.
func WithPoolNetworkPolicy(np NetworkPolicy) PoolOption {
	return func(p *RendererPool) {
		p.policy = np
	}
}

// WithPoolLogger sets the logger for cleanup failures and lifecycle events.
func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(p *RendererPool) {
		p.logger = l
	}
}

// NewRendererPool creates a pool. No browser is launched until the first
// AcquirePage call.
func NewRendererPool(opts ...PoolOption) *RendererPool {
	p := &RendererPool{
		policy:      DefaultNetworkPolicy(),
		idleTimeout: defaultIdleTimeout,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AcquirePage leases an isolated page from the shared browser context,
// creating or recreating the browser as needed. The page is configured with
// the print viewport and the pool's network policy before it is handed out.
//
// Fails with ErrPoolClosed after Shutdown. A caller racing an in-progress
// shutdown blocks on the pool lock until shutdown completes, then fails
// fast on the closed flag rather than interleaving with teardown.
func (p *RendererPool) AcquirePage(ctx context.Context) (*rod.Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.ensureBrowserLocked(); err != nil {
		return nil, err
	}

	page, err := p.newPageLocked(ctx)
	if err != nil {
		// The process may have died between the liveness check and page
		// creation. Recreate once, transparently; a second failure surfaces.
		p.logger.Warn("renderer page creation failed, recreating browser", "error", err)
		p.teardownLocked()
		if err := p.ensureBrowserLocked(); err != nil {
			return nil, err
		}
		page, err = p.newPageLocked(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
		}
	}

	p.leases++
	p.resetIdleLocked()
	return page, nil
}

// ReleasePage returns a leased page. In-page state is cleared, the page is
// closed, and memory reclamation is requested best-effort. Cleanup failures
// are logged, never propagated: a successful render is never retroactively
// failed by post-render cleanup trouble.
func (p *RendererPool) ReleasePage(page *rod.Page) {
	p.mu.Lock()
	if p.leases > 0 {
		p.leases--
	}
	p.resetIdleLocked()
	p.mu.Unlock()

	if page == nil {
		return
	}

	if err := page.Navigate("about:blank"); err != nil {
		p.logger.Warn("clearing page state failed", "error", err)
	}
	if err := (proto.HeapProfilerCollectGarbage{}).Call(page); err != nil {
		p.logger.Debug("page garbage collection failed", "error", err)
	}
	if err := page.Close(); err != nil {
		p.logger.Warn("closing page failed", "error", err)
	}
}

// Shutdown tears down the context and browser, in that order. Idempotent
// and safe to call concurrently; subsequent AcquirePage calls fail with
// ErrPoolClosed.
func (p *RendererPool) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.idleTimer != nil {
		p.idleTimer.Stop()
		p.idleTimer = nil
	}

	return p.teardownLocked()
}

// ensureBrowserLocked launches the browser and its incognito context if
// absent, and verifies liveness if present. Caller holds p.mu.
func (p *RendererPool) ensureBrowserLocked() error {
	if p.browser != nil {
		// Cheap liveness probe. A dead process is recreated transparently;
		// callers never observe process death as an error.
		if _, err := (proto.BrowserGetVersion{}).Call(p.browser); err == nil {
			return nil
		}
		p.logger.Info("renderer process died, recreating")
		p.teardownLocked()
	}

	l := launcher.New().Headless(true)

	// Use a pre-installed browser if specified (Docker/containerized environments).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments.
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browserCtx, err := browser.Incognito()
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return fmt.Errorf("%w: creating browsing context: %v", ErrBrowserConnect, err)
	}

	p.browser = browser
	p.browserCtx = browserCtx
	p.lnch = l
	return nil
}

// newPageLocked creates a page in the pool's context with the print
// viewport and network policy applied. Caller holds p.mu.
func (p *RendererPool) newPageLocked(ctx context.Context) (*rod.Page, error) {
	page, err := p.browserCtx.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidthPx,
		Height:            viewportHeightPx,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = page.Close()
		return nil, err
	}

	p.policy.Apply(page)
	return page, nil
}

// teardownLocked closes context then browser and cleans up the launcher.
// Caller holds p.mu. Errors are joined and returned; the pool fields are
// cleared regardless.
func (p *RendererPool) teardownLocked() error {
	var errs []error

	if p.browserCtx != nil {
		if err := p.browserCtx.Close(); err != nil {
			errs = append(errs, err)
		}
		p.browserCtx = nil
	}
	if p.browser != nil {
		if err := p.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		p.browser = nil
	}
	if p.lnch != nil {
		p.lnch.Cleanup()
		p.lnch = nil
	}

	return errors.Join(errs...)
}

// resetIdleLocked restarts the idle teardown timer. Caller holds p.mu.
func (p *RendererPool) resetIdleLocked() {
	if p.idleTimeout <= 0 || p.closed {
		return
	}
	if p.idleTimer != nil {
		p.idleTimer.Stop()
	}
	p.idleTimer = time.AfterFunc(p.idleTimeout, p.idleExpire)
}

// idleExpire tears down the browser after an idle period with no leases
// outstanding. The pool remains usable: the next acquisition recreates the
// browser lazily.
func (p *RendererPool) idleExpire() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.leases > 0 || p.browser == nil {
		return
	}

	p.logger.Info("renderer idle timeout reached, releasing browser")
	if err := p.teardownLocked(); err != nil {
		p.logger.Warn("idle teardown failed", "error", err)
	}
}
