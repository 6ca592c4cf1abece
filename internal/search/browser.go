package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/logging"
)

// hideWebdriver runs before any page script so navigator.webdriver reads as
// undefined, as it does in a browser driven by a person.
const hideWebdriver = `Object.defineProperty(navigator, 'webdriver', { get: () => undefined })`

// Searcher submits a query and returns the visible result text.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Browser runs searches in Chrome via the DevTools protocol.
//
// Browser is safe for concurrent use. Each Search gets its own session.
type Browser struct {
	opts   Options
	logger *zap.Logger
	delay  func(min, max time.Duration) time.Duration

	mu       sync.Mutex
	sessions map[*Session]struct{}
	closed   bool
}

// NewBrowser returns a Browser. Zero-valued options fall back to defaults.
func NewBrowser(opts Options, logger *zap.Logger) *Browser {
	return &Browser{
		opts:     opts.withDefaults(),
		logger:   logging.OrNop(logger),
		delay:    jitter,
		sessions: make(map[*Session]struct{}),
	}
}

// Options returns the effective options.
func (b *Browser) Options() Options {
	return b.opts
}

// Search opens a session, submits query, and returns at most
// Options.ResultLimit characters of result text. The session is closed
// before Search returns.
func (b *Browser) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	s, err := b.Open(ctx)
	if err != nil {
		return "", err
	}
	defer s.Close()

	text, err := s.Query(ctx, query)
	if err != nil {
		return "", err
	}
	return Truncate(text, b.opts.ResultLimit), nil
}

// Open launches a new browser session. The caller must Close it.
func (b *Browser) Open(ctx context.Context) (*Session, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	b.mu.Unlock()

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.WithoutCancel(ctx), b.allocatorOptions()...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		browser: b,
		ctx:     browserCtx,
		cancel: func() {
			browserCancel()
			allocCancel()
		},
	}

	// Running with no actions starts the browser process.
	if err := chromedp.Run(browserCtx); err != nil {
		s.cancel()
		return nil, &AutomationSessionError{Stage: StageLaunch, Err: err}
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		s.cancel()
		return nil, ErrClosed
	}
	b.sessions[s] = struct{}{}
	b.mu.Unlock()

	b.logger.Debug("browser session opened", zap.Bool("headless", b.opts.Headless))
	return s, nil
}

// Close closes every open session and makes further Open calls fail with
// ErrClosed. It is safe to call more than once.
func (b *Browser) Close() error {
	b.mu.Lock()
	b.closed = true
	open := make([]*Session, 0, len(b.sessions))
	for s := range b.sessions {
		open = append(open, s)
	}
	b.mu.Unlock()

	var firstErr error
	for _, s := range open {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// OpenSessions returns the number of sessions not yet closed.
func (b *Browser) OpenSessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *Browser) forget(s *Session) {
	b.mu.Lock()
	delete(b.sessions, s)
	b.mu.Unlock()
}

func (b *Browser) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", b.opts.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("enable-automation", false),
		chromedp.Flag("disable-gpu", b.opts.Headless),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(b.opts.UserAgent))
	}
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}
	return opts
}

// Session is one running browser instance.
type Session struct {
	browser *Browser
	ctx     context.Context
	cancel  func()

	once     sync.Once
	closeErr error
}

// Query navigates to the search engine, submits query and returns the full
// visible text of the result page.
func (s *Session) Query(ctx context.Context, query string) (string, error) {
	opts := s.browser.opts

	runCtx, cancel := context.WithTimeout(s.ctx, opts.Timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(hideWebdriver).Do(ctx)
			return err
		}),
		chromedp.Navigate(opts.URL),
	)
	if err != nil {
		return "", &AutomationSessionError{Stage: StageNavigate, Err: err}
	}

	err = chromedp.Run(runCtx,
		chromedp.Sleep(s.browser.delay(opts.SettleMin, opts.SettleMax)),
		chromedp.WaitVisible(opts.QuerySelector, chromedp.ByQuery),
		chromedp.SendKeys(opts.QuerySelector, query+kb.Enter, chromedp.ByQuery),
		chromedp.Sleep(s.browser.delay(opts.ResultsMin, opts.ResultsMax)),
	)
	if err != nil {
		return "", &AutomationSessionError{Stage: StageQuery, Err: err}
	}

	var doc string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &doc, chromedp.ByQuery)); err != nil {
		return "", &AutomationSessionError{Stage: StageExtract, Err: err}
	}

	text, err := VisibleText(doc)
	if err != nil {
		return "", &AutomationSessionError{Stage: StageExtract, Err: err}
	}

	s.browser.logger.Debug("search finished", zap.String("query", query), zap.Int("chars", len(text)))
	return text, nil
}

// Close shuts the browser down. It is safe to call more than once.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.closeErr = chromedp.Cancel(s.ctx)
		s.cancel()
		s.browser.forget(s)
		s.browser.logger.Debug("browser session closed")
	})
	return s.closeErr
}
