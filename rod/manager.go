package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/watchapi"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the number of pages a browser serves before it is replaced.
const DefaultMaxPages = 200

// BrowserManager owns the headless browser and replaces it after a fixed
// number of pages. The collection page is re-rendered on every API request
// and Chrome's memory baseline grows with every page it serves.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int64
	maxPages int64
	closed   bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages served before the browser is replaced.
// Non-positive values keep DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	browser, l, err := launch()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// Page opens a blank page, first replacing the browser if it has served
// maxPages pages. If a replacement cannot be launched the current browser
// keeps serving.
func (bm *BrowserManager) Page() (*rod.Page, error) {
	bm.mu.Lock()
	if bm.closed {
		bm.mu.Unlock()
		return nil, watchapi.Errorf(watchapi.EINVALID, "browser is closed")
	}
	if bm.served >= bm.maxPages {
		bm.replace()
	}
	bm.served++
	browser := bm.browser
	bm.mu.Unlock()

	return browser.Page(proto.TargetCreateTarget{})
}

// Served returns the number of pages opened on the current browser.
func (bm *BrowserManager) Served() int64 {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.served
}

// Close shuts the browser down. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return shutdown(bm.browser, bm.launcher)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil || bm.closed {
		return 0
	}
	return bm.launcher.PID()
}

// replace swaps in a fresh browser. Must be called with mu held.
func (bm *BrowserManager) replace() {
	browser, l, err := launch()
	if err != nil {
		return
	}
	_ = shutdown(bm.browser, bm.launcher)
	bm.browser, bm.launcher, bm.served = browser, l, 0
}

func launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

func shutdown(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}
