package wailsapp

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/takma/takma-desktop/internal/constants"
	"github.com/takma/takma-desktop/internal/deeplink"
	"github.com/takma/takma-desktop/internal/logging"
)

// inbound is one launch forwarded to the running instance.
type inbound struct {
	argv []string // full argument vector, argv[0] is the executable
	url  string   // set for URLs delivered by the OS directly (macOS)
}

// Dispatcher routes launches that reach an already running instance to the
// UI layer.
//
// Launches are queued on a buffered channel and consumed by one goroutine,
// so the framework thread that delivers them never blocks on the UI. Launches
// that arrive before Start wait in the queue. Links received before the UI is
// ready are held by the loop and emitted, in arrival order, once MarkReady is
// called; they never go to the startup store.
type Dispatcher struct {
	store *deeplink.PendingStore
	log   *logging.Logger
	inbox chan inbound

	mu        sync.Mutex
	started   bool
	readyC    chan struct{}
	readyOnce sync.Once
	stopC     chan struct{}
	wg        sync.WaitGroup
}

// NewDispatcher creates a dispatcher. store receives URLs the OS opens before
// any window exists.
func NewDispatcher(store *deeplink.PendingStore, log *logging.Logger) *Dispatcher {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Dispatcher{
		store:  store,
		log:    log.Component("dispatch"),
		inbox:  make(chan inbound, constants.LaunchQueueSize),
		readyC: make(chan struct{}),
		stopC:  make(chan struct{}),
	}
}

// SecondInstance is the Wails single-instance callback. Wails passes the new
// process's arguments without the executable path; it is restored here so
// the argument vector has the usual shape.
func (d *Dispatcher) SecondInstance(data options.SecondInstanceData) {
	argv := make([]string, 0, len(data.Args)+1)
	argv = append(argv, executableName())
	argv = append(argv, data.Args...)
	d.log.Info().Strs("args", data.Args).Msg("Another instance was launched, forwarding its arguments")
	d.Launch(argv)
}

// Launch queues a forwarded argument vector.
func (d *Dispatcher) Launch(argv []string) {
	d.enqueue(inbound{argv: argv})
}

// URLOpened handles a URL the OS hands to the running process directly.
// A URL that arrives before the window exists is the launch URL and is
// stored like a startup link; later ones are dispatched like a re-launch.
func (d *Dispatcher) URLOpened(url string) {
	d.mu.Lock()
	started := d.started
	d.mu.Unlock()

	if !started {
		if deeplink.HasScheme(url) {
			d.store.Set(url)
			d.log.Info().Str("url", url).Msg("Deep link opened at launch, stored as pending")
		}
		return
	}
	d.enqueue(inbound{url: url})
}

func (d *Dispatcher) enqueue(msg inbound) {
	select {
	case d.inbox <- msg:
	default:
		d.log.Warn().Strs("args", msg.argv).Str("url", msg.url).Msg("Launch queue full, dropping launch")
	}
}

// Start begins delivering queued launches to fe. A second Start is ignored.
func (d *Dispatcher) Start(fe Frontend) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		d.log.Warn().Msg("Dispatcher already started, ignoring duplicate Start()")
		return
	}
	d.started = true
	d.wg.Add(1)
	go d.loop(fe)
}

// MarkReady records that the UI layer is listening for events and releases
// any links held until then. Safe to call more than once.
func (d *Dispatcher) MarkReady() {
	d.readyOnce.Do(func() { close(d.readyC) })
}

// Stop ends delivery and waits for the loop to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return
	}
	d.started = false
	d.mu.Unlock()

	close(d.stopC)
	d.wg.Wait()
}

func (d *Dispatcher) loop(fe Frontend) {
	defer d.wg.Done()

	readyC := d.readyC
	var held []string

	for {
		select {
		case msg := <-d.inbox:
			link, ok := candidate(msg)
			if !ok {
				d.log.Info().Msg("Second launch carried no arguments, nothing to forward")
				continue
			}
			fe.Focus()
			if readyC != nil {
				held = append(held, link)
				d.log.Info().Str("link", link).Msg("UI not ready, holding deep link")
				continue
			}
			d.emit(fe, link)
		case <-readyC:
			readyC = nil
			for _, link := range held {
				d.emit(fe, link)
			}
			held = nil
		case <-d.stopC:
			if len(held) > 0 {
				d.log.Warn().Strs("links", held).Msg("Shutting down before UI was ready, deep links dropped")
			}
			return
		}
	}
}

func (d *Dispatcher) emit(fe Frontend, link string) {
	fe.Emit(constants.EventDeepLinkReceived, link)
	d.log.Info().Str("link", link).Msg("Forwarded deep link to UI")
}

func candidate(msg inbound) (string, bool) {
	if msg.url != "" {
		return msg.url, true
	}
	return deeplink.Candidate(msg.argv)
}

func executableName() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	return filepath.Base(os.Args[0])
}
