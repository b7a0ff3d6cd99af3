package r2pipe

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/meme/r2pipe/internal/errors"
)

// QuitCommand is the sentinel that shuts a worker down cleanly.
const QuitCommand = "q"

// workerQueueDepth bounds each worker's command and reply channels. A full
// channel applies per-worker backpressure to the sender.
const workerQueueDepth = 16

// Callback receives asynchronous results from pool workers. It is shared
// across all workers and invoked from transient goroutines, possibly
// concurrently, so it must be safe to call from arbitrary goroutines.
// Delivery order relative to Recv is unspecified: a callback may observe a
// result before or after Recv returns the same data.
type Callback func(id int, result string)

// Worker is the handle to one pool member: a background goroutine that owns
// a private Pipe and relays commands and replies over channels. The Pipe is
// never shared; only the goroutine touches it.
type Worker struct {
	// ID is the worker's position in the originating request list.
	ID int

	log     *slog.Logger
	cmds    chan string
	replies chan string
	done    chan struct{}
	err     error // written before done is closed
}

// Threads spawns one worker per target name, each with its own radare2
// process. names and opts must have equal length (a nil entry in opts means
// defaults); otherwise ArgumentMismatchError is returned before any worker
// starts. The optional callback additionally receives every result on a
// detached goroutine.
//
// Worker construction failures are not synchronous: they terminate the
// worker's goroutine and are retrievable via Join, while Send and Recv
// observe a closed worker.
func Threads(names []string, opts []*SpawnOptions, cb Callback, options ...Option) ([]*Worker, error) {
	if len(names) != len(opts) {
		return nil, &errors.ArgumentMismatchError{Names: len(names), Opts: len(opts)}
	}

	o := applyOptions(options)

	workers := make([]*Worker, 0, len(names))

	for i := range names {
		w := &Worker{
			ID:      i,
			log:     o.logger.With("component", "worker", "worker_id", i),
			cmds:    make(chan string, workerQueueDepth),
			replies: make(chan string, workerQueueDepth),
			done:    make(chan struct{}),
		}

		go w.run(names[i], opts[i].clone(), cb)

		workers = append(workers, w)
	}

	return workers, nil
}

// run is the worker loop: spawn the private pipe, then serve commands until
// the quit sentinel, a channel failure, or a transport error.
func (w *Worker) run(name string, opt *SpawnOptions, cb Callback) {
	defer close(w.done)
	defer close(w.replies)

	ctx := context.Background()

	p, err := Spawn(ctx, name, WithLogger(w.log), WithSpawnOptions(opt))
	if err != nil {
		w.log.Debug("Worker pipe construction failed", "error", err)
		w.err = err

		return
	}
	defer p.Close()

	w.log.Debug("Worker started", "target", name)

	for {
		cmd := <-w.cmds
		if cmd == QuitCommand {
			w.log.Debug("Worker received quit sentinel")

			return
		}

		v, err := p.Cmdj(ctx, cmd)
		if err != nil {
			w.log.Debug("Worker command failed", "cmd", cmd, "error", err)
			w.err = err

			return
		}

		res, err := json.Marshal(v)
		if err != nil {
			w.err = err

			return
		}

		out := string(res)
		w.replies <- out

		if cb != nil {
			// Fire-and-forget: the pool never joins callback goroutines.
			go cb(w.ID, out)
		}
	}
}

// Send enqueues a command for the worker. Blocks while the worker's command
// queue is full; fails with ErrWorkerClosed once the worker goroutine has
// terminated.
func (w *Worker) Send(cmd string) error {
	select {
	case <-w.done:
		return errors.ErrWorkerClosed
	default:
	}

	select {
	case w.cmds <- cmd:
		return nil
	case <-w.done:
		return errors.ErrWorkerClosed
	}
}

// Recv returns the next reply. Blocking mode waits indefinitely;
// non-blocking mode fails with ErrNoReply when nothing is queued. Once the
// worker has terminated and all queued replies are drained, Recv fails with
// ErrWorkerClosed.
func (w *Worker) Recv(block bool) (string, error) {
	if block {
		res, ok := <-w.replies
		if !ok {
			return "", errors.ErrWorkerClosed
		}

		return res, nil
	}

	select {
	case res, ok := <-w.replies:
		if !ok {
			return "", errors.ErrWorkerClosed
		}

		return res, nil
	default:
		return "", errors.ErrNoReply
	}
}

// Join blocks until the worker goroutine has terminated and returns its
// terminal error: nil after a clean quit, the construction or transport
// error otherwise.
func (w *Worker) Join() error {
	<-w.done

	return w.err
}
