package service

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/atna/internal/metrics"
	"github.com/persistorai/atna/internal/models"
)

// Renderer renders a single request. *MessageService implements it.
type Renderer interface {
	Render(ctx context.Context, req *models.MessageRequest) ([]byte, error)
}

// EmitWorker buffers requests and renders them to a sink via a single worker
// goroutine, so documents reach the sink in submission order.
type EmitWorker struct {
	renderer Renderer
	sink     io.Writer
	log      *logrus.Logger
	jobs     chan *models.MessageRequest
}

// NewEmitWorker creates an EmitWorker with the given queue capacity.
func NewEmitWorker(renderer Renderer, sink io.Writer, log *logrus.Logger, queueSize int) *EmitWorker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &EmitWorker{
		renderer: renderer,
		sink:     sink,
		log:      log,
		jobs:     make(chan *models.MessageRequest, queueSize),
	}
}

// Enqueue adds a request. Non-blocking; drops the request if the queue is full.
func (w *EmitWorker) Enqueue(req *models.MessageRequest) bool {
	select {
	case w.jobs <- req:
		metrics.QueueDepth.Set(float64(len(w.jobs)))
		return true
	default:
		w.log.WithField("event", req.Kind).Warn("emit queue full, dropping request")
		return false
	}
}

// Submit adds a request, waiting for queue space until ctx is done.
func (w *EmitWorker) Submit(ctx context.Context, req *models.MessageRequest) error {
	select {
	case w.jobs <- req:
		metrics.QueueDepth.Set(float64(len(w.jobs)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes requests until the context is cancelled, then drains remaining requests.
func (w *EmitWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case req := <-w.jobs:
			w.process(req)
		}
	}
}

func (w *EmitWorker) drain() {
	for {
		select {
		case req := <-w.jobs:
			w.process(req)
		default:
			return
		}
	}
}

func (w *EmitWorker) process(req *models.MessageRequest) {
	metrics.QueueDepth.Set(float64(len(w.jobs)))

	doc, err := w.renderer.Render(context.Background(), req)
	if err != nil {
		w.log.WithError(err).WithField("event", req.Kind).Warn("emit render failed")
		return
	}

	if _, err := w.sink.Write(append(doc, '\n')); err != nil {
		w.log.WithError(err).Warn("emit write failed")
	}
}
