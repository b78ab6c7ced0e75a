// Package service builds and renders audit messages between the CLI and the atna package.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/atna/atna"
	"github.com/persistorai/atna/internal/config"
	"github.com/persistorai/atna/internal/metrics"
	"github.com/persistorai/atna/internal/models"
	"github.com/persistorai/atna/xmltree"
)

// MessageService turns MessageRequests into rendered audit messages. It holds
// no mutable state and is safe for concurrent use.
type MessageService struct {
	systemName string
	hostname   string
	format     models.Format
	render     xmltree.RenderOptions
	workers    int
	log        *logrus.Logger
}

// NewMessageService creates a MessageService from a validated config.
func NewMessageService(cfg *config.Config, log *logrus.Logger) *MessageService {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &MessageService{
		systemName: cfg.SystemName,
		hostname:   cfg.Hostname,
		format:     cfg.Format,
		render:     cfg.RenderOptions(),
		workers:    workers,
		log:        log,
	}
}

// Format returns the output format used by Render.
func (s *MessageService) Format() models.Format { return s.format }

// Build fills defaults into req, validates it and assembles the message.
// req is modified in place.
func (s *MessageService) Build(req *models.MessageRequest) (*atna.AuditMessage, error) {
	if req.SystemName == "" {
		req.SystemName = s.systemName
	}
	if req.Hostname == "" {
		req.Hostname = s.hostname
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validating request: %w", err)
	}

	outcome, err := req.OutcomeIndicator()
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case models.KindUserLogin:
		return atna.NewUserLoginMessage(outcome, req.SystemName, req.Hostname, req.Username, req.UserRole, req.UserRoleCode)
	case models.KindAppActivity:
		return atna.NewAppActivityMessage(!req.Stop, req.SystemName, req.Hostname, req.Username)
	case models.KindAuditLogUsed:
		var detail *atna.ValuePair
		if req.Detail != nil {
			detail = atna.NewValuePair(req.Detail.Type, []byte(req.Detail.Value))
		}
		return atna.NewAuditLogUsedMessage(outcome, req.SystemName, req.Hostname, req.Username,
			req.UserRole, req.UserRoleCode, req.AuditLogURI, detail)
	case models.KindNodeAuthentication:
		return atna.NewNodeAuthenticationMessage(req.NodeIP, req.SystemName, req.Hostname, outcome)
	}

	return nil, fmt.Errorf("%w %q", models.ErrUnknownKind, req.Kind)
}

// Encode renders a built message in the service's format.
func (s *MessageService) Encode(msg atna.Projector) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.RenderDuration.WithLabelValues(string(s.format)).Observe(time.Since(start).Seconds())
	}()

	switch s.format {
	case models.FormatJSON:
		return atna.RenderJSON(msg, false)
	case models.FormatJCS:
		return atna.RenderJSON(msg, true)
	default:
		doc, err := atna.RenderXML(msg, s.render)
		if err != nil {
			return nil, err
		}
		return []byte(doc), nil
	}
}

// Render builds and encodes one message. req is modified in place.
func (s *MessageService) Render(ctx context.Context, req *models.MessageRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg, err := s.Build(req)
	if err != nil {
		s.fail(req, err)
		return nil, err
	}

	out, err := s.Encode(msg)
	if err != nil {
		s.fail(req, err)
		return nil, fmt.Errorf("rendering %s: %w", req.Kind, err)
	}

	metrics.MessagesBuilt.WithLabelValues(string(req.Kind), string(s.format)).Inc()
	s.log.WithFields(logrus.Fields{
		"request_id": req.ID,
		"event":      req.Kind,
		"format":     s.format,
		"bytes":      len(out),
	}).Debug("atna.build")

	return out, nil
}

// Batch renders reqs concurrently with at most the configured number of
// workers. Results are returned in input order. The first failure cancels
// the remaining requests and is returned.
func (s *MessageService) Batch(ctx context.Context, reqs []models.MessageRequest) ([][]byte, error) {
	out := make([][]byte, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range reqs {
		req := reqs[i]
		g.Go(func() error {
			metrics.BatchInFlight.Inc()
			defer metrics.BatchInFlight.Dec()

			doc, err := s.Render(gctx, &req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *MessageService) fail(req *models.MessageRequest, err error) {
	metrics.MessageFailures.WithLabelValues(string(req.Kind)).Inc()
	s.log.WithFields(logrus.Fields{
		"request_id": req.ID,
		"event":      req.Kind,
		"error":      err.Error(),
	}).Warn("atna.build failed")
}
