package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
)

// publisher is the slice of *amqp.Channel the handler needs, split out
// so tests can run without a broker.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// handler processes one delivery at a time (prefetch=1 guarantees that).
// Every delivery is settled: ack on success and on handled failures,
// reject without requeue only when even the failure response could not
// be published.
type handler struct {
	analyzer Analyzer
	analyses *services.AnalysisService
	pub      publisher
	timeout  time.Duration
	logger   *slog.Logger
}

// parseFailure is the reduced response for bodies that never became a
// request. It carries no ids because none could be read.
type parseFailure struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	Error           string `json:"error"`
	OriginalMessage string `json:"original_message"`
}

func (h *handler) handle(ctx context.Context, delivery amqp.Delivery) {
	var req models.GapAnalysisRequest

	// Last line of defense: a panic must not take the consume loop down
	// or leave the delivery un-acked until the connection dies.
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		h.logger.Error("request handling panicked",
			"panic", r, "correlation_id", req.CorrelationID)
		response := &models.GapAnalysisResponse{
			RequestID:     req.RequestID,
			CorrelationID: req.CorrelationID,
			Status:        models.StatusFailed,
			Message:       fmt.Sprintf("Processing failed: %v", r),
			Gaps:          []models.GapDetail{},
			Error:         fmt.Sprintf("%v", r),
		}
		if err := h.publishResponse(ctx, response); err != nil {
			// Could not even report the failure; hand the message back
			// to the broker without requeueing so it can dead-letter.
			h.logger.Error("failure response not published, rejecting delivery", "error", err)
			h.nack(delivery)
			return
		}
		h.ack(delivery)
	}()

	if err := json.Unmarshal(delivery.Body, &req); err != nil {
		h.logger.Error("discarding malformed request body", "error", err)
		h.publishParseFailure(ctx, delivery.Body, err)
		h.ack(delivery)
		return
	}

	log := h.logger.With("correlation_id", req.CorrelationID, "request_id", req.RequestID)
	log.Info("received gap analysis request", "paper_id", req.PaperID)

	opCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	response := h.analyzer.Analyze(opCtx, req)
	if response.Status == models.StatusFailed && isDuplicateCorrelation(response.Error) {
		if echo := h.duplicateResponse(ctx, req); echo != nil {
			response = echo
		}
	}

	if err := h.publishResponse(ctx, response); err != nil {
		log.Error("response not published", "status", response.Status, "error", err)
	} else {
		log.Info("published response", "status", response.Status, "valid_gaps", response.ValidGaps)
	}
	h.ack(delivery)
}

// isDuplicateCorrelation matches the Postgres unique-violation text for
// the correlation_id index. The upsert makes this unreachable in normal
// operation; it guards against racing deliveries of the same request.
func isDuplicateCorrelation(errText string) bool {
	return strings.Contains(errText, "duplicate key value violates unique constraint") &&
		strings.Contains(errText, "correlation_id")
}

// duplicateResponse loads the analysis that already owns the correlation
// id and echoes its counters, so a redelivered request still ends in a
// terminal response. Returns nil if the row cannot be loaded.
func (h *handler) duplicateResponse(ctx context.Context, req models.GapAnalysisRequest) *models.GapAnalysisResponse {
	existing, err := h.analyses.GetByCorrelation(ctx, req.CorrelationID)
	if err != nil {
		h.logger.Error("duplicate correlation id but existing analysis not found",
			"correlation_id", req.CorrelationID, "error", err)
		return nil
	}
	h.logger.Info("duplicate request, echoing existing analysis",
		"correlation_id", req.CorrelationID, "analysis_id", existing.ID)
	return &models.GapAnalysisResponse{
		RequestID:     req.RequestID,
		CorrelationID: req.CorrelationID,
		Status:        models.StatusCompleted,
		Message:       "Analysis already exists (duplicate request handled)",
		GapAnalysisID: existing.ID.String(),
		TotalGaps:     existing.TotalGapsIdentified,
		ValidGaps:     existing.ValidGapsCount,
		Gaps:          []models.GapDetail{},
	}
}

func (h *handler) publishResponse(ctx context.Context, response *models.GapAnalysisResponse) error {
	body, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	return h.pub.PublishWithContext(ctx, responseExchange, responseRoutingKey, false, false, amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		CorrelationId: response.CorrelationID,
		Headers: amqp.Table{
			"request_id": response.RequestID,
			"status":     response.Status,
		},
		Body: body,
	})
}

// publishParseFailure reports an undecodable body. Best effort: a
// publish error here only logs, the delivery is acked regardless.
func (h *handler) publishParseFailure(ctx context.Context, raw []byte, cause error) {
	original := string(raw)
	if len(original) > 500 {
		original = original[:500]
	}
	body, err := json.Marshal(parseFailure{
		Status:          models.StatusFailed,
		Message:         "Failed to process request",
		Error:           cause.Error(),
		OriginalMessage: original,
	})
	if err != nil {
		h.logger.Error("encoding parse failure response", "error", err)
		return
	}
	err = h.pub.PublishWithContext(ctx, responseExchange, responseRoutingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		h.logger.Error("parse failure response not published", "error", err)
	}
}

func (h *handler) ack(delivery amqp.Delivery) {
	if err := delivery.Ack(false); err != nil {
		h.logger.Error("acking delivery", "error", err)
	}
}

func (h *handler) nack(delivery amqp.Delivery) {
	if err := delivery.Nack(false, false); err != nil {
		h.logger.Error("rejecting delivery", "error", err)
	}
}
