package bus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/ent/gapanalysis"
	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/services"
	testdb "github.com/scholarai/gapfinder/test/database"
)

type fakeAcknowledger struct {
	acks    int
	nacks   int
	requeue bool
}

func (f *fakeAcknowledger) Ack(_ uint64, _ bool) error { f.acks++; return nil }

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacks++
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	f.nacks++
	f.requeue = requeue
	return nil
}

type fakePublisher struct {
	err       error
	exchanges []string
	keys      []string
	messages  []amqp.Publishing
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchanges = append(f.exchanges, exchange)
	f.keys = append(f.keys, key)
	f.messages = append(f.messages, msg)
	return nil
}

type fakeAnalyzer struct {
	response *models.GapAnalysisResponse
	panicMsg string
	requests []models.GapAnalysisRequest
}

func (f *fakeAnalyzer) Analyze(_ context.Context, req models.GapAnalysisRequest) *models.GapAnalysisResponse {
	f.requests = append(f.requests, req)
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.response
}

func newTestHandler(analyzer Analyzer, analyses *services.AnalysisService, pub publisher) *handler {
	return &handler{
		analyzer: analyzer,
		analyses: analyses,
		pub:      pub,
		timeout:  time.Minute,
		logger:   slog.Default().With("component", "bus"),
	}
}

func newRequest() models.GapAnalysisRequest {
	return models.GapAnalysisRequest{
		PaperID:           uuid.New().String(),
		PaperExtractionID: uuid.New().String(),
		CorrelationID:     uuid.New().String(),
		RequestID:         uuid.New().String(),
	}
}

func newDelivery(ack *fakeAcknowledger, body string) amqp.Delivery {
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(body)}
}

func requestBody(t *testing.T, req models.GapAnalysisRequest) string {
	t.Helper()
	raw, err := json.Marshal(req)
	require.NoError(t, err)
	return string(raw)
}

func TestHandler_PublishesResponseAndAcks(t *testing.T) {
	req := newRequest()
	analyzer := &fakeAnalyzer{response: &models.GapAnalysisResponse{
		RequestID:     req.RequestID,
		CorrelationID: req.CorrelationID,
		Status:        models.StatusCompleted,
		Message:       "Successfully identified 2 valid research gaps",
		GapAnalysisID: uuid.New().String(),
		TotalGaps:     3,
		ValidGaps:     2,
		Gaps:          []models.GapDetail{},
	}}
	pub := &fakePublisher{}
	ack := &fakeAcknowledger{}
	h := newTestHandler(analyzer, nil, pub)

	h.handle(context.Background(), newDelivery(ack, requestBody(t, req)))

	require.Len(t, analyzer.requests, 1)
	assert.Equal(t, req.PaperID, analyzer.requests[0].PaperID)
	assert.Equal(t, req.CorrelationID, analyzer.requests[0].CorrelationID)

	require.Len(t, pub.messages, 1)
	assert.Equal(t, responseExchange, pub.exchanges[0])
	assert.Equal(t, responseRoutingKey, pub.keys[0])

	msg := pub.messages[0]
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, req.CorrelationID, msg.CorrelationId)
	assert.Equal(t, req.RequestID, msg.Headers["request_id"])
	assert.Equal(t, models.StatusCompleted, msg.Headers["status"])

	var published models.GapAnalysisResponse
	require.NoError(t, json.Unmarshal(msg.Body, &published))
	assert.Equal(t, models.StatusCompleted, published.Status)
	assert.Equal(t, 2, published.ValidGaps)

	assert.Equal(t, 1, ack.acks)
	assert.Zero(t, ack.nacks)
}

func TestHandler_MalformedBody(t *testing.T) {
	t.Run("publishes a reduced failure and acks", func(t *testing.T) {
		analyzer := &fakeAnalyzer{}
		pub := &fakePublisher{}
		ack := &fakeAcknowledger{}
		h := newTestHandler(analyzer, nil, pub)

		h.handle(context.Background(), newDelivery(ack, "this is not json"))

		assert.Empty(t, analyzer.requests)
		require.Len(t, pub.messages, 1)

		msg := pub.messages[0]
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Empty(t, msg.CorrelationId)
		assert.Nil(t, msg.Headers)

		var failure parseFailure
		require.NoError(t, json.Unmarshal(msg.Body, &failure))
		assert.Equal(t, models.StatusFailed, failure.Status)
		assert.Equal(t, "Failed to process request", failure.Message)
		assert.NotEmpty(t, failure.Error)
		assert.Equal(t, "this is not json", failure.OriginalMessage)

		assert.Equal(t, 1, ack.acks)
		assert.Zero(t, ack.nacks)
	})

	t.Run("truncates the echoed body", func(t *testing.T) {
		pub := &fakePublisher{}
		ack := &fakeAcknowledger{}
		h := newTestHandler(&fakeAnalyzer{}, nil, pub)

		h.handle(context.Background(), newDelivery(ack, strings.Repeat("x", 600)))

		require.Len(t, pub.messages, 1)
		var failure parseFailure
		require.NoError(t, json.Unmarshal(pub.messages[0].Body, &failure))
		assert.Len(t, failure.OriginalMessage, 500)
	})

	t.Run("acks even when the failure publish fails", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker gone")}
		ack := &fakeAcknowledger{}
		h := newTestHandler(&fakeAnalyzer{}, nil, pub)

		h.handle(context.Background(), newDelivery(ack, "still not json"))

		assert.Equal(t, 1, ack.acks)
		assert.Zero(t, ack.nacks)
	})
}

func TestHandler_DuplicateCorrelation(t *testing.T) {
	client := testdb.NewTestClient(t)
	analyses := services.NewAnalysisService(client.Client)
	ctx := context.Background()

	dupError := `ERROR: duplicate key value violates unique constraint "gap_analyses_correlation_id_key" (SQLSTATE 23505)`
	failed := func(req models.GapAnalysisRequest) *models.GapAnalysisResponse {
		return &models.GapAnalysisResponse{
			RequestID:     req.RequestID,
			CorrelationID: req.CorrelationID,
			Status:        models.StatusFailed,
			Message:       "Analysis failed: " + dupError,
			Gaps:          []models.GapDetail{},
			Error:         dupError,
		}
	}

	t.Run("echoes the existing analysis as COMPLETED", func(t *testing.T) {
		req := newRequest()
		existing, err := analyses.UpsertAnalysis(ctx, req)
		require.NoError(t, err)
		counts := services.AnalysisCounts{Total: 3, Valid: 2, Invalid: 1}
		require.NoError(t, analyses.Finalize(ctx, existing.ID, counts, gapanalysis.StatusCOMPLETED, ""))

		pub := &fakePublisher{}
		ack := &fakeAcknowledger{}
		h := newTestHandler(&fakeAnalyzer{response: failed(req)}, analyses, pub)

		h.handle(ctx, newDelivery(ack, requestBody(t, req)))

		require.Len(t, pub.messages, 1)
		var published models.GapAnalysisResponse
		require.NoError(t, json.Unmarshal(pub.messages[0].Body, &published))
		assert.Equal(t, models.StatusCompleted, published.Status)
		assert.Equal(t, "Analysis already exists (duplicate request handled)", published.Message)
		assert.Equal(t, existing.ID.String(), published.GapAnalysisID)
		assert.Equal(t, 3, published.TotalGaps)
		assert.Equal(t, 2, published.ValidGaps)
		assert.NotNil(t, published.Gaps)
		assert.Empty(t, published.Gaps)
		assert.Equal(t, models.StatusCompleted, pub.messages[0].Headers["status"])
		assert.Equal(t, 1, ack.acks)
	})

	t.Run("keeps the failure when no analysis owns the correlation id", func(t *testing.T) {
		req := newRequest()
		pub := &fakePublisher{}
		ack := &fakeAcknowledger{}
		h := newTestHandler(&fakeAnalyzer{response: failed(req)}, analyses, pub)

		h.handle(ctx, newDelivery(ack, requestBody(t, req)))

		require.Len(t, pub.messages, 1)
		var published models.GapAnalysisResponse
		require.NoError(t, json.Unmarshal(pub.messages[0].Body, &published))
		assert.Equal(t, models.StatusFailed, published.Status)
		assert.Equal(t, dupError, published.Error)
		assert.Equal(t, 1, ack.acks)
	})
}

func TestHandler_PanicPublishesFailure(t *testing.T) {
	req := newRequest()
	analyzer := &fakeAnalyzer{panicMsg: "store exploded"}
	pub := &fakePublisher{}
	ack := &fakeAcknowledger{}
	h := newTestHandler(analyzer, nil, pub)

	h.handle(context.Background(), newDelivery(ack, requestBody(t, req)))

	require.Len(t, pub.messages, 1)
	var published models.GapAnalysisResponse
	require.NoError(t, json.Unmarshal(pub.messages[0].Body, &published))
	assert.Equal(t, models.StatusFailed, published.Status)
	assert.Equal(t, "Processing failed: store exploded", published.Message)
	assert.Equal(t, "store exploded", published.Error)
	assert.Equal(t, req.RequestID, published.RequestID)
	assert.Equal(t, req.CorrelationID, published.CorrelationID)

	assert.Equal(t, 1, ack.acks)
	assert.Zero(t, ack.nacks)
}

func TestHandler_PanicRejectsWhenPublishFails(t *testing.T) {
	analyzer := &fakeAnalyzer{panicMsg: "store exploded"}
	pub := &fakePublisher{err: errors.New("broker gone")}
	ack := &fakeAcknowledger{}
	h := newTestHandler(analyzer, nil, pub)

	h.handle(context.Background(), newDelivery(ack, requestBody(t, newRequest())))

	assert.Zero(t, ack.acks)
	assert.Equal(t, 1, ack.nacks)
	assert.False(t, ack.requeue, "rejected deliveries must not requeue")
}

func TestHandler_PublishErrorStillAcks(t *testing.T) {
	req := newRequest()
	analyzer := &fakeAnalyzer{response: &models.GapAnalysisResponse{
		RequestID:     req.RequestID,
		CorrelationID: req.CorrelationID,
		Status:        models.StatusCompleted,
		Gaps:          []models.GapDetail{},
	}}
	pub := &fakePublisher{err: errors.New("broker gone")}
	ack := &fakeAcknowledger{}
	h := newTestHandler(analyzer, nil, pub)

	h.handle(context.Background(), newDelivery(ack, requestBody(t, req)))

	assert.Equal(t, 1, ack.acks)
	assert.Zero(t, ack.nacks)
}

func TestIsDuplicateCorrelation(t *testing.T) {
	assert.True(t, isDuplicateCorrelation(
		`duplicate key value violates unique constraint "gap_analyses_correlation_id_key"`))
	assert.False(t, isDuplicateCorrelation(
		`duplicate key value violates unique constraint "research_gaps_gap_id_key"`))
	assert.False(t, isDuplicateCorrelation("connection refused"))
	assert.False(t, isDuplicateCorrelation(""))
}
