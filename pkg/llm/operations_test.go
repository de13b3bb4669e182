package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/pkg/models"
	"github.com/scholarai/gapfinder/pkg/resilience"
)

// sleepLog records the pauses an operation requested instead of
// actually sleeping.
type sleepLog struct {
	waits []time.Duration
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *sleepLog) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{
		APIKey:    "test-key",
		Model:     "test-model",
		BaseURL:   server.URL,
		RateLimit: 1000,
	})
	log := &sleepLog{}
	client.sleep = func(_ context.Context, d time.Duration) error {
		log.waits = append(log.waits, d)
		return nil
	}
	return client, log
}

// respondText writes a well-formed generateContent reply whose first
// candidate carries the given text.
func respondText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
}

func TestGenerateInitialGaps(t *testing.T) {
	paper := models.PaperData{Title: "Quantum Routing at Scale", AbstractText: "We study routing."}

	t.Run("returns parsed gaps and posts the wire format", func(t *testing.T) {
		var calls atomic.Int32
		var mu sync.Mutex
		var gotPath, gotKey, gotBody string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			gotPath = r.URL.Path
			gotKey = r.URL.Query().Get("key")
			gotBody = string(body)
			mu.Unlock()
			respondText(w, "```json\n"+`[{"name":"Gap A","description":"d","category":"empirical","reasoning":"r","evidence":"e"}]`+"\n```")
		}))

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		require.Len(t, gaps, 1)
		assert.Equal(t, "Gap A", gaps[0].Name)
		assert.Equal(t, "empirical", gaps[0].Category)
		assert.Equal(t, int32(1), calls.Load())

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
		assert.Equal(t, "test-key", gotKey)
		assert.Contains(t, gotBody, `"contents"`)
		assert.Contains(t, gotBody, "Quantum Routing at Scale")
	})

	t.Run("retries a failing call before succeeding", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			respondText(w, `[{"name":"Gap A"}]`)
		}))

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		require.Len(t, gaps, 1)
		assert.Equal(t, int32(2), calls.Load())
		require.Len(t, slept.waits, 1)
		assert.GreaterOrEqual(t, slept.waits[0], time.Second)
		assert.Less(t, slept.waits[0], 2*time.Second)
	})

	t.Run("waits out a rate limit before retrying", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
				return
			}
			respondText(w, `[{"name":"Gap A"}]`)
		}))

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		require.Len(t, gaps, 1)
		require.Len(t, slept.waits, 1)
		assert.GreaterOrEqual(t, slept.waits[0], 30*time.Second)
		assert.Less(t, slept.waits[0], 31*time.Second)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		assert.NotNil(t, gaps)
		assert.Empty(t, gaps)
		assert.Equal(t, int32(3), calls.Load())
		assert.Len(t, slept.waits, 2)
		assert.Equal(t, resilience.StateOpen, client.breaker.State())
	})

	t.Run("skips generation while the breaker is open", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			respondText(w, `[{"name":"Gap A"}]`)
		}))
		for i := 0; i < breakerThreshold; i++ {
			client.breaker.RecordFailure()
		}

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		assert.Nil(t, gaps)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("rejects gaps without names", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			respondText(w, `[{"description":"a gap with no name"}]`)
		}))

		gaps, err := client.GenerateInitialGaps(context.Background(), paper, models.ExtractedPaperContent{})
		require.NoError(t, err)
		assert.Empty(t, gaps)
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestGenerateSearchQuery(t *testing.T) {
	gap := models.InitialGap{
		Name:        "Limited Cross-Domain Evaluation",
		Description: "Models are only evaluated in one domain.",
		Category:    "methodological",
	}

	t.Run("returns the trimmed query", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respondText(w, "\"graph neural network benchmarks\"\n")
		}))

		query := client.GenerateSearchQuery(context.Background(), gap)
		assert.Equal(t, "graph neural network benchmarks", query)
	})

	t.Run("falls back to gap terms on failure", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		query := client.GenerateSearchQuery(context.Background(), gap)
		assert.Equal(t, "limited cross-domain evaluation methodological", query)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("falls back when the reply is blank", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respondText(w, "\n\n")
		}))

		query := client.GenerateSearchQuery(context.Background(), gap)
		assert.Equal(t, "limited cross-domain evaluation methodological", query)
	})
}

func TestFallbackQuery(t *testing.T) {
	tests := []struct {
		name string
		gap  models.InitialGap
		want string
	}{
		{
			name: "short names survive whole",
			gap:  models.InitialGap{Name: "Sparse Rewards", Category: "empirical"},
			want: "sparse rewards empirical",
		},
		{
			name: "long names cap at four words",
			gap:  models.InitialGap{Name: "Benchmarks For Long Context Reasoning", Category: "empirical"},
			want: "benchmarks for long context",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackQuery(tt.gap))
		})
	}
}

func TestValidateGap(t *testing.T) {
	gap := models.InitialGap{Name: "Sparse Rewards", Category: "empirical"}
	papers := []models.ExtractedContent{{Title: "Reward Shaping Revisited", ExtractionSuccess: true}}

	t.Run("parses the model judgment", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			respondText(w, `{
				"is_valid": false,
				"confidence": 0.9,
				"reasoning": "fully addressed",
				"should_modify": false,
				"conflicting_papers": [{"title": "Reward Shaping Revisited", "reason": "solves it"}]
			}`)
		}))

		result := client.ValidateGap(context.Background(), gap, papers)
		assert.False(t, result.IsValid)
		assert.Equal(t, 0.9, result.Confidence)
		assert.Equal(t, "fully addressed", result.Reasoning)
		require.Len(t, result.ConflictingPapers, 1)
		assert.Equal(t, "solves it", result.ConflictingPapers[0]["reason"])
	})

	t.Run("retries before succeeding", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			respondText(w, `{"is_valid": true, "confidence": 0.8, "reasoning": "still open", "should_modify": false}`)
		}))

		result := client.ValidateGap(context.Background(), gap, papers)
		assert.True(t, result.IsValid)
		assert.Equal(t, 0.8, result.Confidence)
		assert.Equal(t, []time.Duration{retryDelay}, slept.waits)
	})

	t.Run("assumes valid when every attempt fails", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			respondText(w, `{"is_valid": true}`)
		}))

		result := client.ValidateGap(context.Background(), gap, papers)
		assert.True(t, result.IsValid)
		assert.Equal(t, 0.3, result.Confidence)
		assert.Equal(t, "Could not validate due to error", result.Reasoning)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, []time.Duration{retryDelay, retryDelay}, slept.waits)
	})

	t.Run("assumes valid at low confidence when rate limited", func(t *testing.T) {
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))

		result := client.ValidateGap(context.Background(), gap, papers)
		assert.True(t, result.IsValid)
		assert.Equal(t, 0.3, result.Confidence)
		assert.Equal(t, "Rate limited - assuming valid with low confidence", result.Reasoning)
		assert.Equal(t, []time.Duration{retryDelay, retryDelay, rateLimitWait}, slept.waits)
	})
}

func TestDecodeValidation(t *testing.T) {
	t.Run("requires the core fields", func(t *testing.T) {
		_, err := decodeValidation(`{}`)
		require.Error(t, err)
		_, err = decodeValidation(`{"is_valid": true, "confidence": 0.5, "reasoning": "r"}`)
		require.Error(t, err)
	})

	t.Run("accepts a complete judgment", func(t *testing.T) {
		result, err := decodeValidation(`{
			"is_valid": true,
			"confidence": 0.7,
			"reasoning": "partially addressed",
			"should_modify": true,
			"modification_suggestion": "narrow the scope"
		}`)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.True(t, result.ShouldModify)
		assert.Equal(t, "narrow the scope", result.ModificationSuggestion)
	})
}

func TestExpandGapDetails(t *testing.T) {
	gap := models.InitialGap{Name: "Sparse Rewards", Category: "empirical"}
	validation := models.ValidationResult{IsValid: true, Confidence: 0.88, Reasoning: "open"}

	t.Run("returns the enrichment block", func(t *testing.T) {
		var mu sync.Mutex
		var gotBody string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			gotBody = string(body)
			mu.Unlock()
			respondText(w, `{
				"potential_impact": "large",
				"estimated_difficulty": "high",
				"suggested_topics": [{"title": "Curriculum Design"}]
			}`)
		}))

		details := client.ExpandGapDetails(context.Background(), gap, validation)
		assert.Equal(t, "large", details["potential_impact"])
		assert.Equal(t, "high", details["estimated_difficulty"])
		topics, ok := details["suggested_topics"].([]any)
		require.True(t, ok)
		assert.Len(t, topics, 1)

		mu.Lock()
		defer mu.Unlock()
		assert.Contains(t, gotBody, "Validation Confidence: 0.88")
	})

	t.Run("degrades after exhausted retries", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		details := client.ExpandGapDetails(context.Background(), gap, validation)
		assert.Equal(t, degradedDetails(), details)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, []time.Duration{retryDelay, retryDelay}, slept.waits)
	})

	t.Run("waits out a rate limit before degrading", func(t *testing.T) {
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))

		details := client.ExpandGapDetails(context.Background(), gap, validation)
		assert.Equal(t, "unknown", details["estimated_difficulty"])
		assert.Equal(t, []any{}, details["suggested_topics"])
		assert.Equal(t, []time.Duration{retryDelay, retryDelay, rateLimitWait}, slept.waits)
	})
}

func TestProbe(t *testing.T) {
	t.Run("healthy endpoint", func(t *testing.T) {
		var mu sync.Mutex
		var gotPath string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotPath = r.URL.Path
			mu.Unlock()
			_, _ = w.Write([]byte(`{"models": []}`))
		}))

		require.NoError(t, client.Probe(context.Background()))
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/v1beta/models", gotPath)
	})

	t.Run("auth failure still counts as reachable", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad key", http.StatusForbidden)
		}))
		assert.NoError(t, client.Probe(context.Background()))
	})

	t.Run("server error fails the probe", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		assert.Error(t, client.Probe(context.Background()))
	})

	t.Run("unreachable endpoint fails the probe", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := NewClient(Config{APIKey: "k", Model: "m", BaseURL: server.URL})

		err := client.Probe(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"http 429", &APIError{StatusCode: http.StatusTooManyRequests, Body: "slow down"}, true},
		{"wrapped 429", fmt.Errorf("call generation API: %w", &APIError{StatusCode: http.StatusTooManyRequests}), true},
		{"quota message", errors.New("Quota exceeded for model"), true},
		{"resource exhausted", errors.New("status RESOURCE_EXHAUSTED"), true},
		{"other API error", &APIError{StatusCode: http.StatusInternalServerError, Body: "boom"}, false},
		{"plain error", errors.New("connection reset"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRateLimited(tt.err))
		})
	}
}
