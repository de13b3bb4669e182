package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarai/gapfinder/pkg/models"
)

const feedHeader = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">`

func feedEntry(title string) string {
	return fmt.Sprintf(`<entry>
  <title>%s</title>
  <summary>  An abstract.  </summary>
  <published>2024-01-15T09:30:00Z</published>
  <link href="http://arxiv.org/abs/2401.00001v1" rel="alternate" type="text/html"/>
  <link title="pdf" href="http://arxiv.org/pdf/2401.00001v1" rel="related" type="application/pdf"/>
  <author><name>Ada Lovelace</name></author>
  <author><name>Alan Turing</name></author>
</entry>`, title)
}

func feedWith(titles ...string) string {
	var b strings.Builder
	b.WriteString(feedHeader)
	for _, title := range titles {
		b.WriteString(feedEntry(title))
	}
	b.WriteString(`</feed>`)
	return b.String()
}

// queryRecorder captures the search_query parameter of every request.
type queryRecorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *queryRecorder) record(req *http.Request) string {
	q := req.URL.Query().Get("search_query")
	r.mu.Lock()
	r.queries = append(r.queries, q)
	r.mu.Unlock()
	return q
}

func (r *queryRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL})
}

func TestSearchPapers(t *testing.T) {
	t.Run("parses the feed and request parameters", func(t *testing.T) {
		var mu sync.Mutex
		var gotQuery map[string][]string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotQuery = r.URL.Query()
			mu.Unlock()
			fmt.Fprint(w, feedWith("  Sparse Rewards in RL  ", "Dense Rewards in RL"))
		}))

		results := client.SearchPapers(context.Background(), "Sparse Rewards", 5)
		require.Len(t, results, 2)
		assert.Equal(t, "Sparse Rewards in RL", results[0].Title)
		assert.Equal(t, "An abstract.", results[0].Abstract)
		assert.Equal(t, "http://arxiv.org/pdf/2401.00001v1", results[0].URL)
		assert.Equal(t, "http://arxiv.org/pdf/2401.00001v1", results[0].PDFURL)
		assert.Equal(t, "2024-01-15", results[0].PublicationDate)
		assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, results[0].Authors)
		assert.Equal(t, "arXiv", results[0].Venue)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "all:sparse rewards", gotQuery["search_query"][0])
		assert.Equal(t, "0", gotQuery["start"][0])
		assert.Equal(t, "5", gotQuery["max_results"][0])
		assert.Equal(t, "relevance", gotQuery["sortBy"][0])
		assert.Equal(t, "descending", gotQuery["sortOrder"][0])
	})

	t.Run("degrades the query until results appear", func(t *testing.T) {
		recorder := &queryRecorder{}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder.record(r) == "all:sparse" {
				fmt.Fprint(w, feedWith("Sparse Signals"))
				return
			}
			fmt.Fprint(w, feedWith())
		}))

		results := client.SearchPapers(context.Background(), "sparse rewards exploration", 5)
		require.Len(t, results, 1)
		assert.Equal(t, []string{
			"all:sparse rewards exploration",
			"all:sparse rewards",
			"all:sparse",
		}, recorder.all())
	})

	t.Run("two word queries skip the two word fallback", func(t *testing.T) {
		recorder := &queryRecorder{}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.record(r)
			fmt.Fprint(w, feedWith())
		}))

		results := client.SearchPapers(context.Background(), "sparse rewards", 5)
		assert.Empty(t, results)
		assert.Equal(t, []string{"all:sparse rewards", "all:sparse"}, recorder.all())
	})

	t.Run("single word queries never degrade", func(t *testing.T) {
		recorder := &queryRecorder{}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.record(r)
			fmt.Fprint(w, feedWith())
		}))

		results := client.SearchPapers(context.Background(), "sparse", 5)
		assert.Empty(t, results)
		assert.Equal(t, []string{"all:sparse"}, recorder.all())
	})

	t.Run("suppresses near duplicate titles", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, feedWith("Attention Is All You Need", "Attention Is All You Need."))
		}))

		results := client.SearchPapers(context.Background(), "attention", 5)
		require.Len(t, results, 1)
		assert.Equal(t, "Attention Is All You Need", results[0].Title)
	})

	t.Run("caps results after deduplication", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, feedWith(
				"Graph Models", "Optimal Transport", "Quantum Routing", "Causal Discovery"))
		}))

		results := client.SearchPapers(context.Background(), "survey", 3)
		assert.Len(t, results, 3)
	})

	t.Run("retries server errors before succeeding", func(t *testing.T) {
		recorder := &queryRecorder{}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(recorder.all()) == 0 {
				recorder.record(r)
				http.Error(w, "unavailable", http.StatusServiceUnavailable)
				return
			}
			recorder.record(r)
			fmt.Fprint(w, feedWith("Sparse Signals"))
		}))

		results := client.SearchPapers(context.Background(), "sparse", 5)
		require.Len(t, results, 1)
		assert.Len(t, recorder.all(), 2)
	})

	t.Run("exhausted retries yield an empty list", func(t *testing.T) {
		recorder := &queryRecorder{}
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder.record(r)
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		results := client.SearchPapers(context.Background(), "sparse", 5)
		assert.NotNil(t, results)
		assert.Empty(t, results)
		assert.Len(t, recorder.all(), maxAttempts)
	})

	t.Run("malformed feed yields an empty list", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>not a feed")
		}))

		results := client.SearchPapers(context.Background(), "sparse", 5)
		assert.Empty(t, results)
	})

	t.Run("entry without title gets a placeholder", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, feedHeader+`<entry><summary>nameless</summary></entry></feed>`)
		}))

		results := client.SearchPapers(context.Background(), "sparse", 5)
		require.Len(t, results, 1)
		assert.Equal(t, "Paper 1", results[0].Title)
		assert.Empty(t, results[0].URL)
	})
}

func TestTitleSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "Deep Learning", "Deep Learning", 1},
		{"case insensitive", "deep learning", "DEEP LEARNING", 1},
		{"trailing punctuation ignored", "Attention Is All You Need", "Attention Is All You Need.", 1},
		{"half overlap", "a b c", "b c d", 0.5},
		{"disjoint", "alpha beta", "gamma delta", 0},
		{"empty side", "", "anything", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, titleSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDedupeByTitle(t *testing.T) {
	results := []models.PaperSearchResult{
		{Title: "Sparse Rewards in Reinforcement Learning", Venue: "arXiv"},
		{Title: "Sparse rewards in reinforcement learning.", Venue: "other"},
		{Title: "A Completely Different Study"},
	}

	unique := dedupeByTitle(results)
	require.Len(t, unique, 2)
	assert.Equal(t, "arXiv", unique[0].Venue)
	assert.Equal(t, "A Completely Different Study", unique[1].Title)
}
