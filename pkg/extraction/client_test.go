package extraction

import (
	"bytes"
	"context"
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
)

const teiFixture = `<?xml version="1.0" encoding="UTF-8"?>
<TEI xmlns="http://www.tei-c.org/ns/1.0">
  <teiHeader>
    <fileDesc>
      <titleStmt><title level="a" type="main">Reward Shaping Revisited</title></titleStmt>
    </fileDesc>
    <profileDesc>
      <abstract><div><p>We revisit shaping.</p></div></abstract>
    </profileDesc>
  </teiHeader>
  <text>
    <body>
      <div><head n="1">Introduction</head><p>Motivation.</p></div>
      <div><head n="2">Methods</head><p>We ablate <ref type="bibr">[1]</ref> carefully.</p><p>Second paragraph.</p></div>
      <div><head n="3">Experiments</head><p>Benchmarks.</p></div>
      <div><head n="4">Discussion</head><p>Shaping helps.</p></div>
      <div><head>Acknowledgements</head></div>
    </body>
  </text>
</TEI>`

// validPDF is comfortably above the minimum size gate.
var validPDF = bytes.Repeat([]byte("%PDF-fake "), 120)

// sleepLog records requested pauses instead of sleeping.
type sleepLog struct {
	waits []time.Duration
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *sleepLog) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(Config{GrobidURL: server.URL})
	log := &sleepLog{}
	client.sleep = func(_ context.Context, d time.Duration) error {
		log.waits = append(log.waits, d)
		return nil
	}
	return client, log
}

func TestParseTEI(t *testing.T) {
	t.Run("parses the full document", func(t *testing.T) {
		content := parseTEI([]byte(teiFixture))
		require.True(t, content.ExtractionSuccess)
		assert.Equal(t, "Reward Shaping Revisited", content.Title)
		assert.Equal(t, "We revisit shaping.", content.Abstract)

		require.Len(t, content.Sections, 4)
		assert.Equal(t, "Introduction", content.Sections[0].Title)
		assert.Equal(t, "We ablate [1] carefully. Second paragraph.", content.Sections[1].Content)

		assert.Equal(t, "We ablate [1] carefully. Second paragraph.", content.Methods)
		assert.Equal(t, "Benchmarks.", content.Results)
		assert.Equal(t, "Shaping helps.", content.Conclusion)
	})

	t.Run("keeps nested divisions", func(t *testing.T) {
		doc := `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
			<div><head>Approach</head><p>Outer.</p>
				<div><head>Details</head><p>Inner.</p></div>
			</div>
		</body></text></TEI>`
		content := parseTEI([]byte(doc))
		require.Len(t, content.Sections, 2)
		assert.Equal(t, "Approach", content.Sections[0].Title)
		assert.Equal(t, "Details", content.Sections[1].Title)
	})

	t.Run("last matching section wins", func(t *testing.T) {
		doc := `<TEI xmlns="http://www.tei-c.org/ns/1.0"><text><body>
			<div><head>Methods</head><p>First pass.</p></div>
			<div><head>Methodology</head><p>Refined pass.</p></div>
		</body></text></TEI>`
		content := parseTEI([]byte(doc))
		assert.Equal(t, "Refined pass.", content.Methods)
	})

	t.Run("malformed XML fails extraction", func(t *testing.T) {
		content := parseTEI([]byte("<html>not TEI"))
		assert.False(t, content.ExtractionSuccess)
		assert.Contains(t, content.Error, "XML parsing error")
	})
}

func TestExtractFromBytes(t *testing.T) {
	t.Run("posts the multipart form and parses the reply", func(t *testing.T) {
		var mu sync.Mutex
		var gotPath, gotFilename, gotPartType string
		var gotFields map[string]string
		var gotFileLen int
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseMultipartForm(10 << 20)
			file, fh, err := r.FormFile("input")
			mu.Lock()
			gotPath = r.URL.Path
			gotFields = map[string]string{
				"consolidateHeader":      r.FormValue("consolidateHeader"),
				"consolidateCitations":   r.FormValue("consolidateCitations"),
				"includeRawCitations":    r.FormValue("includeRawCitations"),
				"includeRawAffiliations": r.FormValue("includeRawAffiliations"),
			}
			if err == nil {
				gotFilename = fh.Filename
				gotPartType = fh.Header.Get("Content-Type")
				data, _ := io.ReadAll(file)
				gotFileLen = len(data)
			}
			mu.Unlock()
			fmt.Fprint(w, teiFixture)
		}))

		content := client.ExtractFromBytes(context.Background(), validPDF)
		require.True(t, content.ExtractionSuccess)
		assert.Equal(t, "Reward Shaping Revisited", content.Title)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/api/processFulltextDocument", gotPath)
		assert.Equal(t, "document.pdf", gotFilename)
		assert.Equal(t, "application/pdf", gotPartType)
		assert.Equal(t, len(validPDF), gotFileLen)
		assert.Equal(t, map[string]string{
			"consolidateHeader":      "1",
			"consolidateCitations":   "0",
			"includeRawCitations":    "0",
			"includeRawAffiliations": "0",
		}, gotFields)
	})

	t.Run("rejects tiny PDFs before calling the extractor", func(t *testing.T) {
		var calls atomic.Int32
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		content := client.ExtractFromBytes(context.Background(), []byte("tiny"))
		assert.False(t, content.ExtractionSuccess)
		assert.Equal(t, "PDF too small (4 bytes) - likely invalid or error page", content.Error)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("retries 503 with the documented schedule", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "busy", http.StatusServiceUnavailable)
		}))

		content := client.ExtractFromBytes(context.Background(), validPDF)
		assert.False(t, content.ExtractionSuccess)
		assert.Equal(t, "GROBID extraction failed after all retry attempts", content.Error)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, slept.waits)
	})

	t.Run("500 fails immediately", func(t *testing.T) {
		var calls atomic.Int32
		client, slept := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "broken", http.StatusInternalServerError)
		}))

		content := client.ExtractFromBytes(context.Background(), validPDF)
		assert.Equal(t, "GROBID internal server error - PDF may be corrupted or invalid", content.Error)
		assert.Equal(t, int32(1), calls.Load())
		assert.Empty(t, slept.waits)
	})

	t.Run("unexpected statuses fail with the code", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusTeapot)
		}))

		content := client.ExtractFromBytes(context.Background(), validPDF)
		assert.Equal(t, "GROBID error: 418", content.Error)
	})

	t.Run("transport errors back off 2s then 4s", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := NewClient(Config{GrobidURL: server.URL})
		slept := &sleepLog{}
		client.sleep = func(_ context.Context, d time.Duration) error {
			slept.waits = append(slept.waits, d)
			return nil
		}

		content := client.ExtractFromBytes(context.Background(), validPDF)
		assert.Equal(t, "GROBID extraction failed after all retry attempts", content.Error)
		assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, slept.waits)
	})
}

func TestExtractFromURL(t *testing.T) {
	newServer := func(t *testing.T) (*httptest.Server, *atomic.Int32, *atomic.Int32) {
		t.Helper()
		var downloads, extractions atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("/paper.pdf", func(w http.ResponseWriter, r *http.Request) {
			downloads.Add(1)
			_, _ = w.Write(validPDF)
		})
		mux.HandleFunc("/ua.pdf", func(w http.ResponseWriter, r *http.Request) {
			downloads.Add(1)
			if r.Header.Get("User-Agent") != browserUA {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			_, _ = w.Write(validPDF)
		})
		mux.HandleFunc("/tiny.pdf", func(w http.ResponseWriter, r *http.Request) {
			downloads.Add(1)
			_, _ = w.Write([]byte("0123456789"))
		})
		mux.HandleFunc("/api/processFulltextDocument", func(w http.ResponseWriter, r *http.Request) {
			extractions.Add(1)
			fmt.Fprint(w, teiFixture)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		return server, &downloads, &extractions
	}

	t.Run("downloads and extracts", func(t *testing.T) {
		server, downloads, extractions := newServer(t)
		client := NewClient(Config{GrobidURL: server.URL})

		content := client.ExtractFromURL(context.Background(), server.URL+"/paper.pdf")
		require.True(t, content.ExtractionSuccess)
		assert.Equal(t, "Reward Shaping Revisited", content.Title)
		assert.Equal(t, int32(1), downloads.Load())
		assert.Equal(t, int32(1), extractions.Load())
	})

	t.Run("falls back to a browser user agent", func(t *testing.T) {
		server, downloads, _ := newServer(t)
		client := NewClient(Config{GrobidURL: server.URL})

		content := client.ExtractFromURL(context.Background(), server.URL+"/ua.pdf")
		require.True(t, content.ExtractionSuccess)
		assert.Equal(t, int32(2), downloads.Load())
	})

	t.Run("failed download never reaches the extractor", func(t *testing.T) {
		server, _, extractions := newServer(t)
		client := NewClient(Config{GrobidURL: server.URL})

		content := client.ExtractFromURL(context.Background(), server.URL+"/missing.pdf")
		assert.False(t, content.ExtractionSuccess)
		assert.Equal(t, "Failed to download PDF", content.Error)
		assert.Equal(t, int32(0), extractions.Load())
	})

	t.Run("undersized downloads are treated as failures", func(t *testing.T) {
		server, downloads, _ := newServer(t)
		client := NewClient(Config{GrobidURL: server.URL})

		content := client.ExtractFromURL(context.Background(), server.URL+"/tiny.pdf")
		assert.Equal(t, "Failed to download PDF", content.Error)
		assert.Equal(t, int32(2), downloads.Load())
	})
}

func TestAlternativeURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "arxiv abstract page",
			url:  "https://arxiv.org/abs/2401.12345",
			want: []string{
				"https://arxiv.org/pdf/2401.12345.pdf",
				"https://arxiv.org/e-print/2401.12345",
			},
		},
		{
			name: "pubmed central article",
			url:  "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC123456/",
			want: []string{
				"https://www.ncbi.nlm.nih.gov/pmc/articles/PMC123456/pdf/",
				"https://europepmc.org/articles/PMC123456?pdf=render",
			},
		},
		{name: "arxiv pdf already", url: "https://arxiv.org/pdf/2401.12345v1", want: nil},
		{name: "unknown host", url: "https://example.com/paper.pdf", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alternativeURLs(tt.url))
		})
	}
}

func TestExtractBatch(t *testing.T) {
	// gauge tracks the peak number of concurrent extractor calls.
	type gauge struct {
		mu        sync.Mutex
		cur, peak int
	}
	newBatchServer := func(t *testing.T) (*httptest.Server, *gauge) {
		t.Helper()
		g := &gauge{}
		mux := http.NewServeMux()
		mux.HandleFunc("/paper.pdf", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(validPDF)
		})
		mux.HandleFunc("/api/processFulltextDocument", func(w http.ResponseWriter, r *http.Request) {
			g.mu.Lock()
			g.cur++
			if g.cur > g.peak {
				g.peak = g.cur
			}
			g.mu.Unlock()
			time.Sleep(20 * time.Millisecond)
			g.mu.Lock()
			g.cur--
			g.mu.Unlock()
			fmt.Fprint(w, teiFixture)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		return server, g
	}

	t.Run("preserves order and pauses between batches", func(t *testing.T) {
		server, _ := newBatchServer(t)
		client := NewClient(Config{GrobidURL: server.URL})
		slept := &sleepLog{}
		client.sleep = func(_ context.Context, d time.Duration) error {
			slept.waits = append(slept.waits, d)
			return nil
		}

		pdfURL := server.URL + "/paper.pdf"
		papers := []models.PaperSearchResult{
			{Title: "P1", PDFURL: pdfURL},
			{Title: "P2", PDFURL: pdfURL},
			{Title: "Meta Only", Abstract: "Only abstract."},
			{Title: "P4", PDFURL: pdfURL},
			{Title: "P5", PDFURL: pdfURL},
		}

		contents := client.ExtractBatch(context.Background(), papers)
		require.Len(t, contents, 5)
		for i, content := range contents {
			assert.True(t, content.ExtractionSuccess, "paper %d", i+1)
		}
		assert.Equal(t, "Meta Only", contents[2].Title)
		assert.Equal(t, []models.ContentSection{{Title: "Abstract", Content: "Only abstract."}},
			contents[2].Sections)
		assert.Equal(t, []time.Duration{batchPause}, slept.waits)
	})

	t.Run("no pause after the final batch", func(t *testing.T) {
		server, _ := newBatchServer(t)
		client := NewClient(Config{GrobidURL: server.URL})
		slept := &sleepLog{}
		client.sleep = func(_ context.Context, d time.Duration) error {
			slept.waits = append(slept.waits, d)
			return nil
		}

		pdfURL := server.URL + "/paper.pdf"
		papers := []models.PaperSearchResult{
			{Title: "P1", PDFURL: pdfURL},
			{Title: "P2", PDFURL: pdfURL},
			{Title: "P3", PDFURL: pdfURL},
		}

		contents := client.ExtractBatch(context.Background(), papers)
		assert.Len(t, contents, 3)
		assert.Empty(t, slept.waits)
	})

	t.Run("bounds concurrent extractor calls", func(t *testing.T) {
		server, g := newBatchServer(t)
		client := NewClient(Config{GrobidURL: server.URL})

		pdfURL := server.URL + "/paper.pdf"
		papers := []models.PaperSearchResult{
			{Title: "P1", PDFURL: pdfURL},
			{Title: "P2", PDFURL: pdfURL},
			{Title: "P3", PDFURL: pdfURL},
		}

		client.ExtractBatch(context.Background(), papers)
		g.mu.Lock()
		defer g.mu.Unlock()
		assert.LessOrEqual(t, g.peak, maxConcurrent)
	})
}

func TestProbe(t *testing.T) {
	t.Run("healthy extractor", func(t *testing.T) {
		var mu sync.Mutex
		var gotPath string
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			gotPath = r.URL.Path
			mu.Unlock()
			fmt.Fprint(w, "true")
		}))

		require.NoError(t, client.Probe(context.Background()))
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, "/api/isalive", gotPath)
	})

	t.Run("unhealthy extractor", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		assert.Error(t, client.Probe(context.Background()))
	})

	t.Run("unreachable extractor", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		client := NewClient(Config{GrobidURL: server.URL})

		err := client.Probe(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unreachable")
	})
}
