package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"league/config"
	"league/internal/domain/service"
	"league/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successBody = `{
  "version": "V2",
  "images": [{
    "inferResult": "SUCCESS",
    "message": "SUCCESS",
    "receipt": {"result": {"storeInfo": {
      "name": {"text": " 일미닭갈비파전 "},
      "addresses": [{"text": "서울 마포구 와우산로 21"}, {"text": "second"}]
    }}}
  }]
}`

func newTestClient(t *testing.T, endpoint string, breaker config.BreakerConfig) service.ReceiptRecognizer {
	t.Helper()

	client, err := NewClovaRecognizer(&config.ReceiptConfig{
		Endpoint:  endpoint,
		Secret:    "s3cret",
		Timeout:   2 * time.Second,
		RateLimit: 100,
		Breaker:   breaker,
	}, metrics.New(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return client
}

func TestNewClovaRecognizer_RequiresEndpoint(t *testing.T) {
	_, err := NewClovaRecognizer(&config.ReceiptConfig{}, metrics.New(), slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestRecognize_Success(t *testing.T) {
	image := []byte("\xff\xd8\xff\xe0 fake jpeg")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "s3cret", r.Header.Get(secretHeader))

		var req recognitionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, apiVersion, req.Version)
		require.Len(t, req.Images, 1)
		assert.Equal(t, "jpg", req.Images[0].Format)
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), req.Images[0].Data)

		_, _ = w.Write([]byte(successBody))
	}))
	defer server.Close()

	got, err := newTestClient(t, server.URL, config.BreakerConfig{}).Recognize(context.Background(), image)
	require.NoError(t, err)
	assert.Equal(t, &service.Recognition{
		Status:       service.RecognitionStatusSuccess,
		StoreName:    "일미닭갈비파전",
		StoreAddress: "서울 마포구 와우산로 21",
	}, got)
}

func TestRecognize_FailureStatusWithoutReceipt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"images":[{"inferResult":"FAILURE","message":"not a receipt"}]}`))
	}))
	defer server.Close()

	got, err := newTestClient(t, server.URL, config.BreakerConfig{}).Recognize(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "FAILURE", got.Status)
	assert.Empty(t, got.StoreName)
	assert.Empty(t, got.StoreAddress)
}

func TestRecognize_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":  `<html>oops</html>`,
		"no images": `{"images":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := newTestClient(t, server.URL, config.BreakerConfig{}).Recognize(context.Background(), []byte("img"))
			assert.ErrorIs(t, err, service.ErrRecognitionMalformed)
		})
	}
}

func TestRecognize_ServerErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL, config.BreakerConfig{}).Recognize(context.Background(), []byte("img"))
	require.ErrorIs(t, err, service.ErrRecognitionUnavailable)
	assert.Contains(t, err.Error(), "503")
}

func TestRecognize_DeadlineKeepsContextError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, server.URL, config.BreakerConfig{}).Recognize(ctx, []byte("img"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRecognize_BreakerOpensAfterFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.BreakerConfig{
		MaxRequests:  1,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  2,
	})

	for range 2 {
		_, err := client.Recognize(context.Background(), []byte("img"))
		require.ErrorIs(t, err, service.ErrRecognitionUnavailable)
	}

	_, err := client.Recognize(context.Background(), []byte("img"))
	require.ErrorIs(t, err, service.ErrRecognitionUnavailable)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRecognize_MalformedDoesNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`garbage`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, config.BreakerConfig{MinRequests: 1, FailureRatio: 0.1, Timeout: time.Minute})

	for range 3 {
		_, err := client.Recognize(context.Background(), []byte("img"))
		require.ErrorIs(t, err, service.ErrRecognitionMalformed)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "png", imageFormat([]byte("\x89PNG\r\n\x1a\n....")))
	assert.Equal(t, "pdf", imageFormat([]byte("%PDF-1.7")))
	assert.Equal(t, "jpg", imageFormat([]byte("\xff\xd8\xff\xe0")))
}
