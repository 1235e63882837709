// Package ocr talks to the CLOVA receipt recognition API.
package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"league/config"
	"league/internal/domain/service"
	"league/internal/errors"
	"league/internal/infra/metrics"
	"league/internal/util"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	breakerName = "receipt-ocr"
	serviceName = "clova_ocr"

	secretHeader   = "X-OCR-SECRET"
	apiVersion     = "V2"
	maxErrorBody   = 4096
	maxResponseLen = 4 << 20
)

type clovaClient struct {
	endpoint   string
	secret     string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[*service.Recognition]
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewClovaRecognizer builds a ReceiptRecognizer guarded by a client-side rate
// limit and a circuit breaker.
func NewClovaRecognizer(cfg *config.ReceiptConfig, m *metrics.Metrics, logger *slog.Logger) (service.ReceiptRecognizer, error) {
	if cfg == nil || strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("receipt endpoint is required")
	}

	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 5
	}

	client := &clovaClient{
		endpoint:   cfg.Endpoint,
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
	client.breaker = gobreaker.NewCircuitBreaker[*service.Recognition](breakerSettings(cfg.Breaker, m, logger))
	m.SetBreakerState(breakerName, gobreaker.StateClosed)

	return client, nil
}

func breakerSettings(cfg config.BreakerConfig, m *metrics.Metrics, logger *slog.Logger) gobreaker.Settings {
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.FailureRatio <= 0 {
		cfg.FailureRatio = 0.5
	}
	if cfg.MinRequests == 0 {
		cfg.MinRequests = 5
	}

	return gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		// Unreadable receipts are answers, not outages.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, service.ErrRecognitionMalformed)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			m.SetBreakerState(name, to)
		},
	}
}

type recognitionRequest struct {
	Version   string         `json:"version"`
	RequestID string         `json:"requestId"`
	Timestamp int64          `json:"timestamp"`
	Images    []requestImage `json:"images"`
}

type requestImage struct {
	Format string `json:"format"`
	Name   string `json:"name"`
	Data   string `json:"data"`
}

type textField struct {
	Text string `json:"text"`
}

type recognitionResponse struct {
	Images []struct {
		InferResult string `json:"inferResult"`
		Message     string `json:"message"`
		Receipt     *struct {
			Result struct {
				StoreInfo struct {
					Name      textField   `json:"name"`
					Addresses []textField `json:"addresses"`
				} `json:"storeInfo"`
			} `json:"result"`
		} `json:"receipt"`
	} `json:"images"`
}

// Recognize sends one receipt photo for recognition.
func (c *clovaClient) Recognize(ctx context.Context, image []byte) (*service.Recognition, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, errors.Mark(service.ErrRecognitionUnavailable, err)
	}

	recognition, err := c.breaker.Execute(func() (*service.Recognition, error) {
		return c.call(ctx, image)
	})
	if errors.IsAny(err, gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests) {
		return nil, errors.Mark(service.ErrRecognitionUnavailable, err)
	}
	if err != nil {
		return nil, err
	}

	return recognition, nil
}

func (c *clovaClient) call(ctx context.Context, image []byte) (*service.Recognition, error) {
	body, err := json.Marshal(recognitionRequest{
		Version:   apiVersion,
		RequestID: uuid.NewString(),
		Timestamp: c.now().UnixMilli(),
		Images: []requestImage{{
			Format: imageFormat(image),
			Name:   "receipt",
			Data:   base64.StdEncoding.EncodeToString(image),
		}},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.secret)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveExternal(serviceName, "error", time.Since(start))
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.WithStack(err)
		}

		return nil, errors.Mark(service.ErrRecognitionUnavailable, err)
	}
	defer resp.Body.Close()
	c.metrics.ObserveExternal(serviceName, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, errors.Mark(service.ErrRecognitionUnavailable,
			errors.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	var decoded recognitionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseLen)).Decode(&decoded); err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, errors.Mark(service.ErrRecognitionMalformed, err)
	}
	if len(decoded.Images) == 0 {
		return nil, errors.Mark(service.ErrRecognitionMalformed, errors.New("no image result"))
	}

	first := decoded.Images[0]
	recognition := &service.Recognition{Status: first.InferResult}
	if first.Receipt != nil {
		storeInfo := first.Receipt.Result.StoreInfo
		recognition.StoreName = strings.TrimSpace(storeInfo.Name.Text)
		if len(storeInfo.Addresses) > 0 {
			recognition.StoreAddress = strings.TrimSpace(storeInfo.Addresses[0].Text)
		}
	}

	c.logger.DebugContext(ctx, "Receipt recognized",
		slog.String("infer_result", first.InferResult),
		slog.String("message", first.Message),
		slog.String("image_sha256", util.Checksum(image)),
		slog.String("image_size", util.FormatBytes(int64(len(image)))),
	)

	return recognition, nil
}

// imageFormat names the upload format the API expects, defaulting to jpg.
func imageFormat(image []byte) string {
	switch http.DetectContentType(image) {
	case "image/png":
		return "png"
	case "application/pdf":
		return "pdf"
	default:
		return "jpg"
	}
}
