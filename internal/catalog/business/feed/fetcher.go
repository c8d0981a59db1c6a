package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher определяет интерфейс для получения сырого фида по URL.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]byte, int, error)
}

type HTTPFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func NewHTTPFetcher(timeout time.Duration, ratePerSecond float64) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// Fetch возвращает тело и статус ответа. Не-200 статус здесь не ошибка:
// прокси-эндпоинту нужно зеркалировать его вместе с телом.
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]byte, int, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read feed body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// BuildKeyedURL подставляет ключ в шаблон прокси-URL. Шаблон с плейсхолдером
// {key} заменяется напрямую, иначе ключ добавляется query-параметром.
func BuildKeyedURL(template, key string) string {
	if strings.Contains(template, "{key}") {
		return strings.ReplaceAll(template, "{key}", url.QueryEscape(key))
	}
	sep := "?"
	if strings.Contains(template, "?") {
		sep = "&"
	}
	return template + sep + "key=" + url.QueryEscape(key)
}
