package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-briefing/internal/domain"
)

// ErrSourceNotConfigured is returned when neither a URL nor a path is set.
var ErrSourceNotConfigured = errors.New("roster: no source configured")

// Source yields the raw bytes of an attendance export.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// maxExportBytes caps a downloaded export.
const maxExportBytes = 32 << 20

// ErrExportTooLarge is returned when a download exceeds maxExportBytes.
var ErrExportTooLarge = errors.New("roster: export too large")

// HTTPSource downloads a published CSV.
type HTTPSource struct {
	URL    string
	Client *http.Client
	// MaxBytes overrides maxExportBytes when positive.
	MaxBytes int64
}

func (s *HTTPSource) limit() int64 {
	if s.MaxBytes > 0 {
		return s.MaxBytes
	}
	return maxExportBytes
}

// NewHTTPSource creates a source with the given per-request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Fetch performs a single GET, bypassing intermediary caches.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.limit()+1))
	if err != nil {
		return nil, fmt.Errorf("read roster body: %w", err)
	}
	if int64(len(body)) > s.limit() {
		return nil, ErrExportTooLarge
	}
	return body, nil
}

// FileSource reads an export from disk.
type FileSource struct {
	Path string
}

// Fetch reads the file. The context is checked before reading only.
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	return data, nil
}

// Cache stores raw exports between requests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedSource serves from cache when possible and refills it on miss.
// Cache failures are logged and never fail the fetch.
type CachedSource struct {
	next   Source
	cache  Cache
	key    string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource wraps next. A nil cache or zero ttl returns next unchanged.
func NewCachedSource(next Source, cache Cache, key string, ttl time.Duration, logger *zap.Logger) Source {
	if cache == nil || ttl <= 0 {
		return next
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{next: next, cache: cache, key: key, ttl: ttl, logger: logger}
}

// Fetch implements Source.
func (s *CachedSource) Fetch(ctx context.Context) ([]byte, error) {
	data, ok, err := s.cache.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("roster cache read failed", zap.String("key", s.key), zap.Error(err))
	} else if ok {
		return data, nil
	}

	data, err = s.next.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, s.key, data, s.ttl); err != nil {
		s.logger.Warn("roster cache write failed", zap.String("key", s.key), zap.Error(err))
	}
	return data, nil
}

// Loader yields parsed attendance records.
type Loader interface {
	LoadRecords(ctx context.Context) ([]domain.AttendanceRecord, error)
}

// SourceLoader parses whatever its Source returns.
type SourceLoader struct {
	Source Source
}

// LoadRecords implements Loader. A reachable but empty export yields no
// records rather than an error.
func (l SourceLoader) LoadRecords(ctx context.Context) ([]domain.AttendanceRecord, error) {
	if l.Source == nil {
		return nil, ErrSourceNotConfigured
	}
	data, err := l.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	records, err := Parse(string(data))
	if errors.Is(err, ErrEmptyInput) {
		return []domain.AttendanceRecord{}, nil
	}
	return records, err
}

// NewSource picks the URL when set, then the path.
func NewSource(url, path string, timeout time.Duration) (Source, error) {
	switch {
	case url != "":
		return NewHTTPSource(url, timeout), nil
	case path != "":
		return FileSource{Path: path}, nil
	default:
		return nil, ErrSourceNotConfigured
	}
}
