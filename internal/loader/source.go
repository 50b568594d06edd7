package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 8 << 20

// Source fetches raw site documents by path relative to the site root.
// When bust is set the source must bypass any cache between it and the origin.
type Source interface {
	Fetch(ctx context.Context, path string, bust bool) ([]byte, error)
}

// NewSource returns an HTTPSource for http(s) locations and a DirSource otherwise.
func NewSource(location string, client *http.Client) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, client)
	}
	return DirSource{Root: location}
}

// HTTPSource fetches documents over HTTP.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client

	now       func() time.Time
	mu        sync.Mutex
	lastToken int64
}

// NewHTTPSource creates an HTTPSource. A nil client uses a 20s-timeout default.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		now:     time.Now,
	}
}

// token returns the cache-busting value: the current unix time in
// milliseconds, bumped so it never repeats or goes backwards.
func (s *HTTPSource) token() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.now().UnixMilli()
	if t <= s.lastToken {
		t = s.lastToken + 1
	}
	s.lastToken = t
	return t
}

// Fetch GETs BaseURL/path, adding ts={unix_ms} when bust is set.
func (s *HTTPSource) Fetch(ctx context.Context, path string, bust bool) ([]byte, error) {
	u, err := url.Parse(s.BaseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Err: fmt.Errorf("building url: %w", err)}
	}
	if bust {
		q := u.Query()
		q.Set("ts", strconv.FormatInt(s.token(), 10))
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")
	if bust {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Status: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}
	return body, nil
}

// DirSource reads documents from a local site checkout. Reads are never cached,
// so bust is ignored.
type DirSource struct {
	Root string
}

func (s DirSource) Fetch(ctx context.Context, path string, _ bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Path: path, Kind: ErrNetwork, Err: err}
	}
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(path)))
	if err != nil {
		fe := &FetchError{Path: path, Kind: ErrNetwork, Err: err}
		if errors.Is(err, fs.ErrNotExist) {
			fe.Status = http.StatusNotFound
		}
		return nil, fe
	}
	return data, nil
}
