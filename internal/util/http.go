package util

import (
    "errors"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "strings"
    "time"
)

// MaxDownloadBytes caps how much of a remote response GetBytes will read.
const MaxDownloadBytes = 32 << 20

var (
    ErrResponseTooLarge = errors.New("response too large")
    ErrHostNotAllowed   = errors.New("host not allowed")
)

// Fetcher downloads http and https URLs. When Hosts is non-nil only those host
// names may be contacted, redirect targets included; "*" allows any host.
type Fetcher struct {
    Hosts    []string
    MaxBytes int64
    Timeout  time.Duration
}

func GetBytes(url string) ([]byte, error) {
    return Fetcher{}.Get(url)
}

// GetBytesLimit fetches url and fails with ErrResponseTooLarge when the body
// is longer than limit bytes.
func GetBytesLimit(url string, limit int64) ([]byte, error) {
    return Fetcher{MaxBytes: limit}.Get(url)
}

// Allowed reports whether u may be fetched.
func (f Fetcher) Allowed(u *url.URL) error {
    if u.Scheme != "http" && u.Scheme != "https" {
        return fmt.Errorf("%w: scheme %q", ErrHostNotAllowed, u.Scheme)
    }
    if f.Hosts == nil {
        return nil
    }
    host := strings.ToLower(u.Hostname())
    for _, h := range f.Hosts {
        if h == "*" || strings.ToLower(h) == host {
            return nil
        }
    }
    return fmt.Errorf("%w: %q", ErrHostNotAllowed, host)
}

func (f Fetcher) Get(rawURL string) ([]byte, error) {
    u, err := url.Parse(rawURL)
    if err != nil {
        return nil, err
    }
    if err := f.Allowed(u); err != nil {
        return nil, err
    }
    limit := f.MaxBytes
    if limit <= 0 {
        limit = MaxDownloadBytes
    }
    timeout := f.Timeout
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    client := http.Client{
        Timeout: timeout,
        CheckRedirect: func(req *http.Request, via []*http.Request) error {
            if len(via) >= 10 {
                return errors.New("stopped after 10 redirects")
            }
            return f.Allowed(req.URL)
        },
    }
    resp, err := client.Get(rawURL)
    if err != nil {
        return nil, err
    }
    defer resp.Body.Close()
    if resp.StatusCode != http.StatusOK {
        return nil, fmt.Errorf("get %s: non-200 response: %s", rawURL, resp.Status)
    }
    if resp.ContentLength > limit {
        return nil, fmt.Errorf("get %s: %w: %d bytes", rawURL, ErrResponseTooLarge, resp.ContentLength)
    }
    b, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
    if err != nil {
        return nil, err
    }
    if int64(len(b)) > limit {
        return nil, fmt.Errorf("get %s: %w: over %d bytes", rawURL, ErrResponseTooLarge, limit)
    }
    return b, nil
}
