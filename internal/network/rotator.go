package network

import (
	"errors"
	"net/url"
	"sync"
	"time"
)

var ErrNoProxies = errors.New("no proxies available")

// DefaultBenchDuration is how long a blocked proxy sits out.
const DefaultBenchDuration = 10 * time.Minute

// Rotator hands out proxies round-robin and skips proxies that were
// recently rate limited or blocked.
type Rotator struct {
	mu          sync.Mutex
	proxies     []*url.URL
	next        int
	benchFor    time.Duration
	benchedTill map[string]time.Time
	now         func() time.Time
}

func NewRotator(raw []string, benchFor time.Duration) (*Rotator, error) {
	r := &Rotator{
		benchFor:    benchFor,
		benchedTill: map[string]time.Time{},
		now:         time.Now,
	}
	for _, proxy := range raw {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, err
		}
		r.proxies = append(r.proxies, u)
	}
	return r, nil
}

// Len returns the number of configured proxies.
func (r *Rotator) Len() int {
	return len(r.proxies)
}

// Proxies returns the configured proxies in rotation order.
func (r *Rotator) Proxies() []*url.URL {
	return append([]*url.URL(nil), r.proxies...)
}

// Benched reports whether proxy is currently sitting out.
func (r *Rotator) Benched(proxy *url.URL) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.benched(proxy)
}

// Next returns the next proxy that is not benched.
func (r *Rotator) Next() (*url.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for range r.proxies {
		proxy := r.proxies[r.next]
		r.next = (r.next + 1) % len(r.proxies)
		if !r.benched(proxy) {
			return proxy, nil
		}
	}
	return nil, ErrNoProxies
}

// Report benches proxy when the upstream answered 403 or 429.
func (r *Rotator) Report(proxy *url.URL, status int) {
	if proxy == nil || !blockedStatus(status) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.benchedTill[proxy.String()] = r.now().Add(r.benchFor)
}

func blockedStatus(status int) bool {
	return status == 403 || status == 429
}

func (r *Rotator) benched(proxy *url.URL) bool {
	until, ok := r.benchedTill[proxy.String()]
	if !ok {
		return false
	}
	if r.now().After(until) {
		delete(r.benchedTill, proxy.String())
		return false
	}
	return true
}
