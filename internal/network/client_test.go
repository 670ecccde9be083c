package network

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
)

// newTunnelProxy starts an HTTP CONNECT proxy. dialAddr maps the requested
// host to the address actually dialed.
func newTunnelProxy(t *testing.T, hits *atomic.Int64, dialAddr func(host string) string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodConnect {
			http.Error(w, "CONNECT only", http.StatusMethodNotAllowed)
			return
		}
		hits.Add(1)

		upstream, err := net.Dial("tcp", dialAddr(r.Host))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		hijacker, ok := w.(http.Hijacker)
		if !ok {
			upstream.Close()
			http.Error(w, "hijack unsupported", http.StatusInternalServerError)
			return
		}
		conn, rw, err := hijacker.Hijack()
		if err != nil {
			upstream.Close()
			return
		}
		_, _ = conn.Write([]byte("HTTP/1.1 200 Connection established\r\n\r\n"))

		go func() {
			_, _ = io.Copy(upstream, rw)
			upstream.Close()
		}()
		_, _ = io.Copy(conn, upstream)
		conn.Close()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newStatusServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, http.StatusText(status))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func hostOf(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u.Host
}

func getStatus(client *Client, target string) (int, error) {
	req, err := fhttp.NewRequest(fhttp.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func TestClientBenchesTheProxyThatCarriedTheRequest(t *testing.T) {
	target := newStatusServer(t, http.StatusOK)
	blocked := newStatusServer(t, http.StatusTooManyRequests)

	var hitsA, hitsB atomic.Int64
	proxyA := newTunnelProxy(t, &hitsA, func(host string) string { return host })
	proxyB := newTunnelProxy(t, &hitsB, func(string) string { return hostOf(t, blocked.URL) })

	rotator, err := NewRotator([]string{proxyA.URL, proxyB.URL}, time.Hour)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	client, err := NewClient(rotator, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	var got []int
	for i := 0; i < 4; i++ {
		status, err := getStatus(client, target.URL)
		if err != nil {
			t.Fatalf("Do() #%d error = %v", i, err)
		}
		got = append(got, status)
	}

	want := []int{200, 429, 200, 200}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statuses = %v, want %v", got, want)
		}
	}

	proxies := rotator.Proxies()
	if rotator.Benched(proxies[0]) {
		t.Fatalf("proxy A should stay active")
	}
	if !rotator.Benched(proxies[1]) {
		t.Fatalf("proxy B answered 429 and should be benched")
	}
	if hitsB.Load() != 1 {
		t.Fatalf("proxy B tunnels = %d, want 1", hitsB.Load())
	}
}

func TestClientConcurrentRequestsThroughProxies(t *testing.T) {
	target := newStatusServer(t, http.StatusOK)

	var hitsA, hitsB atomic.Int64
	passthrough := func(host string) string { return host }
	proxyA := newTunnelProxy(t, &hitsA, passthrough)
	proxyB := newTunnelProxy(t, &hitsB, passthrough)

	rotator, err := NewRotator([]string{proxyA.URL, proxyB.URL}, time.Hour)
	if err != nil {
		t.Fatalf("NewRotator() error = %v", err)
	}
	client, err := NewClient(rotator, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := getStatus(client, target.URL)
			if err != nil {
				errs <- err.Error()
				return
			}
			if status != http.StatusOK {
				errs <- http.StatusText(status)
			}
		}()
	}
	wg.Wait()
	close(errs)

	var failures []string
	for msg := range errs {
		failures = append(failures, msg)
	}
	if len(failures) > 0 {
		t.Fatalf("concurrent Do() failures: %s", strings.Join(failures, "; "))
	}
	if hitsA.Load() == 0 || hitsB.Load() == 0 {
		t.Fatalf("tunnels A=%d B=%d, want both proxies used", hitsA.Load(), hitsB.Load())
	}
}

func TestClientDirect(t *testing.T) {
	target := newStatusServer(t, http.StatusOK)
	client, err := NewClient(nil, time.Second)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	status, err := getStatus(client, target.URL)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
}
