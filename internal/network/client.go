package network

import (
	"errors"
	"math/rand"
	"net/url"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var ErrRequestFailed = errors.New("request failed")

const DefaultTimeout = 30 * time.Second

// Client sends upstream requests, optionally through a rotating proxy pool.
// Each proxy gets its own tls-client, so concurrent requests never share or
// swap a transport. The client map is fixed after NewClient.
type Client struct {
	direct   tls_client.HttpClient
	viaProxy map[string]tls_client.HttpClient
	rotator  *Rotator

	mu         sync.Mutex
	userAgents []string
	rand       *rand.Rand
}

// NewClient builds a client with the given request timeout. A nil rotator
// sends every request directly.
func NewClient(rotator *Rotator, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		rotator:    rotator,
		userAgents: append([]string{}, userAgents...),
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if rotator == nil {
		direct, err := newHTTPClient(timeout, "")
		if err != nil {
			return nil, err
		}
		c.direct = direct
		return c, nil
	}

	c.viaProxy = make(map[string]tls_client.HttpClient, rotator.Len())
	for _, proxy := range rotator.Proxies() {
		client, err := newHTTPClient(timeout, proxy.String())
		if err != nil {
			return nil, err
		}
		c.viaProxy[proxy.String()] = client
	}
	return c, nil
}

func newHTTPClient(timeout time.Duration, proxyURL string) (tls_client.HttpClient, error) {
	jar, _ := fhttpcookiejar.New(nil)
	options := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(int(timeout / time.Second)),
		tls_client.WithCookieJar(jar),
	}
	if proxyURL != "" {
		options = append(options, tls_client.WithProxyUrl(proxyURL))
	}
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}

// Do sends req. The proxy that carried the request is benched by the rotator
// when it answers 403 or 429.
func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	client, proxy, err := c.pick()
	if err != nil {
		return nil, err
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.randomUA())
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) pick() (tls_client.HttpClient, *url.URL, error) {
	if c.rotator == nil {
		return c.direct, nil, nil
	}
	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, nil, err
	}
	client, ok := c.viaProxy[proxy.String()]
	if !ok {
		return nil, nil, ErrNoProxies
	}
	return client, proxy, nil
}

func (c *Client) randomUA() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.userAgents) == 0 {
		return ""
	}
	return c.userAgents[c.rand.Intn(len(c.userAgents))]
}
