package scraper

import (
	"io"
	"strings"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
)

type fakeResponse struct {
	status      int
	contentType string
	body        string
}

// fakeDoer answers every request with the same response and records the URLs it saw.
type fakeDoer struct {
	mu       sync.Mutex
	response fakeResponse
	err      error
	urls     []string
}

func (f *fakeDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	f.mu.Lock()
	f.urls = append(f.urls, req.URL.String())
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	header := fhttp.Header{}
	if f.response.contentType != "" {
		header.Set("Content-Type", f.response.contentType)
	}
	status := f.response.status
	if status == 0 {
		status = fhttp.StatusOK
	}
	return &fhttp.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(f.response.body)),
	}, nil
}

func (f *fakeDoer) lastURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.urls) == 0 {
		return ""
	}
	return f.urls[len(f.urls)-1]
}
