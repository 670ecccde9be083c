package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"mime"
	"net/url"
	"strconv"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
)

type payload struct {
	body        []byte
	contentType string
	status      int
}

func fetch(ctx context.Context, client Doer, target string, headers map[string]string) (payload, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return payload{}, err
	}

	applyHeaders(req, headers)
	resp, err := client.Do(req)
	if err != nil {
		return payload{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload{}, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	return payload{
		body:        body,
		contentType: mediaType(resp.Header.Get("Content-Type")),
		status:      resp.StatusCode,
	}, nil
}

func applyHeaders(req *fhttp.Request, headers map[string]string) {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["accept"]; !ok {
		headers["accept"] = "application/json, text/html;q=0.9, */*;q=0.8"
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
}

func mediaType(value string) string {
	if value == "" {
		return ""
	}
	parsed, _, err := mime.ParseMediaType(value)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return parsed
}

func joinURL(base string, path string, query url.Values) string {
	target := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

// stringValue returns the first value that renders as a non-empty string.
func stringValue(values ...any) string {
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return fmt.Sprintf("%d", v)
		case json.Number:
			return v.String()
		case bool:
			return fmt.Sprintf("%t", v)
		case map[string]any:
			if name := stringValue(v["name"]); name != "" {
				return name
			}
		}
	}
	return ""
}

func mapValue(value any, key string) any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}
