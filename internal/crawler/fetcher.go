package crawler

import (
	"context"
	"fmt"
	"io"
	"mime"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

type Fetcher struct {
	client      *resty.Client
	urlTemplate string
}

// NewFetcher builds a Fetcher for pages formatted from urlTemplate.
// The client never retries and sets no timeout of its own.
func NewFetcher(urlTemplate string) *Fetcher {
	return NewFetcherWithClient(resty.New(), urlTemplate)
}

func NewFetcherWithClient(client *resty.Client, urlTemplate string) *Fetcher {
	return &Fetcher{client: client, urlTemplate: urlTemplate}
}

// Fetch downloads one listing page and returns its body as UTF-8 text.
//
// A 4xx/5xx status yields a *SkipError. Transport failures, and bodies that
// cannot be read or decoded (*DecodeError), are returned as fatal errors.
func (f *Fetcher) Fetch(ctx context.Context, page int) (string, error) {
	targetURL := PageURL(f.urlTemplate, page)

	resp, err := f.client.R().SetContext(ctx).SetDoNotParseResponse(true).Get(targetURL)
	if err != nil {
		return "", fmt.Errorf("fetch page %d (%s): %w", page, targetURL, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return "", &SkipError{Page: page, StatusCode: resp.StatusCode()}
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", &DecodeError{Page: page, Err: err}
	}
	text, err := decodeBody(raw, resp.Header().Get("Content-Type"))
	if err != nil {
		return "", &DecodeError{Page: page, Err: err}
	}
	return text, nil
}

// decodeBody converts body to UTF-8 using the charset parameter of the
// Content-Type header. A missing or unknown charset means UTF-8; invalid
// sequences are replaced with U+FFFD rather than rejected.
func decodeBody(body []byte, contentType string) (string, error) {
	if len(body) == 0 {
		return "", nil
	}

	enc, _ := charset.Lookup("utf-8")
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if e, _ := charset.Lookup(params["charset"]); e != nil {
			enc = e
		}
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
