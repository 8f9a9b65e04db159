// Package jd acquires job description text from a file, a URL or standard input.
package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// StdinInput selects standard input as the job description source.
const StdinInput = "-"

const maxBodyBytes = 5 << 20

// Fetch retrieves a job description. input is "-" for stdin, an http(s) URL, or a file path.
func Fetch(ctx context.Context, input string) (content string, err error) {
	content, err = fetch(ctx, input, os.Stdin)
	return content, err
}

func fetch(ctx context.Context, input string, stdin io.Reader) (content string, err error) {
	if input == StdinInput {
		content, err = fetchFromReader(stdin)
		if err != nil {
			err = errors.Wrap(err, "failed to read JD from stdin")
		}
		return content, err
	}

	if IsURL(input) {
		content, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch JD from URL: %s", input)
			return content, err
		}
		return content, err
	}

	content, err = fetchFromFile(input)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch JD from file: %s", input)
		return content, err
	}

	return content, err
}

// IsURL reports whether input is fetched over HTTP rather than read from disk.
func IsURL(input string) (ok bool) {
	parsedURL, err := url.Parse(input)
	ok = err == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https")
	return ok
}

// fetchFromFile reads job description from a file.
func fetchFromFile(path string) (content string, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read file: %s", path)
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.New("file is empty")
		return content, err
	}

	return content, err
}

func fetchFromReader(r io.Reader) (content string, err error) {
	var data []byte
	data, err = io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		err = errors.Wrap(err, "failed to read input")
		return content, err
	}

	content = string(data)
	if strings.TrimSpace(content) == "" {
		err = errors.New("input is empty")
		return content, err
	}

	return content, err
}

// fetchFromURL retrieves job description from a URL.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	req.Header.Set("User-Agent", "cv-tailor/1.0")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	content, err = htmlToText(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return content, err
	}

	if content == "" {
		err = errors.New("fetched content is empty after processing")
		return content, err
	}

	return content, err
}

const blockElements = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer, ul, ol"

// blockBreak marks block boundaries while source newlines are still collapsed as whitespace.
const blockBreak = "\u2029"

// htmlToText drops scripts and styles and returns the visible text, one block per line
// with runs of whitespace collapsed.
func htmlToText(r io.Reader) (text string, err error) {
	var doc *goquery.Document
	doc, err = goquery.NewDocumentFromReader(r)
	if err != nil {
		err = errors.Wrap(err, "failed to parse HTML")
		return text, err
	}

	doc.Find("script, style, noscript, template").Remove()
	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml(blockBreak)
	})

	lines := strings.Split(doc.Text(), blockBreak)
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}

	text = strings.Join(kept, "\n")
	return text, err
}
