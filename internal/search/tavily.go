// Package search provides web search for grounding agronomic answers.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable indicates the search backend could not be reached.
var ErrUnavailable = errors.New("search backend unavailable")

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Results holds the response to one search query.
type Results struct {
	Query   string   `json:"query"`
	Answer  string   `json:"answer,omitempty"`
	Results []Result `json:"results"`
}

// Client performs web searches.
type Client interface {
	Search(ctx context.Context, query string) (*Results, error)
}

// Config holds Tavily API settings.
type Config struct {
	Endpoint    string
	APIKey      string
	MaxResults  int
	SearchDepth string
	TimeoutMs   int
}

// DefaultConfig returns settings tuned for agronomy lookups. The
// advanced search depth gives better recall on planting windows and
// pest facts than the basic tier.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "https://api.tavily.com",
		MaxResults:  5,
		SearchDepth: "advanced",
		TimeoutMs:   15000,
	}
}

// TavilyClient implements Client against the Tavily search API.
type TavilyClient struct {
	cfg  Config
	http *http.Client
}

// NewTavilyClient creates a search client for the Tavily API.
func NewTavilyClient(cfg Config) *TavilyClient {
	return &TavilyClient{
		cfg:  cfg,
		http: &http.Client{},
	}
}

type tavilyRequest struct {
	APIKey        string `json:"api_key"`
	Query         string `json:"query"`
	Topic         string `json:"topic"`
	SearchDepth   string `json:"search_depth"`
	MaxResults    int    `json:"max_results"`
	IncludeAnswer bool   `json:"include_answer"`
}

type tavilyResponse struct {
	Answer  string `json:"answer"`
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (c *TavilyClient) Search(ctx context.Context, query string) (*Results, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := tavilyRequest{
		APIKey:        c.cfg.APIKey,
		Query:         query,
		Topic:         "general",
		SearchDepth:   c.cfg.SearchDepth,
		MaxResults:    c.cfg.MaxResults,
		IncludeAnswer: true,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/search", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed tavilyResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	out := &Results{Query: query, Answer: parsed.Answer}
	for _, r := range parsed.Results {
		out.Results = append(out.Results, Result{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return out, nil
}

// FormatForPrompt renders results as plain text suitable for feeding
// back to a language model.
func (r *Results) FormatForPrompt() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Search results for %q:\n", r.Query)
	if r.Answer != "" {
		fmt.Fprintf(&buf, "Summary: %s\n", r.Answer)
	}
	for i, res := range r.Results {
		fmt.Fprintf(&buf, "%d. %s (%s)\n%s\n", i+1, res.Title, res.URL, res.Content)
	}
	return buf.String()
}
