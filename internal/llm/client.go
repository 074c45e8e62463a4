// Package llm sends system snapshots and user questions to the OpenAI
// chat completions API and streams the answers back.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	constants "sysdash/config"
)

// NotConfiguredMessage is shown when a query is requested without an
// API key present.
const NotConfiguredMessage = "OpenAI API key not configured."

// Config carries the credentials and knobs for one client.
type Config struct {
	APIKey    string
	Org       string
	Model     string
	Endpoint  string
	MaxTokens int
}

// Client talks to the chat completions endpoint. Use New to build one.
type Client struct {
	cfg  Config
	http *http.Client
}

// New fills in defaults for any zero-valued knobs and returns a ready
// client.
func New(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = constants.DEFAULT_OPENAI_MODEL
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = constants.OPENAI_CHAT_URL
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = constants.DEFAULT_MAX_TOKENS
	}
	// Timeouts bound connecting and the wait for headers only; the
	// streamed body stays open as long as deltas keep arriving.
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: 30 * time.Second}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
	Stream    bool          `json:"stream"`
}

type chatChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Ask sends the snapshot and question, writes answer fragments to out
// as they arrive, and returns the trimmed full answer.
func (c *Client) Ask(ctx context.Context, statsJSON, question string, out io.Writer) (string, error) {
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: constants.SYSTEM_PROMPT},
			{Role: "user", Content: statsJSON},
			{Role: "user", Content: question},
		},
		MaxTokens: c.cfg.MaxTokens,
		Stream:    true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("User-Agent", constants.HEADER_USER_AGENT)
	if c.cfg.Org != "" {
		req.Header.Set("OpenAI-Organization", c.cfg.Org)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("OpenAI API returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	answer, err := readStream(resp.Body, out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// readStream consumes a server-sent-events body, forwarding each delta
// to out and accumulating the whole answer.
func readStream(body io.Reader, out io.Writer) (string, error) {
	var full strings.Builder
	sc := bufio.NewScanner(body)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}
		var chunk chatChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			// Skip keep-alives and partial frames.
			continue
		}
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			full.WriteString(choice.Delta.Content)
			if out != nil {
				fmt.Fprint(out, choice.Delta.Content)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("reading response stream: %w", err)
	}
	return full.String(), nil
}
