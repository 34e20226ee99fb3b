// Package llm talks to a local Ollama server. It is an optional
// collaborator: callers always keep a deterministic fallback for when the
// model is disabled, slow or unreachable.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// GenerateRequest is a single-shot prompt.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	// JSON asks the server to constrain output to a JSON object.
	JSON bool
}

// ChatRequest carries a whole conversation; the model answers the last turn.
type ChatRequest struct {
	Task     TaskType
	Messages []Message
}

// Response is the text the model produced.
type Response struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*Response, error)
	Chat(ctx context.Context, req ChatRequest) (*Response, error)
	// Available reports whether the server answers at all.
	Available(ctx context.Context) bool
}

type ollamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient returns a Client for cfg. A disabled config yields a
// client whose calls fail fast with ErrDisabled.
func NewOllamaClient(cfg Config, observer Observer) Client {
	if !cfg.Enabled {
		return disabledClient{}
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateBody struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Format  string        `json:"format,omitempty"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type generateReply struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

type chatBody struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type chatReply struct {
	Model   string  `json:"model"`
	Message Message `json:"message"`
}

func (c *ollamaClient) options(task TaskType) ollamaOptions {
	tc := c.cfg.Tasks[task]
	return ollamaOptions{Temperature: tc.Temperature, NumPredict: tc.MaxTokens}
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*Response, error) {
	body := generateBody{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Options: c.options(req.Task),
	}
	if req.JSON {
		body.Format = "json"
	}
	var reply generateReply
	latency, err := c.call(ctx, req.Task, "/api/generate", body, &reply)
	if err != nil {
		return nil, err
	}
	return &Response{Text: reply.Response, Model: reply.Model, LatencyMs: latency}, nil
}

func (c *ollamaClient) Chat(ctx context.Context, req ChatRequest) (*Response, error) {
	body := chatBody{
		Model:    c.cfg.Model,
		Messages: req.Messages,
		Options:  c.options(req.Task),
	}
	var reply chatReply
	latency, err := c.call(ctx, req.Task, "/api/chat", body, &reply)
	if err != nil {
		return nil, err
	}
	return &Response{Text: reply.Message.Content, Model: reply.Model, LatencyMs: latency}, nil
}

// call posts body to path with the task timeout and retry policy, decoding
// the reply into out. It reports every call to the observer.
func (c *ollamaClient) call(ctx context.Context, task TaskType, path string, body, out any) (int64, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TaskTimeout(task))*time.Millisecond)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshaling request: %w", err)
	}

	var lastErr error
	attempts := 0
	for attempts < 1+c.cfg.MaxRetries {
		attempts++
		lastErr = c.post(ctx, path, payload, out)
		if lastErr == nil || ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	event := CallEvent{
		Task:      task,
		Endpoint:  path,
		Model:     c.cfg.Model,
		Attempts:  attempts,
		LatencyMs: latency,
		Success:   lastErr == nil,
	}

	var callErr error
	switch {
	case lastErr == nil:
	case ctx.Err() != nil:
		callErr = ErrTimeout
	case isConnectionError(lastErr):
		callErr = ErrOllamaUnavailable
	default:
		callErr = fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
	event.ErrorCode = ErrorCode(callErr)
	c.observer.OnCallComplete(event)
	return latency, callErr
}

func (c *ollamaClient) post(ctx context.Context, path string, payload []byte, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(data))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

type disabledClient struct{}

func (disabledClient) Generate(context.Context, GenerateRequest) (*Response, error) {
	return nil, ErrDisabled
}

func (disabledClient) Chat(context.Context, ChatRequest) (*Response, error) {
	return nil, ErrDisabled
}

func (disabledClient) Available(context.Context) bool { return false }

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// ErrorCode maps an llm error to the short code used in logs.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrOllamaUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrDisabled):
		return "DISABLED"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
