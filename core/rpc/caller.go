package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// ErrBackendFailure is returned when the backend answers a call with a failure status.
var ErrBackendFailure = errors.New("backend call failed")

// Caller is the asynchronous request/response primitive used to reach the plugin backend.
type Caller interface {
	// Call invokes command with args and decodes the response into out.
	// out may be nil when the response is not needed.
	Call(ctx context.Context, command string, args any, out any) error
}

// StatusError describes a non-2xx transport answer.
type StatusError struct {
	Command string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Command, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrBackendFailure
}

// HTTPCaller reaches the backend over HTTP, one POST per command.
type HTTPCaller struct {
	endpoint string
	token    string
	timeout  time.Duration
	client   *fiber.Client
}

// NewHTTPCaller builds a caller from configuration.
func NewHTTPCaller(cfg Config) *HTTPCaller {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPCaller{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		token:    cfg.Token,
		timeout:  timeout,
		client: &fiber.Client{
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}
}

type callResult struct {
	code int
	body []byte
	err  error
}

// Call implements Caller.
func (c *HTTPCaller) Call(ctx context.Context, command string, args any, out any) error {
	if args == nil {
		args = struct{}{}
	}

	agent := c.client.Post(c.endpoint + "/rpc/" + command)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	agent.JSON(args)
	agent.Timeout(c.timeout)

	done := make(chan callResult, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- callResult{code: code, body: body, err: errors.Join(errs...)}
	}()

	var res callResult
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", command, ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return fmt.Errorf("%s: %w", command, res.err)
	}
	if res.code < 200 || res.code > 299 {
		return &StatusError{Command: command, Code: res.code, Body: truncate(string(res.body), 512)}
	}
	if out == nil || len(res.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", command, err)
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
