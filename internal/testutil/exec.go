package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output []byte
	Err    error
}

// Call is one recorded invocation.
type Call struct {
	// Line is "name arg1 arg2 ...".
	Line string
	// Env is the map passed to RunWithEnv, nil for Run.
	Env map[string]string
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by command line; the longest registered prefix of the
// executed line wins when there is no exact match.
type FakeCommander struct {
	Responses map[string]Response

	// Calls records every execution in order.
	Calls []Call

	// DefaultResponse is returned when no key matches.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{Responses: make(map[string]Response)}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{Output: []byte(output), Err: err}
}

// Run looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	return c.record(nil, name, args)
}

// RunWithEnv records env alongside the call and answers like Run.
func (c *FakeCommander) RunWithEnv(_ context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	return c.record(env, name, args)
}

func (c *FakeCommander) record(env map[string]string, name string, args []string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	c.Calls = append(c.Calls, Call{Line: line, Env: env})

	if resp, ok := c.Responses[line]; ok {
		return resp.Output, resp.Err
	}
	best := ""
	for key := range c.Responses {
		if strings.HasPrefix(line, key) && len(key) > len(best) {
			best = key
		}
	}
	if best != "" {
		resp := c.Responses[best]
		return resp.Output, resp.Err
	}
	if c.DefaultResponse != nil {
		return c.DefaultResponse.Output, c.DefaultResponse.Err
	}
	return nil, fmt.Errorf("FakeCommander: no response registered for %q", line)
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	return c.CallCount(prefix) > 0
}

// CallCount returns the number of executions matching the given prefix.
func (c *FakeCommander) CallCount(prefix string) int {
	n := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call.Line, prefix) {
			n++
		}
	}
	return n
}
