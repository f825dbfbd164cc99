package services

import (
	"context"
	"fmt"
	"newswatch/domain"
	"strings"
)

// Command is one prefixed chat command.
type Command interface {
	Name() string
	Handle(ctx context.Context, c *CommandContext) error
}

// CommandContext carries the parsed invocation of a command.
type CommandContext struct {
	Message domain.InboundMessage
	Prefix  string
	Name    string
	Args    []string
}

// Arg returns the i-th argument and whether it is present.
func (c *CommandContext) Arg(i int) (string, bool) {
	if i < 0 || i >= len(c.Args) {
		return "", false
	}
	return c.Args[i], true
}

// Usage is the reply sent when a command is invoked without its URL.
func (c *CommandContext) Usage() string {
	return UsageText(c.Prefix, c.Name)
}

func UsageText(prefix, name string) string {
	return fmt.Sprintf("Usage: %s%s <URL>", prefix, name)
}

// Router maps prefixed messages to registered commands. Names match exactly.
type Router struct {
	prefix   string
	cmdIndex map[string]Command
}

func NewRouter(prefix string) *Router {
	return &Router{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
	}
}

func (r *Router) Prefix() string { return r.prefix }

func (r *Router) Register(cmds ...Command) *Router {
	for _, cmd := range cmds {
		r.cmdIndex[cmd.Name()] = cmd
	}
	return r
}

// Route runs the command addressed by msg. It reports false when msg is not a known command;
// unknown commands are ignored.
func (r *Router) Route(ctx context.Context, msg domain.InboundMessage) (bool, error) {
	if !strings.HasPrefix(msg.Content, r.prefix) {
		return false, nil
	}

	// The name must follow the prefix directly.
	rest := strings.TrimPrefix(msg.Content, r.prefix)
	parts := strings.Fields(rest)
	if len(parts) == 0 || !strings.HasPrefix(rest, parts[0]) {
		return false, nil
	}

	name := parts[0]
	cmd, ok := r.cmdIndex[name]
	if !ok {
		return false, nil
	}

	return true, cmd.Handle(ctx, &CommandContext{
		Message: msg,
		Prefix:  r.prefix,
		Name:    name,
		Args:    parts[1:],
	})
}
