// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry manages the mapping of command names to their implementations.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// NewBuiltinRegistry creates a Registry holding cat, echo, head, uniq and wc
// configured with opts.
func NewBuiltinRegistry(opts Options) *Registry {
	opts = opts.withDefaults()

	r := NewRegistry()
	r.Register(newCatCommand(opts))
	r.Register(newEchoCommand())
	r.Register(newHeadCommand(opts))
	r.Register(newUniqCommand(opts))
	r.Register(newWcCommand(opts))
	return r
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("textutil: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("textutil: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by name.
// Returns nil, false if the command is not registered.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a command by name with the given context and arguments.
// The args slice should include the command name as args[0].
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("[textr] %s: command not found", name)
	}
	if len(args) == 0 {
		args = []string{name}
	}
	return cmd.Run(ctx, args)
}
