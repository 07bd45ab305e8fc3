package commands

import (
	"TodoKeeper/internal/cli/api"
	"TodoKeeper/internal/cli/model"
	"TodoKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "add".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "add <name>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out - общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"TodoKeeper CLI",
		"",
		"Usage:",
		"  todo [--base-url <host:port>] [--https] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-28s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// newClient создаёт API-клиент по адресу сервера из конфигурации.
func newClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL)
}

// printItem печатает задачу в многострочном виде.
func printItem(header string, it *model.Item) {
	fmt.Fprintln(Out, header)
	fmt.Fprintf(Out, "  id:      %s\n", it.ID)
	fmt.Fprintf(Out, "  name:    %s\n", it.Name)
	fmt.Fprintf(Out, "  done:    %t\n", it.IsDone)
	fmt.Fprintf(Out, "  created: %s\n", it.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(Out, "  updated: %s\n", it.UpdatedAt.Local().Format(time.DateTime))
}

// nameArg склеивает оставшиеся аргументы в имя: add Buy milk == add "Buy milk".
func nameArg(args []string) string {
	return strings.Join(args, " ")
}

// idArg возвращает id задачи из аргумента или ErrUsage, если он пустой.
func idArg(arg string) (string, error) {
	id := strings.TrimSpace(arg)
	if id == "" {
		return "", ErrUsage
	}
	return id, nil
}
