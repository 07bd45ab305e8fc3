package commands

import (
	"context"
	"strings"

	"TodoKeeper/internal/config"
)

type itemRenameCmd struct{}

func (itemRenameCmd) Name() string        { return "rename" }
func (itemRenameCmd) Description() string { return "Переименовать задачу" }
func (itemRenameCmd) Usage() string       { return "rename <id> <name>" }

func (itemRenameCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	name := nameArg(args[1:])
	if strings.TrimSpace(name) == "" {
		return ErrUsage
	}
	it, err := newClient(cfg).Rename(ctx, id, name)
	if err != nil {
		return err
	}
	printItem("Updated:", it)
	return nil
}

type itemToggleCmd struct{}

func (itemToggleCmd) Name() string        { return "toggle" }
func (itemToggleCmd) Description() string { return "Отметить задачу выполненной / снять отметку" }
func (itemToggleCmd) Usage() string       { return "toggle <id>" }

// Run не повторяет запрос при ошибке: toggle не идемпотентен.
func (itemToggleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	it, err := newClient(cfg).Toggle(ctx, id)
	if err != nil {
		return err
	}
	printItem("Toggled:", it)
	return nil
}

func init() {
	RegisterCmd(itemRenameCmd{})
	RegisterCmd(itemToggleCmd{})
}
