package commands

import (
	"context"
	"strings"

	"TodoKeeper/internal/config"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "add" }
func (itemAddCmd) Description() string { return "Добавить задачу" }
func (itemAddCmd) Usage() string       { return "add <name>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	name := nameArg(args)
	if strings.TrimSpace(name) == "" {
		return ErrUsage
	}
	it, err := newClient(cfg).Create(ctx, name)
	if err != nil {
		return err
	}
	printItem("Created:", it)
	return nil
}

func init() { RegisterCmd(itemAddCmd{}) }
