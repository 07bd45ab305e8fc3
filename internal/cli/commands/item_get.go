package commands

import (
	"context"

	"TodoKeeper/internal/config"
)

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "get" }
func (itemGetCmd) Description() string { return "Показать задачу по id" }
func (itemGetCmd) Usage() string       { return "get <id>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	it, err := newClient(cfg).Get(ctx, id)
	if err != nil {
		return err
	}
	printItem("Item:", it)
	return nil
}

func init() { RegisterCmd(itemGetCmd{}) }
