package commands

import (
	"context"
	"fmt"

	"TodoKeeper/internal/config"
)

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "delete" }
func (itemDeleteCmd) Description() string { return "Удалить задачу" }
func (itemDeleteCmd) Usage() string       { return "delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := idArg(args[0])
	if err != nil {
		return err
	}
	if err := newClient(cfg).Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %s\n", id)
	return nil
}

func init() { RegisterCmd(itemDeleteCmd{}) }
