package commands

import (
	"context"
	"fmt"

	"TodoKeeper/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "list" }
func (itemsCmd) Description() string {
	return "Показать все задачи"
}
func (itemsCmd) Usage() string { return "list" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	res, err := newClient(cfg).List(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "%d out of %d completed\n", res.CompletedCount, res.TotalCount)
	if len(res.Items) == 0 {
		fmt.Fprintln(Out, "Нет задач")
		return nil
	}
	for _, it := range res.Items {
		mark := " "
		if it.IsDone {
			mark = "x"
		}
		fmt.Fprintf(Out, "[%s] %s  %s\n", mark, it.ID, it.Name)
	}
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
