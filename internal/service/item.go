package service

import (
	"TodoKeeper/internal/model"
	"TodoKeeper/internal/repo"
	"context"

	"go.uber.org/zap"
)

// ItemService инкапсулирует бизнес-логику работы с Item:
// валидацию входных данных и делегирование в репозиторий.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
}

// NewItemService создаёт сервис поверх переданного репозитория.
func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ItemService{repo: r, logger: logger}
}

// ItemList - список задач и агрегаты по нему.
type ItemList struct {
	Items          []model.Item
	TotalCount     int
	CompletedCount int
}

// AddItem создаёт задачу. Пустое имя отклоняется до обращения к БД.
func (s *ItemService) AddItem(ctx context.Context, rawName string) (*model.Item, error) {
	name, err := model.NormalizeName(rawName)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.Insert(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("item created", "id", it.ID)
	return it, nil
}

// GetItem возвращает задачу по id.
func (s *ItemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.FindByID(ctx, id)
}

// RenameItem меняет имя задачи.
func (s *ItemService) RenameItem(ctx context.Context, id, rawName string) (*model.Item, error) {
	name, err := model.NormalizeName(rawName)
	if err != nil {
		return nil, err
	}
	it, err := s.repo.Update(ctx, id, model.ItemPatch{Name: &name})
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("item renamed", "id", id)
	return it, nil
}

// ToggleItem переключает IsDone.
//
// Если previous передан, выставляется !previous (клиент сообщает состояние, которое видел;
// при параллельных переключениях возможна потеря обновления, побеждает последняя запись).
// Без previous переключение выполняется атомарно на стороне БД.
func (s *ItemService) ToggleItem(ctx context.Context, id string, previous *bool) (*model.Item, error) {
	var (
		it  *model.Item
		err error
	)
	if previous != nil {
		next := !*previous
		it, err = s.repo.Update(ctx, id, model.ItemPatch{IsDone: &next})
	} else {
		it, err = s.repo.Toggle(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debugw("item toggled", "id", id, "is_done", it.IsDone)
	return it, nil
}

// RemoveItem удаляет задачу. Удаление отсутствующей записи - не ошибка.
func (s *ItemService) RemoveItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debugw("item removed", "id", id)
	return nil
}

// ListItems возвращает все задачи со счётчиками всего/выполнено.
func (s *ItemService) ListItems(ctx context.Context) (ItemList, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return ItemList{}, err
	}
	done := 0
	for _, it := range items {
		if it.IsDone {
			done++
		}
	}
	return ItemList{Items: items, TotalCount: len(items), CompletedCount: done}, nil
}
