package repo

import (
	"TodoKeeper/internal/model"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Каждая операция - один запрос (или одна короткая транзакция) к БД.
type ItemRepository interface {
	// Insert создаёт запись с новым id, IsDone=false и CreatedAt=UpdatedAt=now.
	Insert(ctx context.Context, name string) (*model.Item, error)

	// FindAll возвращает все записи в порядке создания.
	FindAll(ctx context.Context) ([]model.Item, error)

	// FindByID возвращает запись или model.ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Item, error)

	// Update применяет частичный патч и обновляет UpdatedAt.
	Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error)

	// Toggle атомарно инвертирует IsDone.
	Toggle(ctx context.Context, id string) (*model.Item, error)

	// Delete удаляет запись. Отсутствующий id - не ошибка.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db, now: time.Now}
}

// stamp - текущее время в UTC с точностью до микросекунд.
func (r *itemRepo) stamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

// nextStamp гарантирует строгое возрастание updated_at даже при одинаковых показаниях часов.
func (r *itemRepo) nextStamp(prev time.Time) time.Time {
	now := r.stamp()
	if now.After(prev) {
		return now
	}
	return prev.UTC().Add(time.Microsecond)
}

func (r *itemRepo) Insert(ctx context.Context, name string) (*model.Item, error) {
	name, err := model.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	now := r.stamp()
	it := &model.Item{
		ID:        uuid.NewString(),
		Name:      name,
		IsDone:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepo) FindAll(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) FindByID(ctx context.Context, id string) (*model.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, model.ErrNotFound
	}
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *itemRepo) Update(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		name, err := model.NormalizeName(*patch.Name)
		if err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if patch.IsDone != nil {
		updates["is_done"] = *patch.IsDone
	}
	return r.apply(ctx, id, updates)
}

func (r *itemRepo) Toggle(ctx context.Context, id string) (*model.Item, error) {
	return r.apply(ctx, id, map[string]any{"is_done": gorm.Expr("NOT is_done")})
}

// apply выполняет UPDATE одной строки и перечитывает её в той же транзакции.
func (r *itemRepo) apply(ctx context.Context, id string, updates map[string]any) (*model.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return nil, model.ErrNotFound
	}
	var out model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.Item
		if err := tx.Select("id", "updated_at").First(&cur, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		updates["updated_at"] = r.nextStamp(cur.UpdatedAt)
		res := tx.Model(&model.Item{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return nil
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{}).Error
}

// canonicalID приводит id к виду, в котором он хранится (xxxxxxxx-xxxx-..., нижний регистр).
// Любая запись UUID, которую принимает uuid.Parse, ищется одинаково в SQLite и PostgreSQL.
// Не-UUID в таблице отсутствует.
func canonicalID(id string) (string, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ErrNotFound
	}
	return err
}
