package repo

import (
	"TodoKeeper/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultSQLiteDSN используется, когда строка подключения не задана.
const DefaultSQLiteDSN = "file:todos.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// InitDB открывает БД по DSN и выполняет миграции.
// postgres-DSN открываются через pgx, всё остальное считается путём/URI SQLite (modernc.org/sqlite).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var (
		db  *gorm.DB
		err error
	)
	if IsPostgresDSN(dsn) {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
	} else {
		db, err = gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !IsPostgresDSN(dsn) {
		// SQLite допускает только одного писателя
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицу items.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// IsPostgresDSN сообщает, что DSN указывает на PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.HasPrefix(dsn, "host=")
}
