package repo

import (
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Одно соединение - у каждого теста своя приватная БД.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:"}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func TestIsPostgresDSN(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"postgres://u:p@localhost:5432/todos", true},
		{"postgresql://localhost/todos", true},
		{"host=localhost user=u dbname=todos", true},
		{"file:todos.db", false},
		{"/var/lib/todos/todos.sqlite", false},
		{"file::memory:?cache=shared", false},
	}
	for _, c := range cases {
		if got := IsPostgresDSN(c.dsn); got != c.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", c.dsn, got, c.want)
		}
	}
}

func TestInitDB_SQLiteFile(t *testing.T) {
	dsn := "file:" + t.TempDir() + "/todos.db"
	db, err := InitDB(dsn)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if !db.Migrator().HasTable("items") {
		t.Fatalf("items table must exist after InitDB")
	}
	for _, col := range []string{"id", "name", "is_done", "created_at", "updated_at"} {
		if !db.Migrator().HasColumn("items", col) {
			t.Errorf("column %q missing", col)
		}
	}
}
