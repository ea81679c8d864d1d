package db

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	database := openTestSQLite(t)

	for _, table := range []string{"categories", "products", "user_plants", "reminders"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	statuses, err := ListMigrationStatus(database)
	if err != nil {
		t.Fatalf("list migration status: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 embedded migrations, got %d", len(statuses))
	}
	for _, status := range statuses {
		if !status.Applied {
			t.Fatalf("expected migration %s to be applied", status.Name)
		}
	}
	if statuses[0].Version != "0001" || statuses[1].Version != "0002" {
		t.Fatalf("unexpected migration order: %#v", statuses)
	}
}

func TestApplyEmbeddedMigrationsIsIdempotent(t *testing.T) {
	database := openTestSQLite(t)

	if err := applyEmbeddedMigrations(database); err != nil {
		t.Fatalf("second migration pass: %v", err)
	}

	var count int64
	if err := database.Table("schema_migrations").Count(&count).Error; err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 recorded migrations, got %d", count)
	}
}

func TestLoadEmbeddedMigrationsOrdersAndRejectsDuplicates(t *testing.T) {
	files := fstest.MapFS{
		"0010_later.sql": {Data: []byte("SELECT 1;")},
		"0002_early.sql": {Data: []byte("SELECT 2;")},
		"README.md":      {Data: []byte("ignored")},
		"notes_0003.sql": {Data: []byte("ignored")},
	}

	migrations, err := loadEmbeddedMigrations(files)
	if err != nil {
		t.Fatalf("loadEmbeddedMigrations() unexpected error: %v", err)
	}
	if len(migrations) != 2 || migrations[0].Version != "0002" || migrations[1].Version != "0010" {
		t.Fatalf("unexpected migrations: %#v", migrations)
	}

	files["0002_duplicate.sql"] = &fstest.MapFile{Data: []byte("SELECT 3;")}
	if _, err := loadEmbeddedMigrations(files); err == nil || !strings.Contains(err.Error(), "duplicate migration version 0002") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestSplitSQLStatementsSkipsBlanks(t *testing.T) {
	got := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n ;CREATE INDEX i ON a(id);  ")
	if len(got) != 2 || got[0] != "CREATE TABLE a (id INTEGER)" || got[1] != "CREATE INDEX i ON a(id)" {
		t.Fatalf("unexpected statements: %#v", got)
	}
}
