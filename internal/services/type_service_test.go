package services

import (
	"testing"

	"hearth/internal/testutil"
)

func TestCreateType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTypeService(db)

	entry, err := svc.CreateType("Groceries", "transaction")
	testutil.AssertNoError(t, err)

	if entry.ID == 0 {
		t.Fatal("expected non-zero type ID")
	}
	if entry.Name != "Groceries" || entry.Relate != "transaction" {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestGetTypesByRelation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTypeService(db)

	_, err := svc.CreateType("Work", "transaction")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateType("Transport", "transaction")
	testutil.AssertNoError(t, err)
	_, err = svc.CreateType("Chores", "task")
	testutil.AssertNoError(t, err)

	entries, err := svc.GetTypesByRelation("transaction")
	testutil.AssertNoError(t, err)

	if len(entries) != 2 {
		t.Fatalf("expected 2 transaction types, got %d", len(entries))
	}
	if entries[0].Name != "Work" || entries[1].Name != "Transport" {
		t.Errorf("expected insertion order [Work Transport], got [%s %s]", entries[0].Name, entries[1].Name)
	}
}
