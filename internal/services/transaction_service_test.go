package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"hearth/internal/models"
	"hearth/internal/testutil"
)

func currentBudget(t *testing.T, svc BudgetServicer) float64 {
	t.Helper()
	amount, err := svc.GetBudget()
	testutil.AssertNoError(t, err)
	return amount
}

func TestCreateTransaction(t *testing.T) {
	t.Run("income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)

		tx, err := svc.CreateTransaction(100, true, nil, "Work")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Amount != 100 {
			t.Errorf("expected amount 100, got %v", tx.Amount)
		}
		if !tx.IsIncome {
			t.Error("expected transaction to stay income")
		}
		if got := currentBudget(t, budgetSvc); got != 100 {
			t.Errorf("expected budget 100, got %v", got)
		}
	})

	t.Run("outcome_positive_is_negated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)

		tx, err := svc.CreateTransaction(50, false, nil, "Groceries")
		testutil.AssertNoError(t, err)

		if tx.Amount != -50 {
			t.Errorf("expected amount -50, got %v", tx.Amount)
		}
		if tx.IsIncome {
			t.Error("expected outcome transaction")
		}
		if got := currentBudget(t, budgetSvc); got != -50 {
			t.Errorf("expected budget -50, got %v", got)
		}
	})

	t.Run("negative_income_becomes_outcome", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)

		tx, err := svc.CreateTransaction(-75, true, nil, "Work")
		testutil.AssertNoError(t, err)

		if tx.Amount != -75 {
			t.Errorf("expected amount kept at -75, got %v", tx.Amount)
		}
		if tx.IsIncome {
			t.Error("expected reclassification to outcome")
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))

		_, err := svc.CreateTransaction(0, true, nil, "Work")
		testutil.AssertAppError(t, err, "ZERO_AMOUNT")
	})

	t.Run("jar_linked_is_forced_outflow", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)
		jar := testutil.CreateTestJar(t, db, 1000, 0)

		tx, err := svc.CreateTransaction(200, true, &jar.ID, models.DTypeJar)
		testutil.AssertNoError(t, err)

		if tx.Amount != -200 {
			t.Errorf("expected stored amount -200, got %v", tx.Amount)
		}
		if tx.IsIncome {
			t.Error("expected jar-linked transaction to be stored as outcome")
		}

		var stored models.Jar
		testutil.AssertNoError(t, db.First(&stored, jar.ID).Error)
		if stored.CurrentAmount != 200 {
			t.Errorf("expected jar balance 200, got %v", stored.CurrentAmount)
		}
		if got := currentBudget(t, budgetSvc); got != -200 {
			t.Errorf("expected budget -200, got %v", got)
		}
	})

	t.Run("missing_jar_writes_nothing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)

		missing := uint(99)
		_, err := svc.CreateTransaction(200, false, &missing, models.DTypeJar)
		testutil.AssertAppError(t, err, "JAR_NOT_FOUND")

		var count int64
		db.Model(&models.Transaction{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no stored transactions, got %d", count)
		}
		if got := currentBudget(t, budgetSvc); got != 0 {
			t.Errorf("expected budget untouched at 0, got %v", got)
		}
	})
}

func TestGetLastTransaction(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))

		tx, err := svc.GetLastTransaction()
		testutil.AssertNoError(t, err)
		if tx != nil {
			t.Errorf("expected nil for empty store, got %+v", tx)
		}
	})

	t.Run("latest_by_creation_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))

		base := time.Date(2024, time.November, 1, 12, 0, 0, 0, time.UTC)
		older := models.Transaction{Amount: 10, DateCreation: base, IsIncome: true, DType: "Work"}
		newer := models.Transaction{Amount: -20, DateCreation: base.Add(time.Hour), IsIncome: false, DType: "Groceries"}
		testutil.AssertNoError(t, db.Create(&older).Error)
		testutil.AssertNoError(t, db.Create(&newer).Error)

		tx, err := svc.GetLastTransaction()
		testutil.AssertNoError(t, err)
		if tx == nil || tx.ID != newer.ID {
			t.Fatalf("expected transaction %d, got %+v", newer.ID, tx)
		}
	})
}

func TestGetTransactions(t *testing.T) {
	seedListing := func(t *testing.T, db *gorm.DB) {
		t.Helper()
		txs := []models.Transaction{
			{Amount: 100, DateCreation: time.Now(), IsIncome: true, DType: "Work"},
			{Amount: -30, DateCreation: time.Now(), IsIncome: false, DType: "Transport"},
			{Amount: -250, DateCreation: time.Now(), IsIncome: false, DType: "Groceries"},
			{Amount: 40, DateCreation: time.Now(), IsIncome: true, DType: "Work"},
		}
		testutil.AssertNoError(t, db.Create(&txs).Error)
	}

	t.Run("all_reverse_insertion_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))
		seedListing(t, db)

		txs, err := svc.GetTransactions("", TranTypeAll)
		testutil.AssertNoError(t, err)
		if len(txs) != 4 {
			t.Fatalf("expected 4 transactions, got %d", len(txs))
		}
		for i := 1; i < len(txs); i++ {
			if txs[i-1].ID < txs[i].ID {
				t.Fatalf("expected reverse insertion order, got ids %d before %d", txs[i-1].ID, txs[i].ID)
			}
		}
	})

	t.Run("income_split", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))
		seedListing(t, db)

		txs, err := svc.GetTransactions("", TranTypeIncome)
		testutil.AssertNoError(t, err)
		if len(txs) != 2 {
			t.Fatalf("expected 2 income transactions, got %d", len(txs))
		}
		for _, tx := range txs {
			if !tx.IsIncome {
				t.Errorf("expected only income transactions, got %+v", tx)
			}
		}
	})

	t.Run("amount_sort_outcome_uses_magnitude", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))
		seedListing(t, db)

		txs, err := svc.GetTransactions(TransactionFilterAmount, TranTypeOutcome)
		testutil.AssertNoError(t, err)
		if len(txs) != 2 {
			t.Fatalf("expected 2 outcome transactions, got %d", len(txs))
		}
		if txs[0].Amount != -250 || txs[1].Amount != -30 {
			t.Errorf("expected magnitude order [-250 -30], got [%v %v]", txs[0].Amount, txs[1].Amount)
		}
	})

	t.Run("amount_sort_all_uses_raw_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))
		seedListing(t, db)

		txs, err := svc.GetTransactions(TransactionFilterAmount, TranTypeAll)
		testutil.AssertNoError(t, err)
		if len(txs) != 4 {
			t.Fatalf("expected 4 transactions, got %d", len(txs))
		}
		// Raw descending puts the largest outflow last.
		want := []float64{100, 40, -30, -250}
		for i, amount := range want {
			if txs[i].Amount != amount {
				t.Fatalf("expected amounts %v, got %v at index %d", want, txs[i].Amount, i)
			}
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))
		seedListing(t, db)

		txs, err := svc.GetTransactions("Work", TranTypeAll)
		testutil.AssertNoError(t, err)
		if len(txs) != 2 {
			t.Fatalf("expected 2 Work transactions, got %d", len(txs))
		}
		for _, tx := range txs {
			if tx.DType != "Work" {
				t.Errorf("expected only Work transactions, got %q", tx.DType)
			}
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("reverses_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)

		tx, err := svc.CreateTransaction(100, true, nil, "Work")
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.DeleteTransaction(tx.ID))

		if got := currentBudget(t, budgetSvc); got != 0 {
			t.Errorf("expected budget back at 0, got %v", got)
		}
		_, err = svc.GetTransactionByID(tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("jar_linked_returns_signed_amount_to_jar", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		budgetSvc := NewBudgetService(db)
		svc := NewTransactionService(db, budgetSvc)
		jar := testutil.CreateTestJar(t, db, 1000, 0)

		tx, err := svc.CreateTransaction(200, false, &jar.ID, models.DTypeJar)
		testutil.AssertNoError(t, err)
		testutil.AssertNoError(t, svc.DeleteTransaction(tx.ID))

		// The stored amount is negative, so deletion drains the deposit.
		var stored models.Jar
		testutil.AssertNoError(t, db.First(&stored, jar.ID).Error)
		if stored.CurrentAmount != 0 {
			t.Errorf("expected jar balance back at 0, got %v", stored.CurrentAmount)
		}
		if got := currentBudget(t, budgetSvc); got != 0 {
			t.Errorf("expected budget back at 0, got %v", got)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db, NewBudgetService(db))

		err := svc.DeleteTransaction(99)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
