package database

import (
	"fmt"
	"time"

	"hearth/internal/models"
)

// AchievementCatalog is the static achievement reference data. Ids are
// fixed: the evaluator's threshold table maps counter values onto them.
var AchievementCatalog = []models.Achievement{
	{ID: 1, Name: "Not lazy!", Description: "Done 5 tasks"},
	{ID: 2, Name: "Definitely hard worker!", Description: "Done 10 tasks"},
	{ID: 3, Name: "Invincible", Description: "Done 100 tasks"},

	{ID: 4, Name: "Run the family", Description: "Create 5 tasks"},
	{ID: 5, Name: "Merciless", Description: "Create 10 tasks"},
	{ID: 6, Name: "Boss", Description: "Create 100 tasks"},

	{ID: 7, Name: "Some fun", Description: "Create 5 events"},
	{ID: 8, Name: "Chill", Description: "Create 10 events"},
	{ID: 9, Name: "Party maker", Description: "Create 100 events"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datetime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func uintPtr(v uint) *uint { return &v }

// Seed loads the achievement catalog and the budget row, and, when demo is
// set, the demo household. The seeded budget equals the signed sum of the
// seeded transactions' amounts.
func (m *Manager) Seed(demo bool) error {
	if err := m.db.Create(&AchievementCatalog).Error; err != nil {
		return fmt.Errorf("failed to seed achievement catalog: %w", err)
	}

	budget := models.BudgetState{ID: models.BudgetStateID, Amount: 0}
	if demo {
		budget.Amount = 1559.85
	}
	if err := m.db.Create(&budget).Error; err != nil {
		return fmt.Errorf("failed to seed budget: %w", err)
	}

	if !demo {
		return nil
	}

	users := []models.User{
		{ID: 1, AvatarID: "1.png", Name: "Anna", Surname: "Schneider", Role: "Mother", DOB: date(1970, time.November, 1), DoneTasks: 5, CreatedEvents: 3, CreatedTasks: 12, Achievements: []uint{1, 4, 5}},
		{ID: 2, AvatarID: "2.png", Name: "Lukas", Surname: "Schneider", Role: "Father", DOB: date(1969, time.January, 12), DoneTasks: 4, CreatedEvents: 5, CreatedTasks: 4, Achievements: []uint{7}},
		{ID: 3, AvatarID: "3.png", Name: "Noa", Surname: "Schneider", Role: "Son", DOB: date(2012, time.September, 1), DoneTasks: 10, CreatedEvents: 4, CreatedTasks: 4, Achievements: []uint{1, 2}},
	}

	tasks := []models.Task{
		{ID: 1, Name: "Clean kitchen", Description: "It has to be done..", DateCreation: date(2024, time.November, 1), Deadline: datetime(2024, time.November, 2, 15, 0), Priority: models.PriorityEasy, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{1, 2, 3}, Done: false, CreatedBy: 1},
		{ID: 2, Name: "Get out with dog", Description: "The best time of our day..", DateCreation: date(2024, time.November, 1), Deadline: datetime(2024, time.November, 2, 16, 0), Priority: models.PriorityMedium, Repeatable: true, RepeatType: models.RepeatDaily, Participants: []uint{1, 2, 3}, Done: false, CreatedBy: 1},
		{ID: 5, Name: "Print documents", Description: "Sorry, i forgot to..", DateCreation: date(2024, time.November, 6), Deadline: datetime(2024, time.November, 20, 20, 0), Priority: models.PriorityHard, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{2}, Done: false, CreatedBy: 1},
		{ID: 3, Name: "Clear car", Description: "I hate it", DateCreation: date(2024, time.November, 7), Deadline: datetime(2024, time.November, 21, 13, 30), Priority: models.PriorityMedium, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{1, 2}, Done: false, CreatedBy: 2},
		{ID: 4, Name: "Buy me a pencil", Description: "Father, you should do it..", DateCreation: date(2024, time.November, 7), Deadline: datetime(2024, time.November, 12, 15, 0), Priority: models.PriorityHard, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{2, 3}, Done: false, CreatedBy: 3},
		{ID: 6, Name: "Take son to school", Description: "It has to be done..", DateCreation: date(2024, time.November, 8), Deadline: datetime(2024, time.November, 13, 8, 0), Priority: models.PriorityEasy, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{1, 2, 3}, Done: false, CreatedBy: 1},
		{ID: 7, Name: "Groceries", Description: "Tomatoes, apples, milk, water, juice, cat food", DateCreation: date(2024, time.November, 10), Deadline: datetime(2024, time.May, 16, 18, 40), Priority: models.PriorityHard, Repeatable: false, RepeatType: models.RepeatNone, Participants: []uint{1, 2, 3}, Done: false, CreatedBy: 1},
	}

	events := []models.Event{
		{ID: 1, Name: "Going to amusement park", StartTime: datetime(2024, time.October, 16, 18, 0), EndTime: timePtr(datetime(2024, time.October, 16, 22, 0)), Description: "Son wanted for a while", Participants: []uint{1, 2, 3}, CreatedBy: 1},
		{ID: 2, Name: "Visit grandma", StartTime: datetime(2024, time.November, 3, 20, 0), EndTime: timePtr(datetime(2024, time.November, 3, 22, 0)), Description: "", Participants: []uint{1, 2, 3}, CreatedBy: 1},
		{ID: 3, Name: "Scene in my school", StartTime: datetime(2024, time.November, 4, 9, 0), EndTime: timePtr(datetime(2024, time.November, 4, 11, 0)), Description: "We all should really go, you'll like it", Participants: []uint{1, 2, 3}, CreatedBy: 3},
		{ID: 4, Name: "Dentist appointment for Noa", StartTime: datetime(2024, time.November, 20, 14, 0), EndTime: timePtr(datetime(2024, time.November, 20, 16, 30)), Description: "", Participants: []uint{3}, CreatedBy: 1},
	}

	transactions := []models.Transaction{
		{ID: 1, Amount: 3020.25, DateCreation: datetime(2024, time.November, 1, 17, 36), IsIncome: true, JarID: nil, DType: "Work"},
		{ID: 2, Amount: -104, DateCreation: datetime(2024, time.November, 2, 9, 36), IsIncome: false, JarID: nil, DType: "Transport"},
		{ID: 3, Amount: -200, DateCreation: datetime(2024, time.November, 3, 15, 16), IsIncome: false, JarID: nil, DType: "Groceries"},
		{ID: 4, Amount: -356.40, DateCreation: datetime(2024, time.November, 3, 20, 1), IsIncome: false, JarID: nil, DType: "Groceries"},
		{ID: 5, Amount: -200, DateCreation: datetime(2024, time.November, 4, 22, 1), IsIncome: false, JarID: uintPtr(1), DType: models.DTypeJar},
		{ID: 6, Amount: -300, DateCreation: datetime(2024, time.November, 7, 10, 12), IsIncome: false, JarID: uintPtr(1), DType: models.DTypeJar},
		{ID: 7, Amount: -300, DateCreation: datetime(2024, time.November, 8, 10, 12), IsIncome: false, JarID: uintPtr(2), DType: models.DTypeJar},
	}

	jars := []models.Jar{
		{ID: 1, Target: "Trip to Japan", TotalAmount: 1000.0, CurrentAmount: 500.0, Deadline: timePtr(date(2024, time.December, 31))},
		{ID: 2, Target: "Buy a new laptop", TotalAmount: 1500.0, CurrentAmount: 300.0, Deadline: timePtr(date(2024, time.November, 15))},
	}

	types := []models.TransactionType{
		{ID: 1, Name: "Work", Relate: "transaction"},
		{ID: 2, Name: "Transport", Relate: "transaction"},
		{ID: 3, Name: "Groceries", Relate: "transaction"},
		{ID: 4, Name: models.DTypeJar, Relate: "transaction"},
	}

	for _, batch := range []interface{}{&users, &jars, &tasks, &events, &transactions, &types} {
		if err := m.db.Create(batch).Error; err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}
	return nil
}
