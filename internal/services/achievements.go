package services

import (
	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// counterKind identifies which user counter an achievement threshold
// applies to.
type counterKind int

const (
	counterDoneTasks counterKind = iota
	counterCreatedTasks
	counterCreatedEvents
)

// achievementThresholds maps a counter kind and an exact counter value to
// the achievement id it unlocks.
var achievementThresholds = map[counterKind]map[int]uint{
	counterDoneTasks:     {5: 1, 10: 2, 100: 3},
	counterCreatedTasks:  {5: 4, 10: 5, 100: 6},
	counterCreatedEvents: {5: 7, 10: 8, 100: 9},
}

// achievementFor returns the achievement unlocked by a counter reaching
// newValue. Only an exact threshold hit unlocks: a counter jumping over a
// threshold (4 to 6) unlocks nothing, and landing on a threshold again
// after a decrement unlocks again.
func achievementFor(kind counterKind, newValue int) (uint, bool) {
	id, ok := achievementThresholds[kind][newValue]
	return id, ok
}

// applyCounter adjusts one of the user's counters by delta, appends any
// achievement unlocked by the new value, and persists the user on tx.
func applyCounter(tx *gorm.DB, user *models.User, kind counterKind, delta int) error {
	var value int
	switch kind {
	case counterDoneTasks:
		user.DoneTasks += delta
		value = user.DoneTasks
	case counterCreatedTasks:
		user.CreatedTasks += delta
		value = user.CreatedTasks
	case counterCreatedEvents:
		user.CreatedEvents += delta
		value = user.CreatedEvents
	}

	if id, ok := achievementFor(kind, value); ok {
		user.Achievements = append(user.Achievements, id)
	}

	if err := tx.Save(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
