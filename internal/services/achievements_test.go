package services

import "testing"

func TestAchievementFor(t *testing.T) {
	cases := []struct {
		name   string
		kind   counterKind
		value  int
		wantID uint
		wantOK bool
	}{
		{"done_tasks_5", counterDoneTasks, 5, 1, true},
		{"done_tasks_10", counterDoneTasks, 10, 2, true},
		{"done_tasks_100", counterDoneTasks, 100, 3, true},
		{"created_tasks_5", counterCreatedTasks, 5, 4, true},
		{"created_events_100", counterCreatedEvents, 100, 9, true},
		{"between_thresholds", counterDoneTasks, 6, 0, false},
		{"below_first", counterDoneTasks, 4, 0, false},
		{"zero", counterCreatedEvents, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := achievementFor(tc.kind, tc.value)
			if ok != tc.wantOK || id != tc.wantID {
				t.Errorf("achievementFor(%v, %d) = (%d, %v), want (%d, %v)",
					tc.kind, tc.value, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}
