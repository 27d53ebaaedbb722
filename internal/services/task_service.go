package services

import (
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
)

// taskService handles task-related business logic.
type taskService struct {
	db          *gorm.DB
	userService UserServicer
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(db *gorm.DB, userService UserServicer) TaskServicer {
	return &taskService{db: db, userService: userService}
}

// validateNameDescription enforces the name and description length limits before
// any store write.
func validateNameDescription(name, description string) error {
	if utf8.RuneCountInString(name) > 50 {
		return apperrors.ErrNameTooLong
	}
	if utf8.RuneCountInString(description) > 450 {
		return apperrors.ErrDescriptionTooLong
	}
	return nil
}

// repeatableFrom derives the repeatable flag: a task with a non-zero repeat
// type is always repeatable.
func repeatableFrom(repeatable bool, repeatType int) bool {
	return repeatable || repeatType == models.RepeatDaily || repeatType == models.RepeatWeekly || repeatType == models.RepeatMonthly
}

// CreateTask creates a task owned by creatorID, bumps the creator's
// created-tasks counter, and evaluates achievement thresholds.
func (s *taskService) CreateTask(creatorID uint, name, description string, deadline time.Time, priority int, repeatable bool, repeatType int, participants []uint) (*models.Task, error) {
	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	// The creator must exist before anything is stored.
	creator, err := s.userService.GetUserByID(creatorID)
	if err != nil {
		return nil, err
	}

	if participants == nil {
		participants = []uint{}
	}

	now := time.Now()
	task := &models.Task{
		Name:         name,
		Description:  description,
		DateCreation: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Deadline:     deadline,
		Priority:     priority,
		Repeatable:   repeatableFrom(repeatable, repeatType),
		RepeatType:   repeatType,
		Participants: participants,
		Done:         false,
		CreatedBy:    creatorID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return applyCounter(tx, creator, counterCreatedTasks, 1)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// GetTaskByID returns a task with its creator's name joined in.
func (s *taskService) GetTaskByID(id uint) (*TaskWithCreator, error) {
	var task models.Task
	if err := s.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names, err := resolveUserNames(s.db, []uint{task.CreatedBy})
	if err != nil {
		return nil, err
	}
	return &TaskWithCreator{Task: task, CreatorName: creatorName(names, task.CreatedBy)}, nil
}

// GetUserTasks returns the user's open-task feed. The default and
// "deadline" modes sort ascending by deadline; "priority" sorts descending
// by priority; "done" returns every completed task system-wide, not scoped
// to the user.
func (s *taskService) GetUserTasks(userID uint, filter string) ([]TaskWithCreator, error) {
	var tasks []models.Task
	if err := s.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var selected []models.Task
	if filter == TaskFilterDone {
		for _, task := range tasks {
			if task.Done {
				selected = append(selected, task)
			}
		}
	} else {
		for _, task := range tasks {
			if task.Done || !concernsUser(task.CreatedBy, task.Participants, userID) {
				continue
			}
			selected = append(selected, task)
		}

		switch filter {
		case "", TaskFilterDeadline:
			sort.SliceStable(selected, func(i, j int) bool {
				return selected[i].Deadline.Before(selected[j].Deadline)
			})
		case TaskFilterPriority:
			sort.SliceStable(selected, func(i, j int) bool {
				return selected[i].Priority > selected[j].Priority
			})
		}
	}

	creatorIDs := make([]uint, 0, len(selected))
	for _, task := range selected {
		creatorIDs = append(creatorIDs, task.CreatedBy)
	}
	names, err := resolveUserNames(s.db, creatorIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]TaskWithCreator, 0, len(selected))
	for _, task := range selected {
		feed = append(feed, TaskWithCreator{Task: task, CreatorName: creatorName(names, task.CreatedBy)})
	}
	return feed, nil
}

// UpdateTask replaces all caller-settable task fields.
func (s *taskService) UpdateTask(taskID uint, name, description string, deadline time.Time, priority int, repeatable bool, repeatType int, participants []uint) (*models.Task, error) {
	if err := validateNameDescription(name, description); err != nil {
		return nil, err
	}

	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if participants == nil {
		participants = []uint{}
	}

	task.Name = name
	task.Description = description
	task.Deadline = deadline
	task.Priority = priority
	task.Repeatable = repeatableFrom(repeatable, repeatType)
	task.RepeatType = repeatType
	task.Participants = participants

	if err := s.db.Save(&task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}

// ToggleTaskDone flips a task's done flag and attributes the completion to
// the acting user: done adds one to their done-tasks counter, undone
// subtracts one. Achievement thresholds are evaluated on the new value.
func (s *taskService) ToggleTaskDone(userID, taskID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// The acting user must resolve before any mutation.
	user, err := s.userService.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		task.Done = !task.Done
		if err := tx.Save(&task).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		delta := 1
		if !task.Done {
			delta = -1
		}
		return applyCounter(tx, user, counterDoneTasks, delta)
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task by id.
func (s *taskService) DeleteTask(taskID uint) error {
	var task models.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// concernsUser reports whether the user created an item or participates in it.
func concernsUser(createdBy uint, participants []uint, userID uint) bool {
	if createdBy == userID {
		return true
	}
	for _, id := range participants {
		if id == userID {
			return true
		}
	}
	return false
}
