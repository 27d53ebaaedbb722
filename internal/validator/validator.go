// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hearth/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("task_priority", validateTaskPriority)
		_ = v.RegisterValidation("repeat_type", validateRepeatType)
		_ = v.RegisterValidation("catalog_relation", validateCatalogRelation)
	}
}

func validateTaskPriority(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case models.PriorityEasy, models.PriorityMedium, models.PriorityHard:
		return true
	}
	return false
}

func validateRepeatType(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case models.RepeatNone, models.RepeatDaily, models.RepeatWeekly, models.RepeatMonthly:
		return true
	}
	return false
}

func validateCatalogRelation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "transaction", "task", "event", "jar":
		return true
	}
	return false
}
