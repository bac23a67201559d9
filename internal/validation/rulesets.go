package validation

import "taskhub/internal/model"

var (
	statusValues   = []string{string(model.TaskStatusPending), string(model.TaskStatusInProgress), string(model.TaskStatusCompleted)}
	priorityValues = []string{string(model.TaskPriorityLow), string(model.TaskPriorityMedium), string(model.TaskPriorityHigh)}
)

// CreateTaskRules validates a task creation payload.
func CreateTaskRules() []Rule {
	return []Rule{
		{
			Field: "title",
			Checks: []Check{
				NotEmpty("Title is required"),
				MaxLen(100, "Title cannot exceed 100 characters"),
			},
		},
		{
			Field:    "description",
			Optional: true,
			Checks: []Check{
				MaxLen(500, "Description cannot exceed 500 characters"),
			},
		},
		{
			Field:    "status",
			Optional: true,
			Checks: []Check{
				OneOf(statusValues, "Status must be pending, in-progress, or completed"),
			},
		},
		{
			Field:    "priority",
			Optional: true,
			Checks: []Check{
				OneOf(priorityValues, "Priority must be low, medium, or high"),
			},
		},
	}
}

// UpdateTaskRules validates a partial task update payload. Every field is
// optional; an empty field means "leave unchanged" rather than "clear".
func UpdateTaskRules() []Rule {
	return []Rule{
		{
			Field:    "title",
			Optional: true,
			Checks: []Check{
				MaxLen(100, "Title cannot exceed 100 characters"),
			},
		},
		{
			Field:    "description",
			Optional: true,
			Checks: []Check{
				MaxLen(500, "Description cannot exceed 500 characters"),
			},
		},
		{
			Field:    "status",
			Optional: true,
			Checks: []Check{
				OneOf(statusValues, "Status must be pending, in-progress, or completed"),
			},
		},
		{
			Field:    "priority",
			Optional: true,
			Checks: []Check{
				OneOf(priorityValues, "Priority must be low, medium, or high"),
			},
		},
	}
}

// UpdateProfileRules validates a profile update payload.
func UpdateProfileRules() []Rule {
	return []Rule{
		{
			Field: "name",
			Checks: []Check{
				NotEmpty("Name is required"),
				MaxLen(255, "Name cannot exceed 255 characters"),
			},
		},
		{
			Field: "email",
			Checks: []Check{
				NotEmpty("Email is required"),
				Email("Email is invalid"),
			},
		},
		{
			Field:    "avatar",
			Optional: true,
			Checks: []Check{
				MaxLen(512, "Avatar URL cannot exceed 512 characters"),
			},
		},
	}
}
