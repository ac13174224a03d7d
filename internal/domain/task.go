package domain

import "time"

type Task struct {
	Name         string    `json:"name"`
	DueDate      string    `json:"due_date"`
	TimeRequired string    `json:"time_required"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// TaskHeader is the fixed first row of the rendered task table.
var TaskHeader = []string{"Task:", "Due Date:", "Time Required:", "Mark Box If Complete"}

// TaskCompleteField is the input name of the completion checkbox on every task row.
const TaskCompleteField = "taskcomplete"
