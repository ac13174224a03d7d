package pages

import (
	"time"

	"studydesk/internal/domain"
)

// TaskStore is the shared to-do list the task pages read and append to.
type TaskStore interface {
	Create(t domain.Task)
	List() []domain.Task
}

// App holds the collaborators of the page handlers and their navigation graph.
type App struct {
	tasks TaskStore
	now   func() time.Time
	graph *Graph
}

// NewApp wires the handlers to tasks and the wall clock now. A nil now uses time.Now.
func NewApp(tasks TaskStore, now func() time.Time) *App {
	if now == nil {
		now = time.Now
	}
	a := &App{tasks: tasks, now: now}
	a.graph = newGraph(domain.PageIndex,
		Route{ID: domain.PageIndex, Handler: a.Index},
		Route{ID: domain.PageSelection, Params: []string{"username"}, Handler: a.Selection},
		Route{ID: domain.PageAddTodoList, Handler: a.AddTodoList},
		Route{ID: domain.PageAddTask, Handler: a.AddTask},
		Route{ID: domain.PageFinishAddTask, Params: []string{"taskname", "taskduedate", "tasktimereq"}, Renders: domain.PageAddTodoList, Handler: a.FinishAddTask},
		Route{ID: domain.PageViewTask, Handler: a.ViewTask},
		Route{ID: domain.PageNoteArea, Handler: a.NoteArea},
		Route{ID: domain.PageSave, Params: []string{"notes_entered"}, Renders: domain.PageNoteArea, Handler: a.Save},
		Route{ID: domain.PageTimeSelection, Handler: a.TimeSelection},
		Route{ID: domain.PageTimer, Params: []string{"minutes"}, Renders: domain.PageTimeSelection, Handler: a.TimerPage},
	)
	return a
}

func (a *App) Graph() *Graph {
	return a.graph
}

func newPage(id domain.PageID, st *domain.State, items ...domain.Widget) domain.Page {
	return domain.Page{ID: id, State: *st, Items: items}
}

// Index greets the user and asks for a name.
func (a *App) Index(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageIndex, st,
		domain.Header("Welcome.", 1),
		domain.Header("Please enter your name below.", 4),
		domain.TextBox("username", st.Username),
		domain.Button("Continue", domain.PageSelection),
	)
}

// Selection stores the username and shows the main menu.
func (a *App) Selection(st *domain.State, in Inputs) domain.Page {
	st.Username = in.Get("username")
	return newPage(domain.PageSelection, st,
		domain.Text("Welcome, "+st.Username+". Please select what you would like to use today."),
		domain.Button("Notes Area", domain.PageNoteArea),
		domain.Button("Timer", domain.PageTimeSelection),
		domain.Button("To-Do List", domain.PageAddTodoList),
		domain.Button("Back", domain.PageIndex),
	)
}

func (a *App) AddTodoList(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageAddTodoList, st,
		domain.Text("Please select below on what you want like to do."),
		domain.Button("add task", domain.PageAddTask),
		domain.Button("view tasks", domain.PageViewTask),
		domain.Button("Back", domain.PageIndex),
	)
}

func (a *App) AddTask(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageAddTask, st,
		domain.Text("What is the task called?"),
		domain.TextBox("taskname", ""),
		domain.Text("When is the due date?"),
		domain.TextBox("taskduedate", ""),
		domain.Text("How much time is required? (in mins)"),
		domain.TextBox("tasktimereq", ""),
		domain.Button("add this task", domain.PageFinishAddTask),
		domain.Button("Back", domain.PageAddTodoList),
	)
}

// FinishAddTask appends the submitted task unvalidated and returns to the to-do menu.
func (a *App) FinishAddTask(st *domain.State, in Inputs) domain.Page {
	a.tasks.Create(domain.Task{
		Name:         in.Get("taskname"),
		DueDate:      in.Get("taskduedate"),
		TimeRequired: in.Get("tasktimereq") + " mins",
	})
	return a.AddTodoList(st, nil)
}

// ViewTask renders the header row followed by every task in insertion order.
func (a *App) ViewTask(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageViewTask, st,
		domain.Text("Here are your tasks."),
		domain.Table(TaskRows(a.tasks.List())),
		domain.Button("Back", domain.PageAddTodoList),
	)
}

// TaskRows builds the task table: the fixed header, then one row per task.
func TaskRows(tasks []domain.Task) [][]domain.Widget {
	rows := make([][]domain.Widget, 0, len(tasks)+1)
	header := make([]domain.Widget, 0, len(domain.TaskHeader))
	for _, h := range domain.TaskHeader {
		header = append(header, domain.Text(h))
	}
	rows = append(rows, header)
	for _, t := range tasks {
		rows = append(rows, []domain.Widget{
			domain.Text(t.Name),
			domain.Text(t.DueDate),
			domain.Text(t.TimeRequired),
			domain.CheckBox(domain.TaskCompleteField, t.Completed),
		})
	}
	return rows
}

func (a *App) NoteArea(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageNoteArea, st,
		domain.Text("This is the notes section, and below, you can begin to take your notes."),
		domain.TextArea("notes_entered", st.Notes),
		domain.Button("Save", domain.PageSave),
		domain.Button("Back", domain.PageIndex),
	)
}

// Save overwrites the notes with the raw input.
func (a *App) Save(st *domain.State, in Inputs) domain.Page {
	st.Notes = in.Get("notes_entered")
	return a.NoteArea(st, nil)
}

func (a *App) TimeSelection(st *domain.State, _ Inputs) domain.Page {
	return newPage(domain.PageTimeSelection, st,
		domain.Text("Please set your timer below in minutes."),
		domain.TextBox("minutes", ""),
		domain.Button("Continue", domain.PageTimer),
		domain.Text("Your start time:"),
		domain.Text(st.StartingTime),
		domain.Text("Your end time:"),
		domain.Text(st.EndingTime),
		domain.Button("Back", domain.PageIndex),
	)
}

// TimerPage computes the start/end pair from the minutes input and always
// re-renders the time selection page.
func (a *App) TimerPage(st *domain.State, in Inputs) domain.Page {
	applyTimer(st, in.Get("minutes"), a.now())
	return a.TimeSelection(st, nil)
}
