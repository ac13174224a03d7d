package pages

import (
	"testing"
	"time"

	"studydesk/internal/domain"
	"studydesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 1, 13, 5, 9, 0, time.UTC)

func newTestApp() (*App, *repository.TaskRepository) {
	tasks := repository.NewTaskRepository()
	return NewApp(tasks, func() time.Time { return fixedNow }), tasks
}

func TestIndex(t *testing.T) {
	app, _ := newTestApp()
	st := domain.State{Username: "Ada"}

	page := app.Index(&st, nil)

	assert.Equal(t, domain.PageIndex, page.ID)
	assert.Equal(t, []domain.Widget{
		domain.Header("Welcome.", 1),
		domain.Header("Please enter your name below.", 4),
		domain.TextBox("username", "Ada"),
		domain.Button("Continue", domain.PageSelection),
	}, page.Items)
}

func TestSelectionStoresUsername(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page := app.Selection(&st, Inputs{"username": "Shaurya"})

	assert.Equal(t, "Shaurya", st.Username)
	assert.Equal(t, domain.State{Username: "Shaurya"}, page.State)
	assert.Equal(t, []domain.Widget{
		domain.Text("Welcome, Shaurya. Please select what you would like to use today."),
		domain.Button("Notes Area", domain.PageNoteArea),
		domain.Button("Timer", domain.PageTimeSelection),
		domain.Button("To-Do List", domain.PageAddTodoList),
		domain.Button("Back", domain.PageIndex),
	}, page.Items)
}

func TestSaveKeepsRawNotes(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()
	raw := "  I love computer science\n<b>not escaped</b>  "

	page := app.Save(&st, Inputs{"notes_entered": raw})

	assert.Equal(t, raw, st.Notes)
	assert.Equal(t, domain.PageNoteArea, page.ID)
	assert.Equal(t, []domain.Widget{
		domain.Text("This is the notes section, and below, you can begin to take your notes."),
		domain.TextArea("notes_entered", raw),
		domain.Button("Save", domain.PageSave),
		domain.Button("Back", domain.PageIndex),
	}, page.Items)
}

func TestAddTaskDoesNotMutate(t *testing.T) {
	app, tasks := newTestApp()
	st := domain.NewState()

	page := app.AddTask(&st, Inputs{"taskname": "ignored"})

	assert.Equal(t, 0, tasks.Count())
	assert.Equal(t, domain.NewState(), st)
	assert.Len(t, page.Buttons(), 2)
}

func TestFinishAddTaskThenViewTask(t *testing.T) {
	app, tasks := newTestApp()
	st := domain.NewState()

	page := app.FinishAddTask(&st, Inputs{
		"taskname":    "Read ch.1",
		"taskduedate": "2024-01-01",
		"tasktimereq": "30",
	})
	assert.Equal(t, domain.PageAddTodoList, page.ID)
	require.Equal(t, 1, tasks.Count())

	view := app.ViewTask(&st, nil)
	require.Len(t, view.Items, 3)
	table := view.Items[1]
	require.Equal(t, domain.WidgetTable, table.Kind)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []domain.Widget{
		domain.Text("Task:"),
		domain.Text("Due Date:"),
		domain.Text("Time Required:"),
		domain.Text("Mark Box If Complete"),
	}, table.Rows[0])
	assert.Equal(t, []domain.Widget{
		domain.Text("Read ch.1"),
		domain.Text("2024-01-01"),
		domain.Text("30 mins"),
		domain.CheckBox(domain.TaskCompleteField, false),
	}, table.Rows[1])
}

func TestFinishAddTaskKeepsOrderAndDuplicates(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	app.FinishAddTask(&st, Inputs{"taskname": "b", "taskduedate": "", "tasktimereq": "abc"})
	app.FinishAddTask(&st, Inputs{"taskname": "a"})
	app.FinishAddTask(&st, Inputs{"taskname": "a"})

	rows := app.ViewTask(&st, nil).Items[1].Rows
	require.Len(t, rows, 4)
	assert.Equal(t, "b", rows[1][0].Text)
	assert.Equal(t, "abc mins", rows[1][2].Text)
	assert.Equal(t, "a", rows[2][0].Text)
	assert.Equal(t, " mins", rows[2][2].Text)
	assert.Equal(t, "a", rows[3][0].Text)
}

func TestTimerPageValid(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page := app.TimerPage(&st, Inputs{"minutes": "25"})

	assert.Equal(t, "2024-01-01 01:05:09 PM", st.StartingTime)
	assert.Equal(t, "2024-01-01 01:30:09 PM", st.EndingTime)
	assert.Equal(t, fixedNow.Add(25*time.Minute), st.TimerEnd)
	assert.Equal(t, domain.PageTimeSelection, page.ID)
	assert.Equal(t, domain.Text("2024-01-01 01:05:09 PM"), page.Items[4])
	assert.Equal(t, domain.Text("2024-01-01 01:30:09 PM"), page.Items[6])
}

func TestTimerPageNegative(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page := app.TimerPage(&st, Inputs{"minutes": "-2"})

	want := domain.State{StartingTime: InvalidTimeMessage, EndingTime: InvalidTimeMessage}
	assert.Equal(t, want, st)
	assert.Equal(t, want, page.State)
	assert.Equal(t, []domain.Widget{
		domain.Text("Please set your timer below in minutes."),
		domain.TextBox("minutes", ""),
		domain.Button("Continue", domain.PageTimer),
		domain.Text("Your start time:"),
		domain.Text(InvalidTimeMessage),
		domain.Text("Your end time:"),
		domain.Text(InvalidTimeMessage),
		domain.Button("Back", domain.PageIndex),
	}, page.Items)
}

func TestTimerPageInvalidClearsPreviousTimer(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	app.TimerPage(&st, Inputs{"minutes": "10"})
	require.False(t, st.TimerEnd.IsZero())

	app.TimerPage(&st, Inputs{"minutes": "0"})
	assert.True(t, st.TimerEnd.IsZero())
	assert.Equal(t, InvalidTimeMessage, st.StartingTime)
}

func TestTimeSelectionShowsEmptyTimesInitially(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page := app.TimeSelection(&st, nil)

	assert.Equal(t, domain.Text(""), page.Items[4])
	assert.Equal(t, domain.Text(""), page.Items[6])
}

func TestPageIsASnapshot(t *testing.T) {
	app, _ := newTestApp()
	st := domain.NewState()

	page := app.Selection(&st, Inputs{"username": "first"})
	app.Selection(&st, Inputs{"username": "second"})

	assert.Equal(t, "first", page.State.Username)
	assert.Equal(t, "second", st.Username)
}
