package domain

// PageID identifies one screen of the app. Buttons carry a PageID instead of
// a handler reference so the navigation graph can be inspected and serialized.
type PageID string

const (
	PageIndex         PageID = "index"
	PageSelection     PageID = "selection"
	PageAddTodoList   PageID = "add_todo_list"
	PageAddTask       PageID = "add_task"
	PageFinishAddTask PageID = "finish_add_task"
	PageViewTask      PageID = "view_task"
	PageNoteArea      PageID = "note_area"
	PageSave          PageID = "save"
	PageTimeSelection PageID = "timeselection"
	PageTimer         PageID = "timer_page"
)

type WidgetKind string

const (
	WidgetText     WidgetKind = "text"
	WidgetHeader   WidgetKind = "header"
	WidgetTextBox  WidgetKind = "textbox"
	WidgetTextArea WidgetKind = "textarea"
	WidgetButton   WidgetKind = "button"
	WidgetTable    WidgetKind = "table"
	WidgetCheckBox WidgetKind = "checkbox"
)

// Widget is one render item. Only the fields relevant to Kind are set.
type Widget struct {
	Kind    WidgetKind `json:"kind"`
	Text    string     `json:"text,omitempty"`
	Level   int        `json:"level,omitempty"`
	Name    string     `json:"name,omitempty"`
	Value   string     `json:"value,omitempty"`
	Checked bool       `json:"checked,omitempty"`
	Target  PageID     `json:"target,omitempty"`
	Rows    [][]Widget `json:"rows,omitempty"`
}

// Page is the render descriptor returned by every handler.
type Page struct {
	ID    PageID   `json:"id"`
	State State    `json:"state"`
	Items []Widget `json:"items"`
}

func Text(s string) Widget {
	return Widget{Kind: WidgetText, Text: s}
}

func Header(s string, level int) Widget {
	return Widget{Kind: WidgetHeader, Text: s, Level: level}
}

func TextBox(name, value string) Widget {
	return Widget{Kind: WidgetTextBox, Name: name, Value: value}
}

func TextArea(name, value string) Widget {
	return Widget{Kind: WidgetTextArea, Name: name, Value: value}
}

func Button(label string, target PageID) Widget {
	return Widget{Kind: WidgetButton, Text: label, Target: target}
}

func CheckBox(name string, checked bool) Widget {
	return Widget{Kind: WidgetCheckBox, Name: name, Checked: checked}
}

func Table(rows [][]Widget) Widget {
	return Widget{Kind: WidgetTable, Rows: rows}
}

// Buttons returns the navigation edges of the page in render order.
func (p Page) Buttons() []Widget {
	var out []Widget
	for _, w := range p.Items {
		if w.Kind == WidgetButton {
			out = append(out, w)
		}
	}
	return out
}
