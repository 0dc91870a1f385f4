package web

import (
	"html/template"

	"github.com/amonks/todolist/todo"
)

func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"eq":            func(a, b string) bool { return a == b },
		"priorityClass": priorityClass,
		"isEditing":     func(editing, id todo.ID) bool { return editing != 0 && editing == id },
		"itemData":      func(editing todo.ID, rec todo.Record) itemView { return itemView{EditingID: editing, Rec: rec} },
	}
	return template.Must(template.New("todos").Funcs(funcs).Parse(pageTemplate))
}

func priorityClass(p todo.Priority) string {
	switch p {
	case todo.PriorityUrgentCritical:
		return "priority-urgent-critical"
	case todo.PriorityUrgent:
		return "priority-urgent"
	case todo.PriorityNormal:
		return "priority-normal"
	default:
		return "priority-unknown"
	}
}

const pageTemplate = `{{define "item"}}
<li class="list-item">
  <form method="post" action="/todos/toggle" class="inline">
    <input type="hidden" name="id" value="{{.Rec.ID}}">
    <button type="submit" class="check" aria-label="toggle">{{if .Rec.Completed}}&#9745;{{else}}&#9744;{{end}}</button>
  </form>
  <span class="item-meta">{{.Rec.Date}}</span>
  {{if isEditing .EditingID .Rec.ID}}
    <form method="post" action="/todos/edit" class="inline grow">
      <input type="hidden" name="id" value="{{.Rec.ID}}">
      <input type="text" name="text" value="{{.Rec.Text}}" required>
      <button type="submit">Save</button>
    </form>
  {{else}}
    <span class="item-title {{priorityClass .Rec.Priority}}{{if .Rec.Completed}} done{{end}}">{{.Rec.Text}}</span>
    {{if not .Rec.Completed}}<a class="button-link" href="/?edit={{.Rec.ID}}">Edit</a>{{end}}
  {{end}}
  <form method="post" action="/todos/delete" class="inline">
    <input type="hidden" name="id" value="{{.Rec.ID}}">
    <button type="submit" class="danger">Delete</button>
  </form>
</li>
{{end}}
{{define "page"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body {
      margin: 0;
      font-family: "Charter", "Georgia", serif;
      color: #2b2520;
      background: #fcfaf6;
    }
    header {
      padding: 16px 24px;
      border-bottom: 1px solid #d7cdbd;
    }
    header h1 {
      margin: 0;
      font-size: 20px;
    }
    main {
      max-width: 760px;
      padding: 18px 24px 28px;
    }
    .item-list {
      list-style: none;
      padding: 0;
      margin: 0;
      display: flex;
      flex-direction: column;
      gap: 8px;
    }
    .list-item {
      display: flex;
      align-items: center;
      gap: 10px;
    }
    .item-meta {
      color: #72685f;
      font-size: 12px;
    }
    .item-title.done {
      text-decoration: line-through;
    }
    .priority-urgent-critical { color: red; }
    .priority-urgent { color: orange; }
    .priority-normal { color: green; }
    .inline {
      display: inline-flex;
      gap: 6px;
      margin: 0;
    }
    .grow {
      flex: 1;
    }
    input[type="text"],
    select {
      padding: 6px 10px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      font-family: inherit;
      font-size: 14px;
    }
    .button-link {
      padding: 4px 10px;
      border-radius: 8px;
      border: 1px solid #cbbfae;
      text-decoration: none;
      color: #2b2520;
      font-size: 14px;
    }
    button {
      padding: 4px 10px;
      border-radius: 8px;
      border: 1px solid #bfb3a2;
      background: #efe6d7;
      font-family: inherit;
      cursor: pointer;
    }
    button.danger {
      background: #f4d7d2;
      border-color: #d7a7a1;
    }
    button.check {
      background: none;
      border: none;
      font-size: 18px;
    }
    .error {
      padding: 10px 12px;
      border-radius: 8px;
      background: #f7d9d6;
      border: 1px solid #d9a7a2;
      margin-bottom: 12px;
      color: #5b1d17;
    }
    .muted {
      color: #72685f;
    }
    .actions {
      display: flex;
      flex-wrap: wrap;
      gap: 10px;
      margin-bottom: 16px;
    }
  </style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
  </header>
  <main>
    {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
    <div class="actions">
      <form method="post" action="/todos/add" class="inline grow">
        <input type="text" name="text" value="{{.Form.Text}}" placeholder="New todo" required>
        <select name="priority">
          {{range .PriorityOptions}}
            <option value="{{.Value}}" {{if eq .Value $.Form.Priority}}selected{{end}}>{{.Label}}</option>
          {{end}}
        </select>
        <button type="submit">Add</button>
      </form>
      <form method="post" action="/todos/sort?by=date" class="inline">
        <button type="submit">Sort by date</button>
      </form>
      <form method="post" action="/todos/sort?by=priority" class="inline">
        <button type="submit">Sort by priority</button>
      </form>
    </div>
    <h2>Pending</h2>
    <ul class="item-list">
      {{range .Pending}}
        {{template "item" (itemData $.EditingID .)}}
      {{else}}
        <li class="muted">Nothing to do.</li>
      {{end}}
    </ul>
    <h2>Completed</h2>
    <ul class="item-list">
      {{range .Completed}}
        {{template "item" (itemData $.EditingID .)}}
      {{else}}
        <li class="muted">Nothing completed yet.</li>
      {{end}}
    </ul>
  </main>
</body>
</html>
{{end}}`

type itemView struct {
	EditingID todo.ID
	Rec       todo.Record
}
