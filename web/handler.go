// Package web serves an HTML front end for a todo session.
package web

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"sync"

	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
	"go.uber.org/zap"
)

// Options configures the web handler.
type Options struct {
	// Title is shown in the page header. Defaults to "Todo List".
	Title string

	// Logger receives request errors. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Handler serves the todo web client.
//
// The session is not safe for concurrent use, so every request that touches
// it holds mu.
type Handler struct {
	title     string
	logger    *zap.Logger
	mux       *http.ServeMux
	templates *templateWrapper

	mu      sync.Mutex
	session *todo.Session
	draft   *formDraft
}

// NewHandler creates a new web handler for session.
func NewHandler(session *todo.Session, opts Options) *Handler {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Todo List"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &Handler{
		title:     title,
		logger:    logger,
		session:   session,
		templates: newTemplateWrapper(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.handleIndex)
	mux.HandleFunc("/todos/add", handler.handleAdd)
	mux.HandleFunc("/todos/edit", handler.handleEdit)
	mux.HandleFunc("/todos/toggle", handler.handleToggle)
	mux.HandleFunc("/todos/delete", handler.handleDelete)
	mux.HandleFunc("/todos/sort", handler.handleSort)
	mux.HandleFunc("/api/todos", handler.handleAPITodos)
	handler.mux = mux
	return handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

type selectOption struct {
	Value string
	Label string
}

type pageData struct {
	Title           string
	Pending         todo.List
	Completed       todo.List
	EditingID       todo.ID
	Form            formValues
	Error           string
	PriorityOptions []selectOption
}

type formValues struct {
	Text     string
	Priority string
}

// formDraft carries a failed submission to the next page render.
type formDraft struct {
	err       string
	editingID todo.ID
	values    formValues
	hasValues bool
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	h.mu.Lock()
	list := h.session.List()
	draft := h.draft
	h.draft = nil
	h.mu.Unlock()

	data := pageData{
		Title:           h.title,
		Pending:         list.Pending(),
		Completed:       list.Completed(),
		Form:            defaultFormValues(),
		PriorityOptions: priorityOptions(),
	}
	if id, err := todo.ParseID(trimmedQueryValue(r, "edit")); err == nil {
		if rec, ok := list.Find(id); ok && !rec.Completed {
			data.EditingID = id
		}
	}
	if draft != nil {
		data.Error = draft.err
		if draft.hasValues {
			data.Form = draft.values
		}
		if draft.editingID != 0 {
			data.EditingID = draft.editingID
		}
	}
	h.templates.Render(w, data)
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, formDraft{err: "invalid form input"})
		return
	}
	values := formValues{
		Text:     trimmedFormValue(r, "text"),
		Priority: trimmedFormValue(r, "priority"),
	}
	priority, err := todo.ParsePriority(values.Priority)
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error(), values: values, hasValues: true})
		return
	}

	h.mu.Lock()
	_, _, err = h.session.Add(r.Context(), values.Text, priority)
	h.mu.Unlock()
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error(), values: values, hasValues: true})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	_, err := h.session.Edit(r.Context(), id, trimmedFormValue(r, "text"))
	h.mu.Unlock()
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error(), editingID: id})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	h.mutateByID(w, r, h.session.Toggle)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	h.mutateByID(w, r, h.session.Delete)
}

func (h *Handler) handleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	by := internalstrings.NormalizeLowerTrimSpace(r.URL.Query().Get("by"))

	h.mu.Lock()
	var err error
	switch by {
	case "date":
		_, err = h.session.SortByDate(r.Context())
	case "priority":
		_, err = h.session.SortByPriority(r.Context())
	default:
		h.mu.Unlock()
		h.fail(w, r, formDraft{err: "sort by must be date or priority"})
		return
	}
	h.mu.Unlock()
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleAPITodos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	h.mu.Lock()
	list := h.session.List()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		h.logger.Warn("encode todos response", zap.Error(err))
	}
}

func (h *Handler) mutateByID(w http.ResponseWriter, r *http.Request, mutate func(context.Context, todo.ID) (todo.List, error)) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	id, ok := h.formID(w, r)
	if !ok {
		return
	}

	h.mu.Lock()
	_, err := mutate(r.Context(), id)
	h.mu.Unlock()
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error()})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) formID(w http.ResponseWriter, r *http.Request) (todo.ID, bool) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, formDraft{err: "invalid form input"})
		return 0, false
	}
	id, err := todo.ParseID(trimmedFormValue(r, "id"))
	if err != nil {
		h.fail(w, r, formDraft{err: err.Error()})
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, draft formDraft) {
	h.logger.Debug("web request failed",
		zap.String("path", r.URL.Path),
		zap.String("error", draft.err),
	)
	h.mu.Lock()
	h.draft = &draft
	h.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func defaultFormValues() formValues {
	return formValues{Priority: string(todo.PriorityNormal)}
}

func priorityOptions() []selectOption {
	priorities := todo.ValidPriorities()
	options := make([]selectOption, 0, len(priorities))
	for i := len(priorities) - 1; i >= 0; i-- {
		value := string(priorities[i])
		options = append(options, selectOption{Value: value, Label: value})
	}
	return options
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
