package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц, каждой соответствует templates/<name>.html
const (
	PageAppointments    = "appointments"
	PageAppointmentForm = "appointment_form"
	PageConfirmCancel   = "confirm_cancel"
	PagePatients        = "patients"
	PageReschedule      = "reschedule"
	PageJournal         = "journal"
	PageError           = "error"
)

var pages = []string{
	PageAppointments,
	PageAppointmentForm,
	PageConfirmCancel,
	PagePatients,
	PageReschedule,
	PageJournal,
	PageError,
}

// Page общие данные страницы консоли
type Page struct {
	Title string
	Alert string
	Data  interface{}
}

// Renderer рендерит страницы из встроенных шаблонов
type Renderer struct {
	templates map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(domain.DateFormat)
	},
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// NewRenderer разбирает все шаблоны. Ошибка означает битый шаблон в сборке
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// MustNewRenderer используется в main и тестах
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render рендерит страницу со статусом status
// Шаблон сначала пишется в буфер, чтобы ошибка не оставила полстраницы
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown page %q", name), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderError рендерит страницу ошибки с сообщением
func (r *Renderer) RenderError(w http.ResponseWriter, status int, message string) {
	r.Render(w, status, PageError, Page{
		Title: http.StatusText(status),
		Alert: message,
	})
}
