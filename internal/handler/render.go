package handler

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/web"
)

// Page carries the fields every view needs; concrete view models embed it.
type Page struct {
	Title    string
	Username string
	Flash    string
	Error    string
}

// Renderer implements echo.Renderer over the embedded templates. Each page
// is parsed together with the base layout at startup.
type Renderer struct {
	templates map[string]*template.Template
}

var pageTemplates = []string{
	"login.html",
	"register.html",
	"index.html",
	"add_expense.html",
	"set_budget.html",
	"expense_summary.html",
}

// NewRenderer parses all embedded page templates
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		tmpl, err := template.ParseFS(web.TemplatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// categoryOption is one entry of a category <select>
type categoryOption struct {
	Value string
	Label string
}

// categoryOptions returns the closed category set for form selects; expense
// and budget forms share it so the enumeration has one source of truth.
func categoryOptions() []categoryOption {
	categories := domain.Categories()
	options := make([]categoryOption, len(categories))
	for i, c := range categories {
		options[i] = categoryOption{Value: c.String(), Label: c.Label()}
	}
	return options
}
