package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/dto"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

//go:embed templates/*.html
var templateFS embed.FS

// Flash is a one-shot message shown above the form.
type Flash struct {
	Category string
	Message  string
}

type optionView struct {
	Label    string
	Selected bool
	// Invalid marks a submitted answer outside the option set.
	Invalid bool
}

type fieldView struct {
	Name     string
	Question string
	Options  []optionView
}

type pageData struct {
	Fields  []fieldView
	Flashes []Flash
	Result  *dto.AssessmentResponse
}

var questions = map[valueobject.Field]string{
	valueobject.FieldGender:          "Gender",
	valueobject.FieldAge:             "Age group",
	valueobject.FieldHistory:         "Family history of hypertension?",
	valueobject.FieldPatient:         "Currently a hypertension patient?",
	valueobject.FieldTakeMedication:  "Taking blood pressure medication?",
	valueobject.FieldSeverity:        "Severity of symptoms",
	valueobject.FieldBreathShortness: "Shortness of breath?",
	valueobject.FieldVisualChanges:   "Visual changes?",
	valueobject.FieldNoseBleeding:    "Nosebleeds?",
	valueobject.FieldWhenDiagnosed:   "When were you diagnosed?",
	valueobject.FieldSystolic:        "Systolic reading (mmHg)",
	valueobject.FieldDiastolic:       "Diastolic reading (mmHg)",
	valueobject.FieldControlledDiet:  "Following a controlled diet?",
}

// Renderer renders the questionnaire page.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	page, err := template.New("index.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{page: page}, nil
}

// Render writes the page with the given status. The form is re-populated with
// submitted, which may be nil.
func (r *Renderer) Render(w http.ResponseWriter, status int, submitted map[string]string, result *dto.AssessmentResponse, flashes ...Flash) error {
	data := pageData{
		Fields:  formFields(submitted),
		Flashes: flashes,
		Result:  result,
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func formFields(submitted map[string]string) []fieldView {
	fields := valueobject.Fields()
	views := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		chosen := submitted[f.String()]
		opts := f.Options()
		view := fieldView{
			Name:     f.String(),
			Question: questions[f],
			Options:  make([]optionView, 0, len(opts)),
		}
		matched := false
		for _, o := range opts {
			selected := o.Label == chosen
			matched = matched || selected
			view.Options = append(view.Options, optionView{Label: o.Label, Selected: selected})
		}
		if chosen != "" && !matched {
			view.Options = append(view.Options, optionView{Label: chosen, Selected: true, Invalid: true})
		}
		views = append(views, view)
	}
	return views
}
