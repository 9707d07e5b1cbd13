// ABOUTME: HTTP handlers for the workout log pages and forms.
// ABOUTME: Validation failures reject the request; missing ids redirect home.
package server

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"liftlog/internal/chart"
	"liftlog/internal/models"
	"liftlog/internal/records"
	"liftlog/internal/storage"
)

// indexData feeds the main page template. ChartURI is template.URL so the
// data: scheme survives html/template's URL sanitizer.
type indexData struct {
	Entries  []*models.WorkoutEntry
	Records  []*models.WorkoutEntry
	Catalog  []string
	Filter   storage.Filter
	ChartURI template.URL
}

func (s *Server) handleIndex(c echo.Context) error {
	f := storage.Filter{
		Exercise: c.QueryParam("exercise"),
		DateFrom: c.QueryParam("from"),
		DateTo:   c.QueryParam("to"),
	}
	if err := f.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries, err := s.repo.ListEntries(f)
	if err != nil {
		return err
	}

	all, err := s.repo.ListEntries(storage.Filter{})
	if err != nil {
		return err
	}

	// A chart failure must never block the page; degrade to no chart.
	chartURI, err := chart.DataURI(entries, f.Exercise)
	if err != nil {
		s.log.WithError(err).Warn("chart render failed")
		chartURI = ""
	}

	return c.Render(http.StatusOK, "index.html", indexData{
		Entries:  entries,
		Records:  records.Personal(all),
		Catalog:  models.ExerciseCatalog,
		Filter:   f,
		ChartURI: template.URL(chartURI),
	})
}

func (s *Server) handleAddEntry(c echo.Context) error {
	e, err := entryFromForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if e.Date == "" {
		e.Date = s.now().Format(models.DateLayout)
	}

	if err := s.repo.InsertEntry(e); err != nil {
		if errors.Is(err, models.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleEditPage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	e, err := s.repo.GetEntry(id)
	if errors.Is(err, storage.ErrNotFound) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "edit.html", map[string]interface{}{
		"Entry":   e,
		"Catalog": models.ExerciseCatalog,
	})
}

func (s *Server) handleUpdateEntry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	e, err := entryFromForm(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e.ID = id

	if err := s.repo.UpdateEntry(e); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/")
		}
		if errors.Is(err, models.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleDeleteEntry(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if err := s.repo.DeleteEntry(id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleTemplatesPage(c echo.Context) error {
	templates, err := s.repo.ListTemplates()
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "templates.html", map[string]interface{}{
		"Templates": templates,
		"Catalog":   models.ExerciseCatalog,
	})
}

func (s *Server) handleCreateTemplate(c echo.Context) error {
	name := c.FormValue("name")
	_, err := s.repo.CreateTemplate(name)
	if errors.Is(err, storage.ErrDuplicateName) {
		// Duplicate names are silently ignored in the UI.
		return c.Redirect(http.StatusSeeOther, "/templates")
	}
	if errors.Is(err, models.ErrValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/templates")
}

func (s *Server) handleDeleteTemplate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/templates")
	}
	if err := s.repo.DeleteTemplate(id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/templates")
}

func (s *Server) handleAddTemplateExercise(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/templates")
	}

	_, err = s.repo.AddTemplateExercise(id, c.FormValue("exercise_name"))
	if errors.Is(err, storage.ErrNotFound) {
		return c.Redirect(http.StatusSeeOther, "/templates")
	}
	if errors.Is(err, models.ErrValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/templates")
}

func (s *Server) handleDeleteTemplateExercise(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/templates")
	}
	if err := s.repo.DeleteTemplateExercise(id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/templates")
}

func (s *Server) handleExpandTemplate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/templates")
	}

	today := s.now().Format(models.DateLayout)
	_, err = s.repo.ExpandTemplate(id, today)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrEmptyTemplate) {
		s.log.WithError(err).WithField("template_id", id).Warn("template expansion skipped")
		return c.Redirect(http.StatusSeeOther, "/templates")
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// entryFromForm builds a WorkoutEntry from the add/edit form fields.
// Malformed numbers are validation failures, not server errors.
func entryFromForm(c echo.Context) (*models.WorkoutEntry, error) {
	sets, err := parseNonNegativeInt(c.FormValue("sets"))
	if err != nil {
		return nil, fmt.Errorf("%w: sets must be a non-negative integer", models.ErrValidation)
	}
	reps, err := parseNonNegativeInt(c.FormValue("reps"))
	if err != nil {
		return nil, fmt.Errorf("%w: reps must be a non-negative integer", models.ErrValidation)
	}
	weight, err := strconv.ParseFloat(c.FormValue("weight"), 64)
	if err != nil || weight < 0 {
		return nil, fmt.Errorf("%w: weight must be a non-negative number", models.ErrValidation)
	}

	e := &models.WorkoutEntry{
		Date:     c.FormValue("date"),
		Exercise: c.FormValue("exercise"),
		Sets:     sets,
		Reps:     reps,
		Weight:   weight,
	}
	return e, nil
}

func parseNonNegativeInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.New("negative")
	}
	return n, nil
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
