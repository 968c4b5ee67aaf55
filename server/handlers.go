package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tsawler/examdown"
	"github.com/tsawler/examdown/markdown"
	"github.com/tsawler/examdown/model"
	"github.com/tsawler/examdown/source"
	"github.com/tsawler/examdown/store"
)

type CheckHandler struct{}

func NewCheckHandler() *CheckHandler {
	return &CheckHandler{}
}

func (h CheckHandler) HandleHealthy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ExtractParams are the query parameters of the extract endpoint
type ExtractParams struct {
	Format string `query:"format" validate:"omitempty,oneof=markdown json"`
	Save   bool   `query:"save"`
}

func (p *ExtractParams) Validate() map[string]string {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return map[string]string{"params": err.Error()}
		}
		fields := make(map[string]string)
		for _, e := range errs {
			fields[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return fields
	}
	return nil
}

// ExtractResponse is the JSON body of a successful extraction
type ExtractResponse struct {
	RunID    *uuid.UUID         `json:"run_id,omitempty"`
	Title    string             `json:"title"`
	Source   string             `json:"source"`
	Metadata model.Metadata     `json:"metadata"`
	Sections []markdown.Section `json:"sections"`
	Warnings []string           `json:"warnings"`
}

type ExtractHandler struct {
	pipeline examdown.Config
	workers  int
	store    store.Storer
	counter  store.TokenCounter
}

func NewExtractHandler(opts Options) *ExtractHandler {
	return &ExtractHandler{
		pipeline: opts.Pipeline,
		workers:  opts.Workers,
		store:    opts.Store,
		counter:  opts.Tokens,
	}
}

func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	var params ExtractParams
	if err := c.QueryParser(&params); err != nil {
		return ErrBadRequest("invalid query parameters")
	}
	if fields := params.Validate(); len(fields) > 0 {
		return NewValidationError(fields)
	}
	if params.Save && h.store == nil {
		return NewError(fiber.StatusServiceUnavailable, "no database configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrBadRequest("missing multipart field 'file'")
	}

	path, err := saveUpload(fileHeader.Filename, func() (io.ReadCloser, error) {
		return fileHeader.Open()
	})
	if err != nil {
		return err
	}
	defer os.Remove(path)

	ext := examdown.Open(path).
		Named(fileHeader.Filename).
		WithConfig(h.pipeline).
		Context(c.UserContext())
	if h.workers > 0 {
		ext = ext.Workers(h.workers)
	}

	doc, warnings, err := ext.Document()
	switch {
	case errors.Is(err, examdown.ErrNoText):
		return NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, source.ErrUnsupportedFormat):
		return NewError(fiber.StatusUnsupportedMediaType, err.Error())
	case err != nil:
		return err
	}

	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.String()
		slog.Warn("extraction warning", "file", fileHeader.Filename, "page", w.Page, "message", w.Message)
	}

	var runID *uuid.UUID
	if params.Save {
		run, err := store.NewRun(doc, h.counter)
		if err != nil {
			return err
		}
		if err := h.store.SaveRun(c.UserContext(), run); err != nil {
			return err
		}
		runID = &run.ID
		slog.Info("run saved", "id", run.ID, "questions", len(run.Questions))
	}

	if params.Format == "json" {
		return c.JSON(ExtractResponse{
			RunID:    runID,
			Title:    doc.Title,
			Source:   doc.Source,
			Metadata: doc.Metadata,
			Sections: doc.Sections,
			Warnings: messages,
		})
	}

	c.Set("X-Examdown-Questions", strconv.Itoa(doc.QuestionCount()))
	c.Set("X-Examdown-Warnings", strconv.Itoa(len(warnings)))
	if runID != nil {
		c.Set("X-Examdown-Run", runID.String())
	}
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	return c.SendString(doc.Markdown)
}

type RunHandler struct {
	store store.Storer
}

func NewRunHandler(st store.Storer) *RunHandler {
	return &RunHandler{store: st}
}

// HandleGetRun returns a saved run with its questions
func (h *RunHandler) HandleGetRun(c *fiber.Ctx) error {
	if h.store == nil {
		return NewError(fiber.StatusServiceUnavailable, "no database configured")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return ErrBadRequest("invalid run id")
	}

	run, err := h.store.GetRun(c.UserContext(), id)
	if errors.Is(err, store.ErrRunNotFound) {
		return NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(run)
}

// saveUpload copies an upload to a temporary file keeping its extension,
// since sources pick their format by file name.
func saveUpload(name string, open func() (io.ReadCloser, error)) (string, error) {
	in, err := open()
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.CreateTemp("", "examdown-*"+filepath.Ext(name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
