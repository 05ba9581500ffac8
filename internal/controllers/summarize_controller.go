package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vanban-ai/summarizer/internal/classifier"
	"github.com/vanban-ai/summarizer/internal/domain"
	"github.com/vanban-ai/summarizer/internal/extractor"
	"github.com/vanban-ai/summarizer/internal/formatter"
	"github.com/vanban-ai/summarizer/internal/summarizer"
)

// SummarizeController handles document question-answering requests. Each
// request runs the extract -> classify -> summarize -> format pipeline;
// uploads are staged in a temp directory and removed when the request ends.
type SummarizeController struct {
	extractors *extractor.Registry
	classifier *classifier.Classifier
	summarizer *summarizer.Service
	formatter  *formatter.Formatter
	uploadDir  string
}

type SummarizeControllerDependencies struct {
	Extractors *extractor.Registry
	Classifier *classifier.Classifier
	Summarizer *summarizer.Service
	Formatter  *formatter.Formatter
	UploadDir  string
}

func NewSummarizeController(deps SummarizeControllerDependencies) *SummarizeController {
	return &SummarizeController{
		extractors: deps.Extractors,
		classifier: deps.Classifier,
		summarizer: deps.Summarizer,
		formatter:  deps.Formatter,
		uploadDir:  deps.UploadDir,
	}
}

// FormatInfo describes the structural shape of the formatted answer.
type FormatInfo struct {
	StructureType string `json:"structure_type"`
	HasTables     bool   `json:"has_tables"`
	Sections      string `json:"sections"`
}

// Metadata carries size information about one processed document.
type Metadata struct {
	FileSize      int64 `json:"file_size"`
	ContentLength int   `json:"content_length"`
	AnswerLength  int   `json:"answer_length"`
}

// SummaryResponse is the per-document result shape.
type SummaryResponse struct {
	Success      bool       `json:"success"`
	DocumentName string     `json:"document_name"`
	Question     string     `json:"question"`
	QuestionType string     `json:"question_type"`
	Answer       string     `json:"answer"`
	FormatInfo   FormatInfo `json:"format_info"`
	Metadata     Metadata   `json:"metadata"`
}

// BatchQuestion is one entry of the batch questions array, aligned by
// position with the uploaded files.
type BatchQuestion struct {
	Question     string `json:"question"`
	QuestionType string `json:"question_type,omitempty"`
}

// Summarize answers a question about a single uploaded document.
func (c *SummarizeController) Summarize(ctx fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errorBody("file field is required"))
	}

	question := ctx.FormValue("question")
	override := ctx.FormValue("question_type")

	resp, err := c.processDocument(ctx, fileHeader, question, override)
	if err != nil {
		log.Error().
			Err(err).
			Str("document", fileHeader.Filename).
			Str("question", question).
			Msg("Summarize request failed")
		return ctx.Status(statusForError(err)).JSON(errorBody(err.Error()))
	}

	return ctx.JSON(resp)
}

// BatchSummarize processes several documents in one request. Items are
// independent: a failing item occupies its result slot with an error and
// does not affect siblings. Results keep input order.
func (c *SummarizeController) BatchSummarize(ctx fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errorBody("invalid multipart form"))
	}

	files := form.File["files"]
	if len(files) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(errorBody("files field is required"))
	}

	var questions []BatchQuestion
	if err := json.Unmarshal([]byte(ctx.FormValue("questions")), &questions); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(errorBody("invalid questions JSON"))
	}

	if len(files) != len(questions) {
		return ctx.Status(fiber.StatusBadRequest).JSON(
			errorBody(fmt.Sprintf("number of files (%d) must match number of questions (%d)", len(files), len(questions))))
	}

	results := make([]any, 0, len(files))
	for i, fileHeader := range files {
		q := questions[i]

		resp, err := c.processDocument(ctx, fileHeader, q.Question, q.QuestionType)
		if err != nil {
			log.Error().
				Err(err).
				Int("item", i).
				Str("document", fileHeader.Filename).
				Str("question", q.Question).
				Msg("Batch item failed")
			results = append(results, fiber.Map{
				"success":       false,
				"document_name": fileHeader.Filename,
				"error":         err.Error(),
			})
			continue
		}

		results = append(results, resp)
	}

	return ctx.JSON(results)
}

// processDocument runs the full pipeline for one uploaded document.
func (c *SummarizeController) processDocument(ctx fiber.Ctx, fileHeader *multipart.FileHeader, question, override string) (*SummaryResponse, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}

	ex, err := c.extractors.Detect(fileHeader.Filename)
	if err != nil {
		return nil, err
	}

	tempPath := filepath.Join(c.uploadDir, uuid.NewString()+strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err := ctx.SaveFile(fileHeader, tempPath); err != nil {
		return nil, fmt.Errorf("%w: saving upload: %v", domain.ErrInternal, err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			log.Warn().Err(err).Str("path", tempPath).Msg("Failed to remove temporary upload")
		}
	}()

	doc, err := c.extractors.Extract(tempPath, ex.Format())
	if err != nil {
		return nil, err
	}

	intent, questionType, err := c.resolveIntent(question, override)
	if err != nil {
		return nil, err
	}

	answer, err := c.summarizer.Summarize(ctx.RequestCtx(), doc.Text, question, intent)
	if err != nil {
		return nil, err
	}

	formatted, err := c.formatter.Format(intent, answer)
	if err != nil {
		return nil, err
	}

	tables, sections, bullets := formatter.DetectStructure(formatted.Text)
	log.Debug().
		Str("document", fileHeader.Filename).
		Str("question_type", questionType).
		Bool("tables", tables).
		Bool("sections", sections).
		Bool("bullets", bullets).
		Msg("Answer formatted")

	return &SummaryResponse{
		Success:      true,
		DocumentName: fileHeader.Filename,
		Question:     question,
		QuestionType: questionType,
		Answer:       formatted.Text,
		FormatInfo: FormatInfo{
			StructureType: formatted.StructureType,
			HasTables:     formatted.HasTables,
			Sections:      formatted.Sections,
		},
		Metadata: Metadata{
			FileSize:      fileHeader.Size,
			ContentLength: doc.Length,
			AnswerLength:  utf8.RuneCountInString(formatted.Text),
		},
	}, nil
}

// resolveIntent honors an explicit question_type override; classification
// runs only when no override is given.
func (c *SummarizeController) resolveIntent(question, override string) (domain.Intent, string, error) {
	if override != "" {
		intent, ok := c.classifier.Lookup(domain.IntentID(override))
		if !ok {
			return domain.Intent{}, "", fmt.Errorf("%w: unknown question_type %q", domain.ErrInvalidInput, override)
		}
		return intent, override, nil
	}

	result, err := c.classifier.Classify(question)
	if err != nil {
		return domain.Intent{}, "", err
	}

	log.Debug().
		Str("question_type", string(result.Intent.ID)).
		Float64("confidence", result.Confidence).
		Strs("matched_patterns", result.MatchedPatterns).
		Msg("Question classified")

	return result.Intent, string(result.Intent.ID), nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnsupportedFormat),
		errors.Is(err, domain.ErrEmptyAnswer):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrExtraction):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrProviderTimeout):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, domain.ErrProvider):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorBody(message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"error":   message,
	}
}
