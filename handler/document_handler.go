package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aalify-X/progrify-be/service"
	"github.com/Aalify-X/progrify-be/types"
)

type DocumentHandler struct {
	pipeline      *service.PipelineService
	maxUploadSize int64
}

func NewDocumentHandler(pipeline *service.PipelineService, maxUploadSize int64) *DocumentHandler {
	return &DocumentHandler{
		pipeline:      pipeline,
		maxUploadSize: maxUploadSize,
	}
}

// HandleProcessDocument accepts a multipart upload and returns the
// generated study material. Bad input maps to 400, extraction and
// unexpected failures to 500; a request that got past extraction always
// comes back 200.
func (h *DocumentHandler) HandleProcessDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "File too large"})
		return
	}

	opts, err := parseProcessOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid input parameters"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal server error: failed to read upload"})
		return
	}

	result, err := h.pipeline.Process(c.Request.Context(), header.Filename, data, opts)
	if err != nil {
		var clientErr *types.ClientInputError
		if errors.As(err, &clientErr) {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: clientErr.Message})
			return
		}
		log.Printf("process_document failed for %q: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to process document: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseProcessOptions(c *gin.Context) (types.ProcessDocumentOptions, error) {
	opts := types.DefaultProcessDocumentOptions
	if v := c.PostForm("summary_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, err
		}
		opts.SummaryLength = n
	}
	if v := c.PostForm("question_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, err
		}
		opts.QuestionCount = n
	}
	return opts, nil
}
