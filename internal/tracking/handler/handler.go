package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"phishsim-server/internal/apierrors"
	"phishsim-server/internal/observability"
	"phishsim-server/internal/tracking/processor"

	"github.com/gin-gonic/gin"
)

// transparentGIF is a 1x1 transparent GIF89a
var transparentGIF, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

type Handler struct {
	processor processor.TrackingProcessor
	logger    *observability.Logger
}

func New(processor processor.TrackingProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type SubmitResponse struct {
	Success     bool    `json:"success"`
	RedirectURL *string `json:"redirect_url"`
}

// HandleOpen serves the tracking pixel. The response never depends on the outcome.
func (h *Handler) HandleOpen(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.processor.RecordOpen(ctx, c.Param("trackingId"), clientOf(c)); err != nil {
		if errors.Is(err, processor.ErrUnknownTrackingID) {
			h.logger.Warn(ctx, "open for unknown tracking id")
		} else {
			h.logger.Error(ctx, "failed to record open", err)
		}
	}

	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	c.Header("Pragma", "no-cache")
	c.Data(http.StatusOK, "image/gif", transparentGIF)
}

func (h *Handler) HandleClick(c *gin.Context) {
	ctx := c.Request.Context()

	target, err := h.processor.RecordClick(ctx, c.Param("trackingId"), c.Query("url"), clientOf(c))
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrNoRedirectURL), errors.Is(err, processor.ErrUnknownTrackingID):
			apierrors.BadRequest(c, apierrors.CodeInvalidInput, "A valid url query parameter is required")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, target)
}

// HandleSubmit records a landing page form post. Both JSON and urlencoded bodies are accepted.
func (h *Handler) HandleSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	fields, err := bindFields(c)
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Request body must be a JSON object or form data")
		return
	}

	result, err := h.processor.RecordSubmission(ctx, c.Param("trackingId"), fields, clientOf(c))
	if err != nil {
		if errors.Is(err, processor.ErrUnknownTrackingID) {
			apierrors.NotFound(c, "Unknown tracking link")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{Success: true, RedirectURL: result.RedirectURL})
}

func bindFields(c *gin.Context) (map[string]any, error) {
	fields := map[string]any{}
	switch c.ContentType() {
	case gin.MIMEPOSTForm, gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		for k, v := range c.Request.PostForm {
			if len(v) == 1 {
				fields[k] = v[0]
			} else {
				fields[k] = v
			}
		}
		return fields, nil
	default:
		if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return fields, nil
	}
}

func clientOf(c *gin.Context) processor.Client {
	return processor.Client{
		IPAddress: observability.GetRealClientIP(c),
		UserAgent: observability.GetRealUserAgent(c),
	}
}
