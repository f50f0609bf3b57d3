package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/abdulachik/cozyconnect/internal/generator"
	"github.com/abdulachik/cozyconnect/internal/llm"
)

// handleGenerate runs the pipeline. The request body, if any, is ignored.
func (s *Server) handleGenerate(c *gin.Context) {
	result, err := s.generator.Generate(c.Request.Context())
	if err != nil {
		s.writeGenerationError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeGenerationError maps pipeline failures onto the error taxonomy.
// It is only reached under the error fallback policy; the fallback policy
// answers 200 with a canned question instead.
func (s *Server) writeGenerationError(c *gin.Context, err error) {
	if info, ok := llm.RateLimited(err); ok {
		details := ""
		if info != nil && info.Reset != "" {
			details = fmt.Sprintf("provider rate limit resets in %s", info.Reset)
		}
		writeError(c, http.StatusTooManyRequests, CodeProviderRateLimit,
			"You've exceeded the number of generations. Please try again later.", details)
		return
	}

	var pe *llm.ProviderError
	switch {
	case errors.Is(err, llm.ErrTimeout),
		errors.Is(err, generator.ErrValidationFailed),
		errors.As(err, &pe) && pe.Retryable():
		writeError(c, http.StatusServiceUnavailable, CodeGenerationFailed,
			"We couldn't generate your question. Please try again.", err.Error())
	default:
		writeError(c, http.StatusInternalServerError, CodeServerError,
			"We couldn't generate your question. Please try again.", err.Error())
	}
}

// handleImage proxies to the OG-image renderer collaborator.
func (s *Server) handleImage(c *gin.Context) {
	title := c.Query("title")
	description := c.Query("description")
	if title == "" || description == "" {
		writeError(c, http.StatusBadRequest, CodeMissingParameters,
			"Both title and description are required.", "")
		return
	}

	if s.imageRendererURL == "" {
		writeError(c, http.StatusInternalServerError, CodeImageGeneration,
			"Image generation is not configured.", "")
		return
	}

	renderURL := fmt.Sprintf("%s?title=%s&description=%s",
		s.imageRendererURL, url.QueryEscape(title), url.QueryEscape(description))

	req, err := http.NewRequestWithContext(c.Request.Context(), "GET", renderURL, nil)
	if err != nil {
		writeError(c, http.StatusInternalServerError, CodeImageGeneration,
			"Failed to generate image.", err.Error())
		return
	}

	resp, err := s.imageClient.Do(req)
	if err != nil {
		writeError(c, http.StatusInternalServerError, CodeImageGeneration,
			"Failed to generate image.", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		writeError(c, http.StatusInternalServerError, CodeImageGeneration,
			"Failed to generate image.", fmt.Sprintf("renderer returned status %d", resp.StatusCode))
		return
	}

	c.Header("Cache-Control", "public, max-age=86400, s-maxage=86400")
	c.Header("Content-Disposition", `inline; filename="og-image.png"`)
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// Headers are already sent; nothing left to do but log via gin.
		_ = c.Error(err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
