package handlers

import (
	"errors"
	"net/http"

	"contactform/internal/api/dto/common"
	"contactform/internal/form"
	"contactform/internal/logging"
	"contactform/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContactHandler implements the send-email collaborator endpoint used in
// local development. It validates and logs submissions; actual delivery is
// somebody else's job.
type ContactHandler struct{}

// NewContactHandler creates a new contact handler
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// SendEmail accepts a JSON-encoded contact form submission
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var in form.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation, "Validation failed", form.FormatErrors(err)))
			return
		}
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			common.ErrCodeBadRequest, "Invalid request body", nil))
		return
	}

	// Re-run the shared schema so sanitization is applied even when the raw
	// payload already passed binding.
	clean, errs := form.Validate(in)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			common.ErrCodeValidation, "Validation failed", errs))
		return
	}

	logger := logging.GetLogger()
	logger.Info("Contact form submission (request %s) from %q <%s>, %d byte message",
		c.GetString("RequestID"), clean.Name, clean.Email, len(clean.Message))

	utils.HandleMessage(c, "Message sent successfully. We'll get back to you shortly.")
}
