package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"motolog-api/repositories"
	"motolog-api/services"
	"motolog-api/utils"
)

// respondError maps service errors onto status codes. Unexpected errors are
// logged and hidden behind failMessage.
func respondError(c *gin.Context, err error, notFoundMessage, failMessage string) {
	var validationErr *services.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.SendValidationError(c, validationErr.Message)
	case errors.Is(err, repositories.ErrNotFound):
		utils.SendNotFound(c, notFoundMessage)
	case errors.Is(err, repositories.ErrConflict):
		utils.SendError(c, http.StatusConflict, "Email already registered")
	default:
		log.Printf("%s: %v", failMessage, err)
		utils.SendError(c, http.StatusInternalServerError, failMessage)
	}
}

// bindPayload decodes a JSON object body. It writes the 400 itself and returns false on failure.
func bindPayload(c *gin.Context) (utils.Payload, bool) {
	var body utils.Payload
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		utils.SendValidationError(c, "Request body must be a JSON object")
		return nil, false
	}
	return body, true
}

func ownerID(c *gin.Context) string {
	return c.GetString("user_id")
}
