package documentValidators

import (
	"campus/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateRequest is the validated payload for a new document request.
type CreateRequest struct {
	Type    string `json:"type" validate:"required,oneof=ENROLLMENT_CERTIFICATE TRANSCRIPT GRADE_REPORT"`
	Comment string `json:"comment" validate:"max=500"`
}

// HandleRequest is the validated payload for fulfilling or rejecting a request.
type HandleRequest struct {
	RequestID uint   `form:"requestId" json:"requestId" validate:"required"`
	Comment   string `form:"comment" json:"comment" validate:"max=500"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Comment = strings.TrimSpace(reqData.Comment)

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Type":
					errors["type"] = "Type must be one of: ENROLLMENT_CERTIFICATE, TRANSCRIPT, GRADE_REPORT!"
				case "Comment":
					errors["comment"] = "Comment must not exceed 500 characters!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocumentCreate", reqData)
		return c.Next()
	}
}

func Handle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(HandleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.RequestID == 0 {
			errors["requestId"] = "Request ID is required!"
		}
		if len(reqData.Comment) > 500 {
			errors["comment"] = "Comment must not exceed 500 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocumentHandle", reqData)
		return c.Next()
	}
}
