package justificationValidators

import (
	"campus/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SubmitRequest is the validated multipart payload for a manual submission.
// The optional certificate file itself is read by the controller.
type SubmitRequest struct {
	AbsenceID uint   `form:"absenceId" validate:"required"`
	Reason    string `form:"reason" validate:"required,min=10,max=2000"`
}

// ReviewRequest is the validated payload for an admin review decision.
type ReviewRequest struct {
	JustificationID uint    `json:"justificationId" validate:"required"`
	Decision        string  `json:"decision" validate:"required,oneof=ACCEPTED REJECTED"`
	Comment         *string `json:"comment"`
}

// ListRequest is the validated query for justification listings.
type ListRequest struct {
	Page   *int    `query:"page"`
	Limit  *int    `query:"limit"`
	Status *string `query:"status"`
}

func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Reason = strings.TrimSpace(reqData.Reason)

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "AbsenceID":
					errors["absenceId"] = "Absence ID is required!"
				case "Reason":
					errors["reason"] = "Reason is required and must be between 10 and 2000 characters!"
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmit", reqData)
		return c.Next()
	}
}

func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "JustificationID":
					errors["justificationId"] = "Justification ID is required!"
				case "Decision":
					errors["decision"] = "Decision must be ACCEPTED or REJECTED!"
				}
			}
		}

		if reqData.Comment != nil {
			trimmed := strings.TrimSpace(*reqData.Comment)
			reqData.Comment = &trimmed
			if len(trimmed) > 1000 {
				errors["comment"] = "Comment must not exceed 1000 characters!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if reqData.Status != nil {
			valid := map[string]bool{"PENDING": true, "ACCEPTED": true, "REJECTED": true}
			if !valid[strings.ToUpper(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: PENDING, ACCEPTED, REJECTED."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedJustificationList", reqData)
		return c.Next()
	}
}
