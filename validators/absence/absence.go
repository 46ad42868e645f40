package absenceValidators

import (
	"campus/middleware"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RecordAbsenceRequest is the validated payload for recording an absence.
type RecordAbsenceRequest struct {
	StudentID uint   `json:"studentId" validate:"required"`
	ModuleID  uint   `json:"moduleId" validate:"required"`
	Date      string `json:"date" validate:"required"`

	ParsedDate time.Time `json:"-"`
}

// AbsenceListRequest is the validated query for listing absences.
type AbsenceListRequest struct {
	Page      *int  `query:"page"`
	Limit     *int  `query:"limit"`
	ModuleID  *uint `query:"moduleId"`
	Justified *bool `query:"justified"`
	StudentID *uint `query:"studentId"`
}

func RecordAbsence() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RecordAbsenceRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "StudentID":
					errors["studentId"] = "Student ID is required!"
				case "ModuleID":
					errors["moduleId"] = "Module ID is required!"
				case "Date":
					errors["date"] = "Date is required!"
				}
			}
		}

		reqData.Date = strings.TrimSpace(reqData.Date)
		if reqData.Date != "" {
			parsed, err := time.Parse("2006-01-02", reqData.Date)
			if err != nil {
				errors["date"] = "Date must be in YYYY-MM-DD format!"
			} else if parsed.After(time.Now()) {
				errors["date"] = "Date cannot be in the future!"
			} else {
				reqData.ParsedDate = parsed
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRecordAbsence", reqData)
		return c.Next()
	}
}

func AbsenceList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AbsenceListRequest)

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

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAbsenceList", reqData)
		return c.Next()
	}
}
