package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetailFor(err)
	if code := apperrors.CodeOf(err); code != "" {
		detail.Code = dto.ErrorCode(code)
	}
	if details := apperrors.DetailsOf(err); details != nil {
		detail = detail.WithDetails(details)
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("requestId", GetRequestID(c)).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewFailureResponse(detail))
}

func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found").WithField("studentId")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found").WithField("courseCode")
	case errors.Is(err, apperrors.ErrDuplicateID):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Student with this ID already exists").WithField("id")
	case errors.Is(err, apperrors.ErrCourseFull):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeCourseFull, "Course is full")
	case errors.Is(err, apperrors.ErrNotRegistered):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeNotRegistered, "Student is not registered for this course")
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeAlreadyRegistered, "Student is already registered for this course").
			WithSeverity(dto.ErrorSeverityWarning)
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
