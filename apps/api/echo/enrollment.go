package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/enrollment"
)

type enrollmentApi struct {
	svc      *enrollment.Service
	validate *validator.Validate
}

func registerEnrollmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *enrollment.Service, validate *validator.Validate) {
	api := enrollmentApi{svc: svc, validate: validate}

	eg := g.Group("/enrollments", jwt)
	eg.POST("", api.create)
	eg.POST("/bulk", api.createBulk)
	eg.POST("/course", api.createForCourse)
	eg.POST("/conflict-check", api.checkConflict)

	sg := g.Group("/students", jwt)
	sg.GET("/:id/enrollments", api.queryStudent)
}

// Handlers

func (api *enrollmentApi) create(ctx echo.Context) error {
	var data enrollment.NewEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	claims, err := requireSelfOrAdmin(ctx, data.StudentID)
	if err != nil {
		return err
	}
	if data.StudentEmail == "" {
		data.StudentEmail = claims.Email
	}

	enrol, err := api.svc.Enroll(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "enrolling student")
	}
	return ctx.JSON(http.StatusCreated, enrol)
}

func (api *enrollmentApi) createBulk(ctx echo.Context) error {
	var data enrollment.BulkEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to BulkEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	claims, err := requireSelfOrAdmin(ctx, data.StudentID)
	if err != nil {
		return err
	}
	if data.StudentEmail == "" {
		data.StudentEmail = claims.Email
	}

	res, err := api.svc.EnrollMany(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "bulk enrolling student")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *enrollmentApi) createForCourse(ctx echo.Context) error {
	var data enrollment.CourseEnrollment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseEnrollment")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	claims, err := requireSelfOrAdmin(ctx, data.StudentID)
	if err != nil {
		return err
	}
	if data.StudentEmail == "" {
		data.StudentEmail = claims.Email
	}

	res, err := api.svc.EnrollCourse(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "course enrolling student")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *enrollmentApi) checkConflict(ctx echo.Context) error {
	var data ConflictCheckRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ConflictCheckRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	if _, err := requireSelfOrAdmin(ctx, data.StudentID); err != nil {
		return err
	}

	conflict, warns, err := api.svc.CheckConflict(ctx.Request().Context(), data.StudentID, data.BatchID)
	if err != nil {
		if errors.Cause(err) == batch.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "checking conflict")
	}
	return ctx.JSON(http.StatusOK, newConflictCheckResponse(conflict, warns))
}

func (api *enrollmentApi) queryStudent(ctx echo.Context) error {
	studentID := ctx.Param("id")
	if _, err := requireSelfOrAdmin(ctx, studentID); err != nil {
		return err
	}

	enrols, err := api.svc.QueryByStudent(ctx.Request().Context(), studentID)
	if err != nil {
		return errors.Wrap(err, "querying student enrollments")
	}
	return ctx.JSON(http.StatusOK, enrols)
}
