package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskmate/internal/task"
	pkgErrors "taskmate/pkg/errors"
)

// processListReq reads paging and filter query params.
func processListReq(c *gin.Context) (task.ListTasksInput, error) {
	input := task.ListTasksInput{Page: 1, PageSize: 20}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid page")
		}
		input.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > 100 {
			return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid page_size")
		}
		input.PageSize = size
	}
	if raw := c.Query("status"); raw != "" {
		st := task.Status(raw)
		if !st.IsValid() {
			return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid status")
		}
		input.Status = &st
	}
	if raw := c.Query("priority"); raw != "" {
		p := task.Priority(raw)
		if !p.IsValid() {
			return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid priority")
		}
		input.Priority = &p
	}
	if raw := c.Query("favorite"); raw != "" {
		fav, err := strconv.ParseBool(raw)
		if err != nil {
			return task.ListTasksInput{}, pkgErrors.NewHTTPError(400, "invalid favorite")
		}
		input.Favorite = &fav
	}
	return input, nil
}

// processDateReq reads the date query param in YYYY-MM-DD form.
func processDateReq(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, pkgErrors.NewHTTPError(400, "date is required")
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, pkgErrors.NewHTTPError(400, "date must be YYYY-MM-DD")
	}
	return date, nil
}
