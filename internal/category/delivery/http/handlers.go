package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
	"taskmate/pkg/response"
)

// Create godoc
// @Summary     Create a new category
// @Description Creates a category with name, icon, and hex color.
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Category data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /api/v1/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCategoryResp(created))
}

// List godoc
// @Summary     List categories
// @Description Returns all categories of the authenticated user.
// @Tags        Category
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	categories, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "category.uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(categories))
}

// Detail godoc
// @Summary     Get category detail
// @Tags        Category
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	found, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "category.uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(found))
}

// Update godoc
// @Summary     Update a category
// @Tags        Category
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Category ID"
// @Param       body body updateReq true "Category data"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "category.uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCategoryResp(updated))
}

// Delete godoc
// @Summary     Delete a category
// @Tags        Category
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "category.uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
