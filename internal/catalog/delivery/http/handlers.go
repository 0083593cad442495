package http

import (
	"github.com/gin-gonic/gin"

	"querykit/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new catalog item with the provided fields.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List items
// @Description Returns a filtered, sorted, paginated list of items. Filters
// @Description arrive as query parameters: repeat status/tag for arrays,
// @Description minPrice/maxPrice as numbers, inStock as true/false,
// @Description createdAfter/createdBefore as dates, plus page/pageSize and
// @Description orderBy/orderDirection.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       status         query []string false "Statuses (repeatable)"
// @Param       tag            query []string false "Tags (repeatable, all must match)"
// @Param       q              query string   false "Search in name and description"
// @Param       minPrice       query number   false "Minimum price"
// @Param       maxPrice       query number   false "Maximum price"
// @Param       inStock        query boolean  false "Stock filter (true/false)"
// @Param       createdAfter   query string   false "Created on or after (RFC3339 or YYYY-MM-DD)"
// @Param       createdBefore  query string   false "Created on or before (RFC3339 or YYYY-MM-DD)"
// @Param       page           query int      false "Page number (default: 1)"
// @Param       pageSize       query int      false "Page size (default from config)"
// @Param       orderBy        query string   false "Sort field: name, price, createdAt"
// @Param       orderDirection query string   false "Sort direction: asc or desc"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(ctx, c)

	output, err := h.uc.List(ctx, req.toInput(h.queryCfg.DefaultPageSize, h.queryCfg.MaxPageSize))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.NotFound(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.NotFound(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
