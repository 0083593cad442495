package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"querykit/pkg/queryparams"
)

// listFilterKeys are the query keys the list endpoint understands.
// Everything else on the URL is ignored.
var listFilterKeys = []string{
	"status", "tag", "q", "minPrice", "maxPrice", "inStock",
	"createdAfter", "createdBefore",
	queryparams.KeyPage, queryparams.KeyPageSize,
	queryparams.KeyOrderBy, queryparams.KeyOrderDirection,
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq extracts the list request from the raw query string.
// Unknown keys are dropped up front; malformed values fall back to
// absent per queryparams semantics, so a bad filter never fails the
// request, it just does not filter.
func (h *handler) processListReq(ctx context.Context, c *gin.Context) listReq {
	q := queryparams.Parse(c.Request.URL.RawQuery).Filter(listFilterKeys...)

	var req listReq
	req.Statuses, _ = h.extract.StringArray(ctx, q, "status")
	req.Tags, _ = h.extract.StringArray(ctx, q, "tag")
	req.Search, _ = h.extract.String(ctx, q, "q")

	if minPrice, ok := h.extract.Float(ctx, q, "minPrice"); ok {
		req.MinPrice = &minPrice
	}
	if maxPrice, ok := h.extract.Float(ctx, q, "maxPrice"); ok {
		req.MaxPrice = &maxPrice
	}
	if inStock, ok := h.extract.Bool(ctx, q, "inStock"); ok {
		req.InStock = &inStock
	}
	if after, ok := h.extract.Date(ctx, q, "createdAfter"); ok && !after.IsZero() {
		req.CreatedAfter = &after
	}
	if before, ok := h.extract.Date(ctx, q, "createdBefore"); ok && !before.IsZero() {
		req.CreatedBefore = &before
	}

	req.Page = h.extract.Pagination(ctx, q)
	req.Order = h.extract.Ordering(ctx, q)
	return req
}
