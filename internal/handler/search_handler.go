package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcircle/backend/internal/discovery"
)

// SearchUsers godoc
// @Summary      Search for users
// @Description  Searches discoverable users by handle, name, or visible profile fields. Without a query, returns recommended users ranked by profile completeness.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q              query     string  false  "Search query"
// @Param        limit          query     int     false  "Max results" default(20)
// @Param        connected_only query     bool    false  "Restrict to the viewer's circle"
// @Success      200   {array}   discovery.RankedResult
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	opts := discovery.Options{}

	// Non-numeric or out-of-range limits clamp to the default, never error.
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(discovery.DefaultLimit)))
	if err != nil {
		limit = discovery.DefaultLimit
	}
	opts.Limit = limit
	opts.ConnectedOnly = c.Query("connected_only") == "true"

	results, err := h.ranker.Search(c.Request.Context(), viewerID(c), c.Query("q"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
