package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcircle/backend/internal/models"
)

// ConnectionResponse describes one pending request from the viewer's side.
type ConnectionResponse struct {
	RelationshipID uint   `json:"relationship_id"`
	UserID         uint   `json:"user_id"`
	Direction      string `json:"direction"`
}

func targetID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return 0, false
	}
	return uint(id), true
}

// Connect godoc
// @Summary      Send connection request
// @Description  Sends a connection request to another user.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      201  {object}  map[string]string "{"message": "Request sent successfully"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Relation already exists or pair is blocked"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/connect [post]
func (h *Handler) Connect(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if _, err := h.relations.Connect(c.Request.Context(), viewerID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Request sent successfully"})
}

// AcceptRequest godoc
// @Summary      Accept connection request
// @Description  Accepts a pending connection request from another user.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      200  {object}  map[string]string "{"message": "Request accepted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/accept [post]
func (h *Handler) AcceptRequest(c *gin.Context) {
	requester, ok := targetID(c)
	if !ok {
		return
	}
	if _, err := h.relations.Accept(c.Request.Context(), viewerID(c), requester); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request accepted"})
}

// DeclineRequest godoc
// @Summary      Decline connection request
// @Description  Declines a pending connection request from another user.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      200  {object}  map[string]string "{"message": "Request declined"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/decline [post]
func (h *Handler) DeclineRequest(c *gin.Context) {
	requester, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.relations.Decline(c.Request.Context(), viewerID(c), requester); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request declined"})
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Blocks another user, removing both users from each other's search results and suppressing future requests.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "User blocked"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/block [post]
func (h *Handler) BlockUser(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.relations.Block(c.Request.Context(), viewerID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User blocked"})
}

// Disconnect godoc
// @Summary      Remove relationship
// @Description  Removes the relationship with another user regardless of its status: cancels a sent request, removes a connection, or lifts a block.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "Relation removed"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Relation not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/connect [delete]
func (h *Handler) Disconnect(c *gin.Context) {
	target, ok := targetID(c)
	if !ok {
		return
	}
	if err := h.relations.Disconnect(c.Request.Context(), viewerID(c), target); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relation removed"})
}

// GetRequests godoc
// @Summary      List pending connection requests
// @Description  Lists the viewer's pending requests, incoming and outgoing.
// @Tags         connections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string][]ConnectionResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/requests [get]
func (h *Handler) GetRequests(c *gin.Context) {
	viewer := viewerID(c)
	incoming, outgoing, err := h.relations.PendingRequests(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	build := func(records []models.Relationship, direction string) []ConnectionResponse {
		responses := make([]ConnectionResponse, 0, len(records))
		for _, rec := range records {
			responses = append(responses, ConnectionResponse{
				RelationshipID: rec.ID,
				UserID:         rec.Other(viewer),
				Direction:      direction,
			})
		}
		return responses
	}

	c.JSON(http.StatusOK, gin.H{
		"incoming": build(incoming, "incoming"),
		"outgoing": build(outgoing, "outgoing"),
	})
}
