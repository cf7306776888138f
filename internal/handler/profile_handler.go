package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fitcircle/backend/internal/visibility"
)

// GetMe godoc
// @Summary      Get current user's profile
// @Description  Retrieves the full, unredacted profile of the authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  visibility.RedactedProfile
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.profiles.Get(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.redactor.SelfView(user))
}

// PreviewUser godoc
// @Summary      Get a user's profile as the viewer sees it
// @Description  Retrieves another user's profile with every field redacted per the subject's visibility settings and the viewer's relationship to them.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ProfilePreviewResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) PreviewUser(c *gin.Context) {
	viewer := viewerID(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	// The subject's own view bypasses the policy entirely.
	if viewer == uint(targetID) {
		h.GetMe(c)
		return
	}

	ctx := c.Request.Context()
	user, err := h.profiles.Get(ctx, uint(targetID))
	if err != nil {
		respondError(c, err)
		return
	}

	relMap, err := h.resolver.Resolve(ctx, viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	settingsRow, err := h.profiles.Settings(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := relMap.StatusOf(user.ID)
	response := ProfilePreviewResponse{
		RedactedProfile:    h.redactor.Redact(user, visibility.SettingsFromModel(settingsRow), status),
		RelationshipStatus: string(status),
	}
	if entry, ok := relMap.Entry(user.ID); ok {
		id := entry.RelationshipID
		response.RelationshipID = &id
	}
	c.JSON(http.StatusOK, response)
}

// ProfilePreviewResponse is a redacted profile with the viewer's relationship
// state attached for UI affordances.
type ProfilePreviewResponse struct {
	visibility.RedactedProfile
	RelationshipStatus string `json:"relationship_status"`
	RelationshipID     *uint  `json:"relationship_id,omitempty"`
}
