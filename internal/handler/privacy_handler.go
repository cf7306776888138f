package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PrivacySettingsInput maps setting keys (field names, or "profile" for the
// overall discoverability gate) to visibility tiers.
type PrivacySettingsInput map[string]string

// GetPrivacySettings godoc
// @Summary      Get privacy settings
// @Description  Returns the viewer's effective visibility tier for every profile field, defaults included.
// @Tags         privacy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profile.SettingsView
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/privacy [get]
func (h *Handler) GetPrivacySettings(c *gin.Context) {
	view, err := h.privacy.Settings(c.Request.Context(), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdatePrivacySettings godoc
// @Summary      Update privacy settings
// @Description  Updates visibility tiers for the given fields. Any unknown field or tier rejects the whole update, naming the offending key.
// @Tags         privacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PrivacySettingsInput true "Field to tier map"
// @Success      200  {object}  map[string]string "{"message": "Settings updated"}"
// @Failure      400  {object}  ErrorResponse "Unknown field or tier"
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/privacy [put]
func (h *Handler) UpdatePrivacySettings(c *gin.Context) {
	var input PrivacySettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.privacy.Update(c.Request.Context(), viewerID(c), input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}
