package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fitcircle/backend/internal/discovery"
	"fitcircle/backend/internal/profile"
	"fitcircle/backend/internal/relationship"
	"fitcircle/backend/internal/visibility"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Handler carries the wired services behind every route.
type Handler struct {
	profiles  profile.Store
	privacy   *profile.PrivacyService
	relations *relationship.Service
	resolver  *relationship.Resolver
	redactor  *visibility.Redactor
	ranker    *discovery.Ranker
}

// New creates a Handler.
func New(profiles profile.Store, privacy *profile.PrivacyService, relations *relationship.Service, resolver *relationship.Resolver, redactor *visibility.Redactor, ranker *discovery.Ranker) *Handler {
	return &Handler{
		profiles:  profiles,
		privacy:   privacy,
		relations: relations,
		resolver:  resolver,
		redactor:  redactor,
		ranker:    ranker,
	}
}

// viewerID extracts the authenticated user id set by the auth middleware.
func viewerID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}

// respondError maps service errors to HTTP responses. Store failures always
// surface as a generic 500: visibility decisions are security-sensitive, so
// internals are never exposed and nothing is served on ambiguity.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, relationship.ErrSelfTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot target yourself"})
	case errors.Is(err, visibility.ErrInvalidVisibilityValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, relationship.ErrAlreadyConnected),
		errors.Is(err, relationship.ErrAlreadyRequested):
		c.JSON(http.StatusConflict, gin.H{"error": "Relation already exists"})
	case errors.Is(err, relationship.ErrBlocked):
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot send request to this user"})
	case errors.Is(err, relationship.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Relation not found"})
	case errors.Is(err, profile.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, profile.ErrDuplicateUser):
		c.JSON(http.StatusConflict, gin.H{"error": "Handle or email already exists"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
