package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobportal/internal/scraper"
)

// getRecommendations passes the recommendation service's list through.
func (server *Server) getRecommendations(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	recs, err := server.recs.Recommend(ctx.Request.Context(), req.UID)
	if err != nil {
		if errors.Is(err, scraper.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse("User not found"))
			return
		}
		server.logger.Error().Err(err).
			Str("upstream", server.config.RecommendURL).
			Str("uid", req.UID).
			Msg("fetch recommendations")
		ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch job recommendations"))
		return
	}

	ctx.JSON(http.StatusOK, recs)
}
