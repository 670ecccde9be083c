package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/jimezsa/jobportal/internal/skills"
)

type userRequest struct {
	UID string `uri:"uid" binding:"required"`
}

func (server *Server) getSkillGap(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := server.gaps.SkillGap(ctx.Request.Context(), req.UID)
	if err != nil {
		if errors.Is(err, scraper.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse("User not found"))
			return
		}
		server.logger.Error().Err(err).
			Str("upstream", server.config.SkillGapURL).
			Str("uid", req.UID).
			Msg("fetch skill gap")
		ctx.JSON(http.StatusInternalServerError, errorResponse("Failed to fetch skill gap analysis"))
		return
	}

	ctx.JSON(http.StatusOK, skills.Analyze(result))
}
