package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobportal/internal/models"
	"github.com/jimezsa/jobportal/internal/paginate"
	"github.com/jimezsa/jobportal/internal/scraper"
	"github.com/jimezsa/jobportal/internal/search"
)

const (
	noJobsMessage    = "No jobs found"
	fetchFailMessage = "Failed to fetch job data"
)

// listJobsRequest binds the query of GET /api/jobs. Every parameter is
// optional and malformed values mean "no constraint".
type listJobsRequest struct {
	Keyword    string `form:"keyword"`
	Location   string `form:"location"`
	JobType    string `form:"jobType"`
	Salary     string `form:"salary"`
	Experience string `form:"experience"`
	Remote     string `form:"remote"`
	SortBy     string `form:"sortBy"`
}

func (req listJobsRequest) criteria() models.FilterCriteria {
	return models.FilterCriteria{
		Location:        strings.TrimSpace(req.Location),
		JobType:         strings.TrimSpace(req.JobType),
		MinSalary:       models.ParseSalaryString(req.Salary),
		ExperienceLevel: strings.TrimSpace(req.Experience),
		RemoteOnly:      strings.TrimSpace(req.Remote) != "",
		SortBy:          models.ParseSortMode(req.SortBy),
	}
}

type listJobsResponse struct {
	Jobs []models.Job `json:"jobs"`
}

// listJobs fetches from the scrape service and applies the attribute filter
// and the requested sort.
func (server *Server) listJobs(ctx *gin.Context) {
	var req listJobsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	jobs, ok := server.fetchJobs(ctx, req.Keyword, req.Location)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, listJobsResponse{Jobs: search.Attribute(jobs, req.criteria())})
}

type searchJobsRequest struct {
	listJobsRequest
	Page string `form:"page"`
}

type searchJobsResponse struct {
	Jobs       []models.ScoredJob `json:"jobs"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
	Window     paginate.Window    `json:"window"`
	Controls   []paginate.Control `json:"controls"`
}

// searchJobs runs the ranked, paginated view of the listing page.
func (server *Server) searchJobs(ctx *gin.Context) {
	var req searchJobsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	jobs, ok := server.fetchJobs(ctx, req.Keyword, req.Location)
	if !ok {
		return
	}

	ranked := search.Keyword(jobs, req.criteria(), req.Keyword)
	result := paginate.New(ranked, parsePage(req.Page), server.pageSize())

	ctx.JSON(http.StatusOK, searchJobsResponse{
		Jobs:       result.Items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
		Window:     result.Window,
		Controls:   result.Window.Controls(),
	})
}

// fetchJobs writes the error response itself and reports false when the
// caller should stop.
func (server *Server) fetchJobs(ctx *gin.Context, keyword, location string) ([]models.Job, bool) {
	jobs, err := server.jobs.Search(ctx.Request.Context(), models.SearchParams{
		Keyword:       keyword,
		Location:      location,
		ResultsWanted: server.config.ResultsWanted,
	})
	switch {
	case errors.Is(err, scraper.ErrNoJobs):
		ctx.JSON(http.StatusNotFound, gin.H{"jobs": []models.Job{}, "message": noJobsMessage})
		return nil, false
	case err != nil:
		server.logger.Error().Err(err).
			Str("upstream", server.config.ScrapeURL).
			Str("keyword", keyword).
			Str("location", location).
			Msg("fetch jobs")
		ctx.JSON(http.StatusInternalServerError, errorResponse(fetchFailMessage))
		return nil, false
	case len(jobs) == 0:
		ctx.JSON(http.StatusNotFound, gin.H{"jobs": []models.Job{}, "message": noJobsMessage})
		return nil, false
	}
	return jobs, true
}

func (server *Server) pageSize() int {
	if server.config.PageSize > 0 {
		return server.config.PageSize
	}
	return paginate.DefaultPageSize
}

// parsePage reads a 1-indexed page number; anything that is not a positive
// integer means the first page.
func parsePage(value string) int {
	page, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
