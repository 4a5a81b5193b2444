package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productranking/internal/jobs"
)

// triggerBatchRankingRequest is POST /api/v1/admin/batch/rankings/{period}'s
// JSON body. BaseDate is optional and defaults to today (KST) when omitted.
type triggerBatchRankingRequest struct {
	BaseDate string `json:"baseDate"`
}

// TriggerBatchRanking serves POST /api/v1/admin/batch/rankings/:period,
// the manual operator trigger for the weekly/monthly materialized ranking.
func TriggerBatchRanking(c *gin.Context) {
	period := c.Param("period")

	var req triggerBatchRankingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	baseDate, err := jobs.ParseBaseDate(req.BaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The job runs on a context detached from the request's cancellation so
	// a client disconnect does not abort its writes.
	exec, err := jobs.TriggerManual(context.WithoutCancel(c.Request.Context()), period, baseDate)
	switch {
	case errors.Is(err, jobs.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, jobs.ErrJobAlreadyRunning):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobName":         exec.JobName,
		"baseDate":        jobs.FormatBaseDate(exec.BaseDate),
		"status":          exec.Status,
		"startTime":       exec.StartTime,
		"endTime":         exec.EndTime,
		"readCount":       exec.ReadCount,
		"writeCount":      exec.WriteCount,
		"exitDescription": exec.ExitDescription,
	})
}
