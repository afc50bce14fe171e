package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/friendsofgo/errors"
	"github.com/gin-gonic/gin"

	"moodmeter-srv/internal/model"
	"moodmeter-srv/internal/sentiment"
	"moodmeter-srv/internal/sentiment/usecase"
	"moodmeter-srv/pkg/response"
)

// getHistory returns the trailing live-history window of score points.
// @Summary Sentiment history
// @Description Score points of the trailing live window for a channel
// @Tags Sentiment
// @Produce json
// @Param channel path string true "Channel name"
// @Success 200 {object} response.Resp
// @Router /api/sentiment/{channel}/history [get]
func (srv *HTTPServer) getHistory(c *gin.Context) {
	ctx := c.Request.Context()

	points, err := srv.uc.History(ctx, c.Param("channel"))
	if err != nil {
		srv.logger.Errorf(ctx, "History for %s failed: %v", c.Param("channel"), err)
		response.InternalErr(c)
		return
	}
	response.OK(c, points)
}

// getMessages returns sample messages for one aggregation bucket.
// @Summary Bucket sample messages
// @Description Up to five raw chat messages recorded for the bucket at ts
// @Tags Sentiment
// @Produce json
// @Param channel path string true "Channel name"
// @Param ts query int true "Bucket timestamp (epoch ms)"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/sentiment/{channel}/messages [get]
func (srv *HTTPServer) getMessages(c *gin.Context) {
	ts, err := strconv.ParseInt(c.Query("ts"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ts must be an integer timestamp in milliseconds")
		return
	}
	response.OK(c, srv.uc.Samples(c.Param("channel"), ts))
}

// getReportJSON serves the session report as a JSON download.
// @Summary Session report (JSON)
// @Tags Report
// @Produce json
// @Param channel path string true "Channel name"
// @Success 200 {object} model.SessionReport
// @Router /api/session/{channel}/report.json [get]
func (srv *HTTPServer) getReportJSON(c *gin.Context) {
	ctx := c.Request.Context()
	ch := c.Param("channel")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+ch+".json"))

	report, err := srv.buildReport(c)
	if err != nil {
		if errors.Is(err, sentiment.ErrNoData) {
			c.JSON(http.StatusOK, gin.H{"error": "No data"})
			return
		}
		srv.logger.Errorf(ctx, "Report for %s failed: %v", ch, err)
		response.InternalErr(c)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getReportCSV serves the session report as a CSV download.
// @Summary Session report (CSV)
// @Tags Report
// @Produce text/csv
// @Param channel path string true "Channel name"
// @Success 200 {string} string
// @Router /api/session/{channel}/report.csv [get]
func (srv *HTTPServer) getReportCSV(c *gin.Context) {
	ctx := c.Request.Context()
	ch := c.Param("channel")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+ch+".csv"))

	report, err := srv.buildReport(c)
	if err != nil {
		if errors.Is(err, sentiment.ErrNoData) {
			c.String(http.StatusOK, "No data")
			return
		}
		srv.logger.Errorf(ctx, "Report for %s failed: %v", ch, err)
		response.InternalErr(c)
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(usecase.RenderReportCSV(report)))
}

func (srv *HTTPServer) buildReport(c *gin.Context) (model.SessionReport, error) {
	to := srv.now().UnixMilli()
	from := to - srv.reportWindow.Milliseconds()
	return srv.uc.BuildReport(c.Request.Context(), c.Param("channel"), from, to)
}

// getAlertConfig returns the channel's alert configuration.
// @Summary Alert configuration
// @Tags Alerts
// @Produce json
// @Param channel path string true "Channel name"
// @Success 200 {object} response.Resp
// @Router /api/alerts/{channel} [get]
func (srv *HTTPServer) getAlertConfig(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := srv.uc.GetAlertConfig(ctx, c.Param("channel"))
	if err != nil {
		srv.logger.Errorf(ctx, "Get alert config for %s failed: %v", c.Param("channel"), err)
		response.InternalErr(c)
		return
	}
	response.OK(c, cfg)
}

type alertConfigReq struct {
	Threshold *float64 `json:"threshold" binding:"required"`
	// Any JSON number is accepted; fractional seconds are truncated.
	Duration *float64 `json:"duration" binding:"required"`
}

// setAlertConfig stores the channel's alert configuration. Malformed or
// non-numeric bodies never reach the core.
// @Summary Update alert configuration
// @Tags Alerts
// @Accept json
// @Produce json
// @Param channel path string true "Channel name"
// @Param body body alertConfigReq true "Alert configuration"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/alerts/{channel} [post]
func (srv *HTTPServer) setAlertConfig(c *gin.Context) {
	ctx := c.Request.Context()

	var req alertConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "threshold and duration must be numeric")
		return
	}
	duration := int(*req.Duration)
	if duration <= 0 {
		response.BadRequest(c, "duration must be a positive number of seconds")
		return
	}

	cfg := model.AlertConfig{Threshold: *req.Threshold, Duration: duration}
	if err := srv.uc.SetAlertConfig(ctx, c.Param("channel"), cfg); err != nil {
		srv.logger.Errorf(ctx, "Set alert config for %s failed: %v", c.Param("channel"), err)
		response.InternalErr(c)
		return
	}
	response.OK(c, cfg)
}

type calibrationReq struct {
	Vote string `json:"vote" binding:"required"`
}

// postCalibration applies one manual calibration vote.
// @Summary Calibration vote
// @Tags Calibration
// @Accept json
// @Produce json
// @Param channel path string true "Channel name"
// @Param body body calibrationReq true "Vote"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/calibration/{channel} [post]
func (srv *HTTPServer) postCalibration(c *gin.Context) {
	ctx := c.Request.Context()

	var req calibrationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "vote is required")
		return
	}

	if err := srv.uc.Vote(ctx, c.Param("channel"), sentiment.Vote(req.Vote)); err != nil {
		if errors.Is(err, sentiment.ErrInvalidVote) {
			response.BadRequest(c, "vote must be one of happy, sad, neutral")
			return
		}
		srv.logger.Errorf(ctx, "Calibration vote for %s failed: %v", c.Param("channel"), err)
		response.InternalErr(c)
		return
	}
	response.OK(c, gin.H{"vote": req.Vote})
}
