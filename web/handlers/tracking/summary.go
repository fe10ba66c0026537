package tracking

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/export"
	"gardiendutemps.fr/gardien/utils"
	web "gardiendutemps.fr/gardien/web/common"
)

// DaySummary returns the derived reconstruction of one day (default: today).
func (ep *Endpoint) DaySummary(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	date, err := ep.dateParam(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid date"))
		return
	}

	events, err := ep.events.GetEvents(c.Request.Context(), userID, &date, &date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	key := date.Format(utils.DateLayout)
	bucket := core.GroupByDay(events)[key]
	c.JSON(http.StatusOK, web.NewSuccessResponse(core.ReconstructDay(key, bucket)))
}

func (ep *Endpoint) WeekSummary(c *gin.Context) {
	anchor, err := ep.dateParam(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid date"))
		return
	}
	start, end := core.WeekOf(anchor)
	ep.periodSummary(c, start, end)
}

func (ep *Endpoint) MonthSummary(c *gin.Context) {
	anchor, err := ep.dateParam(c, "date")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid date"))
		return
	}
	start, end := core.MonthOf(anchor)
	ep.periodSummary(c, start, end)
}

type SearchParams struct {
	StartDate *web.DateOnly `json:"startDate" binding:"required"`
	EndDate   *web.DateOnly `json:"endDate" binding:"required"`
}

// Search summarizes an arbitrary custom range.
func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	ep.periodSummary(c, params.StartDate.Time, params.EndDate.Time)
}

func (ep *Endpoint) periodSummary(c *gin.Context, start, end time.Time) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	events, err := ep.events.GetEvents(c.Request.Context(), userID, &start, &end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(core.SummarizePeriod(events, start, end, ep.calendar)))
}

// Export streams the period summary as an xlsx attachment.
func (ep *Endpoint) Export(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	start, err := ep.dateParam(c, "startDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid startDate"))
		return
	}
	end, err := ep.dateParam(c, "endDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("invalid endDate"))
		return
	}

	events, err := ep.events.GetEvents(c.Request.Context(), userID, &start, &end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	report, err := export.PeriodReport(core.SummarizePeriod(events, start, end, ep.calendar))
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	defer report.Close()

	filename := fmt.Sprintf("temps_%s_%s.xlsx", start.Format(utils.DateLayout), end.Format(utils.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := report.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
	}
}
