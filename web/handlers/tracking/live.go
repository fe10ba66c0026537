package tracking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/utils"
	web "gardiendutemps.fr/gardien/web/common"
)

// Live returns the in-progress worked minutes for today. The client polls
// this; the value only approximates multi-break days until departure.
func (ep *Endpoint) Live(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	now := ep.localNow()
	today, err := ep.events.TodayEvents(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	day := core.ReconstructDay(now.Format(utils.DateLayout), today)
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"elapsed_minutes": core.LiveElapsed(today, now),
		"status":          day.Status,
	}))
}

// Availability reports which clock actions are currently legal for the user.
func (ep *Endpoint) Availability(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	now := ep.localNow()
	today, err := ep.events.TodayEvents(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	day := core.ReconstructDay(now.Format(utils.DateLayout), today)
	availability := core.Availability(day, ep.events.InFlight(userID))
	c.JSON(http.StatusOK, web.NewSuccessResponse(availability))
}

// TaskTime returns the memoized total worked minutes attributed to one task.
func (ep *Endpoint) TaskTime(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Invalid id"))
		return
	}

	events, err := ep.events.GetEvents(c.Request.Context(), userID, nil, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	minutes := ep.events.TaskMinutes(userID, int32(taskID), events)
	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{
		"task_id":        taskID,
		"worked_minutes": minutes,
	}))
}
