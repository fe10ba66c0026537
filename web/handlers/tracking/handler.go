package tracking

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/store"
	"gardiendutemps.fr/gardien/utils"
	web "gardiendutemps.fr/gardien/web/common"
)

type Endpoint struct {
	events   *store.EventStore
	calendar core.ExpectedHoursCalendar
	now      func() time.Time
}

func Register(r *gin.RouterGroup, events *store.EventStore, calendar core.ExpectedHoursCalendar) {
	endpoint := &Endpoint{
		events:   events,
		calendar: calendar,
		now:      time.Now,
	}
	r.POST("/time-entries", endpoint.Submit)
	r.GET("/time-entries", endpoint.List)
	r.GET("/summary/day", endpoint.DaySummary)
	r.GET("/summary/week", endpoint.WeekSummary)
	r.GET("/summary/month", endpoint.MonthSummary)
	r.POST("/summary/search", endpoint.Search)
	r.GET("/summary/export", endpoint.Export)
	r.GET("/live", endpoint.Live)
	r.GET("/availability", endpoint.Availability)
	r.GET("/tasks/:id/time", endpoint.TaskTime)
}

// userID resolves the acting user: the authenticated subject when present,
// otherwise an explicit userId query parameter (directors querying their team).
func (ep *Endpoint) userID(c *gin.Context) (int32, bool) {
	if q := c.Query("userId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil || id <= 0 {
			return 0, false
		}
		return int32(id), true
	}
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(int32); ok {
			return id, true
		}
	}
	return 0, false
}

func (ep *Endpoint) localNow() time.Time {
	return ep.now().In(ep.events.Location())
}

// dateParam reads an optional yyyy-MM-dd query parameter, defaulting to the
// current local date.
func (ep *Endpoint) dateParam(c *gin.Context, name string) (time.Time, error) {
	value := c.Query(name)
	if value == "" {
		now := ep.localNow()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.ParseInLocation(utils.DateLayout, value, ep.events.Location())
}

func respondRejectionOrError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrActionNotAllowed) {
		reason := strings.TrimPrefix(err.Error(), store.ErrActionNotAllowed.Error()+": ")
		c.JSON(http.StatusConflict, web.NewRejectionResponse(reason))
		return
	}
	c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
}
