package tracking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gardiendutemps.fr/gardien/core"
	"gardiendutemps.fr/gardien/utils"
	web "gardiendutemps.fr/gardien/web/common"
)

type SubmitDTO struct {
	TrackingType string  `json:"tracking_type" binding:"required,oneof=arrival break_start break_end departure"`
	DateTime     *string `json:"date_time,omitempty"`
	TaskID       *int32  `json:"task_id,omitempty"`
}

// Submit records a clock action. The gate is re-evaluated server-side against
// a fresh fetch; an illegal action comes back as 409 with the reason.
func (ep *Endpoint) Submit(c *gin.Context) {
	userID, ok := ep.userID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("missing user"))
		return
	}

	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	at := ep.now()
	if dto.DateTime != nil {
		parsed, err := utils.ParseISOTime(*dto.DateTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		at = *parsed
	}

	proposal := core.Proposal{
		Kind:   dto.TrackingType,
		At:     at,
		TaskID: dto.TaskID,
	}

	entry, err := ep.events.Submit(c.Request.Context(), userID, proposal)
	if err != nil {
		respondRejectionOrError(c, err)
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(entry))
}

// List returns the raw stored entries for a date range.
func (ep *Endpoint) List(c *gin.Context) {
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

	entries, err := ep.events.GetEntries(c.Request.Context(), userID, &start, &end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(entries, int64(len(entries))))
}
