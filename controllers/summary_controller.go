package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DmytroSyrovatskyi/FoodDiary/services"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

// GET /summary/today is the live day view; a day with no meals yet comes back
// with zero totals instead of 404
func (sc *SummaryController) Today(c *gin.Context) {
	summary, err := sc.summaries.ForDay(c.Request.Context(), currentUserID(c), time.Now())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /summary?date=2006-01-02 is the report path; 404 when nothing was logged
func (sc *SummaryController) ByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}
	summary, err := sc.summaries.ByDate(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
