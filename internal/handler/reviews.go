package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nearest-throne/service-restroom/internal/response"
)

// Review is static sample data; review submission and storage are out of
// scope.
type Review struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Verified bool   `json:"verified"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Comment  string `json:"comment"`
	Likes    int    `json:"likes"`
}

var sampleReviews = []Review{
	{
		ID:       1,
		Author:   "Mia S.",
		Verified: true,
		Rating:   5,
		Date:     "2 days ago",
		Comment:  "Super clean! The staff maintains it well. Soap and hand dryer both working perfectly.",
		Likes:    12,
	},
	{
		ID:       2,
		Author:   "Juan D.",
		Verified: true,
		Rating:   5,
		Date:     "1 week ago",
		Comment:  "One of the cleanest CRs in the area. Worth the small fee they charge.",
		Likes:    8,
	},
	{
		ID:       3,
		Author:   "Ana L.",
		Verified: false,
		Rating:   3,
		Date:     "2 weeks ago",
		Comment:  "Decent but ran out of paper towels when I visited. Bring your own tabo just in case.",
		Likes:    3,
	},
}

// GetReviews returns the sample reviews for an existing restroom.
func (h *CatalogHandler) GetReviews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid restroom ID")
		return
	}

	if _, err := h.service.FindByID(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sampleReviews)
}
