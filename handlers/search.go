package handlers

import (
	"net/http"
	"strconv"

	"github.com/fierogr/findfarewells-sub000/models"
	"github.com/fierogr/findfarewells-sub000/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the public directory search.
type SearchHandler struct {
	Svc search.SearchService
}

// NewSearchHandler creates a new SearchHandler instance.
func NewSearchHandler(svc search.SearchService) *SearchHandler {
	return &SearchHandler{Svc: svc}
}

// SearchHandler runs the search pipeline. Query parameters are accepted as an
// alternative to the JSON body so results pages can be linked directly.
func (h *SearchHandler) SearchHandler(c *gin.Context) {
	logger := getLogger(c)

	var query models.SearchQuery
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&query); err != nil {
			logger.Warn("invalid search payload", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Μη έγκυρα κριτήρια αναζήτησης"})
			return
		}
	} else {
		query.Location = c.Query("location")
		query.Prefecture = c.Query("prefecture")
		query.Services = c.QueryArray("services")
		query.Regions = c.QueryArray("regions")
		query.Sort = c.Query("sort")
		if page, ok := c.GetQuery("page"); ok {
			// Unparsable page values fall back to page 1 in the service.
			if n, err := strconv.Atoi(page); err == nil {
				query.Page = n
			}
		}
	}

	page, err := h.Svc.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error("search pipeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Η αναζήτηση απέτυχε. Δοκιμάστε ξανά."})
		return
	}

	c.JSON(http.StatusOK, page)
}
