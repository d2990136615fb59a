package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboardTabs is the fixed tab set of the dashboard shell, in display order.
var dashboardTabs = []string{"media", "posts", "integrations", "billing"}

const defaultTab = "media"

// IDashboardHandler defines the dashboard shell endpoints.
type IDashboardHandler interface {
	Tabs(ctx *gin.Context)
	Selected(ctx *gin.Context)
}

// DashboardHandler holds no state beyond the tab set; an invalid selection
// falls back to the default tab.
type DashboardHandler struct{}

func NewDashboardHandler() IDashboardHandler {
	return &DashboardHandler{}
}

// Tabs handles GET /api/dashboard/tabs.
func (h *DashboardHandler) Tabs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"tabs": dashboardTabs, "default": defaultTab})
}

// Selected handles GET /api/dashboard.
func (h *DashboardHandler) Selected(ctx *gin.Context) {
	tab := ctx.Query("tab")
	valid := false
	for _, t := range dashboardTabs {
		if t == tab {
			valid = true
			break
		}
	}
	if !valid {
		tab = defaultTab
	}
	ctx.JSON(http.StatusOK, gin.H{"selected": tab, "tabs": dashboardTabs})
}
