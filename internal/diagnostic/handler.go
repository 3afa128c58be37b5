package diagnostic

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	pkgLog "master-data-barang/pkg/log"
)

// maxCollections caps how many collection names the report lists.
const maxCollections = 10

// maxErrLen caps how much of a probe error is exposed in the report.
const maxErrLen = 50

type handler struct {
	l      pkgLog.Logger
	prober Prober
}

// HandleStatus reports database availability and configuration presence.
// Every failure path is converted into a descriptive field value — this
// endpoint never returns an error status.
// @Summary Database connectivity report
// @Description Check whether the document store is available and accessible
// @Tags test
// @Produce json
// @Success 200 {object} Report
// @Router /test [get]
func (h *handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	report := Report{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.prober != nil {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		// List collections to verify connectivity end to end.
		names, err := h.prober.ListCollectionNames(ctx)
		if err != nil {
			h.l.Warnf(ctx, "diagnostic.HandleStatus: probe failed: %v", err)
			report.Database = fmt.Sprintf("⚠️  Connected but Error: %s", truncate(err.Error(), maxErrLen))
		} else {
			if len(names) > maxCollections {
				names = names[:maxCollections]
			}
			report.Collections = names
			report.Database = "✅ Connected & Working"
		}
	}

	// Presence, not value, of the datastore configuration.
	report.DatabaseURL = envPresence("DATABASE_URL")
	report.DatabaseName = envPresence("DATABASE_NAME")

	c.JSON(200, report)
}

func envPresence(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
