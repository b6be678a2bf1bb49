package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motorhub_role_requests_submitted_total",
		Help: "Role requests submitted, by requested type.",
	}, []string{"request_type"})

	RequestsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "motorhub_role_requests_decided_total",
		Help: "Role request decisions, by outcome.",
	}, []string{"status"})

	ProvisioningFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motorhub_provisioning_failures_total",
		Help: "Approvals whose account provisioning step failed.",
	})

	QuotaDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "motorhub_listing_quota_denials_total",
		Help: "Listing creations rejected by the subscription quota.",
	})
)

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
