package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClaimsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "nourishnet", Name: "claims_created_total", Help: "Total number of claims created"})

	ClaimTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nourishnet", Name: "claim_transitions_total", Help: "Claim status transitions applied"},
		[]string{"status"},
	)

	DeliveryJobsAcceptedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "nourishnet", Name: "delivery_jobs_accepted_total", Help: "Delivery jobs accepted by partners"})
	DeliveryJobConflictsTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "nourishnet", Name: "delivery_job_conflicts_total", Help: "Delivery job accepts lost to another partner"})
	DeliveryPartnersOnline     = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "nourishnet", Name: "delivery_partners_online", Help: "Delivery partners currently online"})
	AchievementsAwardedTotal   = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "nourishnet", Name: "achievements_awarded_total", Help: "Achievements awarded to users"},
		[]string{"achievement"},
	)
)
