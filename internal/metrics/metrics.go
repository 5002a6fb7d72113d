package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	MatchComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_computations_total",
			Help: "Total number of questionnaire match computations",
		},
	)

	MatchedJobs = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_jobs_ranked",
			Help:    "Number of jobs ranked per match computation",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	QuestionnaireSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questionnaire_submissions_total",
			Help: "Total number of questionnaire submissions by outcome",
		},
		[]string{"outcome"},
	)

	CVUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cv_uploads_total",
			Help: "Total number of CV uploads by outcome",
		},
		[]string{"outcome"},
	)

	SearchCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_search_cache_total",
			Help: "Job search cache lookups by result",
		},
		[]string{"result"},
	)
)
