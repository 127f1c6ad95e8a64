package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Count of successful signups per activity.",
	}, []string{"activity"})
	unregistrationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Count of successful unregistrations per activity.",
	}, []string{"activity"})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "rejections_total",
		Help:      "Count of rejected roster operations by reason.",
	}, []string{"operation", "reason"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregistrationCounter, rejectionCounter)
}

// RecordSignup counts a successful signup for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregistration counts a successful unregistration for the activity.
func RecordUnregistration(activity string) {
	unregistrationCounter.WithLabelValues(activity).Inc()
}

// RecordRejection counts a rejected operation with its failure reason.
func RecordRejection(operation, reason string) {
	rejectionCounter.WithLabelValues(operation, reason).Inc()
}
