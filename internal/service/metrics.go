package service

import "github.com/prometheus/client_golang/prometheus"

var (
	PagesRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studydesk_pages_rendered_total",
			Help: "Pages rendered, by page id",
		},
		[]string{"page"},
	)
	TimerSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studydesk_timer_submissions_total",
			Help: "Timer submissions, by result (valid or invalid)",
		},
		[]string{"result"},
	)
	TasksAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studydesk_tasks_added_total",
			Help: "Tasks appended to the shared task list",
		},
	)
	SessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "studydesk_sessions_active",
			Help: "Sessions currently held in memory",
		},
	)
)

func init() {
	prometheus.MustRegister(PagesRendered)
	prometheus.MustRegister(TimerSubmissions)
	prometheus.MustRegister(TasksAdded)
	prometheus.MustRegister(SessionsActive)
}
