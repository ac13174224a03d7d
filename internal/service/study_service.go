package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studydesk/internal/domain"
	"studydesk/internal/logger"
	"studydesk/internal/pages"
	"studydesk/internal/repository"
)

// ErrPageNeedsInputs is returned when a page that consumes inputs is
// requested without going through Dispatch.
var ErrPageNeedsInputs = errors.New("page requires inputs")

// StudyService owns the sessions, the shared task list and the page graph,
// and is the only place handlers are invoked from.
type StudyService struct {
	Sessions *repository.SessionStore
	Tasks    *repository.TaskRepository
	Audit    *AuditService

	app *pages.App
	now func() time.Time
}

// NewStudyService builds the service. now is the wall clock used by the
// timer; nil means time.Now.
func NewStudyService(sessions *repository.SessionStore, tasks *repository.TaskRepository, audit *AuditService, now func() time.Time) *StudyService {
	if now == nil {
		now = time.Now
	}
	return &StudyService{
		Sessions: sessions,
		Tasks:    tasks,
		Audit:    audit,
		app:      pages.NewApp(tasks, now),
		now:      now,
	}
}

func (s *StudyService) Graph() *pages.Graph {
	return s.app.Graph()
}

// StartSession creates a session, signs its token and renders the entry page.
func (s *StudyService) StartSession(ctx context.Context, meta RequestMeta) (*repository.Session, string, domain.Page, error) {
	sess, created := s.Sessions.Create()
	token, err := GenerateJWT(sess.ID)
	if err != nil {
		return nil, "", domain.Page{}, fmt.Errorf("sign session token: %w", err)
	}
	if created {
		SessionsActive.Set(float64(s.Sessions.Len()))
		s.Audit.Log(ctx, sess.ID, domain.AuditActionSessionStart, domain.AuditCategorySession, meta, nil)
	}

	page, err := s.Render(ctx, sess, s.Graph().Entry)
	if err != nil {
		return nil, "", domain.Page{}, err
	}
	return sess, token, page, nil
}

// Resolve maps a session token to its live session.
func (s *StudyService) Resolve(token string) (*repository.Session, error) {
	sid, err := ParseJWT(token)
	if err != nil {
		return nil, err
	}
	return s.Sessions.Get(sid)
}

// Render shows a page that takes no inputs.
func (s *StudyService) Render(ctx context.Context, sess *repository.Session, id domain.PageID) (domain.Page, error) {
	route, err := s.Graph().Route(id)
	if err != nil {
		return domain.Page{}, err
	}
	if len(route.Params) > 0 {
		return domain.Page{}, fmt.Errorf("%w: %s", ErrPageNeedsInputs, id)
	}
	return s.Dispatch(ctx, sess, id, nil, RequestMeta{})
}

// Dispatch runs the handler for target with the session's State locked for
// the whole call. Only the inputs the route declares are passed through.
func (s *StudyService) Dispatch(ctx context.Context, sess *repository.Session, target domain.PageID, inputs map[string]string, meta RequestMeta) (domain.Page, error) {
	route, err := s.Graph().Route(target)
	if err != nil {
		return domain.Page{}, err
	}

	in := make(pages.Inputs, len(route.Params))
	for _, name := range route.Params {
		in[name] = inputs[name]
	}

	var page domain.Page
	sess.WithState(s.now(), func(st *domain.State) {
		page, err = s.Graph().Dispatch(target, st, in)
	})
	if err != nil {
		return domain.Page{}, err
	}

	PagesRendered.WithLabelValues(string(page.ID)).Inc()
	s.record(ctx, sess.ID, target, page, meta)
	return page, nil
}

func (s *StudyService) record(ctx context.Context, sessionID string, target domain.PageID, page domain.Page, meta RequestMeta) {
	action := domain.AuditActionNavigate
	details := map[string]interface{}{"page": string(target)}

	switch target {
	case domain.PageFinishAddTask:
		TasksAdded.Inc()
		action = domain.AuditActionTaskAdd
		details["task_count"] = s.Tasks.Count()
	case domain.PageSave:
		action = domain.AuditActionNotesSet
		details["notes_length"] = len(page.State.Notes)
	case domain.PageTimer:
		action = domain.AuditActionTimerSet
		result := "valid"
		if page.State.StartingTime == pages.InvalidTimeMessage {
			result = "invalid"
		}
		TimerSubmissions.WithLabelValues(result).Inc()
		details["result"] = result
	}

	s.Audit.Log(ctx, sessionID, action, domain.AuditCategoryPage, meta, details)
}

// ListTasks returns every task in insertion order.
func (s *StudyService) ListTasks() []domain.Task {
	return s.Tasks.List()
}

// TimerEnd reports the end of the session's running timer, if any.
func (s *StudyService) TimerEnd(sess *repository.Session) (time.Time, bool) {
	st := sess.Snapshot()
	if st.TimerEnd.IsZero() {
		return time.Time{}, false
	}
	return st.TimerEnd, true
}

// StartCleanup evicts sessions idle longer than ttl until ctx is done.
func (s *StudyService) StartCleanup(ctx context.Context, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(cleanupInterval(ttl))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evict(ctx, ttl)
			}
		}
	}()
}

func (s *StudyService) evict(ctx context.Context, ttl time.Duration) {
	evicted := s.Sessions.EvictIdle(ttl)
	for _, id := range evicted {
		s.Audit.Log(ctx, id, domain.AuditActionSessionEvict, domain.AuditCategorySession, RequestMeta{}, nil)
	}
	if len(evicted) > 0 {
		logger.Info("evicted idle sessions", "count", len(evicted))
	}
	SessionsActive.Set(float64(s.Sessions.Len()))
}

func cleanupInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	if interval > 10*time.Minute {
		interval = 10 * time.Minute
	}
	return interval
}
