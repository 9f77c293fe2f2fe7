package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
)

var errDown = errors.New("storage unavailable")

// fakeQuestionRepo is an in-memory QuestionRepo. Returned questions are
// copies so services must go through Update to persist changes, matching
// the real repository.
type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions map[string]*model.Question
	order     []string
	seq       int
	failing   bool
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[string]*model.Question)}
}

func (f *fakeQuestionRepo) Create(ctx context.Context, q *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if q.ID == "" {
		f.seq++
		q.ID = fmt.Sprintf("q%d", f.seq)
	}
	stored := *q
	f.questions[q.ID] = &stored
	f.order = append(f.order, q.ID)
	return nil
}

func (f *fakeQuestionRepo) GetByID(ctx context.Context, id string) (*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	q, ok := f.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionRepo) GetByIDs(ctx context.Context, ids []string) ([]*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			cp := *q
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) List(ctx context.Context, filter repository.QuestionFilter) ([]*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.Question
	for _, id := range f.order {
		q, ok := f.questions[id]
		if !ok {
			continue
		}
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.Type != "" && q.Type != filter.Type {
			continue
		}
		if filter.Difficulty != "" && q.Difficulty != filter.Difficulty {
			continue
		}
		if filter.CreatedBy != "" && q.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.Tag != "" && !containsTag(q.Tags, filter.Tag) {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(ctx context.Context, q *model.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if _, ok := f.questions[q.ID]; !ok {
		return errors.New("question does not exist")
	}
	stored := *q
	f.questions[q.ID] = &stored
	return nil
}

func (f *fakeQuestionRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	delete(f.questions, id)
	return nil
}

func (f *fakeQuestionRepo) SamplePublished(ctx context.Context, n int) ([]*model.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.Question
	for _, id := range f.order {
		if len(out) == n {
			break
		}
		q, ok := f.questions[id]
		if !ok || q.Status != model.StatusPublished {
			continue
		}
		cp := *q
		out = append(out, &cp)
	}
	return out, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// fakeAttemptRepo is an in-memory AttemptRepo
type fakeAttemptRepo struct {
	mu       sync.Mutex
	attempts []*model.Attempt
	seq      int
	failing  bool
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{}
}

func (f *fakeAttemptRepo) Insert(ctx context.Context, a *model.Attempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if a.ID == "" {
		f.seq++
		a.ID = fmt.Sprintf("a%d", f.seq)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	stored := *a
	f.attempts = append(f.attempts, &stored)
	return nil
}

func (f *fakeAttemptRepo) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	for _, a := range f.attempts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttemptRepo) GetByQuestion(ctx context.Context, questionID string) ([]*model.Attempt, error) {
	return f.filter(func(a *model.Attempt) bool { return a.QuestionID == questionID })
}

func (f *fakeAttemptRepo) GetByUser(ctx context.Context, userID string) ([]*model.Attempt, error) {
	return f.filter(func(a *model.Attempt) bool { return a.UserID == userID })
}

func (f *fakeAttemptRepo) GetBySession(ctx context.Context, sessionID string) ([]*model.Attempt, error) {
	return f.filter(func(a *model.Attempt) bool { return a.SessionID == sessionID })
}

func (f *fakeAttemptRepo) filter(keep func(*model.Attempt) bool) ([]*model.Attempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.Attempt
	for _, a := range f.attempts {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) CountByUserAndQuestion(ctx context.Context, userID, questionID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errDown
	}
	var n int64
	for _, a := range f.attempts {
		if a.UserID == userID && a.QuestionID == questionID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttemptRepo) CountUserContextSince(ctx context.Context, userID, contextType string, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errDown
	}
	var n int64
	for _, a := range f.attempts {
		if a.UserID == userID && a.ContextType == contextType && !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttemptRepo) RecentQuestionIDs(ctx context.Context, since time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	seen := make(map[string]struct{})
	var ids []string
	for _, a := range f.attempts {
		if a.CreatedAt.Before(since) {
			continue
		}
		if _, ok := seen[a.QuestionID]; ok {
			continue
		}
		seen[a.QuestionID] = struct{}{}
		ids = append(ids, a.QuestionID)
	}
	return ids, nil
}

// fakeSessionRepo is an in-memory SessionRepo
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*model.QuizSession
	seq      int
	failing  bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.QuizSession)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *model.QuizSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if s.ID == "" {
		f.seq++
		s.ID = fmt.Sprintf("s%d", f.seq)
	}
	stored := *s
	f.sessions[s.ID] = &stored
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, s *model.QuizSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if _, ok := f.sessions[s.ID]; !ok {
		return errors.New("session does not exist")
	}
	stored := *s
	f.sessions[s.ID] = &stored
	return nil
}

func (f *fakeSessionRepo) GetByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.QuizSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fakeUsageRepo is an in-memory UsageRepo
type fakeUsageRepo struct {
	mu      sync.Mutex
	usages  map[string]*model.QuestionUsage
	seq     int
	failing bool
}

func newFakeUsageRepo() *fakeUsageRepo {
	return &fakeUsageRepo{usages: make(map[string]*model.QuestionUsage)}
}

func (f *fakeUsageRepo) Create(ctx context.Context, u *model.QuestionUsage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if u.ID == "" {
		f.seq++
		u.ID = fmt.Sprintf("u%d", f.seq)
	}
	stored := *u
	f.usages[u.ID] = &stored
	return nil
}

func (f *fakeUsageRepo) GetByID(ctx context.Context, id string) (*model.QuestionUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	u, ok := f.usages[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsageRepo) GetByContext(ctx context.Context, contextType, contextID string) ([]*model.QuestionUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.QuestionUsage
	for _, u := range f.usages {
		if u.ContextType == contextType && u.ContextID == contextID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakeUsageRepo) GetByQuestion(ctx context.Context, questionID string) ([]*model.QuestionUsage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var out []*model.QuestionUsage
	for _, u := range f.usages {
		if u.QuestionID == questionID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUsageRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	delete(f.usages, id)
	return nil
}

// fakeChallengeCache is an in-memory ChallengeCache
type fakeChallengeCache struct {
	mu        sync.Mutex
	counts    map[string]int64
	questions map[string][]string
	failing   bool
}

func newFakeChallengeCache() *fakeChallengeCache {
	return &fakeChallengeCache{
		counts:    make(map[string]int64),
		questions: make(map[string][]string),
	}
}

func (f *fakeChallengeCache) IncrementAttempts(ctx context.Context, userID, day string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errDown
	}
	key := userID + ":" + day
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeChallengeCache) GetAttempts(ctx context.Context, userID, day string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return 0, errDown
	}
	return int(f.counts[userID+":"+day]), nil
}

func (f *fakeChallengeCache) SetDailyQuestions(ctx context.Context, day string, questionIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	f.questions[day] = append([]string(nil), questionIDs...)
	return nil
}

func (f *fakeChallengeCache) GetDailyQuestions(ctx context.Context, day string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	return f.questions[day], nil
}

// fakeStatsCache is an in-memory StatsCache
type fakeStatsCache struct {
	mu      sync.Mutex
	stats   map[string]*model.QuestionAnalytics
	failing bool
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{stats: make(map[string]*model.QuestionAnalytics)}
}

func (f *fakeStatsCache) GetQuestionAnalytics(ctx context.Context, questionID string) (*model.QuestionAnalytics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	s, ok := f.stats[questionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStatsCache) SetQuestionAnalytics(ctx context.Context, analytics *model.QuestionAnalytics) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	cp := *analytics
	f.stats[analytics.QuestionID] = &cp
	return nil
}

func (f *fakeStatsCache) Invalidate(ctx context.Context, questionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	delete(f.stats, questionID)
	return nil
}

// fakeLeaderboard is an in-memory LeaderboardCache
type fakeLeaderboard struct {
	mu      sync.Mutex
	points  map[string]map[string]float64
	failing bool
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{points: make(map[string]map[string]float64)}
}

func (f *fakeLeaderboard) AddPoints(ctx context.Context, quizType, userID string, points float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errDown
	}
	if f.points[quizType] == nil {
		f.points[quizType] = make(map[string]float64)
	}
	f.points[quizType][userID] += points
	return nil
}

func (f *fakeLeaderboard) GetTop(ctx context.Context, quizType string, limit int) ([]model.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errDown
	}
	var entries []model.LeaderboardEntry
	for userID, pts := range f.points[quizType] {
		entries = append(entries, model.LeaderboardEntry{UserID: userID, Points: pts})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (f *fakeLeaderboard) GetRank(ctx context.Context, quizType, userID string) (int64, error) {
	entries, err := f.GetTop(ctx, quizType, 0)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if e.UserID == userID {
			return int64(e.Rank), nil
		}
	}
	return -1, nil
}

// fakeBroadcaster records events synchronously
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	event   string
	userID  string
	payload interface{}
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{}
}

func (f *fakeBroadcaster) Broadcast(event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{event: event, payload: payload})
}

func (f *fakeBroadcaster) BroadcastToUser(userID string, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{event: event, userID: userID, payload: payload})
}

func (f *fakeBroadcaster) eventNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, len(f.events))
	for i, e := range f.events {
		names[i] = e.event
	}
	return names
}

func (f *fakeBroadcaster) has(event string) bool {
	return strings.Contains(strings.Join(f.eventNames(), ","), event)
}

// fakeNotifier records review notifications through a channel so tests
// can wait for the async send
type fakeNotifier struct {
	sent chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan string, 8)}
}

func (f *fakeNotifier) SendQuestionApproved(authorID, questionText string) error {
	f.sent <- "approved:" + authorID
	return nil
}

func (f *fakeNotifier) SendQuestionRejected(authorID, questionText, notes string) error {
	f.sent <- "rejected:" + authorID
	return nil
}

func (f *fakeNotifier) waitForSend(timeout time.Duration) (string, bool) {
	select {
	case msg := <-f.sent:
		return msg, true
	case <-time.After(timeout):
		return "", false
	}
}
