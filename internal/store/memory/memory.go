// Package memory provides an in-memory implementation of the service
// repository interfaces. It mirrors the SQL store's observable
// behavior, including the unique-index duplicate errors, and backs the
// unit tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/askwell/apiserver/internal/store"
	"github.com/askwell/apiserver/types"
)

// Store holds all entities behind a single mutex.
type Store struct {
	mu        sync.Mutex
	nextID    int
	users     map[int]types.User
	sessions  map[int]types.Session
	questions map[int]types.Question
	answers   map[int]types.Answer
}

func NewStore() *Store {
	return &Store{
		nextID:    1,
		users:     make(map[int]types.User),
		sessions:  make(map[int]types.Session),
		questions: make(map[int]types.Question),
		answers:   make(map[int]types.Answer),
	}
}

func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserStore { return &UserStore{s} }

// Sessions returns the session repository view of the store.
func (s *Store) Sessions() *SessionStore { return &SessionStore{s} }

// Questions returns the question repository view of the store.
func (s *Store) Questions() *QuestionStore { return &QuestionStore{s} }

// Answers returns the answer repository view of the store.
func (s *Store) Answers() *AnswerStore { return &AnswerStore{s} }

type UserStore struct{ s *Store }

func (r *UserStore) Create(_ context.Context, user types.User) (types.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == user.Username {
			return types.User{}, store.ErrDuplicateUsername
		}
	}
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return types.User{}, store.ErrDuplicateEmail
		}
	}
	user.ID = r.s.allocID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.s.users[user.ID] = user
	return user, nil
}

func (r *UserStore) GetByID(_ context.Context, id int) (types.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (r *UserStore) GetByUUID(_ context.Context, uuid string) (types.User, error) {
	return r.find(func(u types.User) bool { return u.UUID == uuid })
}

func (r *UserStore) GetByUsername(_ context.Context, username string) (types.User, error) {
	return r.find(func(u types.User) bool { return u.Username == username })
}

func (r *UserStore) GetByEmail(_ context.Context, email string) (types.User, error) {
	return r.find(func(u types.User) bool { return u.Email == email })
}

func (r *UserStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.users, id)
	// Cascade, matching the SQL schema's ON DELETE CASCADE.
	for sid, session := range r.s.sessions {
		if session.UserID == id {
			delete(r.s.sessions, sid)
		}
	}
	for qid, question := range r.s.questions {
		if question.UserID == id {
			delete(r.s.questions, qid)
			for aid, answer := range r.s.answers {
				if answer.QuestionID == qid {
					delete(r.s.answers, aid)
				}
			}
		}
	}
	for aid, answer := range r.s.answers {
		if answer.UserID == id {
			delete(r.s.answers, aid)
		}
	}
	return nil
}

func (r *UserStore) find(match func(types.User) bool) (types.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, user := range r.s.users {
		if match(user) {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

type SessionStore struct{ s *Store }

func (r *SessionStore) Create(_ context.Context, session types.Session) (types.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	session.ID = r.s.allocID()
	r.s.sessions[session.ID] = session
	return session, nil
}

func (r *SessionStore) GetByToken(_ context.Context, accessToken string) (types.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, session := range r.s.sessions {
		if session.AccessToken == accessToken {
			return session, nil
		}
	}
	return types.Session{}, store.ErrNotFound
}

func (r *SessionStore) MarkSignedOut(_ context.Context, accessToken string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, session := range r.s.sessions {
		if session.AccessToken == accessToken && session.SignedOutAt == nil {
			stamped := at
			session.SignedOutAt = &stamped
			r.s.sessions[id] = session
			return nil
		}
	}
	return store.ErrNotFound
}

type QuestionStore struct{ s *Store }

func (r *QuestionStore) Create(_ context.Context, question types.Question) (types.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	question.ID = r.s.allocID()
	r.s.questions[question.ID] = question
	return question, nil
}

func (r *QuestionStore) GetByUUID(_ context.Context, uuid string) (types.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, question := range r.s.questions {
		if question.UUID == uuid {
			return question, nil
		}
	}
	return types.Question{}, store.ErrNotFound
}

func (r *QuestionStore) ListAll(_ context.Context) ([]types.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(types.Question) bool { return true }), nil
}

func (r *QuestionStore) ListByUser(_ context.Context, userID int) ([]types.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.collect(func(q types.Question) bool { return q.UserID == userID }), nil
}

func (r *QuestionStore) UpdateContent(_ context.Context, id int, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	question, ok := r.s.questions[id]
	if !ok {
		return store.ErrNotFound
	}
	question.Content = content
	r.s.questions[id] = question
	return nil
}

func (r *QuestionStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.questions, id)
	for aid, answer := range r.s.answers {
		if answer.QuestionID == id {
			delete(r.s.answers, aid)
		}
	}
	return nil
}

func (r *QuestionStore) collect(match func(types.Question) bool) []types.Question {
	questions := make([]types.Question, 0)
	for _, question := range r.s.questions {
		if match(question) {
			questions = append(questions, question)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		if questions[i].CreatedAt.Equal(questions[j].CreatedAt) {
			return questions[i].ID < questions[j].ID
		}
		return questions[i].CreatedAt.Before(questions[j].CreatedAt)
	})
	return questions
}

type AnswerStore struct{ s *Store }

func (r *AnswerStore) Create(_ context.Context, answer types.Answer) (types.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answer.ID = r.s.allocID()
	r.s.answers[answer.ID] = answer
	return answer, nil
}

func (r *AnswerStore) GetByUUID(_ context.Context, uuid string) (types.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, answer := range r.s.answers {
		if answer.UUID == uuid {
			return answer, nil
		}
	}
	return types.Answer{}, store.ErrNotFound
}

func (r *AnswerStore) ListByQuestion(_ context.Context, questionID int) ([]types.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answers := make([]types.Answer, 0)
	for _, answer := range r.s.answers {
		if answer.QuestionID == questionID {
			answers = append(answers, answer)
		}
	}
	sort.Slice(answers, func(i, j int) bool {
		if answers[i].CreatedAt.Equal(answers[j].CreatedAt) {
			return answers[i].ID < answers[j].ID
		}
		return answers[i].CreatedAt.Before(answers[j].CreatedAt)
	})
	return answers, nil
}

func (r *AnswerStore) UpdateContent(_ context.Context, id int, content string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	answer, ok := r.s.answers[id]
	if !ok {
		return store.ErrNotFound
	}
	answer.Content = content
	r.s.answers[id] = answer
	return nil
}

func (r *AnswerStore) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.answers[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.answers, id)
	return nil
}
