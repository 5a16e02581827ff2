package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"droscher.com/BeerFinder/configs"
	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/taxonomy"
)

var (
	ErrUnknownSession = errors.New("unknown conversation")
	ErrClosed         = errors.New("wizard is shutting down")
)

type Taxonomy interface {
	Load(ctx context.Context) *taxonomy.Taxonomy
}

type Usage interface {
	Record(ctx context.Context, category filter.Category, optionID string)
	Counts(ctx context.Context) map[string]int64
}

// CompleteFunc receives the selections of a conversation that reached Done.
type CompleteFunc func(sessionID string, selection filter.Selection)

// Turn is the wizard's reply to an action.
type Turn struct {
	SessionID string
	Step      Step
	Selection filter.Selection
}

func (t *Turn) Done() bool {
	return t.Step.State == Done
}

type session struct {
	id           string
	conversation Conversation
	timer        *time.Timer
	generation   uint64
}

// Manager keeps the live conversations. Every session has at most one idle timer: an idle session mid-way
// is reset to Initial, and a session idle at Initial is dropped.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	closed   bool

	taxonomy    Taxonomy
	usage       Usage
	onComplete  CompleteFunc
	idleTimeout time.Duration
	optionLimit int
	logger      *zap.Logger
}

func NewManager(conf configs.Wizard, options Taxonomy, usage Usage, onComplete CompleteFunc, logger *zap.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*session),
		taxonomy:    options,
		usage:       usage,
		onComplete:  onComplete,
		idleTimeout: conf.IdleTimeout,
		optionLimit: conf.OptionLimit,
		logger:      logger,
	}
}

func (m *Manager) Start(_ context.Context) (*Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	current := &session{id: xid.New().String()}
	m.sessions[current.id] = current
	m.arm(current)

	m.logger.Debug("Conversation started", zap.String("session", current.id))

	return &Turn{SessionID: current.id, Step: current.conversation.Step(nil, nil, m.optionLimit)}, nil
}

// Answer applies a choice to a conversation. A conversation reaching Done is handed to the completion
// callback and forgotten.
func (m *Manager) Answer(ctx context.Context, sessionID string, choice string) (*Turn, error) {
	options := m.taxonomy.Load(ctx)

	m.mu.Lock()

	current, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()

		return nil, ErrUnknownSession
	}

	m.arm(current)

	category, picked, err := current.conversation.Answer(choice, options)
	if err != nil {
		m.mu.Unlock()

		return nil, err
	}

	conversation := current.conversation
	if conversation.State() == Done {
		m.forget(current)
	}

	m.mu.Unlock()

	if picked {
		m.usage.Record(ctx, category, choice)
	}

	turn := &Turn{
		SessionID: sessionID,
		Step:      conversation.Step(options, m.usage.Counts(ctx), m.optionLimit),
		Selection: conversation.Selection(),
	}

	if turn.Done() {
		m.logger.Info("Conversation completed", zap.String("session", sessionID),
			zap.Stringers("categories", conversation.selection.Populated()))

		if m.onComplete != nil {
			m.onComplete(sessionID, turn.Selection)
		}
	}

	return turn, nil
}

// Get returns the current question of a conversation without counting as activity.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Turn, error) {
	m.mu.Lock()

	current, ok := m.sessions[sessionID]
	if !ok {
		m.mu.Unlock()

		return nil, ErrUnknownSession
	}

	conversation := current.conversation
	m.mu.Unlock()

	if conversation.State() == Initial {
		return &Turn{SessionID: sessionID, Step: conversation.Step(nil, nil, m.optionLimit)}, nil
	}

	return &Turn{
		SessionID: sessionID,
		Step:      conversation.Step(m.taxonomy.Load(ctx), m.usage.Counts(ctx), m.optionLimit),
		Selection: conversation.Selection(),
	}, nil
}

// Close discards a conversation and everything it collected.
func (m *Manager) Close(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[sessionID]
	if !ok {
		return ErrUnknownSession
	}

	m.forget(current)

	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

// Shutdown stops every idle timer and drops all conversations. Later calls to Start fail.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	for _, current := range m.sessions {
		m.forget(current)
	}
}

// must hold m.mu.
func (m *Manager) arm(current *session) {
	if current.timer != nil {
		current.timer.Stop()
	}

	current.generation++
	generation := current.generation
	sessionID := current.id

	current.timer = time.AfterFunc(m.idleTimeout, func() { m.expire(sessionID, generation) })
}

// must hold m.mu.
func (m *Manager) forget(current *session) {
	if current.timer != nil {
		current.timer.Stop()
	}

	current.generation++
	delete(m.sessions, current.id)
}

func (m *Manager) expire(sessionID string, generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.sessions[sessionID]
	if !ok || current.generation != generation {
		return
	}

	if current.conversation.State() == Initial {
		m.logger.Debug("Conversation expired", zap.String("session", sessionID))
		m.forget(current)

		return
	}

	m.logger.Debug("Conversation reset after inactivity", zap.String("session", sessionID),
		zap.Stringer("state", current.conversation.State()))

	current.conversation = Conversation{}
	m.arm(current)
}
