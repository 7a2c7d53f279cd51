package browsing

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/internal/usecases/menuing"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
	"github.com/pkg/errors"
)

// ControllerFactory cria o controller de uma nova sessão
type ControllerFactory func(ctx context.Context) *menuing.Controller

type Session struct {
	ID         string
	Controller *menuing.Controller
	CreatedAt  time.Time
	lastSeen   time.Time
}

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks
type SessionStore interface {
	Create(ctx context.Context) (*Session, domain.ViewState, error)
	Get(id string) (*Session, error)
	Advance(id string, direction domain.Direction) (domain.ViewState, error)
	Sweep(ttl time.Duration) int
	Len() int
}

type StoreConfig struct {
	Location  *time.Location
	StartYear int
}

type Store struct {
	ctx     context.Context
	factory ControllerFactory
	clock   clockwork.Clock
	metrics *observability.Metrics
	cfg     StoreConfig

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(ctx context.Context, factory ControllerFactory, clock clockwork.Clock, metrics *observability.Metrics, cfg StoreConfig) SessionStore {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Store{
		ctx:      ctx,
		factory:  factory,
		clock:    clock,
		metrics:  metrics,
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Create abre uma sessão no mês corrente do ano letivo
func (s *Store) Create(ctx context.Context) (*Session, domain.ViewState, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, domain.ViewState{}, errors.Wrap(err, "erro ao gerar id de sessão")
	}

	now := utils.NowIn(s.clock, s.cfg.Location)
	session := &Session{
		ID:         id,
		Controller: s.factory(s.ctx),
		CreatedAt:  now,
		lastSeen:   now,
	}

	state := session.Controller.Start(domain.InitialSelection(now, s.cfg.StartYear))

	s.mu.Lock()
	s.sessions[id] = session
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.ActiveSessions.Set(float64(count))

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": id,
		"month":      state.Selection.Key(),
	}).Info("browsing: sessão criada")

	return session, state, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.NewMenuError(domain.ErrSessionNotFound, domain.ErrCodeSessionNotFound, id)
	}
	session.lastSeen = s.clock.Now()

	return session, nil
}

func (s *Store) Advance(id string, direction domain.Direction) (domain.ViewState, error) {
	session, err := s.Get(id)
	if err != nil {
		return domain.ViewState{}, err
	}
	return session.Controller.Advance(direction), nil
}

// Sweep encerra as sessões sem acesso há mais de ttl e devolve quantas foram removidas
func (s *Store) Sweep(ttl time.Duration) int {
	now := s.clock.Now()

	s.mu.Lock()
	expired := make([]*Session, 0)
	for id, session := range s.sessions {
		if now.Sub(session.lastSeen) >= ttl {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()

	for _, session := range expired {
		session.Controller.Close()
	}

	s.metrics.ActiveSessions.Set(float64(count))

	if len(expired) > 0 {
		log.L.WithFields(log.Fields{
			"removed": len(expired),
			"active":  count,
		}).Info("browsing: sessões expiradas removidas")
	}

	return len(expired)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
