package menuing

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/luciobotteri/refezionify-web/internal/domain"
	"github.com/luciobotteri/refezionify-web/internal/observability"
	"github.com/luciobotteri/refezionify-web/internal/usecases/rendering"
	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/luciobotteri/refezionify-web/pkg/utils"
)

type ControllerConfig struct {
	Location     *time.Location
	FetchTimeout time.Duration
}

// Controller mantém o estado de uma página. Cada troca de mês abre uma nova
// geração; respostas de gerações anteriores são descartadas.
type Controller struct {
	service  Service
	renderer rendering.Renderer
	clock    clockwork.Clock
	metrics  *observability.Metrics
	cfg      ControllerConfig

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	state       domain.ViewState
	generation  uint64
	cancelFetch context.CancelFunc
	pending     int
	idle        chan struct{}
	monthReady  chan struct{}
	weatherOnce sync.Once
}

func NewController(
	ctx context.Context,
	service Service,
	renderer rendering.Renderer,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	cfg ControllerConfig,
) *Controller {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	ctx, cancel := context.WithCancel(ctx)

	idle := make(chan struct{})
	close(idle)

	return &Controller{
		service:    service,
		renderer:   renderer,
		clock:      clock,
		metrics:    metrics,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		idle:       idle,
		monthReady: idle,
	}
}

// Start carrega a seleção inicial e dispara a consulta do tempo
func (c *Controller) Start(sel domain.MonthSelection) domain.ViewState {
	state := c.Select(sel)
	c.weatherOnce.Do(c.launchWeather)
	return state
}

// Advance navega no ciclo. Nas extremidades o estado atual é devolvido sem nova carga.
func (c *Controller) Advance(direction domain.Direction) domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.state.Selection
	next := current.Advance(direction)
	if next == current {
		return c.state
	}

	return c.selectLocked(next)
}

// Select entra em Loading para sel e cancela a carga anterior
func (c *Controller) Select(sel domain.MonthSelection) domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selectLocked(sel)
}

func (c *Controller) selectLocked(sel domain.MonthSelection) domain.ViewState {
	if c.cancelFetch != nil {
		c.cancelFetch()
	}

	c.generation++
	generation := c.generation
	c.state = domain.NewLoadingState(sel, generation, c.renderer.Title(sel), c.state.Weather)

	ctx, cancel := c.fetchContext()
	c.cancelFetch = cancel
	c.begin()

	ready := make(chan struct{})
	c.monthReady = ready

	go c.loadMonth(ctx, cancel, generation, sel, ready)

	return c.state
}

func (c *Controller) State() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait bloqueia até que não haja cargas em andamento ou ctx expire
func (c *Controller) Wait(ctx context.Context) (domain.ViewState, error) {
	c.mu.Lock()
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return c.State(), nil
	case <-ctx.Done():
		return c.State(), ctx.Err()
	}
}

// WaitMonth bloqueia até que o mês selecionado esteja carregado, sem esperar pelo tempo
func (c *Controller) WaitMonth(ctx context.Context) (domain.ViewState, error) {
	for {
		c.mu.Lock()
		ready := c.monthReady
		c.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}

		c.mu.Lock()
		if ready == c.monthReady {
			state := c.state
			c.mu.Unlock()
			return state, nil
		}
		// outra seleção começou enquanto esperávamos
		c.mu.Unlock()
	}
}

// Settle espera o mês e, depois dele, no máximo grace pelo tempo.
// Se o tempo não chegar a tempo, o estado volta sem ele.
func (c *Controller) Settle(ctx context.Context, grace time.Duration) (domain.ViewState, error) {
	state, err := c.WaitMonth(ctx)
	if err != nil || grace <= 0 {
		return state, err
	}

	graceCtx, cancel := context.WithTimeout(ctx, grace)
	defer cancel()

	state, _ = c.Wait(graceCtx)
	return state, nil
}

// Close cancela todas as cargas do controller
func (c *Controller) Close() {
	c.cancel()
}

func (c *Controller) loadMonth(ctx context.Context, cancel context.CancelFunc, generation uint64, sel domain.MonthSelection, ready chan struct{}) {
	defer c.end()
	defer cancel()
	defer close(ready)

	data := c.service.LoadMonth(ctx, sel)
	now := utils.NowIn(c.clock, c.cfg.Location)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		c.metrics.StaleResponses.Inc()
		log.L.WithFields(log.Fields{
			"month":      sel.Key(),
			"generation": generation,
		}).Debug("menuing: resposta antiga descartada")
		return
	}

	if !data.Found {
		c.state = c.state.Empty(domain.EmptyMessage(sel, now))
		c.metrics.ViewLoads.WithLabelValues(string(domain.StatusEmpty)).Inc()
		return
	}

	cards := c.renderer.Cards(sel, data.Bucket, data.Nutrition, now)
	days := make([]int, 0, len(cards))
	for _, card := range cards {
		days = append(days, card.Day)
	}

	c.state = c.state.Populated(cards, domain.ScrollTargetFor(sel, days, now))
	c.metrics.ViewLoads.WithLabelValues(string(domain.StatusPopulated)).Inc()
}

func (c *Controller) launchWeather() {
	c.mu.Lock()
	ctx, cancel := c.fetchContext()
	c.begin()
	c.mu.Unlock()

	go func() {
		defer c.end()
		defer cancel()

		sample := c.service.LoadWeather(ctx)
		if sample == nil {
			return
		}

		c.mu.Lock()
		c.state = c.state.WithWeather(sample)
		c.mu.Unlock()
	}()
}

func (c *Controller) fetchContext() (context.Context, context.CancelFunc) {
	if c.cfg.FetchTimeout > 0 {
		return context.WithTimeout(c.ctx, c.cfg.FetchTimeout)
	}
	return context.WithCancel(c.ctx)
}

// begin deve ser chamado com c.mu travado
func (c *Controller) begin() {
	if c.pending == 0 {
		c.idle = make(chan struct{})
	}
	c.pending++
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending--
	if c.pending == 0 {
		close(c.idle)
	}
}
