package domain

import "time"

type ViewStatus string

const (
	StatusLoading   ViewStatus = "loading"
	StatusEmpty     ViewStatus = "empty"
	StatusPopulated ViewStatus = "populated"
)

const (
	MessageNotYetAvailable = "Il menù di questo mese non è ancora disponibile."
	MessageNoMenu          = "Nessun menù disponibile per questo mese."
	MessageLoading         = "Caricamento..."
)

// EmptyMessage distingue um mês ainda não publicado de um mês sem dados
// apenas pela comparação com o mês real corrente.
func EmptyMessage(sel MonthSelection, now time.Time) string {
	if sel.Compare(now) == Future {
		return MessageNotYetAvailable
	}
	return MessageNoMenu
}

type DayCard struct {
	Day       int             `json:"day"`
	Key       string          `json:"key"`
	Anchor    string          `json:"anchor"`
	Heading   string          `json:"heading"`
	IsToday   bool            `json:"is_today"`
	Items     []string        `json:"items"`
	Nutrition *NutritionEntry `json:"nutrition,omitempty"`
	Weather   *WeatherSample  `json:"weather,omitempty"`
}

// ViewState é um retrato imutável da página. Cada transição devolve um novo valor;
// os slices de um estado já publicado nunca são alterados.
type ViewState struct {
	Selection   MonthSelection `json:"selection"`
	Year        int            `json:"year"`
	Generation  uint64         `json:"generation"`
	Status      ViewStatus     `json:"status"`
	Title       string         `json:"title"`
	Message     string         `json:"message,omitempty"`
	Cards       []DayCard      `json:"cards"`
	Scroll      *ScrollTarget  `json:"scroll,omitempty"`
	Weather     *WeatherSample `json:"weather,omitempty"`
	HasPrevious bool           `json:"has_previous"`
	HasNext     bool           `json:"has_next"`
}

// NewLoadingState abre uma nova geração para a seleção. O tempo já carregado é mantido.
func NewLoadingState(sel MonthSelection, generation uint64, title string, weather *WeatherSample) ViewState {
	return ViewState{
		Selection:   sel,
		Year:        sel.Year(),
		Generation:  generation,
		Status:      StatusLoading,
		Title:       title,
		Message:     MessageLoading,
		Cards:       []DayCard{},
		Weather:     weather,
		HasPrevious: !sel.IsFirst(),
		HasNext:     !sel.IsLast(),
	}
}

func (s ViewState) IsLoading() bool {
	return s.Status == StatusLoading
}

func (s ViewState) Populated(cards []DayCard, scroll *ScrollTarget) ViewState {
	next := s
	next.Status = StatusPopulated
	next.Message = ""
	next.Cards = attachWeather(cards, s.Weather)
	next.Scroll = scroll
	return next
}

func (s ViewState) Empty(message string) ViewState {
	next := s
	next.Status = StatusEmpty
	next.Message = message
	next.Cards = []DayCard{}
	next.Scroll = nil
	return next
}

// WithWeather associa o tempo ao card de hoje, se existir
func (s ViewState) WithWeather(w *WeatherSample) ViewState {
	next := s
	next.Weather = w
	next.Cards = attachWeather(s.Cards, w)
	return next
}

// Today devolve o card de hoje, se estiver entre os cards
func (s ViewState) Today() (DayCard, bool) {
	for _, c := range s.Cards {
		if c.IsToday {
			return c, true
		}
	}
	return DayCard{}, false
}

func attachWeather(cards []DayCard, w *WeatherSample) []DayCard {
	out := make([]DayCard, len(cards))
	copy(out, cards)
	if w == nil {
		return out
	}
	for i := range out {
		if out[i].IsToday {
			sample := *w
			out[i].Weather = &sample
		}
	}
	return out
}
