// Package wizard runs the scripted conversation that collects filter selections one question at a time.
package wizard

import (
	"errors"
	"fmt"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/taxonomy"
)

type State uint8

const (
	Initial State = iota
	Country
	Style
	Flavor
	Color
	Intensity
	Bitterness
	Done

	stateCount
)

var (
	ErrInvalidChoice = errors.New("invalid choice")
	ErrFinished      = errors.New("conversation already finished")
)

var stateNames = [stateCount]string{
	Initial:    "initial",
	Country:    "country",
	Style:      "style",
	Flavor:     "flavor",
	Color:      "color",
	Intensity:  "intensity",
	Bitterness: "bitterness",
	Done:       "done",
}

var questions = [stateCount]string{
	Initial:    "¡Hola! ¿Con qué puedo ayudarte?",
	Country:    "¡Perfecto! ¿De qué país te gustaría probar cervezas?",
	Style:      "¡Excelente! ¿Qué estilo de cerveza prefieres?",
	Flavor:     "¡Me encanta! ¿Qué sabor específico buscas?",
	Color:      "¡Genial! ¿Qué color de cerveza te gusta más?",
	Intensity:  "¡Perfecto! ¿Qué intensidad prefieres?",
	Bitterness: "¿Y qué tan amarga te gusta?",
	Done:       "¡Listo! Buscando las cervezas perfectas para ti...",
}

// category states only; Initial and Done collect nothing.
var stateCategories = map[State]filter.Category{
	Country:    filter.Origin,
	Style:      filter.Style,
	Flavor:     filter.Flavor,
	Color:      filter.Color,
	Intensity:  filter.Strength,
	Bitterness: filter.Bitterness,
}

// fullSearch is the order of the complete search.
var fullSearch = map[State]State{
	Country:    Style,
	Style:      Flavor,
	Flavor:     Color,
	Color:      Intensity,
	Intensity:  Bitterness,
	Bitterness: Done,
}

func (s State) String() string {
	if s >= stateCount {
		return fmt.Sprintf("state(%d)", s)
	}

	return stateNames[s]
}

func (s State) Question() string {
	if s >= stateCount {
		return ""
	}

	return questions[s]
}

// Category is the filter category a state collects.
func (s State) Category() (filter.Category, bool) {
	category, ok := stateCategories[s]

	return category, ok
}

// Intent is an answer to the opening question.
type Intent uint8

const (
	ByCountry Intent = iota
	ByStyle
	ByFlavor
	ByColor
	ByIntensity
	ByBitterness
	Complete

	intentCount
)

type intentInfo struct {
	id    string
	label string
	icon  string
	state State
}

var intents = [intentCount]intentInfo{
	ByCountry:    {id: "country", label: "Buscar por país", icon: "🌍", state: Country},
	ByStyle:      {id: "style", label: "Buscar por estilo", icon: "🍺", state: Style},
	ByFlavor:     {id: "flavor", label: "Buscar por sabor", icon: "😋", state: Flavor},
	ByColor:      {id: "color", label: "Buscar por color", icon: "🎨", state: Color},
	ByIntensity:  {id: "intensity", label: "Buscar por intensidad", icon: "💪", state: Intensity},
	ByBitterness: {id: "bitterness", label: "Buscar por amargor", icon: "🌿", state: Bitterness},
	Complete:     {id: "complete", label: "Búsqueda completa", icon: "🔍", state: Country},
}

func ParseIntent(id string) (Intent, error) {
	for intent, info := range intents {
		if info.id == id {
			return Intent(intent), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown intent %q", ErrInvalidChoice, id)
}

func (i Intent) String() string {
	return intents[i].id
}

// Conversation is the state of one wizard run. The zero value is a conversation at Initial.
type Conversation struct {
	state     State
	full      bool
	selection filter.Selection
}

func (c *Conversation) State() State {
	return c.state
}

// Selection returns the selections collected so far.
func (c *Conversation) Selection() filter.Selection {
	return c.selection
}

// Answer applies one choice. At Initial the choice is an intent id; at a category state it is the id of an
// option of that category. It returns the category that received a selection, if any.
func (c *Conversation) Answer(choice string, options *taxonomy.Taxonomy) (filter.Category, bool, error) {
	switch c.state {
	case Initial:
		intent, err := ParseIntent(choice)
		if err != nil {
			return 0, false, err
		}

		c.full = intent == Complete
		c.state = intents[intent].state

		return 0, false, nil
	case Done:
		return 0, false, ErrFinished
	}

	category, _ := c.state.Category()
	if _, ok := options.Lookup(category, choice); !ok {
		return 0, false, fmt.Errorf("%w: %q is not a %s option", ErrInvalidChoice, choice, category)
	}

	c.selection.Set(category, choice)

	if c.full {
		c.state = fullSearch[c.state]
	} else {
		c.state = Done
	}

	return category, true, nil
}

type Option struct {
	ID    string
	Label string
	Icon  string
	Uses  int64
}

// Step is what the wizard asks next.
type Step struct {
	State    State
	Question string
	Options  []Option
}

// Step renders the current question. Category options are ordered by usage and cut to limit; the opening
// intents are never cut.
func (c *Conversation) Step(options *taxonomy.Taxonomy, counts map[string]int64, limit int) Step {
	step := Step{State: c.state, Question: c.state.Question()}

	if c.state == Initial {
		for _, info := range intents {
			step.Options = append(step.Options, Option{ID: info.id, Label: info.label, Icon: info.icon})
		}

		return step
	}

	category, ok := c.state.Category()
	if !ok {
		return step
	}

	for _, option := range filter.Top(filter.SortByUsage(category, options.Options(category), counts), limit) {
		step.Options = append(step.Options, Option{ID: option.ID, Label: option.Label, Icon: option.Icon, Uses: option.Uses})
	}

	return step
}
