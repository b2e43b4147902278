package domain

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ScreenType is the onboarding flow a screen belongs to. Order positions are
// unique per screen type.
type ScreenType string

const (
	ScreenTypeQuiz       ScreenType = "quiz"
	ScreenTypeConversion ScreenType = "conversion"
)

func (t ScreenType) String() string { return string(t) }

func (t ScreenType) IsValid() bool {
	return t == ScreenTypeQuiz || t == ScreenTypeConversion
}

// Allows reports whether a component may be placed on this screen type.
func (t ScreenType) Allows(c ComponentID) bool {
	switch t {
	case ScreenTypeQuiz:
		switch c {
		case ComponentSingleChoice, ComponentMultiChoice, ComponentSlider, ComponentTextInput, ComponentInfo:
			return true
		}
	case ScreenTypeConversion:
		switch c {
		case ComponentInfo, ComponentPaywall:
			return true
		}
	}
	return false
}

// OnboardingScreen is one step of the onboarding flow. Options holds the
// component payload; its shape is decided by ComponentID.
type OnboardingScreen struct {
	ID            uuid.UUID       `db:"id"             json:"id"`
	Type          ScreenType      `db:"-"              json:"screen_type"`
	ComponentID   ComponentID     `db:"component_id"   json:"component_id"`
	Title         string          `db:"title"          json:"title"`
	Subtitle      *string         `db:"subtitle"       json:"subtitle"`
	Options       json.RawMessage `db:"options"        json:"options"`
	OrderPosition int             `db:"order_position" json:"order_position"`
	ShouldShow    bool            `db:"should_show"    json:"should_show"`
	NextScreenID  *uuid.UUID      `db:"next_screen_id" json:"next_screen_id"`
	CreatedAt     time.Time       `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"     json:"updated_at"`
}

// ScreenUpdateParams holds optional fields for a partial screen update.
// ClearNextScreen unlinks the explicit next screen.
type ScreenUpdateParams struct {
	ComponentID     *ComponentID
	Title           *string
	Subtitle        *string
	Options         json.RawMessage
	OrderPosition   *int
	ShouldShow      *bool
	NextScreenID    *uuid.UUID
	ClearNextScreen bool
}

// FlowNode is a screen rendered in the flow editor.
type FlowNode struct {
	ID            uuid.UUID   `json:"id"`
	Type          ScreenType  `json:"screen_type"`
	ComponentID   ComponentID `json:"component_id"`
	Title         string      `json:"title"`
	OrderPosition int         `json:"order_position"`
	ShouldShow    bool        `json:"should_show"`
}

// FlowEdge connects two screens. Implicit edges follow order_position when
// a screen has no explicit next screen.
type FlowEdge struct {
	Source   uuid.UUID `json:"source"`
	Target   uuid.UUID `json:"target"`
	Implicit bool      `json:"implicit"`
}

// FlowGraph is the node/edge view of the onboarding flow.
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Edges []FlowEdge `json:"edges"`
}

// BuildFlowGraph lays screens out as a graph. Screens are ordered by type
// (quiz before conversion) and display position; the last quiz screen links
// to the first conversion screen.
func BuildFlowGraph(screens []OnboardingScreen) FlowGraph {
	ordered := make([]OnboardingScreen, len(screens))
	copy(ordered, screens)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Type != ordered[j].Type {
			return ordered[i].Type == ScreenTypeQuiz
		}
		return DisplayPosition(ordered[i].OrderPosition) < DisplayPosition(ordered[j].OrderPosition)
	})

	graph := FlowGraph{
		Nodes: make([]FlowNode, 0, len(ordered)),
		Edges: []FlowEdge{},
	}
	for i, s := range ordered {
		graph.Nodes = append(graph.Nodes, FlowNode{
			ID:            s.ID,
			Type:          s.Type,
			ComponentID:   s.ComponentID,
			Title:         s.Title,
			OrderPosition: s.OrderPosition,
			ShouldShow:    s.ShouldShow,
		})

		switch {
		case s.NextScreenID != nil:
			graph.Edges = append(graph.Edges, FlowEdge{Source: s.ID, Target: *s.NextScreenID})
		case i+1 < len(ordered):
			graph.Edges = append(graph.Edges, FlowEdge{Source: s.ID, Target: ordered[i+1].ID, Implicit: true})
		}
	}
	return graph
}
