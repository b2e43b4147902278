package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ComponentID discriminates the payload stored in a screen's options.
type ComponentID string

const (
	ComponentSingleChoice ComponentID = "single_choice"
	ComponentMultiChoice  ComponentID = "multi_choice"
	ComponentSlider       ComponentID = "slider"
	ComponentTextInput    ComponentID = "text_input"
	ComponentInfo         ComponentID = "info"
	ComponentPaywall      ComponentID = "paywall"
)

func (c ComponentID) String() string { return string(c) }

// ScreenOptions is the typed payload of one component.
type ScreenOptions interface {
	Component() ComponentID
	validate() []FieldError
}

// ChoiceOption is a selectable answer.
type ChoiceOption struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Emoji *string `json:"emoji,omitempty"`
}

type SingleChoiceOptions struct {
	Choices []ChoiceOption `json:"choices"`
}

type MultiChoiceOptions struct {
	Choices       []ChoiceOption `json:"choices"`
	MaxSelections int            `json:"max_selections"`
}

type SliderOptions struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
	Unit *string `json:"unit,omitempty"`
}

type TextInputOptions struct {
	Placeholder *string `json:"placeholder,omitempty"`
	MaxLength   int     `json:"max_length"`
}

type InfoOptions struct {
	ImageURL *string `json:"image_url,omitempty"`
	CTALabel string  `json:"cta_label"`
}

type PaywallOptions struct {
	ProductIDs           []string `json:"product_ids"`
	HighlightedProductID *string  `json:"highlighted_product_id,omitempty"`
}

func (SingleChoiceOptions) Component() ComponentID { return ComponentSingleChoice }
func (MultiChoiceOptions) Component() ComponentID  { return ComponentMultiChoice }
func (SliderOptions) Component() ComponentID       { return ComponentSlider }
func (TextInputOptions) Component() ComponentID    { return ComponentTextInput }
func (InfoOptions) Component() ComponentID         { return ComponentInfo }
func (PaywallOptions) Component() ComponentID      { return ComponentPaywall }

func (o SingleChoiceOptions) validate() []FieldError {
	return validateChoices(o.Choices)
}

func (o MultiChoiceOptions) validate() []FieldError {
	errs := validateChoices(o.Choices)
	if o.MaxSelections < 0 || o.MaxSelections > len(o.Choices) {
		errs = append(errs, FieldError{Field: "options.max_selections", Message: "must be between 0 and the number of choices"})
	}
	return errs
}

func (o SliderOptions) validate() []FieldError {
	var errs []FieldError
	if o.Max <= o.Min {
		errs = append(errs, FieldError{Field: "options.max", Message: "must be greater than min"})
	}
	if o.Step <= 0 {
		errs = append(errs, FieldError{Field: "options.step", Message: "must be > 0"})
	}
	return errs
}

func (o TextInputOptions) validate() []FieldError {
	if o.MaxLength < 0 {
		return []FieldError{{Field: "options.max_length", Message: "must be >= 0"}}
	}
	return nil
}

func (o InfoOptions) validate() []FieldError {
	if o.CTALabel == "" {
		return []FieldError{{Field: "options.cta_label", Message: "required"}}
	}
	return nil
}

func (o PaywallOptions) validate() []FieldError {
	var errs []FieldError
	if len(o.ProductIDs) == 0 {
		errs = append(errs, FieldError{Field: "options.product_ids", Message: "at least one product required"})
	}
	if o.HighlightedProductID != nil {
		found := false
		for _, id := range o.ProductIDs {
			if id == *o.HighlightedProductID {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, FieldError{Field: "options.highlighted_product_id", Message: "must be one of product_ids"})
		}
	}
	return errs
}

func validateChoices(choices []ChoiceOption) []FieldError {
	var errs []FieldError
	if len(choices) == 0 {
		errs = append(errs, FieldError{Field: "options.choices", Message: "at least one choice required"})
	}
	seen := make(map[string]bool, len(choices))
	for i, c := range choices {
		if c.Label == "" || c.Value == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("options.choices[%d]", i), Message: "label and value required"})
		}
		if seen[c.Value] {
			errs = append(errs, FieldError{Field: fmt.Sprintf("options.choices[%d].value", i), Message: "duplicate value"})
		}
		seen[c.Value] = true
	}
	return errs
}

// DecodeScreenOptions parses raw options for the given component and
// validates them. Unknown fields and unknown components are rejected.
func DecodeScreenOptions(component ComponentID, raw json.RawMessage) (ScreenOptions, error) {
	var opts ScreenOptions
	switch component {
	case ComponentSingleChoice:
		opts = &SingleChoiceOptions{}
	case ComponentMultiChoice:
		opts = &MultiChoiceOptions{}
	case ComponentSlider:
		opts = &SliderOptions{}
	case ComponentTextInput:
		opts = &TextInputOptions{}
	case ComponentInfo:
		opts = &InfoOptions{}
	case ComponentPaywall:
		opts = &PaywallOptions{}
	default:
		return nil, NewValidationError("component_id", fmt.Sprintf("unknown component %q", component))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		raw = json.RawMessage("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return nil, NewValidationError("options", "invalid payload for "+component.String()+": "+err.Error())
	}

	if errs := opts.validate(); len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}
	return opts, nil
}
