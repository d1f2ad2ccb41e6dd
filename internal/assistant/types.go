package assistant

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Command actions
const (
	ActionAddPerson  = "add_person"
	ActionAddExpense = "add_expense"
	ActionAddJournal = "add_journal"
	ActionAddWater   = "add_water"
	ActionAddMeal    = "add_meal"
	ActionAddPin     = "add_pin"
	ActionUnknown    = "unknown"
)

// Query entities
const (
	EntityPeople   = "people"
	EntityExpenses = "expenses"
	EntityJournal  = "journal"
	EntityPins     = "pins"
)

// PersonFields is the payload of an add_person intent
type PersonFields struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	WhereMet string `json:"whereMet,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// ExpenseFields is the payload of an add_expense intent
type ExpenseFields struct {
	Amount   flexFloat `json:"amount"`
	Category string    `json:"category,omitempty"`
	Note     string    `json:"note,omitempty"`
}

// JournalFields is the payload of an add_journal intent
type JournalFields struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

// WaterFields is the payload of an add_water intent
type WaterFields struct {
	QuantityMl flexInt `json:"quantityMl"`
}

// MealFields is the payload of an add_meal intent
type MealFields struct {
	Meal string `json:"meal"`
	Note string `json:"note,omitempty"`
}

// PinFields is the payload of an add_pin intent
type PinFields struct {
	Title   string `json:"title"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty"`
}

// CommandData is the per-action payload of a CommandIntent. Exactly one
// variant is non-nil for a known action; all are nil for unknown.
type CommandData struct {
	Person  *PersonFields
	Expense *ExpenseFields
	Journal *JournalFields
	Water   *WaterFields
	Meal    *MealFields
	Pin     *PinFields
}

// CommandIntent is the structured form of a free-text command
type CommandIntent struct {
	Action     string      `json:"action"`
	Entity     string      `json:"entity"`
	Data       CommandData `json:"data"`
	Confidence float64     `json:"confidence"`
}

// rawCommandIntent matches the model's JSON before the payload is typed
type rawCommandIntent struct {
	Action     string          `json:"action"`
	Entity     string          `json:"entity"`
	Data       json.RawMessage `json:"data"`
	Confidence *float64        `json:"confidence"`
}

// decodeCommandIntent converts the model's JSON into a typed intent.
// A payload that does not decode for its action demotes the whole intent
// to unknown so the caller falls through to the deterministic parser.
func decodeCommandIntent(raw []byte) (CommandIntent, error) {
	var r rawCommandIntent
	if err := json.Unmarshal(raw, &r); err != nil {
		return CommandIntent{}, err
	}

	intent := CommandIntent{
		Action: r.Action,
		Entity: r.Entity,
	}
	if intent.Action == "" {
		intent.Action = ActionUnknown
	}
	if intent.Entity == "" {
		intent.Entity = ActionUnknown
	}
	if r.Confidence != nil {
		intent.Confidence = clampConfidence(*r.Confidence)
	}

	if len(r.Data) > 0 {
		if err := intent.Data.decode(intent.Action, r.Data); err != nil {
			intent.Action = ActionUnknown
			intent.Entity = ActionUnknown
			intent.Confidence = 0
			intent.Data = CommandData{}
		}
	}

	return intent, nil
}

func (d *CommandData) decode(action string, raw json.RawMessage) error {
	switch action {
	case ActionAddPerson:
		d.Person = &PersonFields{}
		return json.Unmarshal(raw, d.Person)
	case ActionAddExpense:
		d.Expense = &ExpenseFields{}
		return json.Unmarshal(raw, d.Expense)
	case ActionAddJournal:
		d.Journal = &JournalFields{}
		return json.Unmarshal(raw, d.Journal)
	case ActionAddWater:
		d.Water = &WaterFields{}
		return json.Unmarshal(raw, d.Water)
	case ActionAddMeal:
		d.Meal = &MealFields{}
		return json.Unmarshal(raw, d.Meal)
	case ActionAddPin:
		d.Pin = &PinFields{}
		return json.Unmarshal(raw, d.Pin)
	}
	return nil
}

// QueryFilters is the typed filter set of a QueryIntent. Unused fields stay
// zero; each query entity reads only the fields it understands.
type QueryFilters struct {
	WhereMet  string    `json:"whereMet,omitempty"`
	Name      string    `json:"name,omitempty"`
	Date      string    `json:"date,omitempty"`
	Category  string    `json:"category,omitempty"`
	MinAmount flexFloat `json:"minAmount,omitempty"`
	Keyword   string    `json:"keyword,omitempty"`
	Status    string    `json:"status,omitempty"`
	Address   string    `json:"address,omitempty"`
}

// QueryIntent is the structured form of a free-text query
type QueryIntent struct {
	Type       string       `json:"type"` // search | filter | list
	Entity     string       `json:"entity"`
	Filters    QueryFilters `json:"filters"`
	Query      string       `json:"query"`
	Confidence float64      `json:"confidence"`
}

// ExecutionResult is the uniform outcome of every command
type ExecutionResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// QueryResult is the outcome of every query
type QueryResult struct {
	Success  bool        `json:"success"`
	Response string      `json:"response"`
	Data     interface{} `json:"data"`
	Intent   QueryIntent `json:"intent"`
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// flexFloat accepts both JSON numbers and numeric strings, since models
// return amounts either way
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexInt accepts both JSON numbers and numeric strings
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}
