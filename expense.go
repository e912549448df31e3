package expense

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampFormat is the ISO-8601 format used to persist an expense date.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Expense is a single recorded outlay.
//
// ID and Date are set once, when the expense is added.
type Expense struct {
	ID          int
	Amount      Amount
	Description string
	Date        time.Time
}

// Collection is the ordered list of all expenses, in insertion order.
type Collection []Expense

// MarshalJSON writes the expense with its keys in a stable order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("amount", e.Amount)
	w.Append("description", e.Description)
	w.Append("date", e.Date.UTC().Format(TimestampFormat))
	return w.MarshalJSON()
}

func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          int    `json:"id"`
		Amount      Amount `json:"amount"`
		Description string `json:"description"`
		Date        string `json:"date"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	on, err := time.Parse(time.RFC3339Nano, temp.Date)
	if err != nil {
		return fmt.Errorf("expense %d: invalid date %q: %w", temp.ID, temp.Date, err)
	}
	*e = Expense{
		ID:          temp.ID,
		Amount:      temp.Amount,
		Description: temp.Description,
		Date:        on,
	}
	return nil
}

// check that an Expense is a valid json marshall/unmarshaller type.
var _ json.Marshaler = Expense{}
var _ json.Unmarshaler = (*Expense)(nil)
