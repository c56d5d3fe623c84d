// Package models defines the data types exchanged with the calculator API:
// operation types, history records, and the sort specification used by the
// records view.
package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// OperationType identifies an arithmetic operation supported by the server.
// The string values are the wire values of the server contract.
type OperationType string

const (
	OperationAddition       OperationType = "addition"
	OperationSubtraction    OperationType = "subtraction"
	OperationMultiplication OperationType = "multiplication"
	OperationDivision       OperationType = "division"
	OperationSquareRoot     OperationType = "square_root"
	OperationRandomString   OperationType = "random_string"
)

// OperationTypes lists every supported operation type in menu order.
func OperationTypes() []OperationType {
	return []OperationType{
		OperationAddition,
		OperationSubtraction,
		OperationMultiplication,
		OperationDivision,
		OperationSquareRoot,
		OperationRandomString,
	}
}

// Valid reports whether t is a member of the supported set.
func (t OperationType) Valid() bool {
	switch t {
	case OperationAddition, OperationSubtraction, OperationMultiplication,
		OperationDivision, OperationSquareRoot, OperationRandomString:
		return true
	}
	return false
}

// ArgCount returns the number of operands the operation requires:
// 2 for binary operations, 1 for square root, 0 for random string.
func (t OperationType) ArgCount() int {
	switch t {
	case OperationRandomString:
		return 0
	case OperationSquareRoot:
		return 1
	default:
		return 2
	}
}

// ResponseValue holds an operation result, which the server returns either
// as a JSON string (random_string) or a JSON number. Numbers keep their raw
// textual form so nothing is reformatted on display or filtering.
type ResponseValue string

func (v *ResponseValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ResponseValue(s)
		return nil
	}
	*v = ResponseValue(data)
	return nil
}

func (v ResponseValue) String() string { return string(v) }

// Money is a decimal amount that also remembers its wire text. Arithmetic
// goes through the embedded decimal; display goes through the remembered
// text, so a server value of 0.50 never renders as "0.5".
type Money struct {
	decimal.Decimal
	raw string
}

// MoneyFromString parses a decimal string, keeping its exact textual form.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d, raw: s}, nil
}

// RequireMoneyFromString is MoneyFromString that panics on invalid input.
func RequireMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.Decimal.UnmarshalJSON(data); err != nil {
		return err
	}
	m.raw = strings.Trim(string(data), `"`)
	return nil
}

func (m Money) String() string {
	if m.raw != "" {
		return m.raw
	}
	return m.Decimal.String()
}

// Operation is the operation reference embedded in a history record.
type Operation struct {
	ID   int64         `json:"id"`
	Type OperationType `json:"type"`
}

// Record is one persisted history entry: a completed operation, its result,
// its cost, and the balance after it was applied. Records are immutable once
// fetched. CreatedAt is kept as the raw server string.
type Record struct {
	ID                int64         `json:"id"`
	Username          string        `json:"username"`
	Operation         Operation     `json:"operation"`
	OperationResponse ResponseValue `json:"operation_response"`
	Amount            Money         `json:"amount"`
	UserBalance       Money         `json:"user_balance"`
	CreatedAt         string        `json:"createdAt"`
}

// SortField names a sortable records column.
type SortField string

const (
	SortByID        SortField = "id"
	SortByCreatedAt SortField = "createdAt"
)

// SortOrder is the sort direction, forwarded verbatim to the server.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// Sort is the active sort specification of the records view.
type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort is the sort applied before the user touches any column header.
func DefaultSort() Sort {
	return Sort{Field: SortByID, Order: SortAsc}
}
