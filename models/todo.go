package models

import (
	"time"
)

type Todo struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Todo      string    `gorm:"not null" json:"todo"`
	Noted     *string   `json:"noted"`
	Completed *bool     `json:"completed"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

// TodoResponse is the wire representation of a todo. It deliberately
// omits UserID: ownership is resolved from the authenticated caller,
// never echoed back.
type TodoResponse struct {
	ID        uint      `json:"id"`
	Todo      string    `json:"todo"`
	Noted     *string   `json:"noted"`
	Completed *bool     `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse converts the storage row to its wire shape.
func (t *Todo) ToResponse() TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Todo:      t.Todo,
		Noted:     t.Noted,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToResponseList converts a slice of rows, always returning a non-nil
// slice so empty listings serialize as [] rather than null.
func ToResponseList(todos []Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, todos[i].ToResponse())
	}
	return responses
}

// CreateTodoRequest carries the client-settable fields on create. Any
// owner id a client smuggles into the payload is ignored; the service
// stamps the authenticated user.
type CreateTodoRequest struct {
	Todo      string  `json:"todo" binding:"required"`
	Noted     *string `json:"noted"`
	Completed *bool   `json:"completed"`
}

// UpdateTodoRequest carries a partial update. Nil fields were absent
// from the payload and leave the stored value untouched.
type UpdateTodoRequest struct {
	Todo      *string `json:"todo"`
	Noted     *string `json:"noted"`
	Completed *bool   `json:"completed"`
}
