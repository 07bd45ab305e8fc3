package model

import "time"

// Item - задача в том виде, в каком её отдаёт сервер.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemList - ответ GET /api/items.
type ItemList struct {
	Items          []Item `json:"items"`
	TotalCount     int    `json:"total_count"`
	CompletedCount int    `json:"completed_count"`
}
