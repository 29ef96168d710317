package models

import (
	"time"

	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// ExpenseTypes is the fixed category menu offered by the new-bill form.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

type Bill struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Type         string     `db:"type"`
	Name         string     `db:"name"`
	Date         string     `db:"date"` // ISO calendar date, YYYY-MM-DD
	Amount       int        `db:"amount"`
	VAT          string     `db:"vat"`
	Pct          int        `db:"pct"`
	Commentary   string     `db:"commentary"`
	FileURL      string     `db:"file_url"`
	FileName     string     `db:"file_name"`
	FileKey      string     `db:"file_key"`
	Status       BillStatus `db:"status"`
	CommentAdmin string     `db:"comment_admin"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
