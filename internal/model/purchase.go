package model

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Purchase represents a row of the purchases table. Status, method, transaction
// id and date are filled by column defaults on insert.
type Purchase struct {
	ID            string        `db:"id" json:"Id"`
	UserID        string        `db:"user_id" json:"UserId"`
	CourseID      string        `db:"course_id" json:"CourseId"`
	Amount        float64       `db:"amount" json:"Amount"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"PaymentStatus"`
	PaymentMethod *string       `db:"payment_method" json:"PaymentMethod"`
	TransactionID *string       `db:"transaction_id" json:"TransactionId"`
	PurchaseDate  time.Time     `db:"purchase_date" json:"PurchaseDate"`
}
