package model

import "time"

// StudentPurchase is one flat row of the tutor students query: a completed
// purchase joined with its course and buyer.
type StudentPurchase struct {
	UserID            string        `json:"UserId"`
	Email             string        `json:"Email"`
	Name              string        `json:"Name"`
	Role              Role          `json:"Role"`
	CreatedAt         time.Time     `json:"CreatedAt"`
	UpdatedAt         time.Time     `json:"UpdatedAt"`
	IsActive          bool          `json:"IsActive"`
	Profession        *string       `json:"Profession"`
	CourseID          string        `json:"CourseId"`
	Amount            float64       `json:"Amount"`
	PaymentStatus     PaymentStatus `json:"PaymentStatus"`
	PaymentMethod     *string       `json:"PaymentMethod"`
	TransactionID     *string       `json:"TransactionId"`
	PurchaseDate      time.Time     `json:"PurchaseDate"`
	CourseTitle       string        `json:"CourseTitle"`
	CourseDescription string        `json:"CourseDescription"`
	CoursePrice       float64       `json:"CoursePrice"`
	CourseLevel       *CourseLevel  `json:"CourseLevel"`
	CourseCategory    *string       `json:"CourseCategory"`
}

// StudentProfile is the buyer part of a StudentPurchase.
type StudentProfile struct {
	UserID     string  `json:"UserId"`
	Name       string  `json:"Name"`
	Email      string  `json:"Email"`
	Profession *string `json:"Profession"`
}

// EnrolledCourse is the purchase part of a StudentPurchase.
type EnrolledCourse struct {
	CourseID      string        `json:"CourseId"`
	CourseTitle   string        `json:"CourseTitle"`
	PurchaseDate  time.Time     `json:"PurchaseDate"`
	PaymentStatus PaymentStatus `json:"PaymentStatus"`
	Amount        float64       `json:"Amount"`
}

// StudentCourses groups every course a single student bought from a tutor.
type StudentCourses struct {
	Student StudentProfile   `json:"student"`
	Courses []EnrolledCourse `json:"courses"`
}
