package model

type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
)

// Course represents a row of the courses table
type Course struct {
	ID          string       `db:"id" json:"Id"`
	Title       string       `db:"title" json:"Title"`
	Description string       `db:"description" json:"Description"`
	Price       float64      `db:"price" json:"Price"`
	TutorID     string       `db:"tutor_id" json:"TutorId"`
	Level       *CourseLevel `db:"level" json:"Level"`
	Category    *string      `db:"category" json:"Category"`
	ImageURL    *string      `db:"image_url" json:"ImageUrl"`
	IsActive    bool         `db:"is_active" json:"IsActive"`
}
