package model

import "time"

// Meal stores a logged meal together with a macro snapshot taken at creation
// time. When the meal was added through the food lookup, the macros come
// from the external database; otherwise they are whatever the user entered.
// The snapshot is never recalculated afterwards.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – user who logged the meal.
//	Date      – calendar day the meal belongs to (YYYY-MM-DD).
//	Name      – food or dish name.
//	Calories  – kcal per logged portion.
//	Protein   – grams of protein.
//	Carbs     – grams of carbohydrates.
//	Fats      – grams of fat.
//	Completed – whether the meal has been marked eaten.
//	CreatedAt – creation timestamp.
type Meal struct {
	ID        uint64    `json:"id"`         // meals.id
	UserID    uint64    `json:"user_id"`    // meals.user_id
	Date      string    `json:"date"`       // meals.date
	Name      string    `json:"name"`       // meals.name
	Calories  float64   `json:"calories"`   // meals.calories
	Protein   float64   `json:"protein"`    // meals.protein
	Carbs     float64   `json:"carbs"`      // meals.carbs
	Fats      float64   `json:"fats"`       // meals.fats
	Completed bool      `json:"completed"`  // meals.completed
	CreatedAt time.Time `json:"created_at"` // meals.created_at
}
