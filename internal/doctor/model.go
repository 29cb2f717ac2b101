package doctor

import "time"

type Doctor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialty      string    `json:"specialty"`
	Availability   []string  `json:"availability"`
	Bio            string    `json:"bio"`
	ImageURL       string    `json:"imageUrl"`
	Rating         float64   `json:"rating"`
	Experience     string    `json:"experience"`
	Reviews        int       `json:"reviews"`
	Price          int       `json:"price"`
	IsAvailableNow bool      `json:"isAvailableNow"`
	CreatedAt      time.Time `json:"createdAt"`
}
