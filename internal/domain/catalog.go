package domain

type Master struct {
	ID             int64  `json:"id"`
	Name           string `json:"name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

type Procedure struct {
	ID    int64  `json:"id"`
	Title string `json:"title" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
}

// MasterOffer is a master together with the procedures linked to them.
type MasterOffer struct {
	Master     Master      `json:"master"`
	Procedures []Procedure `json:"procedures"`
}
