package models

import "time"

type ProductCategory string

const (
	CategoryBeach          ProductCategory = "Beach"
	CategoryAdventure      ProductCategory = "Adventure"
	CategoryLuxury         ProductCategory = "Luxury"
	CategoryFamilyFriendly ProductCategory = "Family-Friendly"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryBeach, CategoryAdventure, CategoryLuxury, CategoryFamilyFriendly:
		return true
	}
	return false
}

type TripType string

const (
	TripInternational TripType = "International"
	TripDomestic      TripType = "Domestic"
)

func (t TripType) Valid() bool {
	return t == TripInternational || t == TripDomestic
}

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return true
	}
	return false
}

type Product struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	Price           float64         `json:"price"`
	OriginalPrice   float64         `json:"originalPrice"`
	Rating          float64         `json:"rating"`
	Reviews         int             `json:"reviews"`
	Duration        string          `json:"duration"`
	Category        ProductCategory `json:"category"`
	TripType        TripType        `json:"tripType"`
	Image           string          `json:"image"`
	Featured        bool            `json:"featured"`
	Discount        int             `json:"discount"`
	Highlights      []string        `json:"highlights"`
	GroupSize       string          `json:"groupSize"`
	Difficulty      Difficulty      `json:"difficulty"`
	AvailableDates  []string        `json:"availableDates"`
	Inclusions      []string        `json:"inclusions"`
	Exclusions      []string        `json:"exclusions"`
	Itinerary       []string        `json:"itinerary"`
	IsCommunityTrip bool            `json:"isCommunityTrip"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type FeaturedCount struct {
	Featured bool `json:"_id"`
	Count    int  `json:"count"`
}

type PriceSummary struct {
	Average float64
	Min     float64
	Max     float64
}

type ProductStats struct {
	Total        int                     `json:"total"`
	ByCategory   map[ProductCategory]int `json:"byCategory"`
	Featured     int                     `json:"featured"`
	NonFeatured  int                     `json:"nonFeatured"`
	AveragePrice int64                   `json:"averagePrice"`
	MinPrice     float64                 `json:"minPrice"`
	MaxPrice     float64                 `json:"maxPrice"`
}
