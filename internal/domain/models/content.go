package models

import "time"

type Testimonial struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Comment     string    `json:"comment"`
	Image       string    `json:"image"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BlockType string

const (
	BlockParagraph  BlockType = "paragraph"
	BlockSubheading BlockType = "subheading"
	BlockImage      BlockType = "image"
	BlockCode       BlockType = "code"
	BlockQuote      BlockType = "quote"
)

func (b BlockType) Valid() bool {
	switch b {
	case BlockParagraph, BlockSubheading, BlockImage, BlockCode, BlockQuote:
		return true
	}
	return false
}

type ContentBlock struct {
	Type     BlockType `json:"type"`
	Content  string    `json:"content"`
	Level    int       `json:"level,omitempty"`
	Language string    `json:"language,omitempty"`
	Caption  string    `json:"caption,omitempty"`
}

type Blog struct {
	ID        string         `json:"_id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Excerpt   string         `json:"excerpt"`
	Image     string         `json:"image"`
	Author    string         `json:"author"`
	ReadTime  string         `json:"readTime"`
	Category  string         `json:"category"`
	Featured  bool           `json:"featured"`
	Content   []ContentBlock `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type Subscriber struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type OfferType string

const (
	OfferPercentage OfferType = "percentage"
	OfferFixed      OfferType = "fixed"
)

func (t OfferType) Valid() bool {
	return t == OfferPercentage || t == OfferFixed
}

type Offer struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Discount    float64   `json:"discount"`
	Type        OfferType `json:"type"`
	Code        string    `json:"code"`
	ValidUntil  time.Time `json:"validUntil"`
	Image       string    `json:"image"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Contact struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	TravelType string    `json:"travelType"`
	CreatedAt  time.Time `json:"createdAt"`
}
