package domain

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// CountByKey is one row of a grouped count.
type CountByKey struct {
	Key   string `json:"_id"`
	Count int    `json:"count"`
}
