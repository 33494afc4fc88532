package dto

// ParseURLRequest asks for extraction of job-posting fields from a page.
type ParseURLRequest struct {
	URL string `json:"url"`
}
