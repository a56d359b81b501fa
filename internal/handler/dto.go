package handler

type SectionResponse struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

type DigestResponse struct {
	Sections []SectionResponse `json:"sections"`
	Total    int               `json:"total"`
}
