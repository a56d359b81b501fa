package model

// Post is one row from a social-media dataset: the author/channel identifier
// and the raw post content.
type Post struct {
	User    string
	Content string
}
