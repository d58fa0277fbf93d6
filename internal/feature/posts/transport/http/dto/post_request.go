package dto

// PostReq is the body for publishing a post.
type PostReq struct {
	Text      string  `json:"text" binding:"required,max=280"`
	InReplyTo *string `json:"inReplyTo"`
}
