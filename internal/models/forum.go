package models

// AnonymousAuthor is the sentinel shown in place of a masked author identity.
const AnonymousAuthor = "Anonymous"

// Post is a stored forum post. Upload times are kept in the normalized
// "YYYY-MM-DD HH:MM:SS" form, so lexicographic order is chronological.
type Post struct {
	PostID     int64  `db:"post_id" json:"post_id"`
	UploadTime string `db:"upload_time" json:"upload_time"`
	Title      string `db:"title" json:"title"`
	Content    string `db:"content" json:"content"`
	AuthorID   string `db:"author_id" json:"author_id"`
	Anonymous  bool   `db:"anonymous" json:"anonymous"`
	Category   string `db:"category" json:"category"`
	Validated  bool   `db:"validated" json:"validated"`
}

// Reply is a stored reply to a post.
type Reply struct {
	ReplyID      int64  `db:"reply_id" json:"reply_id"`
	ParentPostID int64  `db:"parent_post_id" json:"parent_post_id"`
	AuthorID     string `db:"author_id" json:"author_id"`
	UploadTime   string `db:"upload_time" json:"upload_time"`
	Anonymous    bool   `db:"anonymous" json:"anonymous"`
	Content      string `db:"content" json:"content"`
	Validated    bool   `db:"validated" json:"validated"`
}

// PostView is a post as presented to a particular viewer: the author field
// may be masked and replies are attached.
type PostView struct {
	PostID     int64       `json:"post_id"`
	UploadTime string      `json:"upload_time"`
	Content    string      `json:"content"`
	AuthorID   string      `json:"author_id"`
	Anonymous  bool        `json:"anonymous"`
	Category   string      `json:"category"`
	Title      string      `json:"title"`
	Validated  bool        `json:"validated"`
	Replies    []ReplyView `json:"replies"`
}

// PostDetail is a single post as presented to a particular viewer, without
// the reply thread attached.
type PostDetail struct {
	PostID     int64  `json:"post_id"`
	UploadTime string `json:"upload_time"`
	Content    string `json:"content"`
	Anonymous  bool   `json:"anonymous"`
	Title      string `json:"title"`
	Validated  bool   `json:"validated"`
	Category   string `json:"category"`
	AuthorID   string `json:"author_id"`
}

// ReplyView is a reply as presented to a particular viewer.
type ReplyView struct {
	ReplyID      int64  `json:"reply_id"`
	ParentPostID int64  `json:"parent_post_id"`
	AuthorID     string `json:"author_id"`
	UploadTime   string `json:"upload_time"`
	Anonymous    bool   `json:"anonymous"`
	Content      string `json:"content"`
	Validated    bool   `json:"validated"`
}
