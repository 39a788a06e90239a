package entities

// Input records for graph construction. These mirror the raw platform export:
// three ordered collections whose array order is the canonical input order the
// builder must preserve. Validation tags mark the fields a record cannot lack;
// list fields may be absent and default to empty.

// UserAttributes are the filterable demographic attributes of a user
type UserAttributes struct {
	Age      int    `json:"age" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// UserRecord is one raw user entry
type UserRecord struct {
	ID         string         `json:"id" validate:"required"`
	Username   string         `json:"username" validate:"required"`
	Attributes UserAttributes `json:"attributes" validate:"required"`
	Posts      []string       `json:"posts"`
	Comments   []string       `json:"comments"`
	PostsRead  []string       `json:"posts_read"`
}

// PostRecord is one raw post entry
type PostRecord struct {
	ID           string   `json:"id" validate:"required"`
	Author       string   `json:"author" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	CreationTime string   `json:"creation_time" validate:"required"`
	Comments     []string `json:"comments"`
	ViewedBy     []string `json:"viewed_by"`
}

// CommentRecord is one raw comment entry
type CommentRecord struct {
	ID           string `json:"id" validate:"required"`
	Author       string `json:"author" validate:"required"`
	PostID       string `json:"post_id" validate:"required"`
	Content      string `json:"content" validate:"required"`
	CreationTime string `json:"creation_time" validate:"required"`
}

// Dataset bundles the three complete entity collections a graph is built from
type Dataset struct {
	Users    []UserRecord    `json:"users"`
	Posts    []PostRecord    `json:"posts"`
	Comments []CommentRecord `json:"comments"`
}
