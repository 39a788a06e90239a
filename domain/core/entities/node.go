package entities

import (
	"strconv"

	"socialgraph/domain/core/valueobjects"
)

// NodeKind is the variant tag of a graph node
type NodeKind string

const (
	KindUser    NodeKind = "user"
	KindPost    NodeKind = "post"
	KindComment NodeKind = "comment"

	// KindUnknown marks an inert placeholder auto-created for a dangling edge
	// endpoint. Placeholders carry no attributes and are excluded from all
	// typed queries.
	KindUnknown NodeKind = "unknown"
)

// Node is the uniform interface over the graph's tagged node variants. The
// concrete types below hold typed attributes per kind; cross-cutting needs
// (display label, attribute lookup for filters) go through the narrow
// accessors here instead of a free-form property bag.
type Node interface {
	ID() valueobjects.NodeID
	Kind() NodeKind
	// Label returns a short display string for visualizers
	Label() string
	// Attribute returns a named attribute as a string for exact-match
	// filtering. Unknown names report ok=false.
	Attribute(name string) (value string, ok bool)
}

// User is a platform member
type User struct {
	id          valueobjects.NodeID
	Username    string
	Age         int
	Gender      string
	Location    string
	PostIDs     []string
	CommentIDs  []string
	PostsReadIDs []string
}

// NewUser creates a user node
func NewUser(id valueobjects.NodeID, username string, age int, gender, location string, postIDs, commentIDs, postsReadIDs []string) *User {
	return &User{
		id:           id,
		Username:     username,
		Age:          age,
		Gender:       gender,
		Location:     location,
		PostIDs:      postIDs,
		CommentIDs:   commentIDs,
		PostsReadIDs: postsReadIDs,
	}
}

func (u *User) ID() valueobjects.NodeID { return u.id }
func (u *User) Kind() NodeKind          { return KindUser }
func (u *User) Label() string           { return u.Username }

// Attribute exposes the filterable author attributes
func (u *User) Attribute(name string) (string, bool) {
	switch name {
	case "username":
		return u.Username, true
	case "age":
		return strconv.Itoa(u.Age), true
	case "gender":
		return u.Gender, true
	case "location":
		return u.Location, true
	}
	return "", false
}

// Post is a piece of content published by a user
type Post struct {
	id           valueobjects.NodeID
	AuthorID     string
	Content      string
	CreationTime string
	CommentIDs   []string
	ViewedByIDs  []string
}

// NewPost creates a post node
func NewPost(id valueobjects.NodeID, authorID, content, creationTime string, commentIDs, viewedByIDs []string) *Post {
	return &Post{
		id:           id,
		AuthorID:     authorID,
		Content:      content,
		CreationTime: creationTime,
		CommentIDs:   commentIDs,
		ViewedByIDs:  viewedByIDs,
	}
}

func (p *Post) ID() valueobjects.NodeID { return p.id }
func (p *Post) Kind() NodeKind          { return KindPost }
func (p *Post) Label() string           { return p.Content }

func (p *Post) Attribute(name string) (string, bool) {
	switch name {
	case "author":
		return p.AuthorID, true
	case "content":
		return p.Content, true
	case "creation_time":
		return p.CreationTime, true
	}
	return "", false
}

// CommentCount reports how many comments target this post
func (p *Post) CommentCount() int { return len(p.CommentIDs) }

// ViewCount reports how many users viewed this post
func (p *Post) ViewCount() int { return len(p.ViewedByIDs) }

// Comment is a reply a user left on a post
type Comment struct {
	id           valueobjects.NodeID
	AuthorID     string
	PostID       string
	Content      string
	CreationTime string
}

// NewComment creates a comment node
func NewComment(id valueobjects.NodeID, authorID, postID, content, creationTime string) *Comment {
	return &Comment{
		id:           id,
		AuthorID:     authorID,
		PostID:       postID,
		Content:      content,
		CreationTime: creationTime,
	}
}

func (c *Comment) ID() valueobjects.NodeID { return c.id }
func (c *Comment) Kind() NodeKind          { return KindComment }
func (c *Comment) Label() string           { return c.Content }

func (c *Comment) Attribute(name string) (string, bool) {
	switch name {
	case "author":
		return c.AuthorID, true
	case "post_id":
		return c.PostID, true
	case "content":
		return c.Content, true
	case "creation_time":
		return c.CreationTime, true
	}
	return "", false
}

// Placeholder is the inert node auto-created when an edge references an id
// absent from every input collection. It satisfies Node so traversal stays
// uniform, but exposes no attributes.
type Placeholder struct {
	id valueobjects.NodeID
}

// NewPlaceholder creates an unknown-kind placeholder node
func NewPlaceholder(id valueobjects.NodeID) *Placeholder {
	return &Placeholder{id: id}
}

func (p *Placeholder) ID() valueobjects.NodeID { return p.id }
func (p *Placeholder) Kind() NodeKind          { return KindUnknown }
func (p *Placeholder) Label() string           { return p.id.String() }

func (p *Placeholder) Attribute(string) (string, bool) { return "", false }
