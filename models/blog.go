package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an embedded sub-document of Blog. Comments are stored as one
// flat sequence; the thread shape lives in the ParentID/Replies cross-links.
// A reply's ParentID points at its parent and the parent's Replies list
// contains the reply's id. Both sides are only ever written together, by
// (*Blog).AddReply.
type Comment struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Author    primitive.ObjectID   `bson:"author" json:"author"`
	Content   string               `bson:"content" json:"content"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
	ParentID  *primitive.ObjectID  `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	Replies   []primitive.ObjectID `bson:"replies" json:"replies"`
}

// Blog is the aggregate root. The embedded comment sequence and the likes
// set are always loaded and persisted with the blog as one document.
// Collection: blogs
type Blog struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title      string               `bson:"title" json:"title"`
	Content    string               `bson:"content" json:"content"`
	Author     primitive.ObjectID   `bson:"author" json:"author"`
	Image      string               `bson:"image" json:"image"`
	CategoryID *primitive.ObjectID  `bson:"category_id,omitempty" json:"category_id,omitempty"`
	TagIDs     []primitive.ObjectID `bson:"tag_ids" json:"tag_ids"`
	Comments   []Comment            `bson:"comments" json:"comments"`
	Likes      []primitive.ObjectID `bson:"likes" json:"likes"`
	LikesCount int                  `bson:"likes_count" json:"likes_count"`
	Views      int64                `bson:"views" json:"views"`
	CreatedAt  time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time           `bson:"deleted_at" json:"deleted_at,omitempty"`
}

// Deleted reports whether the blog has been soft-deleted.
func (b *Blog) Deleted() bool { return b.DeletedAt != nil }

// FindComment returns the comment with the given id, or nil.
func (b *Blog) FindComment(id primitive.ObjectID) *Comment {
	for i := range b.Comments {
		if b.Comments[i].ID == id {
			return &b.Comments[i]
		}
	}
	return nil
}

// AddComment appends a top-level comment and returns it. Content must be
// non-empty after trimming; ok is false otherwise and the blog is untouched.
func (b *Blog) AddComment(author primitive.ObjectID, content string) (Comment, bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, false
	}
	c := Comment{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
		Replies:   []primitive.ObjectID{},
	}
	b.Comments = append(b.Comments, c)
	return c, true
}

// AddReply appends a reply under parentID and links both sides: the reply's
// ParentID and the parent's Replies list are written in this one routine so
// the cross-reference can never half-apply. found is false when parentID
// does not resolve, ok is false on empty content; the blog is untouched in
// either case.
func (b *Blog) AddReply(author, parentID primitive.ObjectID, content string) (reply Comment, found, ok bool) {
	if b.FindComment(parentID) == nil {
		return Comment{}, false, false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Comment{}, true, false
	}
	pid := parentID
	reply = Comment{
		ID:        primitive.NewObjectID(),
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
		ParentID:  &pid,
		Replies:   []primitive.ObjectID{},
	}
	b.Comments = append(b.Comments, reply)
	// Resolve the parent after the append; growing the slice may have moved
	// the backing array.
	parent := b.FindComment(parentID)
	parent.Replies = append(parent.Replies, reply.ID)
	return reply, true, true
}

// RemoveComment removes the comment with the given id together with every
// comment listed in its Replies. The cascade covers exactly one level: ids
// in the replies of a removed reply are not chased. This is a hard
// structural removal, not a soft delete. Returns the number of comments
// removed; 0 means the id did not resolve.
func (b *Blog) RemoveComment(id primitive.ObjectID) int {
	target := b.FindComment(id)
	if target == nil {
		return 0
	}

	doomed := map[primitive.ObjectID]struct{}{id: {}}
	for _, rid := range target.Replies {
		doomed[rid] = struct{}{}
	}

	kept := b.Comments[:0]
	removed := 0
	for _, c := range b.Comments {
		if _, gone := doomed[c.ID]; gone {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	b.Comments = kept

	// If the removed comment was itself a reply, unlink it from its parent's
	// replies list.
	for i := range b.Comments {
		replies := b.Comments[i].Replies
		for j, rid := range replies {
			if rid == id {
				b.Comments[i].Replies = append(replies[:j], replies[j+1:]...)
				break
			}
		}
	}
	return removed
}

// Replies resolves the Replies ids of the comment with the given id into
// full comments, preserving stored order. found is false when the comment
// does not exist.
func (b *Blog) Replies(id primitive.ObjectID) (replies []Comment, found bool) {
	c := b.FindComment(id)
	if c == nil {
		return nil, false
	}
	replies = make([]Comment, 0, len(c.Replies))
	for _, rid := range c.Replies {
		if r := b.FindComment(rid); r != nil {
			replies = append(replies, *r)
		}
	}
	return replies, true
}

// ToggleLike flips the membership of userID in the likes set. Likes and
// LikesCount are updated together, never independently, so the invariant
// LikesCount == len(Likes) holds after every call. Returns the new liked
// state.
func (b *Blog) ToggleLike(userID primitive.ObjectID) bool {
	for i, id := range b.Likes {
		if id == userID {
			b.Likes = append(b.Likes[:i], b.Likes[i+1:]...)
			b.LikesCount = len(b.Likes)
			return false
		}
	}
	b.Likes = append(b.Likes, userID)
	b.LikesCount = len(b.Likes)
	return true
}

// LikedBy reports whether userID is in the likes set.
func (b *Blog) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range b.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
