package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/models"
)

type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentDTO is a comment with its author expanded. Replies stay an id list;
// the thread shape is reconstructed client-side or via the replies endpoint.
type CommentDTO struct {
	ID        string     `json:"id"`
	Author    AuthorDTO  `json:"author"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Replies   []string   `json:"replies"`
}

// BlogDTO is the reference-expanded blog aggregate: author, category, tags
// and every comment author resolved.
type BlogDTO struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Author     AuthorDTO    `json:"author"`
	Image      string       `json:"image"`
	Category   *CategoryDTO `json:"category,omitempty"`
	Tags       []TagDTO     `json:"tags"`
	Comments   []CommentDTO `json:"comments"`
	LikesCount int          `json:"likes_count"`
	Views      int64        `json:"views"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// LikeStatusDTO reports the caller's like state after a toggle or a status
// read.
type LikeStatusDTO struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// NewAuthorDTO resolves an author id against the loaded user set. Unresolvable
// ids (should not happen; soft-deleted authors stay loadable) degrade to an
// id-only reference.
func NewAuthorDTO(id primitive.ObjectID, users map[primitive.ObjectID]models.User, withEmail bool) AuthorDTO {
	a := AuthorDTO{ID: id.Hex()}
	if u, ok := users[id]; ok {
		a.Username = u.Username
		if withEmail {
			a.Email = u.Email
		}
	}
	return a
}

func NewCommentDTO(c models.Comment, users map[primitive.ObjectID]models.User) CommentDTO {
	d := CommentDTO{
		ID:        c.ID.Hex(),
		Author:    NewAuthorDTO(c.Author, users, false),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Replies:   make([]string, 0, len(c.Replies)),
	}
	if c.ParentID != nil {
		pid := c.ParentID.Hex()
		d.ParentID = &pid
	}
	for _, rid := range c.Replies {
		d.Replies = append(d.Replies, rid.Hex())
	}
	return d
}

// NewBlogDTO maps a blog aggregate to its expanded DTO using pre-fetched
// reference data.
func NewBlogDTO(
	b models.Blog,
	users map[primitive.ObjectID]models.User,
	category *models.Category,
	tags map[primitive.ObjectID]models.Tag,
) BlogDTO {
	d := BlogDTO{
		ID:         b.ID.Hex(),
		Title:      b.Title,
		Content:    b.Content,
		Author:     NewAuthorDTO(b.Author, users, true),
		Image:      b.Image,
		Tags:       make([]TagDTO, 0, len(b.TagIDs)),
		Comments:   make([]CommentDTO, 0, len(b.Comments)),
		LikesCount: b.LikesCount,
		Views:      b.Views,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
	if category != nil {
		d.Category = &CategoryDTO{ID: category.ID.Hex(), Name: category.Name}
	}
	for _, tid := range b.TagIDs {
		if t, ok := tags[tid]; ok {
			d.Tags = append(d.Tags, TagDTO{ID: t.ID.Hex(), Name: t.Name})
		}
	}
	for _, c := range b.Comments {
		d.Comments = append(d.Comments, NewCommentDTO(c, users))
	}
	return d
}

func NewCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID.Hex(), Name: c.Name}
}

func NewTagDTO(t models.Tag) TagDTO {
	return TagDTO{ID: t.ID.Hex(), Name: t.Name}
}
