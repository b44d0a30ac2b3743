package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/dto"
	"inkpost/models"
	"inkpost/repositories"
)

// BlogService orchestrates the blog aggregate lifecycle: create, read,
// partial update and soft delete, with title uniqueness and owner-or-admin
// authorization. Every mutation is a load-mutate-persist cycle over the
// whole document; there is no cross-request locking, so concurrent writers
// are last-writer-wins.
type BlogService struct {
	blogs      BlogStore
	users      UserStore
	categories CategoryStore
	tags       TagStore
}

func NewBlogService(blogs BlogStore, users UserStore, categories CategoryStore, tags TagStore) *BlogService {
	return &BlogService{blogs: blogs, users: users, categories: categories, tags: tags}
}

// CreateBlogInput is the typed, already-decoded create request. TagIDs and
// CategoryID arrive as hex strings straight from the transport layer and are
// validated here, at the aggregate boundary.
type CreateBlogInput struct {
	Title      string
	Content    string
	Image      string
	CategoryID string
	TagIDs     []string
}

// UpdateBlogInput carries a partial patch; nil fields keep their previous
// value.
type UpdateBlogInput struct {
	Title      *string
	Content    *string
	Image      *string
	CategoryID *string
	TagIDs     []string
}

func (s *BlogService) Create(ctx context.Context, p *auth.Principal, in CreateBlogInput) (*dto.BlogDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if len(title) < 3 || len(title) > 100 {
		return nil, apperrors.Validation("Title must be between 3 and 100 characters")
	}
	if len(content) < 10 {
		return nil, apperrors.Validation("Content must be at least 10 characters")
	}
	if in.Image == "" {
		return nil, apperrors.Validation("Please upload an image")
	}

	taken, err := s.blogs.ExistsActiveTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("check title: %w", err)
	}
	if taken {
		return nil, apperrors.Conflict("A blog with this title already exists")
	}

	categoryID, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:      title,
		Content:    content,
		Author:     p.ID,
		Image:      in.Image,
		CategoryID: categoryID,
		TagIDs:     tagIDs,
		Comments:   []models.Comment{},
		Likes:      []primitive.ObjectID{},
	}
	if err := s.blogs.Insert(ctx, blog); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}
	return s.expand(ctx, blog)
}

func (s *BlogService) Update(ctx context.Context, p *auth.Principal, blogID string, in UpdateBlogInput) (*dto.BlogDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	blog, err := s.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !auth.CanMutate(p, blog.Author) {
		return nil, apperrors.Authorization("You are not allowed to update this blog")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if len(title) < 3 || len(title) > 100 {
			return nil, apperrors.Validation("Title must be between 3 and 100 characters")
		}
		if title != blog.Title {
			taken, err := s.blogs.ExistsActiveTitle(ctx, title)
			if err != nil {
				return nil, fmt.Errorf("check title: %w", err)
			}
			if taken {
				return nil, apperrors.Conflict("A blog with this title already exists")
			}
		}
		blog.Title = title
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if len(content) < 10 {
			return nil, apperrors.Validation("Content must be at least 10 characters")
		}
		blog.Content = content
	}
	if in.Image != nil && *in.Image != "" {
		blog.Image = *in.Image
	}
	if in.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		blog.CategoryID = categoryID
	}
	if in.TagIDs != nil {
		tagIDs, err := s.resolveTags(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		blog.TagIDs = tagIDs
	}

	if err := s.blogs.Replace(ctx, blog); err != nil {
		return nil, fmt.Errorf("persist blog: %w", err)
	}
	return s.expand(ctx, blog)
}

// SoftDelete stamps DeletedAt and persists. The document stays in the
// collection for internal reference resolution but disappears from every
// listing and lookup.
func (s *BlogService) SoftDelete(ctx context.Context, p *auth.Principal, blogID string) error {
	if p == nil {
		return apperrors.Authentication("Authentication required")
	}
	blog, err := s.loadActive(ctx, blogID)
	if err != nil {
		return err
	}
	if !auth.CanMutate(p, blog.Author) {
		return apperrors.Authorization("You are not allowed to delete this blog")
	}

	now := time.Now()
	blog.DeletedAt = &now
	if err := s.blogs.Replace(ctx, blog); err != nil {
		return fmt.Errorf("persist blog: %w", err)
	}
	return nil
}

func (s *BlogService) List(ctx context.Context) ([]dto.BlogDTO, error) {
	blogs, err := s.blogs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	out := make([]dto.BlogDTO, 0, len(blogs))
	for i := range blogs {
		d, err := s.expand(ctx, &blogs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func (s *BlogService) GetByID(ctx context.Context, blogID string) (*dto.BlogDTO, error) {
	blog, err := s.loadActive(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, blog)
}

// IncrementViews bumps the view counter of an active blog.
func (s *BlogService) IncrementViews(ctx context.Context, blogID string) error {
	id, err := parseObjectID(blogID, "blog id")
	if err != nil {
		return err
	}
	if err := s.blogs.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("Blog not found")
		}
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// loadActive parses the id and loads a non-deleted aggregate. A soft-deleted
// blog surfaces the same NotFound as an absent one.
func (s *BlogService) loadActive(ctx context.Context, blogID string) (*models.Blog, error) {
	id, err := parseObjectID(blogID, "blog id")
	if err != nil {
		return nil, err
	}
	blog, err := s.blogs.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("Blog not found")
		}
		return nil, fmt.Errorf("load blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) resolveCategory(ctx context.Context, hexID string) (*primitive.ObjectID, error) {
	if hexID == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, apperrors.Validation("Invalid category id")
	}
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Validation("Category does not exist")
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	return &id, nil
}

// resolveTags validates every element: one unparsable or unknown tag fails
// the whole operation, never a partial save.
func (s *BlogService) resolveTags(ctx context.Context, hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, h := range hexIDs {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperrors.Validation("Invalid tag id: " + h)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return ids, nil
	}
	found, err := s.tags.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, apperrors.Validation("Tag does not exist: " + id.Hex())
		}
	}
	return ids, nil
}

// expand hydrates the aggregate's references: author, category, tags and
// every comment author (covers nested replies since comments are one flat
// list). Soft-deleted users still resolve.
func (s *BlogService) expand(ctx context.Context, blog *models.Blog) (*dto.BlogDTO, error) {
	userIDs := collectAuthorIDs(blog)
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("expand authors: %w", err)
	}

	var category *models.Category
	if blog.CategoryID != nil {
		c, err := s.categories.FindByID(ctx, *blog.CategoryID)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("expand category: %w", err)
		}
		category = c
	}

	tags, err := s.tags.FindByIDs(ctx, blog.TagIDs)
	if err != nil {
		return nil, fmt.Errorf("expand tags: %w", err)
	}

	d := dto.NewBlogDTO(*blog, users, category, tags)
	return &d, nil
}

func collectAuthorIDs(blog *models.Blog) []primitive.ObjectID {
	seen := map[primitive.ObjectID]struct{}{blog.Author: {}}
	ids := []primitive.ObjectID{blog.Author}
	for _, c := range blog.Comments {
		if _, ok := seen[c.Author]; ok {
			continue
		}
		seen[c.Author] = struct{}{}
		ids = append(ids, c.Author)
	}
	return ids
}

func parseObjectID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.Validation("Invalid " + what)
	}
	return id, nil
}
