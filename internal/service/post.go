package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/crucial707/blog-api/internal/models"
	"github.com/crucial707/blog-api/internal/repo"
)

// PostStore persists posts. Lookups of unknown or malformed ids return repo.ErrNotFound.
type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
}

// PostInput carries the client-editable fields. Update replaces all of them.
type PostInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
}

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Tags = trimAll(in.Tags)
}

type PostService struct {
	posts PostStore
	newID func() string
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{
		posts: posts,
		newID: func() string { return uuid.New().String() },
	}
}

// Create stores a new post owned by userID and returns its id.
func (s *PostService) Create(ctx context.Context, userID string, in PostInput) (string, error) {
	if userID == "" {
		return "", ErrUnauthenticated
	}
	in.normalize()
	if err := validateStruct(in); err != nil {
		return "", err
	}

	p := &models.Post{
		ID:          s.newID(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        in.Tags,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return "", fmt.Errorf("create post: %w", err)
	}
	return p.ID, nil
}

// Get returns the post with postID. No identity is required.
func (s *PostService) Get(ctx context.Context, postID string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, "get post")
	}
	return p, nil
}

// Update replaces title, description, image url and tags of postID.
// Existence is checked before ownership, so a missing post is ErrNotFound for every caller.
func (s *PostService) Update(ctx context.Context, userID, postID string, in PostInput) (*models.Post, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	in.normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	p, err := s.owned(ctx, userID, postID, "update post")
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Description = in.Description
	p.ImageURL = in.ImageURL
	p.Tags = in.Tags
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, notFoundOr(err, "update post")
	}
	return p, nil
}

// Delete permanently removes postID when userID owns it.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if _, err := s.owned(ctx, userID, postID, "delete post"); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return notFoundOr(err, "delete post")
	}
	return nil
}

// owned loads postID and checks that userID is its owner.
func (s *PostService) owned(ctx context.Context, userID, postID, op string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundOr(err, op)
	}
	if !p.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return p, nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
