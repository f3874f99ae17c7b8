package service

import (
	"context"
	"errors"
	"strings"

	"telx/internal/models"
	"telx/internal/repository"

	"gorm.io/gorm"
)

// Feed filters.
const (
	FilterLatest    = "latest"
	FilterFollowing = "following"
	FilterTrending  = "trending"
)

// Pagination bounds for feed pages.
const (
	DefaultPerPage = 20
	MaxPerPage     = 50
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

type FeedInput struct {
	Filter   string
	Page     int
	PerPage  int
	ViewerID uint
}

// Page is one page of the feed along with pagination metadata.
type Page struct {
	Posts   []*models.Post `json:"posts"`
	Total   int64          `json:"total"`
	Pages   int            `json:"pages"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	HasNext bool           `json:"has_next"`
	HasPrev bool           `json:"has_prev"`
}

// LikeResult reports the outcome of a like toggle with a fresh count.
type LikeResult struct {
	Action     string `json:"action"`
	LikesCount int64  `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and stores a new post, returning its full view.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewEmptyContentError()
	}
	if len([]rune(content)) > models.ContentMaxLen {
		return nil, models.NewContentTooLongError()
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  content,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	return s.GetPost(ctx, post.ID, in.UserID)
}

// GetPost returns a single post view for the given viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// ListByAuthor returns every post by one author, newest first, as seen by the
// viewer. Used by the profile endpoint, which shows the full history rather
// than a paginated feed.
func (s *PostService) ListByAuthor(ctx context.Context, authorID, viewerID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByUserID(ctx, authorID, viewerID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// Feed assembles one page of the requested feed. Unknown filters fall back to
// the latest feed. The following feed requires a viewer; without one it is
// empty rather than an error.
func (s *PostService) Feed(ctx context.Context, in FeedInput) (*Page, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	offset := (page - 1) * perPage

	var (
		posts []*models.Post
		total int64
		err   error
	)

	switch in.Filter {
	case FilterFollowing:
		if in.ViewerID == 0 {
			return emptyPage(page, perPage), nil
		}
		total, err = s.postRepo.CountFollowing(ctx, in.ViewerID)
		if err == nil {
			posts, err = s.postRepo.ListFollowing(ctx, in.ViewerID, perPage, offset)
		}
	case FilterTrending:
		total, err = s.postRepo.CountTrending(ctx)
		if err == nil {
			posts, err = s.postRepo.ListTrending(ctx, perPage, offset, in.ViewerID)
		}
	default:
		total, err = s.postRepo.CountAll(ctx)
		if err == nil {
			posts, err = s.postRepo.ListLatest(ctx, perPage, offset, in.ViewerID)
		}
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if posts == nil {
		posts = []*models.Post{}
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &Page{
		Posts:   posts,
		Total:   total,
		Pages:   pages,
		Page:    page,
		PerPage: perPage,
		HasNext: page < pages,
		HasPrev: page > 1,
	}, nil
}

func emptyPage(page, perPage int) *Page {
	return &Page{
		Posts:   []*models.Post{},
		Total:   0,
		Pages:   0,
		Page:    page,
		PerPage: perPage,
		HasNext: false,
		HasPrev: page > 1,
	}
}

// ToggleLike flips the viewer's like on a post. The returned count is read
// back after the write so it reflects concurrent activity.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	action := "liked"
	if liked {
		action = "unliked"
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	count, err := s.postRepo.LikesCount(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &LikeResult{
		Action:     action,
		LikesCount: count,
		IsLiked:    action == "liked",
	}, nil
}
