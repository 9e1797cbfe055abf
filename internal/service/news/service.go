package news

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/ordering"
	"github.com/aliskhannn/corpsite/internal/repository/news"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/news/mock.go -package=mocks

type newsRepository interface {
	CreateNews(context.Context, model.News) (int64, error)
	CreateNewsWithImages(context.Context, model.News, []string) (int64, error)
	UpdateNews(context.Context, model.News) error
	DeleteNews(context.Context, int64) error
	GetNewsByID(context.Context, int64) (model.News, error)
	GetAllNews(context.Context) ([]model.News, error)
	GetRecentNews(context.Context, int64, int) ([]model.News, error)
	GetHighlightedNews(context.Context) (model.News, error)
	AddImages(context.Context, int64, []string) error
	GetImages(context.Context, int64) ([]model.NewsImage, error)
	DeleteImage(context.Context, int64, int64) (string, error)
	UpdateImageOrder(context.Context, int64, map[int64]int) error
}

// RecentLimit is how many other posts the detail page lists.
const RecentLimit = 5

// Feed is the public news list.
type Feed struct {
	Posts       []model.News `json:"posts"`
	Highlighted *model.News  `json:"highlighted"`
}

// Post is the public detail page of a news post.
type Post struct {
	News   model.News    `json:"news"`
	Slides []model.Slide `json:"slides"`
	Recent []model.News  `json:"recent"`
}

type Service struct {
	repo newsRepository
}

func NewService(repo newsRepository) *Service {
	return &Service{repo: repo}
}

// GetFeed returns every post, newest first, and the newest pinned one if any.
func (s *Service) GetFeed(ctx context.Context) (Feed, error) {
	posts, err := s.repo.GetAllNews(ctx)
	if err != nil {
		return Feed{}, fmt.Errorf("get news: %w", err)
	}

	feed := Feed{Posts: posts}

	highlighted, err := s.repo.GetHighlightedNews(ctx)
	switch {
	case err == nil:
		feed.Highlighted = &highlighted
	case !errors.Is(err, news.ErrNewsNotFound):
		return Feed{}, fmt.Errorf("get highlighted news: %w", err)
	}

	return feed, nil
}

// GetPost returns a post with its slides and the most recent other posts.
func (s *Service) GetPost(ctx context.Context, id int64) (Post, error) {
	n, err := s.repo.GetNewsByID(ctx, id)
	if err != nil {
		return Post{}, fmt.Errorf("get news: %w", err)
	}

	images, err := s.GetGallery(ctx, id)
	if err != nil {
		return Post{}, err
	}

	recent, err := s.repo.GetRecentNews(ctx, id, RecentLimit)
	if err != nil {
		return Post{}, fmt.Errorf("get recent news: %w", err)
	}

	return Post{News: n, Slides: Slides(n, images), Recent: recent}, nil
}

// Slides builds the gallery: the cover first, then the images in order,
// skipping an image that repeats the cover.
func Slides(n model.News, images []model.NewsImage) []model.Slide {
	slides := make([]model.Slide, 0, len(images)+1)

	cover := ""
	if n.Cover != nil {
		cover = *n.Cover
	}

	if cover != "" {
		slides = append(slides, model.Slide{Path: cover})
	}

	for _, img := range images {
		if cover != "" && img.Path == cover {
			continue
		}

		slides = append(slides, model.Slide{Path: img.Path})
	}

	return slides
}

// GetGallery returns the images of a post ordered by sort value, then id.
func (s *Service) GetGallery(ctx context.Context, id int64) ([]model.NewsImage, error) {
	images, err := s.repo.GetImages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news images: %w", err)
	}

	ordering.Sort(images, func(img model.NewsImage) ordering.Item {
		return ordering.Item{ID: img.ID, Rank: &img.SortOrder}
	})

	return images, nil
}

func (s *Service) GetNews(ctx context.Context, id int64) (model.News, error) {
	n, err := s.repo.GetNewsByID(ctx, id)
	if err != nil {
		return model.News{}, fmt.Errorf("get news: %w", err)
	}

	return n, nil
}

// CreateNews stores a post together with its initial gallery.
func (s *Service) CreateNews(ctx context.Context, n model.News, gallery []string) (int64, error) {
	var (
		id  int64
		err error
	)
	if len(gallery) > 0 {
		id, err = s.repo.CreateNewsWithImages(ctx, n, gallery)
	} else {
		id, err = s.repo.CreateNews(ctx, n)
	}
	if err != nil {
		return 0, fmt.Errorf("create news: %w", err)
	}

	return id, nil
}

func (s *Service) UpdateNews(ctx context.Context, n model.News) error {
	if err := s.repo.UpdateNews(ctx, n); err != nil {
		return fmt.Errorf("update news: %w", err)
	}

	return nil
}

func (s *Service) DeleteNews(ctx context.Context, id int64) error {
	if err := s.repo.DeleteNews(ctx, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}

	return nil
}

// AddImages appends paths or URLs to the gallery of an existing post.
func (s *Service) AddImages(ctx context.Context, id int64, paths []string) error {
	if _, err := s.repo.GetNewsByID(ctx, id); err != nil {
		return fmt.Errorf("get news: %w", err)
	}

	if err := s.repo.AddImages(ctx, id, paths); err != nil {
		return fmt.Errorf("add news images: %w", err)
	}

	return nil
}

// ReorderImages applies submitted sort values keyed by image id. Values that are
// not integers keep the image's current value; keys of other posts' images are ignored.
func (s *Service) ReorderImages(ctx context.Context, id int64, values map[string]string) error {
	images, err := s.repo.GetImages(ctx, id)
	if err != nil {
		return fmt.Errorf("get news images: %w", err)
	}

	orders := make(map[int64]int)
	for _, img := range images {
		raw, ok := values[strconv.FormatInt(img.ID, 10)]
		if !ok {
			continue
		}

		if v := ordering.ParseSortValue(raw, img.SortOrder); v != img.SortOrder {
			orders[img.ID] = v
		}
	}

	if len(orders) == 0 {
		return nil
	}

	if err := s.repo.UpdateImageOrder(ctx, id, orders); err != nil {
		return fmt.Errorf("update image order: %w", err)
	}

	return nil
}

// DeleteImage removes an image that belongs to the post.
func (s *Service) DeleteImage(ctx context.Context, newsID, imageID int64) error {
	path, err := s.repo.DeleteImage(ctx, newsID, imageID)
	if err != nil {
		return fmt.Errorf("delete news image: %w", err)
	}

	zlog.Logger.Info().Int64("news_id", newsID).Str("path", path).Msg("news image deleted")

	return nil
}
