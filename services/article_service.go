package services

import (
	"errors"
	"strings"

	"newscheck-backend/models"
	"newscheck-backend/repositories"
	"newscheck-backend/utils"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleRequest) (*models.Article, error)
	GetArticles() ([]models.Article, error)
	GetVisibleArticles() ([]models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	SetVisibility(id uint, visible bool) (*models.Article, error)
	ToggleVisibility(id uint) (*models.Article, error)
	Search(keyword string) ([]models.Article, error)
	GetStats() (*models.ArticleStats, error)
	RecalculateAllCounts() error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	voteRepo    repositories.VoteRepository
	locks       *utils.KeyLock
}

func NewArticleService(articleRepo repositories.ArticleRepository, voteRepo repositories.VoteRepository, locks *utils.KeyLock) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		voteRepo:    voteRepo,
		locks:       locks,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleRequest) (*models.Article, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, models.ErrorBadRequest{Message: "title cannot be empty"}
	}

	visible := true
	if req.Visible != nil {
		visible = *req.Visible
	}

	article := &models.Article{
		Title:           req.Title,
		Category:        req.Category,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Author:          req.Author,
		Date:            req.Date,
		Image:           req.Image,
		Visible:         visible,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) GetArticles() ([]models.Article, error) {
	return s.articleRepo.GetAll()
}

func (s *articleService) GetVisibleArticles() ([]models.Article, error) {
	return s.articleRepo.GetVisible()
}

func (s *articleService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "news not found"}
		}
		return nil, err
	}
	return article, nil
}

// SetVisibility hides or shows the article itself. The denormalized tallies
// are left untouched; they describe the article's votes, not the article.
func (s *articleService) SetVisibility(id uint, visible bool) (*models.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	article.Visible = visible
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *articleService) ToggleVisibility(id uint) (*models.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	article.Visible = !article.Visible
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Search returns every article for a blank keyword, otherwise the
// case-insensitive substring matches ordered by the text date descending.
func (s *articleService) Search(keyword string) ([]models.Article, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.articleRepo.GetAll()
	}
	return s.articleRepo.Search(keyword)
}

func (s *articleService) GetStats() (*models.ArticleStats, error) {
	total, err := s.articleRepo.CountAll()
	if err != nil {
		return nil, err
	}
	verified, err := s.articleRepo.CountByCategory(models.CategoryVerified)
	if err != nil {
		return nil, err
	}
	fake, err := s.articleRepo.CountByCategory(models.CategoryFakeNews)
	if err != nil {
		return nil, err
	}
	unverified, err := s.articleRepo.CountByCategory(models.CategoryUnverified)
	if err != nil {
		return nil, err
	}

	return &models.ArticleStats{
		Total:      total,
		Verified:   verified,
		Fake:       fake,
		Unverified: unverified,
	}, nil
}

// RecalculateAllCounts refreshes every article's tally with the same
// overwrite recount used for a single article.
func (s *articleService) RecalculateAllCounts() error {
	articles, err := s.articleRepo.GetAll()
	if err != nil {
		return err
	}

	for i := range articles {
		article := &articles[i]
		s.locks.Lock(article.ID)
		_, err := refreshArticleTally(s.articleRepo, s.voteRepo, article)
		s.locks.Unlock(article.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
