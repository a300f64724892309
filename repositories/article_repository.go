package repositories

import (
	"strings"

	"newscheck-backend/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetAll() ([]models.Article, error)
	GetVisible() ([]models.Article, error)
	Update(article *models.Article) error
	CountAll() (int64, error)
	CountByCategory(category string) (int64, error)
	Search(keyword string) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetVisible() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("visible = ?", true).Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("LOWER(category) = LOWER(?)", category).
		Count(&count).Error
	return count, err
}

// Search matches the keyword as a case-insensitive substring of title,
// author, category or description. Date is a text column, so the descending
// order is lexicographic.
func (r *articleRepository) Search(keyword string) ([]models.Article, error) {
	var articles []models.Article
	pattern := "%" + strings.ToLower(keyword) + "%"
	err := r.db.
		Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("date DESC").
		Find(&articles).Error
	return articles, err
}
