package repositories

import (
	"newscheck-backend/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	Create(vote *models.Vote) error
	GetByID(id uint) (*models.Vote, error)
	GetAll() ([]models.Vote, error)
	GetVisibleByArticleID(articleID uint) ([]models.Vote, error)
	GetHidden() ([]models.Vote, error)
	Update(vote *models.Vote) error
	CountCommentsByArticleID(articleID uint) (int64, error)
	CountByArticleIDAndVote(articleID uint, vote string) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) GetByID(id uint) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.First(&vote, id).Error
	return &vote, err
}

func (r *voteRepository) GetAll() ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Find(&votes).Error
	return votes, err
}

func (r *voteRepository) GetVisibleByArticleID(articleID uint) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.
		Where("article_id = ? AND visible = ?", articleID, true).
		Order("created_at").
		Find(&votes).Error
	return votes, err
}

func (r *voteRepository) GetHidden() ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("visible = ?", false).Find(&votes).Error
	return votes, err
}

func (r *voteRepository) Update(vote *models.Vote) error {
	return r.db.Save(vote).Error
}

// CountCommentsByArticleID counts the visible votes of the article that carry
// a non-empty comment body.
func (r *voteRepository) CountCommentsByArticleID(articleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("article_id = ? AND visible = ? AND comment <> ''", articleID, true).
		Count(&count).Error
	return count, err
}

func (r *voteRepository) CountByArticleIDAndVote(articleID uint, vote string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("article_id = ? AND visible = ? AND vote = ?", articleID, true, vote).
		Count(&count).Error
	return count, err
}
