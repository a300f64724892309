package services

import (
	"errors"
	"strings"

	"newscheck-backend/models"
	"newscheck-backend/repositories"
	"newscheck-backend/utils"

	"gorm.io/gorm"
)

type VoteService interface {
	GetVotes() ([]models.Vote, error)
	GetVotesByArticle(articleID uint) ([]models.Vote, error)
	GetHiddenVotes() ([]models.Vote, error)
	SubmitVote(req models.SubmitVoteRequest) (*models.TallyResult, error)
	SetVoteVisibility(id uint, visible bool, declaredVote string) (*models.TallyResult, error)
	RecalculateCounts(articleID uint) (*models.TallyResult, error)
}

type voteService struct {
	voteRepo    repositories.VoteRepository
	articleRepo repositories.ArticleRepository
	locks       *utils.KeyLock
}

func NewVoteService(voteRepo repositories.VoteRepository, articleRepo repositories.ArticleRepository, locks *utils.KeyLock) VoteService {
	return &voteService{
		voteRepo:    voteRepo,
		articleRepo: articleRepo,
		locks:       locks,
	}
}

func (s *voteService) GetVotes() ([]models.Vote, error) {
	return s.voteRepo.GetAll()
}

func (s *voteService) GetVotesByArticle(articleID uint) ([]models.Vote, error) {
	return s.voteRepo.GetVisibleByArticleID(articleID)
}

func (s *voteService) GetHiddenVotes() ([]models.Vote, error) {
	return s.voteRepo.GetHidden()
}

// SubmitVote stores the vote record and refreshes the article's tally and
// category from the new visible set.
func (s *voteService) SubmitVote(req models.SubmitVoteRequest) (*models.TallyResult, error) {
	direction := strings.ToLower(strings.TrimSpace(req.Vote))
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, models.ErrorBadRequest{Message: "vote must be upvote or downvote"}
	}

	s.locks.Lock(req.ArticleID)
	defer s.locks.Unlock(req.ArticleID)

	article, err := s.articleRepo.GetByID(req.ArticleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "news not found"}
		}
		return nil, err
	}

	vote := &models.Vote{
		ArticleID: article.ID,
		UserID:    req.UserID,
		Name:      req.Name,
		Vote:      direction,
		Comment:   req.Comment,
		ImageURL:  req.ImageURL,
		Visible:   true,
	}
	if err := s.voteRepo.Create(vote); err != nil {
		return nil, err
	}

	return refreshArticleTally(s.articleRepo, s.voteRepo, article)
}

// SetVoteVisibility flips the record's visibility and adjusts the owning
// article's counters by the record's delta. Only the two state transitions
// mutate anything; calling with the current state is a no-op, so repeated
// hides never decrement twice. Decrements floor at zero, increments have no
// ceiling. When declaredVote is set it overrides the stored direction for
// the counter adjustment.
func (s *voteService) SetVoteVisibility(id uint, visible bool, declaredVote string) (*models.TallyResult, error) {
	// This first read only resolves the owning article for the lock; the
	// visibility state we branch on must be re-read under the lock, or two
	// concurrent toggles could both see the pre-toggle flag and apply the
	// delta twice.
	vote, err := s.voteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "comment not found"}
		}
		return nil, err
	}

	s.locks.Lock(vote.ArticleID)
	defer s.locks.Unlock(vote.ArticleID)

	vote, err = s.voteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(vote.ArticleID)
	if err != nil {
		return nil, err
	}

	direction := vote.Vote
	if declaredVote != "" {
		direction = strings.ToLower(strings.TrimSpace(declaredVote))
	}

	switch {
	case !visible && vote.Visible:
		if article.CommentsCount > 0 {
			article.CommentsCount--
		}
		if direction == models.VoteUp && article.UpVotes > 0 {
			article.UpVotes--
		} else if direction == models.VoteDown && article.DownVotes > 0 {
			article.DownVotes--
		}
		vote.Visible = false

	case visible && !vote.Visible:
		article.CommentsCount++
		if direction == models.VoteUp {
			article.UpVotes++
		} else if direction == models.VoteDown {
			article.DownVotes++
		}
		vote.Visible = true

	default:
		// Same-state call, nothing to apply.
		return &models.TallyResult{
			CommentsCount: article.CommentsCount,
			UpVotes:       article.UpVotes,
			DownVotes:     article.DownVotes,
			Category:      article.Category,
		}, nil
	}

	if err := s.voteRepo.Update(vote); err != nil {
		return nil, err
	}
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.TallyResult{
		CommentsCount: article.CommentsCount,
		UpVotes:       article.UpVotes,
		DownVotes:     article.DownVotes,
		Category:      article.Category,
	}, nil
}

// RecalculateCounts rebuilds the article's counters from scratch and applies
// the category rule. It repairs any drift left by historical data.
func (s *voteService) RecalculateCounts(articleID uint) (*models.TallyResult, error) {
	s.locks.Lock(articleID)
	defer s.locks.Unlock(articleID)

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "news not found"}
		}
		return nil, err
	}

	return refreshArticleTally(s.articleRepo, s.voteRepo, article)
}
