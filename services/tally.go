package services

import (
	"strings"

	"newscheck-backend/models"
	"newscheck-backend/repositories"
)

// DeriveCategory resolves an article's fact-check verdict from its vote
// balance. Only an article still marked Unverified (case-insensitive) is ever
// reassigned; a Verified or Fake News verdict is final and passes through
// unchanged even if the balance later flips. Ties, including 0-0, stay
// Unverified.
func DeriveCategory(category string, upVotes, downVotes int) string {
	if !strings.EqualFold(category, models.CategoryUnverified) {
		return category
	}
	switch {
	case upVotes > downVotes:
		return models.CategoryVerified
	case downVotes > upVotes:
		return models.CategoryFakeNews
	default:
		return models.CategoryUnverified
	}
}

// countVisible tallies the article's visible votes: comments with a non-empty
// body and each vote direction. This is always a full recount, never a delta.
func countVisible(voteRepo repositories.VoteRepository, articleID uint) (comments, up, down int, err error) {
	commentCount, err := voteRepo.CountCommentsByArticleID(articleID)
	if err != nil {
		return 0, 0, 0, err
	}
	upCount, err := voteRepo.CountByArticleIDAndVote(articleID, models.VoteUp)
	if err != nil {
		return 0, 0, 0, err
	}
	downCount, err := voteRepo.CountByArticleIDAndVote(articleID, models.VoteDown)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(commentCount), int(upCount), int(downCount), nil
}

// refreshArticleTally overwrites the article's stored counters with a full
// recount of its visible votes, re-derives the category and persists the
// article. The caller must hold the article's lock.
func refreshArticleTally(articleRepo repositories.ArticleRepository, voteRepo repositories.VoteRepository, article *models.Article) (*models.TallyResult, error) {
	comments, up, down, err := countVisible(voteRepo, article.ID)
	if err != nil {
		return nil, err
	}

	article.CommentsCount = comments
	article.UpVotes = up
	article.DownVotes = down
	article.Category = DeriveCategory(article.Category, up, down)

	if err := articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.TallyResult{
		CommentsCount: comments,
		UpVotes:       up,
		DownVotes:     down,
		Category:      article.Category,
	}, nil
}
