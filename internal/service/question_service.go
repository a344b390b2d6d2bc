package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"devforum/internal/cache"
	"devforum/internal/errors"
	"devforum/internal/model"
	"devforum/internal/repository"
)

const questionCacheTTL = 5 * time.Minute

// VoteUp and VoteDown are the accepted vote types.
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// CreateQuestionInput carries the validated fields for a new question. The
// author always comes from the authenticated request, never from the input.
type CreateQuestionInput struct {
	Title           string
	Category        model.QuestionCategory
	DifficultyLevel model.DifficultyLevel
	QuestionDetail  string
	TagNames        []string
}

// QuestionService handles question operations.
type QuestionService interface {
	List(ctx context.Context) ([]model.Question, error)
	Create(ctx context.Context, author *model.User, input CreateQuestionInput) (*model.Question, error)
	Get(ctx context.Context, id uint) (*model.Question, error)
	IncrementView(ctx context.Context, id uint) (views uint, err error)
	Vote(ctx context.Context, id uint, voteType string) (votes int, err error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	tagRepo      repository.TagRepository
	cache        *cache.Client
}

// NewQuestionService creates a new question service.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	tagRepo repository.TagRepository,
	cache *cache.Client,
) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		tagRepo:      tagRepo,
		cache:        cache,
	}
}

func (s *questionService) cacheKey(id uint) string {
	return fmt.Sprintf("question:%d", id)
}

// List returns all questions newest-first with computed fields filled in.
func (s *questionService) List(ctx context.Context) ([]model.Question, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if err := s.decorate(ctx, &questions[i]); err != nil {
			return nil, err
		}
	}
	return questions, nil
}

// Create validates the input, resolves tags get-or-create and persists the
// question owned by author.
func (s *questionService) Create(ctx context.Context, author *model.User, input CreateQuestionInput) (*model.Question, error) {
	if input.Category == "" {
		input.Category = model.CategoryOther
	}
	if input.DifficultyLevel == "" {
		input.DifficultyLevel = model.DifficultyBeginner
	}

	fieldErrs := errors.FieldErrors{}
	if input.Title == "" {
		fieldErrs["title"] = "this field is required"
	}
	if len(input.Title) > 255 {
		fieldErrs["title"] = "ensure this field has no more than 255 characters"
	}
	if input.QuestionDetail == "" {
		fieldErrs["question_detail"] = "this field is required"
	}
	if !model.ValidCategory(input.Category) {
		fieldErrs["category"] = fmt.Sprintf("%q is not a valid choice", input.Category)
	}
	if !model.ValidDifficulty(input.DifficultyLevel) {
		fieldErrs["difficulty_level"] = fmt.Sprintf("%q is not a valid choice", input.DifficultyLevel)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	question := &model.Question{
		Title:           input.Title,
		Category:        input.Category,
		DifficultyLevel: input.DifficultyLevel,
		QuestionDetail:  input.QuestionDetail,
		AuthorID:        author.ID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}

	// Tag attachment is best-effort, not wrapped in a transaction with the
	// question insert.
	question.Tags = []model.Tag{}
	for _, name := range input.TagNames {
		tag, err := s.tagRepo.GetOrCreate(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", name, err)
		}
		if err := s.questionRepo.AppendTag(ctx, question, tag); err != nil {
			return nil, fmt.Errorf("attach tag %q: %w", name, err)
		}
		question.Tags = append(question.Tags, *tag)
	}

	question.Author = *author
	question.AuthorName = author.Username
	question.AnswerCount = 0
	return question, nil
}

// Get retrieves a question by ID with caching.
func (s *questionService) Get(ctx context.Context, id uint) (*model.Question, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Question
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrQuestionNotFound
		}
		return nil, err
	}
	if err := s.decorate(ctx, question); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(question); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, questionCacheTTL)
	}
	return question, nil
}

// IncrementView adds one to the view counter and returns the new value.
// Read-modify-write: concurrent increments on the same question may lose
// updates, matching the reference behavior.
func (s *questionService) IncrementView(ctx context.Context, id uint) (uint, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.ErrQuestionNotFound
		}
		return 0, err
	}

	question.Views++
	if err := s.questionRepo.Save(ctx, question); err != nil {
		return 0, fmt.Errorf("save question: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return question.Views, nil
}

// Vote applies an up or down vote and returns the new tally. Votes may go
// negative and the same user may vote any number of times.
func (s *questionService) Vote(ctx context.Context, id uint, voteType string) (int, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, errors.ErrQuestionNotFound
		}
		return 0, err
	}

	switch voteType {
	case VoteUp:
		question.Votes++
	case VoteDown:
		question.Votes--
	default:
		return 0, errors.ErrInvalidVoteType
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		return 0, fmt.Errorf("save question: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return question.Votes, nil
}

// decorate fills the computed fields serialized with a question.
func (s *questionService) decorate(ctx context.Context, question *model.Question) error {
	question.AuthorName = question.Author.Username
	if question.Tags == nil {
		question.Tags = []model.Tag{}
	}
	count, err := s.answerRepo.CountByQuestion(ctx, question.ID)
	if err != nil {
		return fmt.Errorf("count answers: %w", err)
	}
	question.AnswerCount = count
	return nil
}
