package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devforum/internal/auth"
	"devforum/internal/config"
	"devforum/internal/db"
	"devforum/internal/model"
	"devforum/internal/repository"
)

// seedQuestion bundles a question with its tag names and sample answers.
type seedQuestion struct {
	Title      string
	Category   model.QuestionCategory
	Difficulty model.DifficultyLevel
	Detail     string
	Tags       []string
	Answers    []string
}

var seedUsers = []struct {
	Email    string
	Password string
}{
	{"alice@example.com", "password123"},
	{"bob@example.com", "password123"},
}

var seedQuestions = []seedQuestion{
	{
		Title:      "How do I debounce an input handler in React?",
		Category:   model.CategoryReact,
		Difficulty: model.DifficultyIntermediate,
		Detail:     "My search field fires a request on every keystroke. What is the idiomatic way to debounce it in a function component?",
		Tags:       []string{"react", "hooks"},
		Answers: []string{
			"Wrap the callback with useMemo around a debounce helper and clear it on unmount.",
		},
	},
	{
		Title:      "What is the difference between INNER and LEFT JOIN?",
		Category:   model.CategoryDatabase,
		Difficulty: model.DifficultyBeginner,
		Detail:     "Both seem to combine rows from two tables. When does the choice matter?",
		Tags:       []string{"sql"},
		Answers: []string{
			"INNER keeps only matching rows, LEFT keeps every row of the left table and pads the right side with NULLs.",
			"Use LEFT JOIN when the related row is optional.",
		},
	},
	{
		Title:      "Why does my async Python function never run?",
		Category:   model.CategoryPython,
		Difficulty: model.DifficultyBeginner,
		Detail:     "Calling the coroutine just returns a coroutine object instead of executing it.",
		Tags:       []string{"python", "asyncio"},
		Answers:    nil,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Tag{},
		&model.Question{},
		&model.Answer{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	questionRepo := repository.NewQuestionRepository(gormDB)
	answerRepo := repository.NewAnswerRepository(gormDB)
	ctx := context.Background()

	users, err := seedDemoUsers(ctx, userRepo, tokenRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	created, err := seedDemoQuestions(ctx, questionRepo, answerRepo, tagRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users available: %d", len(users))
	log.Printf("  - New questions created: %d", created)
}

// seedDemoUsers creates the demo users and their tokens, reusing users that
// already exist so the script stays idempotent.
func seedDemoUsers(ctx context.Context, userRepo repository.UserRepository, tokenRepo repository.TokenRepository) ([]*model.User, error) {
	var users []*model.User
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err == nil {
			users = append(users, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), 10)
		if err != nil {
			return nil, err
		}
		user := &model.User{
			Username:     usernameFromEmail(su.Email),
			Email:        su.Email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		if err := tokenRepo.Create(ctx, &model.AuthToken{Key: auth.NewKey(), UserID: user.ID}); err != nil {
			return nil, err
		}
		log.Printf("Created user %s", user.Email)
		users = append(users, user)
	}
	return users, nil
}

// seedDemoQuestions inserts the sample questions round-robin across the demo
// users. Questions are matched by title so reruns do not duplicate them.
func seedDemoQuestions(
	ctx context.Context,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	tagRepo repository.TagRepository,
	users []*model.User,
) (int, error) {
	existing, err := questionRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[q.Title] = true
	}

	created := 0
	for i, sq := range seedQuestions {
		if seen[sq.Title] {
			continue
		}
		author := users[i%len(users)]
		answerer := users[(i+1)%len(users)]

		question := &model.Question{
			Title:           sq.Title,
			Category:        sq.Category,
			DifficultyLevel: sq.Difficulty,
			QuestionDetail:  sq.Detail,
			AuthorID:        author.ID,
		}
		if err := questionRepo.Create(ctx, question); err != nil {
			return created, err
		}
		for _, name := range sq.Tags {
			tag, err := tagRepo.GetOrCreate(ctx, name)
			if err != nil {
				return created, err
			}
			if err := questionRepo.AppendTag(ctx, question, tag); err != nil {
				return created, err
			}
		}
		for _, content := range sq.Answers {
			answer := &model.Answer{
				QuestionID: question.ID,
				Content:    content,
				AuthorID:   answerer.ID,
			}
			if err := answerRepo.Create(ctx, answer); err != nil {
				return created, err
			}
		}
		created++
	}
	return created, nil
}

func usernameFromEmail(email string) string {
	for i := range email {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
