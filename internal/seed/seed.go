// Package seed loads the fixture data every fresh deployment starts
// with: the demo accounts, the four support communities, their welcome
// posts, the resource library, and the test account's mood history.
// Everything goes through the repository interfaces, so both storage
// drivers get the same data.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sakif/wellverse/internal/model"
	"github.com/sakif/wellverse/internal/repository"
)

// Stores bundles the repositories seeding writes to.
type Stores struct {
	Users       repository.UserRepository
	Communities repository.CommunityRepository
	Posts       repository.PostRepository
	Moods       repository.MoodRepository
	Resources   repository.ResourceRepository
}

// Apply upserts all fixture data. It is idempotent, so running it on
// every start is safe for both drivers.
func Apply(ctx context.Context, stores Stores, logger *slog.Logger) error {
	now := time.Now()

	for _, u := range users() {
		if err := stores.Users.Upsert(ctx, &u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.ID, err)
		}
	}

	for _, c := range communities() {
		if err := stores.Communities.Upsert(ctx, &c); err != nil {
			return fmt.Errorf("seeding community %s: %w", c.ID, err)
		}
	}

	for _, p := range posts(now) {
		if err := stores.Posts.Upsert(ctx, &p); err != nil {
			return fmt.Errorf("seeding post %s: %w", p.ID, err)
		}
	}

	for _, r := range resources() {
		if err := stores.Resources.Upsert(ctx, &r); err != nil {
			return fmt.Errorf("seeding resource %s: %w", r.ID, err)
		}
	}

	for _, e := range moodEntries() {
		if err := stores.Moods.Upsert(ctx, &e); err != nil {
			return fmt.Errorf("seeding mood entry %s: %w", e.ID, err)
		}
	}

	logger.Info("seed data applied",
		"users", len(users()),
		"communities", len(communities()),
		"posts", len(posts(now)),
		"resources", len(resources()),
	)
	return nil
}

// users returns the built-in demo accounts: the test account the mood
// history belongs to, and the admin account behind the welcome posts.
func users() []model.User {
	joined := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	return []model.User{
		{
			ID:          "test-uid",
			Email:       "test@example.com",
			DisplayName: "Test User",
			AvatarURL:   "https://placehold.co/100x100.png",
			Bio:         "This is a test bio.",
			CreatedAt:   joined,
		},
		{
			ID:          "wellverse-admin",
			Email:       "admin@wellverse.example.com",
			DisplayName: "WellVerse Admin",
			AvatarURL:   adminAvatar,
			CreatedAt:   joined,
		},
	}
}

func communities() []model.Community {
	return []model.Community{
		{ID: "anxiety", Name: "Anxiety Support", Description: "A safe space to discuss anxiety.", Icon: "ShieldAlert"},
		{ID: "depression", Name: "Depression & Low Mood", Description: "Share and find support for depression.", Icon: "CloudRain"},
		{ID: "addiction", Name: "Addiction Recovery", Description: "Support for overcoming addiction.", Icon: "HeartHandshake"},
		{ID: "self-growth", Name: "Self-Growth Journey", Description: "Cultivating personal development.", Icon: "Sunrise"},
	}
}

const adminAvatar = "https://placehold.co/40x40.png"

func posts(now time.Time) []model.Post {
	return []model.Post{
		{
			ID:           "post1",
			CommunityID:  "anxiety",
			AuthorID:     "test-uid",
			AuthorName:   "Test User",
			Title:        "Feeling overwhelmed today",
			Content:      "Just wanted to share that I'm feeling a bit overwhelmed with work and life. Anyone else relate?",
			Reactions:    5,
			CommentCount: 2,
			CreatedAt:    now.Add(-2 * time.Hour),
		},
		{
			ID:           "post2",
			CommunityID:  "anxiety",
			AuthorID:     "another-user",
			AuthorName:   "Jane Doe",
			Title:        "Coping mechanisms",
			Content:      "What are some coping mechanisms you find helpful for anxiety attacks?",
			Reactions:    12,
			CommentCount: 4,
			CreatedAt:    now.Add(-30 * time.Minute),
		},
		{
			ID:           "demo-post-addiction",
			CommunityID:  "addiction",
			AuthorID:     "wellverse-admin",
			AuthorName:   "WellVerse Admin",
			AuthorAvatar: adminAvatar,
			Title:        "Welcome to the Addiction Recovery Space!",
			Content:      "This is a safe space to share your journey, find support, and connect with others on the path to recovery. Remember, you're not alone. Feel free to introduce yourself or share what's on your mind.",
			Reactions:    3,
			CommentCount: 1,
			CreatedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:           "demo-post-anxiety-welcome",
			CommunityID:  "anxiety",
			AuthorID:     "wellverse-admin",
			AuthorName:   "WellVerse Admin",
			AuthorAvatar: adminAvatar,
			Title:        "Welcome to the Anxiety & Stress Support Group!",
			Content:      "Hello everyone! This community is here to provide a supportive environment for anyone dealing with anxiety or stress. Share your experiences, ask questions, and find comfort in knowing you're not alone. Let's support each other.",
			Reactions:    5,
			CommentCount: 3,
			CreatedAt:    now.Add(-48 * time.Hour),
		},
		{
			ID:           "demo-post-depression",
			CommunityID:  "depression",
			AuthorID:     "wellverse-admin",
			AuthorName:   "WellVerse Admin",
			AuthorAvatar: adminAvatar,
			Title:        "A Gentle Welcome to Our Depression Support Community",
			Content:      "If you're navigating depression or low mood, please know this is a space for understanding and shared experiences. You are welcome here. Feel free to share as much or as little as you're comfortable with. We're here to listen.",
			Reactions:    4,
			CommentCount: 0,
			CreatedAt:    now.Add(-72 * time.Hour),
		},
		{
			ID:           "demo-post-self-growth",
			CommunityID:  "self-growth",
			AuthorID:     "wellverse-admin",
			AuthorName:   "WellVerse Admin",
			AuthorAvatar: adminAvatar,
			Title:        "Embark on Your Self-Growth Journey With Us!",
			Content:      "Welcome to the Self-Growth & Development community! This is a place to explore personal development, share insights, set goals, and support each other in becoming our best selves. What are you working on today?",
			Reactions:    6,
			CommentCount: 2,
			CreatedAt:    now.Add(-96 * time.Hour),
		},
	}
}

func resources() []model.Resource {
	return []model.Resource{
		{ID: "res1", Title: "Deep Breathing Exercise", Type: model.ResourceExercise, Topic: "Stress", Description: "A guided exercise for quick stress relief.", ContentURL: "#", Icon: "Wind"},
		{ID: "res2", Title: "Understanding Anxiety", Type: model.ResourceArticle, Topic: "Anxiety", Description: "An informative article about anxiety disorders.", ContentURL: "#", Icon: "FileText"},
		{ID: "res3", Title: "Mindfulness Meditation", Type: model.ResourceVideo, Topic: "Sleep", Description: "A 10-minute guided meditation for better sleep.", ContentURL: "#", Icon: "Youtube"},
	}
}

func moodEntries() []model.MoodEntry {
	return []model.MoodEntry{
		{ID: "mood1", UserID: "test-uid", Mood: model.MoodHappy, Journal: "Great day!", CreatedAt: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "mood2", UserID: "test-uid", Mood: model.MoodOkay, Journal: "", CreatedAt: time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC)},
	}
}
