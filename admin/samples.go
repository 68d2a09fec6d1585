package admin

import (
	"time"

	"github.com/phoenixwrites/phoenix/models"
)

// SamplePosts are the entries a new editor starts with.
func SamplePosts() []models.Post {
	first := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	return []models.Post{
		{
			ID:            "1",
			Title:         "The Art of Storytelling: Crafting Narratives That Captivate",
			Content:       "Every great story begins with a spark of curiosity...",
			Excerpt:       "Discover the fundamental elements that make stories unforgettable.",
			Category:      models.CategoryStorytelling,
			FeaturedImage: "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg?auto=compress&cs=tinysrgb&w=800",
			CreatedAt:     first,
			UpdatedAt:     first,
		},
		{
			ID:            "2",
			Title:         "Resume Writing in 2024: What Recruiters Really Want",
			Content:       "The job market has evolved, and so should your resume...",
			Excerpt:       "Learn the latest trends in resume writing and what recruiters look for.",
			Category:      models.CategoryCVTips,
			FeaturedImage: "https://images.pexels.com/photos/590016/pexels-photo-590016.jpg?auto=compress&cs=tinysrgb&w=800",
			CreatedAt:     second,
			UpdatedAt:     second,
		},
	}
}
