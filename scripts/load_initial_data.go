package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ProjectData struct {
	Slug             string   `yaml:"slug"`
	Title            string   `yaml:"title"`
	ShortDescription string   `yaml:"short_description"`
	DetailedContent  string   `yaml:"detailed_content"`
	LiveURL          string   `yaml:"live_url,omitempty"`
	GithubURL        string   `yaml:"github_url,omitempty"`
	Technologies     []string `yaml:"technologies,omitempty"`
	Category         string   `yaml:"category,omitempty"`
	IsFeatured       bool     `yaml:"is_featured,omitempty"`
	Images           []struct {
		URL     string `yaml:"url"`
		AltText string `yaml:"alt_text"`
	} `yaml:"images,omitempty"`
}

type BlogPostData struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt,omitempty"`
	Content     string `yaml:"content"`
	IsPublished bool   `yaml:"is_published,omitempty"`
}

type PricingPlanData struct {
	Name          string   `yaml:"name"`
	PriceCents    int64    `yaml:"price_cents"`
	Currency      string   `yaml:"currency,omitempty"`
	BillingPeriod string   `yaml:"billing_period,omitempty"`
	Features      []string `yaml:"features,omitempty"`
	IsHighlighted bool     `yaml:"is_highlighted,omitempty"`
	SortOrder     int      `yaml:"sort_order,omitempty"`
}

type SeedFile struct {
	Projects     []ProjectData     `yaml:"projects"`
	BlogPosts    []BlogPostData    `yaml:"blog_posts"`
	PricingPlans []PricingPlanData `yaml:"pricing_plans"`
}

func main() {
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel: logger.Warn,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dataDir, "*.yaml"))
	if err != nil {
		log.Fatalf("Failed to list seed files: %v", err)
	}
	if len(matches) == 0 {
		log.Fatalf("No seed files found under %s", dataDir)
	}

	for _, path := range matches {
		if err := loadSeedFile(db, path); err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
	}

	log.Println("Initial data loaded successfully")
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	for _, p := range seed.Projects {
		if err := seedProject(db, p); err != nil {
			return fmt.Errorf("project %q: %w", p.Slug, err)
		}
	}
	for _, b := range seed.BlogPosts {
		if err := seedBlogPost(db, b); err != nil {
			return fmt.Errorf("blog post %q: %w", b.Slug, err)
		}
	}
	for _, pl := range seed.PricingPlans {
		if err := seedPricingPlan(db, pl); err != nil {
			return fmt.Errorf("pricing plan %q: %w", pl.Name, err)
		}
	}

	log.Printf("Loaded %s: %d projects, %d blog posts, %d pricing plans",
		path, len(seed.Projects), len(seed.BlogPosts), len(seed.PricingPlans))
	return nil
}

// seedProject matches on slug; existing projects keep their images
func seedProject(db *gorm.DB, data ProjectData) error {
	var existing models.Project
	err := db.Where("slug = ?", data.Slug).First(&existing).Error
	if err == nil {
		log.Printf("Project %q already exists, skipping", data.Slug)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	project := models.Project{
		Slug:             data.Slug,
		Title:            data.Title,
		ShortDescription: data.ShortDescription,
		DetailedContent:  data.DetailedContent,
		LiveURL:          data.LiveURL,
		GithubURL:        data.GithubURL,
		Technologies:     data.Technologies,
		Category:         data.Category,
		IsFeatured:       data.IsFeatured,
	}
	for i, img := range data.Images {
		project.Images = append(project.Images, models.ProjectImage{
			URL:       img.URL,
			AltText:   img.AltText,
			SortOrder: i,
		})
	}

	return db.Create(&project).Error
}

func seedBlogPost(db *gorm.DB, data BlogPostData) error {
	var existing models.BlogPost
	err := db.Where("slug = ?", data.Slug).First(&existing).Error
	if err == nil {
		log.Printf("Blog post %q already exists, skipping", data.Slug)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	post := models.BlogPost{
		Slug:        data.Slug,
		Title:       data.Title,
		Excerpt:     data.Excerpt,
		Content:     data.Content,
		IsPublished: data.IsPublished,
	}
	if data.IsPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	return db.Create(&post).Error
}

func seedPricingPlan(db *gorm.DB, data PricingPlanData) error {
	var existing models.PricingPlan
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		log.Printf("Pricing plan %q already exists, skipping", data.Name)
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	currency := data.Currency
	if currency == "" {
		currency = "USD"
	}
	billing := data.BillingPeriod
	if billing == "" {
		billing = "project"
	}

	return db.Create(&models.PricingPlan{
		Name:          data.Name,
		PriceCents:    data.PriceCents,
		Currency:      currency,
		BillingPeriod: billing,
		Features:      data.Features,
		IsHighlighted: data.IsHighlighted,
		SortOrder:     data.SortOrder,
	}).Error
}
