package main

import (
	"context"
	"log"

	"fireforge/internal/config"
	"fireforge/internal/database"
	"fireforge/internal/domain"
	"fireforge/internal/logger"
	"fireforge/internal/repository"
	"fireforge/internal/util"

	"go.uber.org/zap"
)

// Seeds a fresh environment with a starter portfolio entry and a draft
// article so the dashboard is not empty on first login.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Logger)
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	clientRepo := repository.NewSQLXClientRepository(db)
	blogRepo := repository.NewSQLXBlogPostRepository(db)

	client := &domain.PortfolioClient{
		ID:          util.NewULID(),
		Name:        "FireForge Digital",
		Tag:         "Sitio propio",
		Description: "Nuestra propia web, forjada con el mismo proceso que ofrecemos.",
		Image:       "/images/portfolio/fireforge.webp",
		WebsiteURL:  "https://fireforge.digital",
		Category:    "landing",
		Featured:    true,
		Order:       1,
	}
	if err := clientRepo.CreateClient(ctx, client); err != nil {
		l.Fatal("Failed to seed portfolio client", zap.Error(err))
	}
	l.Info("Seeded portfolio client", zap.String("id", client.ID))

	post := &domain.BlogPost{
		ID:      util.NewULID(),
		Title:   "Bienvenido al blog",
		Slug:    "bienvenido-al-blog",
		Excerpt: "Primer artículo del blog.",
		Content: "Este es un borrador inicial. Edítalo desde el panel de administración.",
		Author:  "FireForge",
		Tags:    []string{"general"},
	}
	if err := blogRepo.CreatePost(ctx, post); err != nil {
		l.Fatal("Failed to seed blog post", zap.Error(err))
	}
	l.Info("Seeded draft blog post", zap.String("id", post.ID))
}
