package main

import (
	"context"
	"log"

	"guru-ai-be/internal/config"
	"guru-ai-be/internal/entity"
	"guru-ai-be/internal/repository/unitofwork"
	"guru-ai-be/pkg/database"

	"github.com/fatih/color"
)

// Seeds a small curriculum slice so the chat pipeline can be exercised
// locally without a full content import.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	color.Cyan("🌱 Seeding curriculum content\n")

	documents := []*entity.Document{
		{
			Content: "ආහාර ජීර්ණ පද්ධතිය Figure 4.5 හි දැක්වේ. ආහාර මුඛයෙන් ආරම්භ වී ආමාශය හරහා ගමන් කරයි.",
			Subject: "Science",
			Medium:  "Sinhala",
			Grade:   "10",
		},
		{
			Content: "The digestive system is shown in Figure 4.5. Food enters through the mouth and passes through the stomach.",
			Subject: "Science",
			Medium:  "English",
			Grade:   "10",
		},
		{
			Content: "ප්‍රභාසංස්ලේෂණය යනු ශාක ආලෝකය භාවිතයෙන් ආහාර සාදන ක්‍රියාවලියයි. Figure 6.2 බලන්න.",
			Subject: "Science",
			Medium:  "Sinhala",
			Grade:   "10",
		},
	}

	for _, doc := range documents {
		if err := uow.DocumentRepository().Create(ctx, doc); err != nil {
			color.Red("Failed to seed document: %v", err)
			continue
		}
		color.Green("Document %s (%s/%s)", doc.Id, doc.Subject, doc.Medium)
	}

	figures := []*entity.ContentFigure{
		{
			Subject:     "Science",
			Medium:      "Sinhala",
			ImageURL:    "https://content.example.lk/science/fig-4-5.png",
			Description: "Figure 4.5 ආහාර ජීර්ණ පද්ධතිය",
		},
		{
			Subject:     "Science",
			Medium:      "English",
			ImageURL:    "https://content.example.lk/science/fig-4-5-en.png",
			Description: "Figure 4.5 The human digestive system",
		},
		{
			Subject:     "Science",
			Medium:      "Sinhala",
			ImageURL:    "https://content.example.lk/science/fig-6-2.png",
			Description: "Figure 6.2 ප්‍රභාසංස්ලේෂණ ක්‍රියාවලිය",
		},
	}

	for _, fig := range figures {
		if err := uow.FigureRepository().Create(ctx, fig); err != nil {
			color.Red("Failed to seed figure: %v", err)
			continue
		}
		color.Green("Figure %s (%s)", fig.Id, fig.Description)
	}

	color.Cyan("\n✅ Seeding complete")
}
