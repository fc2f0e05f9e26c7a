package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/KAMASDM/franchise-sub002/internal/adapters/database"
	"github.com/KAMASDM/franchise-sub002/internal/domain/entities"
	"github.com/KAMASDM/franchise-sub002/internal/infrastructure/clients/postgres"
	"github.com/KAMASDM/franchise-sub002/pkg/config"
)

// Seeds a small but realistic brand catalog for local development and
// manual search testing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				search_events,
				brand_views,
				favorites,
				inquiries,
				brands
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset tables")
		}
	}

	brandRepo := database.NewBrandAdapter(pgClient)

	brands := []entities.Brand{
		{
			BrandName:       "Pizza Hut",
			Slug:            "pizza-hut",
			Category:        "Food & Beverage",
			Industries:      []string{"Quick Service Restaurant", "Pizza"},
			BusinessModels:  []string{"FOFO", "FOCO"},
			Tagline:         "Flavor of now",
			Description:     "Global pizza chain looking for franchise partners across metro and tier-2 cities.",
			InvestmentRange: entities.InvestmentRange{Min: 5000000, Max: 10000000},
			FranchiseFee:    2500000,
			ROIPercent:      18,
			SpaceRequired:   1200,
			Locations:       []string{"Mumbai", "Delhi", "Bengaluru"},
			Contact:         entities.Contact{Email: "franchise@pizzahut.example", Phone: "+91-9800000001"},
		},
		{
			BrandName:       "Chai Point",
			Slug:            "chai-point",
			Category:        "Food & Beverage",
			Industries:      []string{"Cafe", "Beverages"},
			BusinessModels:  []string{"FOCO"},
			Tagline:         "India runs on chai",
			Description:     "Tea-first cafe format with kiosk and store models, strong delivery economics.",
			InvestmentRange: entities.InvestmentRange{Min: 800000, Max: 2500000},
			FranchiseFee:    400000,
			ROIPercent:      24,
			SpaceRequired:   300,
			Locations:       []string{"Bengaluru", "Pune", "Hyderabad"},
			Contact:         entities.Contact{Email: "partners@chaipoint.example", Phone: "+91-9800000002"},
		},
		{
			BrandName:       "Lenskart",
			Slug:            "lenskart",
			Category:        "Retail",
			Industries:      []string{"Eyewear", "Healthcare Retail"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "Vision for everyone",
			Description:     "Omnichannel eyewear retail with in-store eye testing and home trial.",
			InvestmentRange: entities.InvestmentRange{Min: 2500000, Max: 3500000},
			FranchiseFee:    500000,
			ROIPercent:      30,
			SpaceRequired:   400,
			Locations:       []string{"Delhi", "Jaipur", "Lucknow"},
			Contact:         entities.Contact{Email: "franchise@lenskart.example", Phone: "+91-9800000003"},
		},
		{
			BrandName:       "FirstCry",
			Slug:            "firstcry",
			Category:        "Retail",
			Industries:      []string{"Baby Care", "Kids Fashion"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "Asia's largest store for baby and kids",
			Description:     "Baby products retail franchise with strong private label margins.",
			InvestmentRange: entities.InvestmentRange{Min: 2000000, Max: 3000000},
			FranchiseFee:    300000,
			ROIPercent:      22,
			SpaceRequired:   1000,
			Locations:       []string{"Ahmedabad", "Surat", "Indore"},
			Contact:         entities.Contact{Email: "franchise@firstcry.example", Phone: "+91-9800000004"},
		},
		{
			BrandName:       "Anytime Fitness",
			Slug:            "anytime-fitness",
			Category:        "Health & Fitness",
			Industries:      []string{"Gym", "Wellness"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "Let's make healthy happen",
			Description:     "24x7 gym franchise with recurring membership revenue.",
			InvestmentRange: entities.InvestmentRange{Min: 15000000, Max: 20000000},
			FranchiseFee:    4000000,
			ROIPercent:      16,
			SpaceRequired:   4000,
			Locations:       []string{"Mumbai", "Chandigarh", "Kochi"},
			Contact:         entities.Contact{Email: "india@anytimefitness.example", Phone: "+91-9800000005"},
		},
		{
			BrandName:       "Kidzee",
			Slug:            "kidzee",
			Category:        "Education",
			Industries:      []string{"Preschool", "Early Education"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "What your child deserves",
			Description:     "Preschool chain with structured pedagogy and operator training.",
			InvestmentRange: entities.InvestmentRange{Min: 1200000, Max: 1500000},
			FranchiseFee:    200000,
			ROIPercent:      25,
			SpaceRequired:   2000,
			Locations:       []string{"Nagpur", "Bhopal", "Patna"},
			Contact:         entities.Contact{Email: "franchise@kidzee.example", Phone: "+91-9800000006"},
		},
		{
			BrandName:       "DTDC Courier",
			Slug:            "dtdc-courier",
			Category:        "Services",
			Industries:      []string{"Logistics", "Courier"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "Across the nation, across the world",
			Description:     "Courier and parcel franchise with low setup cost and pin-code exclusivity.",
			InvestmentRange: entities.InvestmentRange{Min: 150000, Max: 500000},
			FranchiseFee:    50000,
			ROIPercent:      20,
			SpaceRequired:   150,
			Locations:       []string{"Guwahati", "Ranchi", "Raipur"},
			Contact:         entities.Contact{Email: "franchise@dtdc.example", Phone: "+91-9800000007"},
		},
		{
			BrandName:       "Subway",
			Slug:            "subway",
			Category:        "Food & Beverage",
			Industries:      []string{"Quick Service Restaurant", "Sandwiches"},
			BusinessModels:  []string{"FOFO"},
			Tagline:         "Eat fresh",
			Description:     "Submarine sandwich chain with flexible store formats.",
			InvestmentRange: entities.InvestmentRange{Min: 4000000, Max: 6000000},
			FranchiseFee:    1500000,
			ROIPercent:      15,
			SpaceRequired:   600,
			Locations:       []string{"Delhi", "Gurugram", "Noida"},
			Contact:         entities.Contact{Email: "develop@subway.example", Phone: "+91-9800000008"},
		},
	}

	created := 0
	for i := range brands {
		b := &brands[i]
		b.ID = uuid.New().String()
		b.IsActive = true
		b.CreatedAt = time.Now()
		b.UpdatedAt = time.Now()
		if err := brandRepo.Create(ctx, b); err != nil {
			log.Error().Err(err).Str("brand", b.BrandName).Msg("failed to create brand")
			continue
		}
		created++
	}

	log.Info().Int("created", created).Int("total", len(brands)).Msg("seeding complete")
}
