package main

import (
	"context"
	"log/slog"
	"os"

	"pizzacrm/cmd"
	"pizzacrm/internal/adapters/in/console"
	"pizzacrm/internal/adapters/out/memory"
	"pizzacrm/internal/core/application/usecases/commands"
	"pizzacrm/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	setupLogger(configs.LogLevel)

	store := memory.NewStore()
	app := cmd.NewCompositionRoot(configs, store)

	ctx := context.Background()
	if configs.SeedDemoData {
		if err := seedDemoData(ctx, &app); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	terminal := console.NewConsole(app.CreateConsoleHandlers(), os.Stdin, os.Stdout)
	if err := terminal.Run(ctx); err != nil {
		log.Fatalf("Console failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	// The .env file is optional; environment variables win either way.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		SeedDemoData: envVariable("SEED_DEMO_DATA", "true") == "true",
		LogLevel:     envVariable("LOG_LEVEL", "info"),
	}
	return config
}

func envVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func setupLogger(level string) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}

// seedDemoData loads the starter menu and roster so the console has something
// to show on first run.
func seedDemoData(ctx context.Context, app *cmd.CompositionRoot) error {
	addPizza := app.CreateAddPizzaCommandHandler()
	createCourier := app.CreateCreateCourierCommandHandler()

	pizzas := []struct {
		name        string
		description string
		price       float64
	}{
		{"Margherita", "Tomato sauce, mozzarella, basil", 450},
		{"Pepperoni", "Tomato sauce, mozzarella, pepperoni", 550},
		{"Vegetarian", "Tomato sauce, mozzarella, bell pepper, olives, mushrooms", 500},
		{"Hawaiian", "Tomato sauce, mozzarella, ham, pineapple", 520},
	}
	for _, p := range pizzas {
		pizzaCommand, err := commands.NewAddPizzaCommand(kernel.NewUUID(), p.name, p.description, p.price, "")
		if err != nil {
			return err
		}
		if err := addPizza.Handle(ctx, pizzaCommand); err != nil {
			return err
		}
	}

	couriers := []struct {
		name  string
		phone string
	}{
		{"Alexey Kozlov", "+7 (999) 111-22-33"},
		{"Maria Petrova", "+7 (999) 222-33-44"},
		{"Ivan Smirnov", "+7 (999) 333-44-55"},
	}
	for _, c := range couriers {
		courierCommand, err := commands.NewCreateCourierCommand(kernel.NewUUID(), c.name, c.phone)
		if err != nil {
			return err
		}
		if err := createCourier.Handle(ctx, courierCommand); err != nil {
			return err
		}
	}

	slog.Info("demo data seeded", "pizzas", len(pizzas), "couriers", len(couriers))
	return nil
}
